package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"folio/internal/domain"
	"folio/internal/navigation"
	"folio/internal/ui/input/types"
	"folio/internal/ui/state"
	"folio/internal/ui/views"
)

// ReadyMarker is shown in the status line for the end-to-end suite
const ReadyMarker = "__READY__"

// NavState is the read side of the navigation controller
type NavState interface {
	CurrentIndex() int
	Viewport() navigation.Viewport
	CanAdvance() bool
	CanRetreat() bool
	ContentExhausted() bool
	ScrollProgress() float64
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	nav              NavState
	portfolio        domain.Portfolio
	help             help.Model
	keys             help.KeyMap
	body             string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, nav NavState, portfolio domain.Portfolio, keys help.KeyMap) *ViewModel {
	return &ViewModel{
		state:            appState,
		nav:              nav,
		portfolio:        portfolio,
		keys:             keys,
		inputTransformer: NewInputTransformer(),
	}
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetBody sets the visible part of the current page
func (vm *ViewModel) SetBody(body string) {
	vm.body = body
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.inputTransformer.SetMode(mode)
	if mode == types.ModeHelp {
		full := vm.help
		full.ShowAll = true
		vm.inputTransformer.SetHelpView(full.View(vm.keys))
	}
}

// SetContactView sets the rendered contact form
func (vm *ViewModel) SetContactView(view string) {
	vm.inputTransformer.SetContactView(view)
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	status := vm.state.StatusMessage
	if status == "" && vm.state.ShowReady {
		status = ReadyMarker
	}
	popupTitle, popupContent := vm.inputTransformer.Popup()

	return views.ViewState{
		Width:          vm.state.Width,
		Height:         vm.state.Height,
		Owner:          vm.portfolio.Owner,
		Sections:       vm.portfolio.Sections,
		Current:        vm.nav.CurrentIndex(),
		IsMobile:       vm.nav.Viewport().IsMobile,
		CanAdvance:     vm.nav.CanAdvance(),
		CanRetreat:     vm.nav.CanRetreat(),
		Exhausted:      vm.nav.ContentExhausted(),
		ScrollProgress: vm.nav.ScrollProgress(),
		Body:           vm.body,
		StatusMessage:  status,
		StatusKind:     vm.state.StatusKind,
		HelpView:       vm.help.View(vm.keys),
		PopupTitle:     popupTitle,
		PopupContent:   popupContent,
	}
}
