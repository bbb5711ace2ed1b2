package viewmodels

import (
	"folio/internal/ui/input/types"
)

// InputTransformer turns the input mode into popup content
type InputTransformer struct {
	mode        types.Mode
	helpView    string
	contactView string
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer() *InputTransformer {
	return &InputTransformer{mode: types.ModeNormal}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode types.Mode) {
	it.mode = mode
}

// SetHelpView sets the rendered full key map
func (it *InputTransformer) SetHelpView(view string) {
	it.helpView = view
}

// SetContactView sets the rendered contact form
func (it *InputTransformer) SetContactView(view string) {
	it.contactView = view
}

// Popup returns the popup for the current mode; empty content means none
func (it *InputTransformer) Popup() (title, content string) {
	switch it.mode {
	case types.ModeHelp:
		return "Keyboard shortcuts", it.helpView
	case types.ModeContact:
		return "Get in touch", it.contactView
	default:
		return "", ""
	}
}
