package ui

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/navigation"
	"folio/internal/ui/input"
	inputtypes "folio/internal/ui/input/types"
	"folio/internal/ui/state"
	"folio/internal/ui/viewmodels"
	"folio/internal/ui/views"
)

const (
	statusTimeout = 5 * time.Second
	popupMaxWidth = 64
)

// ContactSubmitter sends contact form messages
type ContactSubmitter interface {
	Validate(msg domain.ContactMessage) error
	Submit(ctx context.Context, msg domain.ContactMessage) error
}

// Model is the page host: it owns the terminal, mounts section panes around
// the current page and translates terminal input into controller gestures.
type Model struct {
	config    *config.Config
	portfolio domain.Portfolio
	nav       *navigation.Controller
	contact   ContactSubmitter
	pager     Pager
	state     *state.AppState // centralized UI state

	cellW int
	cellH int

	panes        map[int]*sectionPane
	markdown     *content.Renderer
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	help         help.Model
	keys         keyMap

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the page host. nav must have been built over
// portfolio.Sections.
func NewModel(cfg *config.Config, portfolio domain.Portfolio, nav *navigation.Controller, contact ContactSubmitter) *Model {
	appState := state.NewAppState(e2eMode())
	keys := newKeyMap()

	return &Model{
		config:       cfg,
		portfolio:    portfolio,
		nav:          nav,
		contact:      contact,
		pager:        &ovPager{},
		state:        appState,
		cellW:        cfg.Display.CellWidthPX,
		cellH:        cfg.Display.CellHeightPX,
		panes:        make(map[int]*sectionPane),
		markdown:     content.NewRenderer(cfg.Display.GlamourStyle),
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(appState, nav, portfolio, keys),
		inputHandler: input.New(),
		help:         help.New(),
		keys:         keys,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if op, ok := m.pager.(*ovPager); ok {
		op.program = p
	}
}

// SetPager replaces the external pager
func (m *Model) SetPager(p Pager) {
	m.pager = p
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.titleCmd()
}

// Update handles messages. Whatever moved the page, panes are remounted
// around the new index and the window title follows.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.nav.CurrentIndex()
	cmd := m.update(msg)
	if m.nav.CurrentIndex() != before {
		m.mountPanes()
		cmd = tea.Batch(cmd, m.titleCmd())
	}
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.nav.Resize(msg.Width * m.cellW)
		m.relayout()
		return nil

	case tea.KeyMsg:
		if m.state.InPagerMode {
			return nil
		}
		m.state.ShowReady = false
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.state.InPagerMode || m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
			return nil
		}
		return m.handleMouse(msg)

	case navigation.TaskMsg:
		msg.Run()
		return nil

	case contactResultMsg:
		form := m.inputHandler.Contact()
		form.SetSending(false)
		if msg.err != nil {
			log.Printf("Contact submission failed: %v", msg.err)
			return m.setStatus("Failed to send message. Please try again.", views.StatusError)
		}
		form.Reset()
		cmd := m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.inputContext())
		return tea.Batch(cmd, m.setStatus("Message sent successfully! I'll get back to you soon.", views.StatusSuccess))

	case pagerExitMsg:
		if msg.err != nil {
			log.Printf("Pager failed for %s: %v", msg.sectionID, msg.err)
			return m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err), views.StatusError)
		}
		return nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return nil

	case clearStatusMsg:
		m.state.ClearStatus(msg.seq)
		return nil

	default:
		// cursor blink for the contact form
		return m.inputHandler.Update(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Sections: m.portfolio.Sections,
		Current:  m.nav.CurrentIndex(),
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	pane := m.currentPane()

	switch a := action.(type) {
	case inputtypes.ArrowAction:
		if m.nav.HandleKey(arrowKey(a.Direction)) {
			return nil
		}
		// not a page turn: arrows scroll the page like a browser would
		if pane != nil {
			switch a.Direction {
			case "up":
				pane.scrollLines(-1)
			case "down":
				pane.scrollLines(1)
			}
		}

	case inputtypes.StepAction:
		if a.Delta > 0 {
			m.nav.Next()
		} else {
			m.nav.Prev()
		}

	case inputtypes.JumpAction:
		m.nav.NavigateTo(a.Index)

	case inputtypes.OpenContactAction:
		return m.openContact(a.Index)

	case inputtypes.ScrollAction:
		if pane != nil {
			pane.scrollLines(a.Lines)
		}

	case inputtypes.ScrollPageAction:
		if pane != nil {
			pane.scrollPages(a.Pages)
		}

	case inputtypes.ScrollEdgeAction:
		if pane != nil {
			if a.Bottom {
				pane.bottom()
			} else {
				pane.top()
			}
		}

	case inputtypes.SubmitContactAction:
		return m.submitContact(a.Message)

	case inputtypes.CancelContactAction:
		// fields are kept until a successful send

	case inputtypes.OpenPagerAction:
		return m.openPager()

	case inputtypes.QuitAction:
		m.nav.Dispose()
		return tea.Quit

	default:
		log.Printf("processAction: unhandled %T", action)
	}
	return nil
}

// openContact brings the contact page up, then the form over it. A refused
// jump (transition lock) leaves the mode alone.
func (m *Model) openContact(index int) tea.Cmd {
	if index != m.nav.CurrentIndex() && !m.nav.NavigateTo(index) {
		return nil
	}
	return m.inputHandler.ChangeMode(inputtypes.ModeContact, m.inputContext())
}

func arrowKey(direction string) navigation.Key {
	switch direction {
	case "up":
		return navigation.KeyArrowUp
	case "down":
		return navigation.KeyArrowDown
	case "left":
		return navigation.KeyArrowLeft
	case "right":
		return navigation.KeyArrowRight
	}
	return navigation.KeyOther
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	pane := m.currentPane()

	switch {
	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelUp:
		lines := m.config.Display.WheelLines
		if msg.Button == tea.MouseButtonWheelUp {
			lines = -lines
		}
		if !m.nav.HandleWheel(float64(lines*m.cellH)) && pane != nil {
			pane.scrollLines(lines)
		}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if hit, ok := m.renderer.HitAt(msg.X, msg.Y); ok {
			m.handleHit(hit)
			return nil
		}
		m.state.BeginDrag(msg.Y)
		m.nav.TouchStart(m.px(msg.X), m.py(msg.Y))

	case msg.Action == tea.MouseActionMotion && m.state.Dragging:
		// dragging up pulls the content up, like a finger on a touch screen
		if dy := m.state.DragTo(msg.Y); dy != 0 && pane != nil {
			pane.scrollLines(dy)
		}
		m.nav.TouchMove(m.px(msg.X), m.py(msg.Y))

	case msg.Action == tea.MouseActionRelease && m.state.EndDrag():
		m.nav.TouchEnd(m.px(msg.X), m.py(msg.Y))
	}
	return nil
}

func (m *Model) handleHit(hit views.Hit) {
	switch hit.Kind {
	case views.HitSection:
		m.nav.NavigateTo(hit.Index)
	case views.HitPrev:
		m.nav.Prev()
	case views.HitNext:
		m.nav.Next()
	}
}

func (m *Model) px(x int) float64 { return float64(x * m.cellW) }
func (m *Model) py(y int) float64 { return float64(y * m.cellH) }

func (m *Model) submitContact(msg domain.ContactMessage) tea.Cmd {
	if m.contact == nil {
		return m.setStatus("Contact form is not configured", views.StatusError)
	}
	if err := m.contact.Validate(msg); err != nil {
		return m.setStatus(capitalize(strings.TrimPrefix(err.Error(), "invalid message: ")), views.StatusError)
	}

	m.inputHandler.Contact().SetSending(true)
	client := m.contact
	timeout := m.config.ContactTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return contactResultMsg{err: client.Submit(ctx, msg)}
	}
}

// openPager shows the raw markdown of the current section in the pager
func (m *Model) openPager() tea.Cmd {
	section := m.nav.Section()
	text := m.sectionText(m.nav.CurrentIndex(), m.state.Width)
	pager := m.pager
	program := m.program
	return func() tea.Msg {
		if program != nil {
			program.Send(pauseRenderingMsg{})
			defer program.Send(resumeRenderingMsg{})
		}
		return pagerExitMsg{sectionID: section.ID, err: pager.Show(text)}
	}
}

func (m *Model) setStatus(text string, kind views.StatusKind) tea.Cmd {
	seq := m.state.SetStatus(text, kind)
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) titleCmd() tea.Cmd {
	return tea.SetWindowTitle(fmt.Sprintf("%s | %s", m.portfolio.Owner, m.nav.Section().Title))
}

func (m *Model) currentPane() *sectionPane {
	return m.panes[m.nav.CurrentIndex()]
}

// mountPanes keeps panes for the current page and its neighbours only
func (m *Model) mountPanes() {
	if !m.state.HasSize() {
		return
	}
	current := m.nav.CurrentIndex()
	registry := m.nav.Registry()

	for i := range m.panes {
		if i < current-1 || i > current+1 {
			delete(m.panes, i)
			registry.Register(i, nil)
		}
	}

	bodyW, bodyH := views.BodySize(m.state.Width, m.state.Height)
	for i := current - 1; i <= current+1; i++ {
		if i < 0 || i >= m.nav.Len() {
			continue
		}
		if _, ok := m.panes[i]; ok {
			continue
		}
		pane := newSectionPane(bodyW, bodyH, m.cellH)
		pane.setContent(m.sectionText(i, bodyW))
		m.panes[i] = pane
		registry.Register(i, pane)
	}
}

func (m *Model) relayout() {
	bodyW, bodyH := views.BodySize(m.state.Width, m.state.Height)
	for i, pane := range m.panes {
		pane.resize(bodyW, bodyH)
		pane.setContent(m.sectionText(i, bodyW))
	}
	m.mountPanes()
}

var socialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

// sectionText renders the section body; home carries the social links and
// contact the reachable details.
func (m *Model) sectionText(index, width int) string {
	section := m.portfolio.Sections[index]
	text, err := m.markdown.Render(section.Body, width)
	if err != nil {
		log.Printf("Render %s: %v", section.ID, err)
		text = section.Body
	}

	var extra []string
	switch {
	case index == 0 && len(m.portfolio.Socials) > 0:
		for _, link := range m.portfolio.Socials {
			extra = append(extra, fmt.Sprintf("  %-10s %s", link.Label, socialStyle.Render(link.URL)))
		}
	case section.ID == "contact":
		if m.portfolio.Email != "" {
			extra = append(extra, fmt.Sprintf("  %-10s %s", "Email", m.portfolio.Email))
		}
		if m.portfolio.Location != "" {
			extra = append(extra, fmt.Sprintf("  %-10s %s", "Location", m.portfolio.Location))
		}
		extra = append(extra, "", "  Press c to open the contact form.")
	}
	if len(extra) == 0 {
		return text
	}
	return strings.TrimRight(text, "\n") + "\n\n" + strings.Join(extra, "\n") + "\n"
}

// View renders the UI
func (m *Model) View() string {
	if !m.state.HasSize() {
		return "Loading..."
	}
	if m.state.InPagerMode {
		return ""
	}

	m.viewModel.SetHelp(m.help)
	if pane := m.currentPane(); pane != nil {
		m.viewModel.SetBody(pane.View())
	} else {
		m.viewModel.SetBody("")
	}
	mode := m.inputHandler.CurrentMode()
	if mode == inputtypes.ModeContact {
		m.viewModel.SetContactView(m.inputHandler.Contact().View(m.popupWidth()))
	}
	m.viewModel.SetInputMode(mode)

	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) popupWidth() int {
	w := m.state.Width - 10
	if w > popupMaxWidth {
		w = popupMaxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// e2eMode is set by the end-to-end suite, which waits for readyMarker
func e2eMode() bool {
	return os.Getenv("FOLIO_E2E_TEST") == "1"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
