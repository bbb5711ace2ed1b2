package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/domain"
	"folio/internal/ui/input/types"
)

const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldMessage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Email", "Subject", "Message"}

var (
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	hintStyle         = lipgloss.NewStyle().Faint(true)
)

// ContactMode edits the contact form: three single-line inputs and a
// multi-line message.
type ContactMode struct {
	inputs  [fieldMessage]textinput.Model
	message textarea.Model
	focus   int
	sending bool
}

func NewContactMode() *ContactMode {
	m := &ContactMode{}
	placeholders := [fieldMessage]string{"Your name", "you@example.com", "What's this about?"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		m.inputs[i] = ti
	}
	m.inputs[fieldName].CharLimit = 120

	ta := textarea.New()
	ta.Placeholder = "Tell me about your project..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 5000
	ta.SetHeight(5)
	m.message = ta
	return m
}

func (m *ContactMode) Name() string { return "contact" }

func (m *ContactMode) Enter(ctx types.Context) []types.Action {
	m.setFocus(m.focus)
	return nil
}

func (m *ContactMode) Exit(ctx types.Context) []types.Action {
	m.blurAll()
	return nil
}

func (m *ContactMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "esc":
		return []types.Action{
			types.CancelContactAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "tab":
		m.setFocus((m.focus + 1) % fieldCount)
		return nil, true
	case "shift+tab":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return nil, true
	case "enter":
		if m.focus != fieldMessage {
			m.setFocus(m.focus + 1)
			return nil, true
		}
		// newline in the message body
		return nil, false
	case "ctrl+s":
		if m.sending {
			return nil, true
		}
		return []types.Action{types.SubmitContactAction{Message: m.Message()}}, true
	}
	if m.sending {
		return nil, true
	}
	return nil, false
}

// Update feeds msg to the focused field
func (m *ContactMode) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == fieldMessage {
		m.message, cmd = m.message.Update(msg)
		return cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

// Message returns the current field values
func (m *ContactMode) Message() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    m.inputs[fieldName].Value(),
		Email:   m.inputs[fieldEmail].Value(),
		Subject: m.inputs[fieldSubject].Value(),
		Message: m.message.Value(),
	}
}

// SetMessage fills the form
func (m *ContactMode) SetMessage(msg domain.ContactMessage) {
	m.inputs[fieldName].SetValue(msg.Name)
	m.inputs[fieldEmail].SetValue(msg.Email)
	m.inputs[fieldSubject].SetValue(msg.Subject)
	m.message.SetValue(msg.Message)
}

// Reset clears every field and returns focus to the first one
func (m *ContactMode) Reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.message.Reset()
	m.sending = false
	m.focus = fieldName
}

func (m *ContactMode) SetSending(sending bool) { m.sending = sending }
func (m *ContactMode) Sending() bool           { return m.sending }
func (m *ContactMode) Focused() int            { return m.focus }

// FocusCmd focuses the current field and returns its cursor command
func (m *ContactMode) FocusCmd() tea.Cmd {
	return m.setFocus(m.focus)
}

func (m *ContactMode) setFocus(field int) tea.Cmd {
	m.blurAll()
	m.focus = field
	if field == fieldMessage {
		return m.message.Focus()
	}
	return m.inputs[field].Focus()
}

func (m *ContactMode) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()
}

// View renders the form at the given width
func (m *ContactMode) View(width int) string {
	if width < 20 {
		width = 20
	}
	for i := range m.inputs {
		m.inputs[i].Width = width - 2
	}
	m.message.SetWidth(width)

	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		style := labelStyle
		if i == m.focus {
			style = focusedLabelStyle
		}
		b.WriteString(style.Render(fieldLabels[i]))
		b.WriteString("\n")
		if i == fieldMessage {
			b.WriteString(m.message.View())
		} else {
			b.WriteString(m.inputs[i].View())
		}
		b.WriteString("\n")
	}

	hint := "tab next field · ctrl+s send · esc close"
	if m.sending {
		hint = "Sending..."
	}
	b.WriteString(hintStyle.Render(hint))
	return b.String()
}
