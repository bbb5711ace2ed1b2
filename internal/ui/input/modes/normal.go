package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
)

const ggTimeout = 500 * time.Millisecond

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
	now         func() time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{now: time.Now}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// any key other than g breaks a pending gg
	wasG := m.lastKeyWasG
	m.lastKeyWasG = false

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyUp:
		return arrow("up"), true

	case tea.KeyDown:
		return arrow("down"), true

	case tea.KeyLeft:
		return arrow("left"), true

	case tea.KeyRight:
		return arrow("right"), true

	case tea.KeyPgUp:
		return []types.Action{types.ScrollPageAction{Pages: -1}}, true

	case tea.KeyPgDown, tea.KeySpace:
		return []types.Action{types.ScrollPageAction{Pages: 1}}, true

	case tea.KeyHome:
		return []types.Action{types.JumpAction{Index: 0}}, true

	case tea.KeyEnd:
		return []types.Action{types.JumpAction{Index: ctx.TotalSections() - 1}}, true

	case tea.KeyTab:
		return []types.Action{types.StepAction{Delta: 1}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.StepAction{Delta: -1}}, true

	case tea.KeyEnter:
		// the hero's call to action leads to the projects
		if ctx.SectionID(ctx.CurrentIndex()) == "hero" {
			if i := ctx.IndexOf("projects"); i >= 0 {
				return []types.Action{types.JumpAction{Index: i}}, true
			}
		}
		return nil, false
	}

	switch key := msg.String(); key {
	case "j":
		return []types.Action{types.ScrollAction{Lines: 1}}, true

	case "k":
		return []types.Action{types.ScrollAction{Lines: -1}}, true

	case "h":
		return arrow("left"), true

	case "l":
		return arrow("right"), true

	case "ctrl+d":
		return []types.Action{types.ScrollPageAction{Pages: 1}}, true

	case "ctrl+u":
		return []types.Action{types.ScrollPageAction{Pages: -1}}, true

	case "g":
		if wasG && m.now().Sub(m.lastGTime) < ggTimeout {
			return []types.Action{types.ScrollEdgeAction{Bottom: false}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = m.now()
		return nil, true

	case "G":
		return []types.Action{types.ScrollEdgeAction{Bottom: true}}, true

	case "n":
		return []types.Action{types.StepAction{Delta: 1}}, true

	case "p", "N":
		return []types.Action{types.StepAction{Delta: -1}}, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		if i < ctx.TotalSections() {
			return []types.Action{types.JumpAction{Index: i}}, true
		}
		return nil, false

	case "c":
		i := ctx.IndexOf("contact")
		if i < 0 {
			return nil, false
		}
		return []types.Action{types.OpenContactAction{Index: i}}, true

	case "o":
		return []types.Action{types.OpenPagerAction{}}, true

	case "?":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}

func arrow(direction string) []types.Action {
	return []types.Action{types.ArrowAction{Direction: direction}}
}
