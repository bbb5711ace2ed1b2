package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
)

// HelpMode is active while the key reference is shown. It swallows
// everything except the keys that close it.
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string { return "help" }

func (m *HelpMode) Enter(ctx types.Context) []types.Action { return nil }

func (m *HelpMode) Exit(ctx types.Context) []types.Action { return nil }

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "esc", "?", "q", "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return nil, true
}
