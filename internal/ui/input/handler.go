package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/modes"
	"folio/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	contact     *modes.ContactMode
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		contact:     modes.NewContactMode(),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeHelp] = modes.NewHelpMode()
	h.modes[types.ModeContact] = h.contact

	return h
}

// HandleKey routes msg to the active mode. Mode changes are applied here and
// not returned; every other action is.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmds []tea.Cmd
	var out []types.Action
	for _, action := range actions {
		if change, ok := action.(types.ChangeModeAction); ok {
			out = append(out, h.switchMode(change.Mode, ctx)...)
			if change.Mode == types.ModeContact {
				cmds = append(cmds, h.contact.FocusCmd(), textinput.Blink)
			}
			continue
		}
		out = append(out, action)
	}

	// keys the mode let through go to its bubbles components
	if !consumed {
		if u, ok := handler.(types.Updater); ok {
			cmds = append(cmds, u.Update(msg))
		}
	}

	return out, tea.Batch(cmds...)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		out = append(out, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[mode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

// Update forwards non-key messages (cursor blink) to the active mode
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if u, ok := h.modes[h.currentMode].(types.Updater); ok {
		return u.Update(msg)
	}
	return nil
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// Contact returns the contact form, whichever mode is active
func (h *Handler) Contact() *modes.ContactMode {
	return h.contact
}

// ChangeMode switches mode outside of key handling
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) tea.Cmd {
	h.switchMode(mode, ctx)
	if mode == types.ModeContact {
		return tea.Batch(h.contact.FocusCmd(), textinput.Blink)
	}
	return nil
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.contact.Reset()
}
