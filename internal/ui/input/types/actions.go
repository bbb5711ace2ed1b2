package types

import "folio/internal/domain"

// ArrowAction is an arrow key, routed through gesture arbitration first
type ArrowAction struct {
	Direction string // "up", "down", "left", "right"
}

func (a ArrowAction) Type() string { return "arrow" }

// StepAction moves one page through the prev/next affordances
type StepAction struct {
	Delta int // +1 next, -1 previous
}

func (a StepAction) Type() string { return "step" }

// JumpAction navigates straight to a page
type JumpAction struct {
	Index int
}

func (a JumpAction) Type() string { return "jump" }

// Scroll actions only move within the current page
type ScrollAction struct {
	Lines int
}

func (a ScrollAction) Type() string { return "scroll" }

type ScrollPageAction struct {
	Pages int
}

func (a ScrollPageAction) Type() string { return "scroll_page" }

type ScrollEdgeAction struct {
	Bottom bool
}

func (a ScrollEdgeAction) Type() string { return "scroll_edge" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// OpenContactAction shows the contact form on the contact page. The host
// opens the form only once that page is current.
type OpenContactAction struct {
	Index int
}

func (a OpenContactAction) Type() string { return "open_contact" }

// Contact form actions
type SubmitContactAction struct {
	Message domain.ContactMessage
}

func (a SubmitContactAction) Type() string { return "submit_contact" }

type CancelContactAction struct{}

func (a CancelContactAction) Type() string { return "cancel_contact" }

// OpenPagerAction shows the current section in the external pager
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
