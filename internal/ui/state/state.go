package state

import (
	"folio/internal/ui/views"
)

// AppState contains the host's UI state. Page index and lock live in the
// navigation controller, not here.
type AppState struct {
	// Terminal size in cells
	Width  int
	Height int

	// Status line
	StatusMessage string
	StatusKind    views.StatusKind
	statusSeq     int

	// Left-button drag, tracked as a touch gesture
	Dragging bool
	DragY    int

	InPagerMode bool // an external pager owns the terminal
	ShowReady   bool // print the e2e ready marker until the first key
}

// NewAppState creates a new application state
func NewAppState(showReady bool) *AppState {
	return &AppState{ShowReady: showReady}
}

// SetSize records the terminal size
func (s *AppState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// HasSize is false until the first resize
func (s *AppState) HasSize() bool {
	return s.Width > 0 && s.Height > 0
}

// Status operations

// SetStatus replaces the status line and returns the token that clears it
func (s *AppState) SetStatus(text string, kind views.StatusKind) int {
	s.statusSeq++
	s.StatusMessage = text
	s.StatusKind = kind
	return s.statusSeq
}

// ClearStatus clears the status line if seq is still the latest message
func (s *AppState) ClearStatus(seq int) bool {
	if seq != s.statusSeq {
		return false
	}
	s.StatusMessage = ""
	return true
}

// Drag operations

// BeginDrag starts tracking a drag at row y
func (s *AppState) BeginDrag(y int) {
	s.Dragging = true
	s.DragY = y
}

// DragTo moves the drag to row y and returns how many rows the content
// should scroll: positive when dragging up.
func (s *AppState) DragTo(y int) int {
	dy := s.DragY - y
	s.DragY = y
	return dy
}

// EndDrag stops tracking and reports whether a drag was in progress
func (s *AppState) EndDrag() bool {
	was := s.Dragging
	s.Dragging = false
	s.DragY = 0
	return was
}
