package ui

// clearStatusMsg clears the status line unless a newer message replaced it
type clearStatusMsg struct {
	seq int
}

// contactResultMsg carries the outcome of a contact form submission
type contactResultMsg struct {
	err error
}

// pagerExitMsg is sent when the external pager returns
type pagerExitMsg struct {
	sectionID string
	err       error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
