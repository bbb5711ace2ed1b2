package navigation

import "time"

// Options tunes the controller's timing and thresholds. Distances are in the
// host's pixel units.
type Options struct {
	Cooldown         time.Duration
	Debounce         time.Duration
	MobileBreakpoint int
	Slack            int
	Tolerance        int
	Policy           Policy
	LenientThreshold float64
	SwipeMin         float64
	VerticalSwipeMin float64
	SwipeMaxDuration time.Duration
	InitialWidth     int
}

// DefaultOptions returns the stock tuning
func DefaultOptions() Options {
	return Options{
		Cooldown:         800 * time.Millisecond,
		Debounce:         150 * time.Millisecond,
		MobileBreakpoint: 768,
		Slack:            DefaultSlack,
		Tolerance:        DefaultTolerance,
		Policy:           PolicyStrict,
		LenientThreshold: DefaultLenientThreshold,
		SwipeMin:         50,
		VerticalSwipeMin: 30,
		SwipeMaxDuration: 500 * time.Millisecond,
		InitialWidth:     1024,
	}
}

// withDefaults replaces unset or out-of-range fields with DefaultOptions.
// Zero Slack and Tolerance are valid and kept.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Cooldown <= 0 {
		o.Cooldown = d.Cooldown
	}
	if o.Debounce <= 0 {
		o.Debounce = d.Debounce
	}
	if o.MobileBreakpoint <= 0 {
		o.MobileBreakpoint = d.MobileBreakpoint
	}
	if o.Slack < 0 {
		o.Slack = d.Slack
	}
	if o.Tolerance < 0 {
		o.Tolerance = d.Tolerance
	}
	if o.Policy == "" {
		o.Policy = d.Policy
	}
	if o.LenientThreshold <= 0 || o.LenientThreshold > 1 {
		o.LenientThreshold = d.LenientThreshold
	}
	if o.SwipeMin <= 0 {
		o.SwipeMin = d.SwipeMin
	}
	if o.VerticalSwipeMin <= 0 {
		o.VerticalSwipeMin = d.VerticalSwipeMin
	}
	if o.SwipeMaxDuration <= 0 {
		o.SwipeMaxDuration = d.SwipeMaxDuration
	}
	// hosts that learn their size later start out on the desktop layout
	if o.InitialWidth <= 0 {
		o.InitialWidth = d.InitialWidth
	}
	return o
}
