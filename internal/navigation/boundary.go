package navigation

// Policy decides when a scrollable page counts as read to the end
type Policy string

const (
	// PolicyStrict requires the bottom edge to be reached
	PolicyStrict Policy = "strict"
	// PolicyLenient accepts a scrolled fraction at or above the lenient threshold
	PolicyLenient Policy = "lenient"
)

// Boundary tolerances in pixels
const (
	DefaultSlack            = 24
	DefaultTolerance        = 10
	DefaultLenientThreshold = 0.85
)

// Boundary is a snapshot of one container's scroll position
type Boundary struct {
	Scrollable bool
	AtTop      bool
	AtBottom   bool
	// Fraction is (scrollTop+clientHeight)/scrollHeight clamped to [0,1];
	// 1 when there is nothing to scroll.
	Fraction float64
}

// Measure reads c once and classifies its position. A nil container has no
// scrollable content and sits at both edges.
func Measure(c ScrollContainer, slack, tolerance int) Boundary {
	if c == nil {
		return Boundary{AtTop: true, AtBottom: true, Fraction: 1}
	}
	top, height, client := c.ScrollTop(), c.ScrollHeight(), c.ClientHeight()

	b := Boundary{
		Scrollable: height > client+slack,
		AtTop:      top <= tolerance,
		AtBottom:   top+client >= height-tolerance,
		Fraction:   1,
	}
	if b.Scrollable && height > 0 {
		b.Fraction = float64(top+client) / float64(height)
		if b.Fraction > 1 {
			b.Fraction = 1
		} else if b.Fraction < 0 {
			b.Fraction = 0
		}
	}
	return b
}

// Exhausted reports whether the content counts as fully read under policy
func (b Boundary) Exhausted(policy Policy, threshold float64) bool {
	if !b.Scrollable {
		return true
	}
	if policy == PolicyLenient {
		return b.AtBottom || b.Fraction >= threshold
	}
	return b.AtBottom
}
