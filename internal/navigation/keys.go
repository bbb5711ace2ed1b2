package navigation

// Key is a navigation-relevant key
type Key int

const (
	KeyOther Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

func (k Key) String() string {
	switch k {
	case KeyArrowUp:
		return "up"
	case KeyArrowDown:
		return "down"
	case KeyArrowLeft:
		return "left"
	case KeyArrowRight:
		return "right"
	default:
		return "other"
	}
}

// HandleKey pages on arrow keys when the content boundary allows it. It
// returns true when a transition fired.
func (c *Controller) HandleKey(k Key) bool {
	if c.disposed || c.locked {
		return false
	}
	b := c.boundary()

	switch k {
	case KeyArrowRight, KeyArrowDown:
		if c.CanAdvance() && (!b.Scrollable || b.AtBottom) {
			return c.step(1)
		}
	case KeyArrowLeft, KeyArrowUp:
		if c.CanRetreat() && (!b.Scrollable || b.AtTop) {
			return c.step(-1)
		}
	}
	return false
}
