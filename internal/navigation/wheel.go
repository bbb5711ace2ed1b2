package navigation

// HandleWheel interprets one wheel event with vertical delta deltaY, positive
// meaning forward. It returns true when a transition fired and the host must
// swallow the event; false leaves it to native scrolling.
func (c *Controller) HandleWheel(deltaY float64) bool {
	if c.disposed || c.locked || deltaY == 0 {
		return false
	}
	b := c.boundary()

	if deltaY > 0 {
		if c.isLast() {
			return false
		}
		if !b.Scrollable || b.AtBottom || c.CanAdvance() {
			return c.step(1)
		}
		return false
	}

	if c.index == 0 {
		return false
	}
	if !b.Scrollable || b.AtTop {
		return c.step(-1)
	}
	return false
}
