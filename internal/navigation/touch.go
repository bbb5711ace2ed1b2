package navigation

import (
	"math"
	"time"
)

type touchState struct {
	tracking bool
	startX   float64
	startY   float64
	lastY    float64
	start    time.Time
}

// TouchStart begins tracking a gesture at (x, y)
func (c *Controller) TouchStart(x, y float64) {
	if c.disposed {
		return
	}
	c.cancelDebounce()
	c.touch = touchState{
		tracking: true,
		startX:   x,
		startY:   y,
		lastY:    y,
		start:    c.sched.Now(),
	}
}

// TouchMove handles a drag sample. Pushing past a content edge arms the
// debounce; any other movement disarms it.
func (c *Controller) TouchMove(x, y float64) {
	if c.disposed || !c.touch.tracking || c.locked {
		return
	}
	dy := c.touch.lastY - y
	c.touch.lastY = y

	b := c.boundary()
	if !b.Scrollable {
		return
	}

	switch {
	case dy > 0 && b.AtBottom && c.CanAdvance():
		c.armDebounce(1)
	case dy < 0 && b.AtTop && c.CanRetreat():
		c.armDebounce(-1)
	default:
		c.cancelDebounce()
	}
}

// TouchEnd finishes the gesture at (x, y) and reports whether a swipe paged
func (c *Controller) TouchEnd(x, y float64) bool {
	c.cancelDebounce()
	t := c.touch
	c.touch = touchState{}
	if c.disposed || !t.tracking || c.locked {
		return false
	}

	dx := t.startX - x
	dy := t.startY - y
	elapsed := c.sched.Now().Sub(t.start)
	if elapsed >= c.opts.SwipeMaxDuration {
		return false
	}
	b := c.boundary()

	if math.Abs(dx) > math.Abs(dy) {
		if math.Abs(dx) <= c.opts.SwipeMin {
			return false
		}
		if dx > 0 {
			if c.CanAdvance() && (!b.Scrollable || b.AtBottom) {
				return c.step(1)
			}
			return false
		}
		if c.CanRetreat() && (!b.Scrollable || b.AtTop) {
			return c.step(-1)
		}
		return false
	}

	if math.Abs(dy) <= c.opts.VerticalSwipeMin || b.Scrollable {
		return false
	}
	if dy > 0 && c.CanAdvance() {
		return c.step(1)
	}
	if dy < 0 && c.CanRetreat() {
		return c.step(-1)
	}
	return false
}

// TouchCancel drops the current gesture without paging
func (c *Controller) TouchCancel() {
	c.cancelDebounce()
	c.touch = touchState{}
}

// DebouncePending reports whether an edge-push debounce is armed
func (c *Controller) DebouncePending() bool {
	return c.debounce != nil
}

func (c *Controller) armDebounce(dir int) {
	c.cancelDebounce()
	armedOn := c.index
	var t Timer
	t = c.sched.AfterFunc(c.opts.Debounce, func() {
		if c.debounce == t {
			c.debounce = nil
		}
		if c.disposed || c.locked || c.index != armedOn {
			return
		}
		c.step(dir)
	})
	c.debounce = t
}

func (c *Controller) cancelDebounce() {
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
}
