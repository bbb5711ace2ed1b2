package navigation

import (
	"log"

	"folio/internal/domain"
)

// Resize records a new viewport width. It never touches the index or the lock.
func (c *Controller) Resize(width int) {
	if width < 0 {
		width = 0
	}
	prev := c.viewport
	c.viewport = Viewport{
		Width:    width,
		IsMobile: width < c.opts.MobileBreakpoint,
	}
	if prev.IsMobile != c.viewport.IsMobile && prev.Width != 0 {
		log.Printf("navigation: viewport %dpx mobile=%v", width, c.viewport.IsMobile)
		c.publish(domain.ViewportChangedEvent{Width: width, IsMobile: c.viewport.IsMobile})
	}
}
