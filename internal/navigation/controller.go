// Package navigation arbitrates paging gestures for a horizontally paged
// presentation. One Controller owns the current page index, the transition
// lock and the viewport classification, and decides per gesture whether the
// host should scroll inside the page or move to a neighbouring page.
package navigation

import (
	"errors"
	"log"

	"folio/internal/domain"
)

// ErrNoPages is returned when a controller is built without any sections
var ErrNoPages = errors.New("navigation: no pages")

// Publisher receives navigation events. eventbus.EventBus satisfies it.
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Viewport is the host's current width classification
type Viewport struct {
	Width    int
	IsMobile bool
}

// Controller is the single authority for which page is showing. All methods
// must be called from one goroutine, the host's event loop.
type Controller struct {
	sections []domain.Section
	registry *Registry
	sched    Scheduler
	opts     Options
	pub      Publisher

	index     int
	locked    bool
	lockTimer Timer
	viewport  Viewport

	// single debounce slot; arming replaces whatever is pending
	debounce Timer
	touch    touchState

	disposed bool
}

// NewController creates a controller positioned on the first section
func NewController(sections []domain.Section, registry *Registry, sched Scheduler, opts Options) (*Controller, error) {
	if len(sections) == 0 {
		return nil, ErrNoPages
	}
	if registry == nil {
		registry = NewRegistry()
	}
	c := &Controller{
		sections: sections,
		registry: registry,
		sched:    sched,
		opts:     opts.withDefaults(),
	}
	c.Resize(c.opts.InitialWidth)
	return c, nil
}

// SetPublisher attaches an event sink; nil detaches it
func (c *Controller) SetPublisher(p Publisher) {
	c.pub = p
}

// Registry returns the container registry the host mounts pages into
func (c *Controller) Registry() *Registry { return c.registry }

func (c *Controller) Len() int                   { return len(c.sections) }
func (c *Controller) CurrentIndex() int          { return c.index }
func (c *Controller) IsTransitioning() bool      { return c.locked }
func (c *Controller) Viewport() Viewport         { return c.viewport }
func (c *Controller) Section() domain.Section    { return c.sections[c.index] }
func (c *Controller) Sections() []domain.Section { return c.sections }

// CanRetreat is true whenever there is a previous page
func (c *Controller) CanRetreat() bool {
	return c.index > 0
}

// CanAdvance is true when there is a next page and the active page's content
// has been read to the end under the configured policy.
func (c *Controller) CanAdvance() bool {
	if c.index >= len(c.sections)-1 {
		return false
	}
	return c.ContentExhausted()
}

// ContentExhausted reports only the active container's state: no overflow, or
// scrolled to the end. It ignores the page position.
func (c *Controller) ContentExhausted() bool {
	return c.boundary().Exhausted(c.opts.Policy, c.opts.LenientThreshold)
}

// ScrollProgress is how far the active page has been scrolled, in [0,1]
func (c *Controller) ScrollProgress() float64 {
	return c.boundary().Fraction
}

// NavigateTo jumps to index. Out of range, redundant or locked requests are
// ignored and report false.
func (c *Controller) NavigateTo(index int) bool {
	if c.disposed || c.locked {
		return false
	}
	if index < 0 || index >= len(c.sections) || index == c.index {
		return false
	}

	from := c.index
	c.locked = true
	c.index = index
	c.cancelDebounce()

	if cont := c.registry.Container(index); cont != nil {
		cont.SetScrollTop(0)
	}
	c.lockTimer = c.sched.AfterFunc(c.opts.Cooldown, c.unlock)

	log.Printf("navigation: %s -> %s", c.sections[from].ID, c.sections[index].ID)
	c.publish(domain.SectionChangedEvent{From: from, To: index, ID: c.sections[index].ID})
	return true
}

// Next moves forward when the advance gate is open
func (c *Controller) Next() bool {
	if !c.CanAdvance() {
		return false
	}
	return c.NavigateTo(c.index + 1)
}

// Prev moves back when the retreat gate is open
func (c *Controller) Prev() bool {
	if !c.CanRetreat() {
		return false
	}
	return c.NavigateTo(c.index - 1)
}

// Dispose cancels pending tasks. The controller ignores all input afterwards.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.cancelDebounce()
	if c.lockTimer != nil {
		c.lockTimer.Stop()
		c.lockTimer = nil
	}
	c.touch = touchState{}
}

func (c *Controller) unlock() {
	c.lockTimer = nil
	if c.disposed {
		return
	}
	c.locked = false
	c.publish(domain.TransitionEndedEvent{Index: c.index})
}

func (c *Controller) step(dir int) bool {
	return c.NavigateTo(c.index + dir)
}

func (c *Controller) boundary() Boundary {
	return Measure(c.registry.Container(c.index), c.opts.Slack, c.opts.Tolerance)
}

func (c *Controller) isLast() bool {
	return c.index >= len(c.sections)-1
}

func (c *Controller) publish(e domain.DomainEvent) {
	if c.pub != nil {
		c.pub.Publish(e)
	}
}
