package navigation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"folio/internal/domain"
)

type fakeContainer struct {
	top, height, client int
	resets              int
}

func (f *fakeContainer) ScrollTop() int    { return f.top }
func (f *fakeContainer) ScrollHeight() int { return f.height }
func (f *fakeContainer) ClientHeight() int { return f.client }
func (f *fakeContainer) SetScrollTop(top int) {
	f.top = top
	f.resets++
}

type recordingPublisher struct {
	events []domain.DomainEvent
}

func (r *recordingPublisher) Publish(e domain.DomainEvent) {
	r.events = append(r.events, e)
}

func (r *recordingPublisher) ofType(t domain.EventType) []domain.DomainEvent {
	var out []domain.DomainEvent
	for _, e := range r.events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testSections(n int) []domain.Section {
	out := make([]domain.Section, n)
	for i := range out {
		out[i] = domain.Section{ID: fmt.Sprintf("s%d", i), Title: fmt.Sprintf("Section %d", i)}
	}
	return out
}

func newTestController(t *testing.T, n int) (*Controller, *ManualScheduler) {
	t.Helper()
	sched := NewManualScheduler(epoch)
	c, err := NewController(testSections(n), NewRegistry(), sched, DefaultOptions())
	require.NoError(t, err)
	return c, sched
}

// settleOn navigates to index and waits out the cooldown
func settleOn(t *testing.T, c *Controller, sched *ManualScheduler, index int) {
	t.Helper()
	require.True(t, c.NavigateTo(index))
	sched.Advance(DefaultOptions().Cooldown)
	require.False(t, c.IsTransitioning())
}
