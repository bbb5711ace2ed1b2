package navigation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/domain"
)

func TestNewControllerRejectsEmptySections(t *testing.T) {
	_, err := NewController(nil, nil, NewManualScheduler(epoch), DefaultOptions())
	assert.ErrorIs(t, err, ErrNoPages)
}

func TestNavigateToLocksForExactlyTheCooldown(t *testing.T) {
	c, sched := newTestController(t, 7)

	require.True(t, c.NavigateTo(3))
	assert.Equal(t, 3, c.CurrentIndex())
	assert.True(t, c.IsTransitioning())

	sched.Advance(799 * time.Millisecond)
	assert.True(t, c.IsTransitioning())

	sched.Advance(time.Millisecond)
	assert.False(t, c.IsTransitioning())
	assert.Equal(t, 3, c.CurrentIndex())
}

func TestNavigateToCurrentIndexIsNoop(t *testing.T) {
	c, sched := newTestController(t, 7)

	assert.False(t, c.NavigateTo(0))
	assert.False(t, c.IsTransitioning())
	assert.Equal(t, 0, sched.Pending())

	settleOn(t, c, sched, 2)
	assert.False(t, c.NavigateTo(2))
	assert.False(t, c.IsTransitioning())
	assert.Equal(t, 2, c.CurrentIndex())
}

func TestNavigateToIgnoresOutOfRange(t *testing.T) {
	c, _ := newTestController(t, 3)

	assert.False(t, c.NavigateTo(-1))
	assert.False(t, c.NavigateTo(3))
	assert.Equal(t, 0, c.CurrentIndex())
	assert.False(t, c.IsTransitioning())
}

func TestSecondNavigateWithinLockIsDropped(t *testing.T) {
	c, sched := newTestController(t, 7)

	require.True(t, c.NavigateTo(4))
	sched.Advance(400 * time.Millisecond)
	assert.False(t, c.NavigateTo(1))
	assert.Equal(t, 4, c.CurrentIndex())

	sched.Advance(400 * time.Millisecond)
	assert.True(t, c.NavigateTo(1))
	assert.Equal(t, 1, c.CurrentIndex())
}

func TestNavigateToResetsTargetScroll(t *testing.T) {
	c, _ := newTestController(t, 3)
	target := &fakeContainer{top: 300, height: 1000, client: 500}
	c.Registry().Register(1, target)

	require.True(t, c.NavigateTo(1))
	assert.Equal(t, 0, target.top)
	assert.Equal(t, 1, target.resets)
}

func TestNavigateToPublishesEvents(t *testing.T) {
	c, sched := newTestController(t, 3)
	pub := &recordingPublisher{}
	c.SetPublisher(pub)

	require.True(t, c.NavigateTo(2))
	sched.Advance(time.Second)

	changed := pub.ofType(domain.EventSectionChanged)
	require.Len(t, changed, 1)
	assert.Equal(t, domain.SectionChangedEvent{From: 0, To: 2, ID: "s2"}, changed[0])

	ended := pub.ofType(domain.EventTransitionEnded)
	require.Len(t, ended, 1)
	assert.Equal(t, domain.TransitionEndedEvent{Index: 2}, ended[0])
}

func TestGateFlagsAtEnds(t *testing.T) {
	c, sched := newTestController(t, 4)

	assert.False(t, c.CanRetreat())
	assert.True(t, c.CanAdvance())
	assert.False(t, c.HandleWheel(-100))
	assert.False(t, c.HandleKey(KeyArrowUp))
	assert.False(t, c.Prev())
	assert.Equal(t, 0, c.CurrentIndex())

	settleOn(t, c, sched, 3)
	assert.True(t, c.CanRetreat())
	assert.False(t, c.CanAdvance())
	assert.True(t, c.ContentExhausted(), "no container means nothing left to read")

	scrollable := &fakeContainer{top: 0, height: 1000, client: 500}
	c.Registry().Register(3, scrollable)
	assert.False(t, c.ContentExhausted())
	scrollable.top = 500
	assert.True(t, c.ContentExhausted())

	assert.False(t, c.HandleWheel(100))
	assert.False(t, c.HandleKey(KeyArrowRight))
	assert.False(t, c.Next())
	assert.Equal(t, 3, c.CurrentIndex())
}

func TestCanRetreatIgnoresScrollState(t *testing.T) {
	c, sched := newTestController(t, 4)
	settleOn(t, c, sched, 2)

	c.Registry().Register(2, &fakeContainer{top: 250, height: 1000, client: 500})
	assert.True(t, c.CanRetreat())
	assert.True(t, c.Prev())
	assert.Equal(t, 1, c.CurrentIndex())
}

func TestNextRequiresExhaustedContent(t *testing.T) {
	c, _ := newTestController(t, 4)
	cont := &fakeContainer{top: 100, height: 1000, client: 500}
	c.Registry().Register(0, cont)

	assert.False(t, c.Next())
	cont.top = 495
	assert.True(t, c.Next())
	assert.Equal(t, 1, c.CurrentIndex())
}

func TestLenientPolicyAcceptsEightyFivePercent(t *testing.T) {
	opts := DefaultOptions()
	opts.Policy = PolicyLenient
	c, err := NewController(testSections(3), NewRegistry(), NewManualScheduler(epoch), opts)
	require.NoError(t, err)

	cont := &fakeContainer{top: 300, height: 1000, client: 500}
	c.Registry().Register(0, cont)
	assert.False(t, c.CanAdvance(), "only 80 percent scrolled")

	cont.top = 350
	assert.InDelta(t, 0.85, c.ScrollProgress(), 1e-9)
	assert.True(t, c.CanAdvance())
}

func TestScrollProgress(t *testing.T) {
	c, _ := newTestController(t, 2)
	assert.Equal(t, 1.0, c.ScrollProgress())

	cont := &fakeContainer{top: 0, height: 1000, client: 250}
	c.Registry().Register(0, cont)
	assert.InDelta(t, 0.25, c.ScrollProgress(), 1e-9)

	cont.top = 750
	assert.InDelta(t, 1.0, c.ScrollProgress(), 1e-9)
}

func TestDisposeCancelsTimersAndIgnoresInput(t *testing.T) {
	c, sched := newTestController(t, 4)
	require.True(t, c.NavigateTo(1))
	c.Dispose()

	assert.Equal(t, 0, sched.Pending())
	sched.Advance(time.Second)
	assert.False(t, c.NavigateTo(2))
	assert.False(t, c.HandleWheel(10))
	c.TouchStart(0, 0)
	assert.False(t, c.TouchEnd(-100, 0))
	assert.Equal(t, 1, c.CurrentIndex())
}

func TestIndexStaysInRangeUnderRandomInput(t *testing.T) {
	c, sched := newTestController(t, 7)
	rng := rand.New(rand.NewSource(42))
	containers := make([]*fakeContainer, 7)
	for i := range containers {
		containers[i] = &fakeContainer{height: 400 + rng.Intn(1200), client: 500}
		c.Registry().Register(i, containers[i])
	}

	for i := 0; i < 5000; i++ {
		cont := containers[c.CurrentIndex()]
		switch rng.Intn(8) {
		case 0:
			c.HandleWheel(float64(rng.Intn(200) - 100))
		case 1:
			c.HandleKey(Key(rng.Intn(5)))
		case 2:
			c.TouchStart(float64(rng.Intn(800)), float64(rng.Intn(800)))
		case 3:
			c.TouchMove(float64(rng.Intn(800)), float64(rng.Intn(800)))
		case 4:
			c.TouchEnd(float64(rng.Intn(800)), float64(rng.Intn(800)))
		case 5:
			c.NavigateTo(rng.Intn(11) - 2)
		case 6:
			if cont.height > 0 {
				cont.top = rng.Intn(cont.height)
			}
		case 7:
			sched.Advance(time.Duration(rng.Intn(400)) * time.Millisecond)
		}
		require.GreaterOrEqual(t, c.CurrentIndex(), 0)
		require.Less(t, c.CurrentIndex(), c.Len())
	}
}
