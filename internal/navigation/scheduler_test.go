package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestManualSchedulerRunsInDueOrder(t *testing.T) {
	s := NewManualScheduler(epoch)
	var order []string
	s.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	s.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, epoch.Add(20*time.Millisecond), s.Now())

	s.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestManualSchedulerStop(t *testing.T) {
	s := NewManualScheduler(epoch)
	ran := false
	timer := s.AfterFunc(time.Millisecond, func() { ran = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	s.Advance(time.Second)
	assert.False(t, ran)
}

func TestManualSchedulerRunsChainedTasks(t *testing.T) {
	s := NewManualScheduler(epoch)
	var at []time.Duration
	s.AfterFunc(10*time.Millisecond, func() {
		at = append(at, s.Now().Sub(epoch))
		s.AfterFunc(10*time.Millisecond, func() { at = append(at, s.Now().Sub(epoch)) })
	})

	s.Advance(25 * time.Millisecond)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, at)
}

func TestLoopSchedulerPostsTaskMsg(t *testing.T) {
	s := NewLoopScheduler()
	msgs := make(chan any, 1)
	s.Bind(func(m any) { msgs <- m })

	ran := false
	s.AfterFunc(time.Millisecond, func() { ran = true })

	select {
	case m := <-msgs:
		task, ok := m.(TaskMsg)
		require.True(t, ok)
		assert.False(t, ran, "task runs only on the loop")
		task.Run()
		assert.True(t, ran)
	case <-time.After(time.Second):
		t.Fatal("task never posted")
	}
}

func TestLoopSchedulerStopAfterPostSkipsRun(t *testing.T) {
	s := NewLoopScheduler()
	msgs := make(chan any, 1)
	s.Bind(func(m any) { msgs <- m })

	ran := false
	timer := s.AfterFunc(time.Millisecond, func() { ran = true })

	select {
	case m := <-msgs:
		assert.True(t, timer.Stop())
		m.(TaskMsg).Run()
		assert.False(t, ran)
	case <-time.After(time.Second):
		t.Fatal("task never posted")
	}
}

func TestLoopSchedulerUnboundDropsTask(t *testing.T) {
	s := NewLoopScheduler()

	var ran atomic.Bool
	timer := s.AfterFunc(time.Millisecond, func() { ran.Store(true) })

	time.Sleep(50 * time.Millisecond)
	assert.False(t, ran.Load(), "task must never run off the loop")
	assert.False(t, timer.Stop(), "dropped task counts as done")
}
