package navigation

import (
	"log"
	"sort"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Timer is a handle to a scheduled task
type Timer interface {
	// Stop prevents the task from running. It reports whether the call
	// stopped the task, false if it already ran or was stopped.
	Stop() bool
}

// Scheduler provides the clock and deferred execution the controller uses for
// its transition lock and touch debounce.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// LoopScheduler runs deferred tasks on the UI event loop. Timers fire on their
// own goroutine and hand a TaskMsg to the bound sender; the loop calls
// TaskMsg.Run so the task executes alongside every other handler.
type LoopScheduler struct {
	mu   sync.RWMutex
	send func(any)
}

// NewLoopScheduler creates a scheduler with no sender bound yet
func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{}
}

// Bind sets the function used to post TaskMsg values, typically
// (*tea.Program).Send. Tasks that come due before Bind are dropped.
func (s *LoopScheduler) Bind(send func(any)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

func (s *LoopScheduler) Now() time.Time { return time.Now() }

func (s *LoopScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &loopTimer{fn: f}
	t.timer = time.AfterFunc(d, func() {
		if t.stopped.Load() {
			return
		}
		s.mu.RLock()
		send := s.send
		s.mu.RUnlock()
		if send == nil {
			t.stopped.Store(true)
			log.Printf("navigation: no event loop bound, dropping task due after %v", d)
			return
		}
		send(TaskMsg{t: t})
	})
	return t
}

type loopTimer struct {
	timer   *time.Timer
	fn      func()
	stopped atomic.Bool
}

func (t *loopTimer) Stop() bool {
	t.timer.Stop()
	return !t.stopped.Swap(true)
}

// TaskMsg carries a due task to the event loop
type TaskMsg struct {
	t *loopTimer
}

// Run executes the task unless it was stopped after being posted
func (m TaskMsg) Run() {
	if m.t == nil || m.t.stopped.Swap(true) {
		return
	}
	m.t.fn()
}

// ManualScheduler is a simulated clock. Tasks only run from Advance.
type ManualScheduler struct {
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	due     time.Time
	seq     uint64
	fn      func()
	stopped bool
}

func (t *manualTask) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// NewManualScheduler creates a simulated clock starting at start
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

func (s *ManualScheduler) Now() time.Time { return s.now }

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.seq++
	t := &manualTask{due: s.now.Add(d), seq: s.seq, fn: f}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by d, running every task that comes due in
// order of due time. Tasks scheduled by a running task are honoured if they
// fall inside the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now.Add(d)
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		next.stopped = true
		next.fn()
	}
	s.now = target
}

// Pending returns the number of scheduled tasks that have not run or been stopped
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (s *ManualScheduler) nextDue(limit time.Time) *manualTask {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.tasks = live
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due.Equal(s.tasks[j].due) {
			return s.tasks[i].seq < s.tasks[j].seq
		}
		return s.tasks[i].due.Before(s.tasks[j].due)
	})
	if len(s.tasks) == 0 || s.tasks[0].due.After(limit) {
		return nil
	}
	return s.tasks[0]
}
