package engine

import (
	"container/heap"
	"time"
)

// TaskID identifies a scheduled task; the zero value never names a task
type TaskID uint64

type task struct {
	id    TaskID
	due   time.Time
	fn    func()
	index int
}

// taskQueue is a min-heap ordered by due time, then by scheduling order
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].id < q[j].id
	}
	return q[i].due.Before(q[j].due)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler is a deferred-task queue drained by the frame loop
// Tasks run on the goroutine calling RunDue, so they may touch loop-owned state without locking
type Scheduler struct {
	clock  TimeProvider
	queue  taskQueue
	byID   map[TaskID]*task
	nextID TaskID
}

// NewScheduler creates an empty scheduler reading time from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock: clock,
		byID:  make(map[TaskID]*task),
	}
}

// After schedules fn to run once d has elapsed and returns a handle for Cancel
func (s *Scheduler) After(d time.Duration, fn func()) TaskID {
	s.nextID++
	t := &task{
		id:  s.nextID,
		due: s.clock.Now().Add(d),
		fn:  fn,
	}
	heap.Push(&s.queue, t)
	s.byID[t.id] = t
	return t.id
}

// Cancel removes a pending task. Returns false if it already ran or never existed
func (s *Scheduler) Cancel(id TaskID) bool {
	t, ok := s.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, t.index)
	delete(s.byID, id)
	return true
}

// CancelAll cancels every handle in ids and returns how many were still pending
func (s *Scheduler) CancelAll(ids []TaskID) int {
	n := 0
	for _, id := range ids {
		if s.Cancel(id) {
			n++
		}
	}
	return n
}

// Pending reports whether the task is still waiting to run
func (s *Scheduler) Pending(id TaskID) bool {
	_, ok := s.byID[id]
	return ok
}

// Len returns the number of pending tasks
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// RunDue runs every task due at the current time, in due order, and returns the count run
// Tasks scheduled while draining wait for the next call, so a zero-delay reschedule cannot spin
func (s *Scheduler) RunDue() int {
	now := s.clock.Now()
	horizon := s.nextID
	ran := 0

	for len(s.queue) > 0 {
		t := s.queue[0]
		if t.due.After(now) || t.id > horizon {
			break
		}
		heap.Pop(&s.queue)
		delete(s.byID, t.id)
		t.fn()
		ran++
	}
	return ran
}
