// Package ticker runs the per-habit refresh timers of the live view.
package ticker

import (
	"sync"
	"time"
)

const DefaultInterval = time.Second

// Handle controls one running timer.
type Handle struct {
	id    string
	sched *Scheduler
	stop  chan struct{}
	done  chan struct{}
	once  sync.Once
}

func (h *Handle) ID() string { return h.id }

// Stop cancels the timer, removes it from its scheduler and waits for its
// goroutine to exit. It is safe to call more than once.
func (h *Handle) Stop() {
	h.once.Do(func() { close(h.stop) })
	<-h.done
	h.sched.forget(h)
}

// Scheduler owns the timers keyed by habit id.
type Scheduler struct {
	interval time.Duration

	mu    sync.Mutex
	tasks map[string]*Handle
}

func New(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{interval: interval, tasks: map[string]*Handle{}}
}

// Start calls fn every interval until the timer for id is cancelled. A
// timer already running for id is stopped first.
func (s *Scheduler) Start(id string, fn func(now time.Time)) *Handle {
	h := &Handle{
		id:    id,
		sched: s,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}

	s.mu.Lock()
	prev := s.tasks[id]
	s.tasks[id] = h
	s.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}

	go func() {
		defer close(h.done)
		t := time.NewTicker(s.interval)
		defer t.Stop()
		for {
			select {
			case <-h.stop:
				return
			case now := <-t.C:
				// a stop that raced the tick wins
				select {
				case <-h.stop:
					return
				default:
				}
				fn(now)
			}
		}
	}()
	return h
}

// Cancel stops the timer for id. It reports whether one was running.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	h, ok := s.tasks[id]
	delete(s.tasks, id)
	s.mu.Unlock()

	if ok {
		h.Stop()
	}
	return ok
}

// forget drops h unless id has since been taken by a newer handle.
func (s *Scheduler) forget(h *Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tasks[h.id] == h {
		delete(s.tasks, h.id)
	}
}

func (s *Scheduler) Running(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tasks[id]
	return ok
}

func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Stop cancels every timer and waits for all of them to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	tasks := s.tasks
	s.tasks = map[string]*Handle{}
	s.mu.Unlock()

	for _, h := range tasks {
		h.Stop()
	}
}
