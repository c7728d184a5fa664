package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Options configures a Source. Interval 0 fetches once.
type Options struct {
	Name     string
	Delay    time.Duration
	Interval time.Duration
	IsDemo   bool
}

type Source[T any] struct {
	opts  Options
	fetch FetchFunc[T]
	log   *zap.Logger

	mu      sync.RWMutex
	state   State[T]
	updates int
}

func NewSource[T any](opts Options, fetch FetchFunc[T], log *zap.Logger) *Source[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Source[T]{
		opts:  opts,
		fetch: fetch,
		log:   log.With(zap.String("source", opts.Name)),
		state: State[T]{Loading: true, IsDemo: opts.IsDemo},
	}
}

func (s *Source[T]) Name() string { return s.opts.Name }

// State returns a snapshot. Published values are never mutated in place.
func (s *Source[T]) State() State[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Updates counts completed polls.
func (s *Source[T]) Updates() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updates
}

// Start runs the first poll immediately and then on every interval. Only
// one poll per source is ever pending; ticks that land while a poll is
// still waiting are skipped.
func (s *Source[T]) Start(ctx context.Context, sched *Scheduler) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{name: s.opts.Name, sched: sched, cancel: cancel}

	job := cron.NewChain(cron.SkipIfStillRunning(sched.log)).Then(cron.FuncJob(func() {
		if !h.begin() {
			return
		}
		defer h.wg.Done()
		s.poll(ctx)
	}))

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		job.Run()
	}()

	if s.opts.Interval > 0 {
		h.mu.Lock()
		h.entry = sched.add(s.opts.Interval, job)
		h.scheduled = true
		h.mu.Unlock()
	}
	return h
}

func (s *Source[T]) poll(ctx context.Context) {
	if s.opts.Delay > 0 {
		t := time.NewTimer(s.opts.Delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
	}

	data, err := s.safeFetch(ctx)
	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++
	s.state.Loading = false
	if err != nil {
		s.log.Warn("fetch failed", zap.Error(err))
		msg := fmt.Sprintf("Failed to fetch %s", s.opts.Name)
		s.state.Error = &msg
		return
	}
	s.state.Data = &data
	s.state.Error = nil
}

func (s *Source[T]) safeFetch(ctx context.Context) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fetch panic: %v", r)
		}
	}()
	return s.fetch(ctx)
}

// Handle is the disposable subscription returned by Start.
type Handle struct {
	name   string
	sched  *Scheduler
	cancel context.CancelFunc

	mu        sync.Mutex
	stopped   bool
	scheduled bool
	entry     cron.EntryID
	wg        sync.WaitGroup
}

func (h *Handle) begin() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return false
	}
	h.wg.Add(1)
	return true
}

// Stop cancels a pending delay, unschedules the source and waits for an
// in-flight poll to return. The source's state is frozen afterwards. Safe
// to call more than once.
func (h *Handle) Stop() {
	h.mu.Lock()
	first := !h.stopped
	h.stopped = true
	scheduled, entry := h.scheduled, h.entry
	h.mu.Unlock()

	if first {
		h.cancel()
		if scheduled {
			h.sched.remove(entry)
		}
	}
	h.wg.Wait()
}

func (h *Handle) Name() string { return h.name }
