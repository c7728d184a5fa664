package feed

import (
	"time"

	"github.com/robfig/cron/v3"
)

// every is a constant-delay schedule. cron.Every rounds to whole seconds,
// which is too coarse for sub-second refreshes.
type every time.Duration

func (e every) Next(t time.Time) time.Time { return t.Add(time.Duration(e)) }

// Scheduler owns the cron instance shared by every source.
type Scheduler struct {
	c   *cron.Cron
	log cron.Logger
}

func NewScheduler(logger cron.Logger) *Scheduler {
	if logger == nil {
		logger = cron.DiscardLogger
	}
	return &Scheduler{
		c:   cron.New(cron.WithLogger(logger)),
		log: logger,
	}
}

func (s *Scheduler) Start() { s.c.Start() }

// Stop halts the scheduler and waits for running jobs to return.
func (s *Scheduler) Stop() { <-s.c.Stop().Done() }

func (s *Scheduler) add(interval time.Duration, job cron.Job) cron.EntryID {
	return s.c.Schedule(every(interval), job)
}

func (s *Scheduler) remove(id cron.EntryID) { s.c.Remove(id) }
