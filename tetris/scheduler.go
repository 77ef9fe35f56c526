package tetris

import (
	"context"
	"time"

	"github.com/kamstrup/intmap"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Now             time.Duration
	Interval        time.Duration
	Ticking         bool
	Paused          bool
	Pending         int
	TotalExecutions int64
	Jobs            []JobStats
}

// JobStats provides execution statistics for one kind of job.
type JobStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type jobKind uint8

const (
	jobTick jobKind = iota
	jobDeferred
	jobPosted
)

var jobNames = [...]string{"tick", "deferred", "posted"}

type jobStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler drives the game on a single goroutine. It keeps one mutable tick slot
// that fires every interval, a queue of deferred commands and a mailbox for work
// posted from other goroutines. Time is advanced explicitly with Advance, or from
// a real ticker with Run.
type Scheduler struct {
	now      time.Duration
	interval time.Duration
	elapsed  time.Duration
	tick     func()
	paused   bool
	commands *Commands
	mailbox  chan func()
	stats    *intmap.Map[jobKind, *jobStatsInternal]
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	s := &Scheduler{
		commands: newCommands(),
		mailbox:  make(chan func(), 64),
		stats:    intmap.New[jobKind, *jobStatsInternal](len(jobNames)),
	}
	for kind := range jobNames {
		s.stats.Put(jobKind(kind), &jobStatsInternal{minDuration: time.Duration(1<<63 - 1)})
	}
	return s
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Interval returns the tick period.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// SetTick replaces the tick action. The period in progress is kept, so the new
// action fires when the old one would have.
func (s *Scheduler) SetTick(fn func()) {
	s.tick = fn
}

// SetInterval changes the tick period. A different period restarts the count.
func (s *Scheduler) SetInterval(d time.Duration) {
	if d == s.interval {
		return
	}
	s.interval = d
	s.elapsed = 0
}

// Stop clears the tick slot. Deferred commands still run.
func (s *Scheduler) Stop() {
	s.tick = nil
	s.elapsed = 0
}

// Pause freezes the clock. Posted work still runs while paused.
func (s *Scheduler) Pause() {
	s.paused = true
}

// Resume lets the clock move again from where it stopped.
func (s *Scheduler) Resume() {
	s.paused = false
}

// Paused reports whether the clock is frozen.
func (s *Scheduler) Paused() bool {
	return s.paused
}

// Ticking reports whether a tick action is installed.
func (s *Scheduler) Ticking() bool {
	return s.tick != nil && s.interval > 0
}

// After queues fn to run once delay has elapsed on the scheduler clock.
func (s *Scheduler) After(delay time.Duration, fn func()) {
	s.commands.push(s.now+max(delay, 0), fn)
}

// ClearDeferred drops every queued command.
func (s *Scheduler) ClearDeferred() {
	s.commands.Clear()
}

// Pending returns the number of queued commands.
func (s *Scheduler) Pending() int {
	return s.commands.Len()
}

// Post hands fn to the scheduler goroutine. It is safe to call from any goroutine.
func (s *Scheduler) Post(fn func()) {
	s.mailbox <- fn
}

func (s *Scheduler) drain() {
	for {
		select {
		case fn := <-s.mailbox:
			s.run(jobPosted, fn)
		default:
			return
		}
	}
}

// Advance moves the clock forward by dt, running posted work first and then every
// tick and deferred command that falls due, in time order. A command due at the
// same instant as a tick runs first. A paused scheduler only runs posted work.
func (s *Scheduler) Advance(dt time.Duration) {
	s.drain()
	if s.paused {
		return
	}

	target := s.now + max(dt, 0)
	for {
		due, kind, ok := s.nextDue()
		if !ok || due > target {
			break
		}

		if s.Ticking() {
			s.elapsed += due - s.now
		}
		s.now = due

		switch kind {
		case jobTick:
			s.elapsed = 0
			s.run(jobTick, s.tick)
		case jobDeferred:
			s.run(jobDeferred, s.commands.pop())
		}
	}

	if s.Ticking() {
		s.elapsed += target - s.now
	}
	s.now = target
}

func (s *Scheduler) nextDue() (time.Duration, jobKind, bool) {
	cmdDue, hasCmd := s.commands.next()
	if s.Ticking() {
		tickDue := s.now + max(s.interval-s.elapsed, 0)
		if !hasCmd || tickDue < cmdDue {
			return tickDue, jobTick, true
		}
	}
	if hasCmd {
		return cmdDue, jobDeferred, true
	}
	return 0, 0, false
}

func (s *Scheduler) run(kind jobKind, fn func()) {
	start := time.Now()
	fn()
	duration := time.Since(start)

	stats, _ := s.stats.Get(kind)
	stats.executionCount++
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
}

// Run advances the scheduler from a real-time ticker with the given frame period
// and runs posted work as it arrives, until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-s.mailbox:
			s.run(jobPosted, fn)
		case now := <-ticker.C:
			s.Advance(now.Sub(lastTime))
			lastTime = now
		}
	}
}

// GetStats returns statistics about job execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		Now:      s.now,
		Interval: s.interval,
		Ticking:  s.Ticking(),
		Paused:   s.paused,
		Pending:  s.commands.Len(),
		Jobs:     make([]JobStats, len(jobNames)),
	}

	var totalExecs int64
	for kind, name := range jobNames {
		internal, _ := s.stats.Get(jobKind(kind))

		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Jobs[kind] = JobStats{
			Name:           name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
