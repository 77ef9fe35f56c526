package tetris_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler(t *testing.T) {
	t.Run("tick fires every interval", func(t *testing.T) {
		s := tetris.NewScheduler()
		count := 0
		s.SetTick(func() { count++ })
		s.SetInterval(100 * time.Millisecond)

		s.Advance(99 * time.Millisecond)
		assert.Equal(t, 0, count)

		s.Advance(time.Millisecond)
		assert.Equal(t, 1, count)

		s.Advance(450 * time.Millisecond)
		assert.Equal(t, 5, count)
		assert.Equal(t, 550*time.Millisecond, s.Now())
	})

	t.Run("replacing the tick keeps the period", func(t *testing.T) {
		s := tetris.NewScheduler()
		var fired []string
		s.SetTick(func() { fired = append(fired, "old") })
		s.SetInterval(100 * time.Millisecond)

		s.Advance(60 * time.Millisecond)
		s.SetTick(func() { fired = append(fired, "new") })
		s.Advance(40 * time.Millisecond)

		assert.Equal(t, []string{"new"}, fired)
	})

	t.Run("changing the interval restarts the period", func(t *testing.T) {
		s := tetris.NewScheduler()
		count := 0
		s.SetTick(func() { count++ })
		s.SetInterval(100 * time.Millisecond)

		s.Advance(90 * time.Millisecond)
		s.SetInterval(50 * time.Millisecond)
		s.Advance(49 * time.Millisecond)
		assert.Equal(t, 0, count)

		s.Advance(time.Millisecond)
		assert.Equal(t, 1, count)
	})

	t.Run("tick may change the interval", func(t *testing.T) {
		s := tetris.NewScheduler()
		var at []time.Duration
		s.SetTick(func() {
			at = append(at, s.Now())
			s.SetInterval(50 * time.Millisecond)
		})
		s.SetInterval(100 * time.Millisecond)

		s.Advance(200 * time.Millisecond)
		assert.Equal(t, []time.Duration{100 * time.Millisecond, 150 * time.Millisecond, 200 * time.Millisecond}, at)
	})

	t.Run("stop prevents further ticks", func(t *testing.T) {
		s := tetris.NewScheduler()
		count := 0
		s.SetTick(func() {
			count++
			s.Stop()
		})
		s.SetInterval(10 * time.Millisecond)

		s.Advance(time.Second)
		assert.Equal(t, 1, count)
		assert.False(t, s.Ticking())
	})

	t.Run("deferred commands run in time order", func(t *testing.T) {
		s := tetris.NewScheduler()
		var order []string
		s.SetTick(func() { order = append(order, "tick") })
		s.SetInterval(100 * time.Millisecond)

		s.After(150*time.Millisecond, func() { order = append(order, "b") })
		s.After(100*time.Millisecond, func() { order = append(order, "a") })
		s.After(150*time.Millisecond, func() { order = append(order, "c") })
		assert.Equal(t, 3, s.Pending())

		s.Advance(200 * time.Millisecond)
		assert.Equal(t, []string{"a", "tick", "b", "c", "tick"}, order)
		assert.Zero(t, s.Pending())
	})

	t.Run("clear deferred", func(t *testing.T) {
		s := tetris.NewScheduler()
		ran := false
		s.After(time.Millisecond, func() { ran = true })
		s.ClearDeferred()

		s.Advance(time.Second)
		assert.False(t, ran)
	})

	t.Run("posted work runs before time advances", func(t *testing.T) {
		s := tetris.NewScheduler()
		var order []string
		s.SetTick(func() { order = append(order, "tick") })
		s.SetInterval(10 * time.Millisecond)

		s.Post(func() { order = append(order, "posted") })
		s.Advance(10 * time.Millisecond)

		assert.Equal(t, []string{"posted", "tick"}, order)
	})

	t.Run("paused clock only runs posted work", func(t *testing.T) {
		s := tetris.NewScheduler()
		ticks, deferred, posted := 0, false, false
		s.SetTick(func() { ticks++ })
		s.SetInterval(10 * time.Millisecond)
		s.After(5*time.Millisecond, func() { deferred = true })

		s.Pause()
		s.Post(func() { posted = true })
		s.Advance(time.Second)

		assert.True(t, posted)
		assert.Zero(t, ticks)
		assert.False(t, deferred)
		assert.Zero(t, s.Now())
		assert.True(t, s.GetStats().Paused)

		s.Resume()
		s.Advance(10 * time.Millisecond)
		assert.Equal(t, 1, ticks)
		assert.True(t, deferred)
	})

	t.Run("stats", func(t *testing.T) {
		s := tetris.NewScheduler()
		s.SetTick(func() {})
		s.SetInterval(10 * time.Millisecond)
		s.After(5*time.Millisecond, func() {})

		s.Advance(30 * time.Millisecond)

		stats := s.GetStats()
		require.Len(t, stats.Jobs, 3)
		assert.Equal(t, "tick", stats.Jobs[0].Name)
		assert.Equal(t, int64(3), stats.Jobs[0].ExecutionCount)
		assert.Equal(t, int64(1), stats.Jobs[1].ExecutionCount)
		assert.Equal(t, int64(4), stats.TotalExecutions)
		assert.Equal(t, 10*time.Millisecond, stats.Interval)
		assert.True(t, stats.Ticking)
	})
}

func TestSchedulerRun(t *testing.T) {
	s := tetris.NewScheduler()

	var mu sync.Mutex
	ticks := 0
	s.SetTick(func() {
		mu.Lock()
		ticks++
		mu.Unlock()
	})
	s.SetInterval(time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() {
		s.Run(ctx, time.Millisecond)
		done <- true
	}()

	posted := make(chan bool)
	s.Post(func() { posted <- true })

	select {
	case <-posted:
	case <-time.After(time.Second):
		t.Fatal("posted work did not run")
	}

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Greater(t, ticks, 0)
}
