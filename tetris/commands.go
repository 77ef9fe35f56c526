package tetris

import (
	"sort"
	"time"
)

// Commands buffers deferred operations that run once the scheduler clock reaches
// their due time. Operations due at the same instant run in submission order.
type Commands struct {
	pending []deferredCommand
	seq     uint64
}

type deferredCommand struct {
	due time.Duration
	seq uint64
	fn  func()
}

func newCommands() *Commands {
	return &Commands{}
}

// push queues fn to run at due.
func (c *Commands) push(due time.Duration, fn func()) {
	cmd := deferredCommand{due: due, seq: c.seq, fn: fn}
	c.seq++

	i := sort.Search(len(c.pending), func(i int) bool {
		return c.pending[i].due > due
	})
	c.pending = append(c.pending, deferredCommand{})
	copy(c.pending[i+1:], c.pending[i:])
	c.pending[i] = cmd
}

// next returns the earliest due time.
func (c *Commands) next() (time.Duration, bool) {
	if len(c.pending) == 0 {
		return 0, false
	}
	return c.pending[0].due, true
}

// pop removes and returns the earliest command.
func (c *Commands) pop() func() {
	cmd := c.pending[0]
	c.pending[0] = deferredCommand{}
	c.pending = c.pending[1:]
	return cmd.fn
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.pending)
}

// Clear drops every queued command.
func (c *Commands) Clear() {
	clear(c.pending)
	c.pending = c.pending[:0]
}
