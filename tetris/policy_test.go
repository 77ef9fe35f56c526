package tetris_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
)

func TestPolicyLevel(t *testing.T) {
	policy := tetris.DefaultPolicy()

	tests := []struct {
		points int
		want   int
	}{
		{0, 0},
		{1, 0},
		{20, 0},
		{21, 1},
		{40, 1},
		{41, 2},
		{400, 19},
		{401, 20},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("points=%d", tt.points), func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Level(tt.points))
		})
	}
}

func TestPolicyScoring(t *testing.T) {
	policy := tetris.DefaultPolicy()

	assert.InDelta(t, 100.0, policy.Scale(policy.LineScore(1), 0), 1e-9)
	assert.InDelta(t, 960.0, policy.Scale(policy.LineScore(4), 2), 1e-9)
	assert.InDelta(t, 390.0, policy.Scale(policy.LineScore(2), 3), 1e-9)
	assert.InDelta(t, 1.5, policy.Scale(policy.SoftDropScore, 5), 1e-9)

	assert.Equal(t, 0, policy.LineScore(0))
	assert.Equal(t, 500, policy.LineScore(3))
	assert.Equal(t, 800, policy.LineScore(5), "more rows than the table saturates")
}

func TestPolicyInterval(t *testing.T) {
	policy := tetris.DefaultPolicy()

	assert.Equal(t, time.Second, policy.Interval(0, false))
	assert.Equal(t, 60*time.Millisecond, policy.Interval(19, false))
	assert.Equal(t, 50*time.Millisecond, policy.Interval(20, false))

	for level := 0; level < 25; level++ {
		assert.Equal(t, policy.AcceleratedInterval, policy.Interval(level, true), "level %d", level)
	}
}
