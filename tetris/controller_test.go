package tetris_test

import (
	"testing"

	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Catalog indexes for SequenceSource draws.
const (
	drawI = iota
	drawJ
	drawL
	drawO
	drawS
	drawZ
	drawT
)

type cueRecorder struct {
	cues []tetris.Cue
}

func (r *cueRecorder) Play(cue tetris.Cue) {
	r.cues = append(r.cues, cue)
}

func (r *cueRecorder) count(cue tetris.Cue) int {
	n := 0
	for _, c := range r.cues {
		if c == cue {
			n++
		}
	}
	return n
}

func newTestController(board *tetris.Board, draws ...int) (*tetris.Controller, *cueRecorder) {
	sound := &cueRecorder{}
	return tetris.NewController(board, tetris.NewSequenceSource(draws...), sound, false), sound
}

func positionsOf(blocks []*tetris.Block) []tetris.Position {
	out := make([]tetris.Position, len(blocks))
	for i, b := range blocks {
		out[i] = b.Position
	}
	return out
}

func TestSpawn(t *testing.T) {
	ctrl, _ := newTestController(tetris.NewBoard(), drawO, drawI, drawT)

	piece, ok := ctrl.Spawn()
	require.True(t, ok)
	assert.Same(t, tetris.TypeO, piece.Type)
	assert.Equal(t, tetris.SpawnPosition, piece.Pivot)
	assert.Zero(t, piece.Rotation)

	next, ok := ctrl.Next()
	require.True(t, ok)
	assert.Same(t, tetris.TypeI, next.Type, "preview is drawn one spawn ahead")

	blocks := ctrl.Blocks()
	require.Len(t, blocks, 4)
	for i, b := range blocks {
		assert.Equal(t, tetris.BlockID(i), b.ID)
		assert.Equal(t, tetris.BlockO, b.Type)
	}
	assert.ElementsMatch(t, piece.Positions(), positionsOf(blocks))

	ctrl.Lock()
	piece, ok = ctrl.Spawn()
	require.True(t, ok)
	assert.Same(t, tetris.TypeI, piece.Type, "shown preview becomes the next piece")

	next, _ = ctrl.Next()
	assert.Same(t, tetris.TypeT, next.Type)
	assert.Equal(t, tetris.BlockID(4), ctrl.Blocks()[0].ID, "new pieces allocate fresh ids")
}

func TestSpawnRandomRotation(t *testing.T) {
	board := tetris.NewBoard()
	ctrl := tetris.NewController(board, tetris.NewSequenceSource(drawT, 2, drawJ, 3), nil, true)

	piece, ok := ctrl.Spawn()
	require.True(t, ok)
	assert.Same(t, tetris.TypeT, piece.Type)
	assert.Equal(t, 2, piece.Rotation)

	next, _ := ctrl.Next()
	assert.Same(t, tetris.TypeJ, next.Type)
	assert.Equal(t, 3, next.Rotation)
}

func TestSpawnFailure(t *testing.T) {
	ctrl, _ := newTestController(loadBoard(t, "top-blocked"), drawO, drawI)

	_, ok := ctrl.Spawn()
	assert.False(t, ok)

	_, active := ctrl.Active()
	assert.False(t, active)
	assert.Empty(t, ctrl.Blocks())

	next, ok := ctrl.Next()
	require.True(t, ok)
	assert.Same(t, tetris.TypeO, next.Type, "the piece that did not fit stays in the preview")
}

func TestMoveLeftRightInverse(t *testing.T) {
	for _, draw := range []int{drawI, drawJ, drawL, drawO, drawS, drawZ, drawT} {
		typ := tetris.Catalog[draw]
		t.Run(typ.BlockType.String(), func(t *testing.T) {
			ctrl, sound := newTestController(tetris.NewBoard(), draw)
			_, ok := ctrl.Spawn()
			require.True(t, ok)

			for ctrl.MoveDown() {
				start, _ := ctrl.Active()
				if start.Pivot.Row >= 5 {
					break
				}
			}

			start, _ := ctrl.Active()
			if ctrl.MoveLeft() {
				require.True(t, ctrl.MoveRight())
			}
			got, _ := ctrl.Active()
			assert.Equal(t, start, got)

			if ctrl.MoveRight() {
				require.True(t, ctrl.MoveLeft())
			}
			got, _ = ctrl.Active()
			assert.Equal(t, start, got)
			assert.Empty(t, sound.cues)
		})
	}
}

func TestMoveRejectedAtWall(t *testing.T) {
	ctrl, sound := newTestController(tetris.NewBoard(), drawO)
	_, ok := ctrl.Spawn()
	require.True(t, ok)

	ids := []tetris.BlockID{}
	for _, b := range ctrl.Blocks() {
		ids = append(ids, b.ID)
	}

	moves := 0
	for ctrl.MoveLeft() {
		moves++
	}
	assert.Equal(t, 4, moves)
	assert.Equal(t, []tetris.Cue{tetris.CueIllegalMove}, sound.cues)

	piece, _ := ctrl.Active()
	assert.Equal(t, 0, piece.Pivot.Column)
	assert.False(t, ctrl.MoveLeft())
	piece2, _ := ctrl.Active()
	assert.Equal(t, piece, piece2, "rejected moves leave the piece untouched")

	for i, b := range ctrl.Blocks() {
		assert.Equal(t, ids[i], b.ID, "block identities persist across moves")
	}
}

func TestRotateCyclic(t *testing.T) {
	for _, draw := range []int{drawI, drawJ, drawL, drawO, drawS, drawZ, drawT} {
		typ := tetris.Catalog[draw]
		t.Run(typ.BlockType.String(), func(t *testing.T) {
			ctrl, _ := newTestController(tetris.NewBoard(), draw)
			_, ok := ctrl.Spawn()
			require.True(t, ok)
			for i := 0; i < 5; i++ {
				require.True(t, ctrl.MoveDown())
			}

			start, _ := ctrl.Active()
			for i := 0; i < typ.Rotations(); i++ {
				require.True(t, ctrl.Rotate())
			}
			got, _ := ctrl.Active()
			assert.Equal(t, start, got)
			assert.ElementsMatch(t, start.Positions(), positionsOf(ctrl.Blocks()))
		})
	}
}

func TestRotateWithoutWallKick(t *testing.T) {
	ctrl, sound := newTestController(tetris.NewBoard(), drawI)
	_, ok := ctrl.Spawn()
	require.True(t, ok)

	require.True(t, ctrl.Rotate())
	for ctrl.MoveLeft() {
	}
	sound.cues = nil

	piece, _ := ctrl.Active()
	require.Equal(t, 0, piece.Pivot.Column)

	assert.False(t, ctrl.Rotate())
	assert.Equal(t, []tetris.Cue{tetris.CueIllegalMove}, sound.cues)

	got, _ := ctrl.Active()
	assert.Equal(t, piece, got)
}

func TestMoveDownStopsAtFloor(t *testing.T) {
	ctrl, sound := newTestController(tetris.NewBoard(), drawO)
	_, ok := ctrl.Spawn()
	require.True(t, ok)

	drops := 0
	for ctrl.MoveDown() {
		drops++
	}
	assert.Equal(t, 18, drops)

	piece, _ := ctrl.Active()
	assert.Equal(t, 18, piece.Pivot.Row)
	assert.Empty(t, sound.cues, "failing to descend is not an illegal move")

	blocks := ctrl.Lock()
	assert.Len(t, blocks, 4)
	_, active := ctrl.Active()
	assert.False(t, active)
	assert.False(t, ctrl.MoveDown())
	assert.False(t, ctrl.MoveLeft())
}
