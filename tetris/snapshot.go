package tetris

// State is the phase of the tick state machine.
type State uint8

const (
	StateFalling State = iota
	StateClearing
	StateGameOver
)

var stateNames = [...]string{"falling", "clearing", "game-over"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Preview is the next piece normalized to a small display grid whose top-left
// occupied cell sits at (0, 0).
type Preview struct {
	Type    BlockType
	Cells   [4]Position
	Columns int
	Rows    int
}

// NewPreview normalizes a piece's current rotation for display.
func NewPreview(t Tetromino) Preview {
	offsets := t.Type.Offsets(t.Rotation)

	minColumn, minRow := offsets[0].Column, offsets[0].Row
	for _, o := range offsets[1:] {
		minColumn = min(minColumn, o.Column)
		minRow = min(minRow, o.Row)
	}

	preview := Preview{Type: t.Type.BlockType}
	for i, o := range offsets {
		p := Position{Column: o.Column - minColumn, Row: o.Row - minRow}
		preview.Cells[i] = p
		preview.Columns = max(preview.Columns, p.Column+1)
		preview.Rows = max(preview.Rows, p.Row+1)
	}
	return preview
}

// Snapshot is a read-only copy of everything a renderer needs. Blocks are copies
// and may be kept or modified freely. Level is one-based for display and Score is
// the floor of the internal total.
type Snapshot struct {
	Grid     [BoardHeight][BoardWidth]*Block
	Falling  []Block
	Next     *Preview
	Level    int
	Lines    int
	Score    int
	State    State
	SoftDrop bool
}

// GameOver reports whether the game has ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// MatchResult is the final tally of a game.
type MatchResult struct {
	Level int `json:"level"`
	Lines int `json:"lines"`
	Score int `json:"score"`
}
