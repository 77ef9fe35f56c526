package tetris

// Board dimensions.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Position is a (column, row) cell coordinate. Row 0 is the top of the board and
// rows grow downward. A falling piece may hold negative rows while above the board.
type Position struct {
	Column int
	Row    int
}

// Offset is a (column, row) delta relative to a tetromino pivot.
type Offset struct {
	Column int
	Row    int
}

// Add returns the position translated by the offset.
func (p Position) Add(o Offset) Position {
	return Position{Column: p.Column + o.Column, Row: p.Row + o.Row}
}

// InBounds reports whether the position lies on the visible board.
func (p Position) InBounds() bool {
	return p.Column >= 0 && p.Column < BoardWidth && p.Row >= 0 && p.Row < BoardHeight
}
