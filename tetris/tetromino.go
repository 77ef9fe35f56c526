package tetris

// SpawnPosition is where every new piece places its pivot.
var SpawnPosition = Position{Column: 4, Row: 0}

// Tetromino is the falling piece. It is a value: moves produce a new Tetromino that
// is validated before it replaces the current one.
type Tetromino struct {
	Type     *TetrominoType
	Pivot    Position
	Rotation int
}

// Positions derives the four absolute cell positions from type, rotation and pivot.
func (t Tetromino) Positions() [4]Position {
	var out [4]Position
	for i, o := range t.Type.Offsets(t.Rotation) {
		out[i] = t.Pivot.Add(o)
	}
	return out
}

// Translated returns the piece moved by the given column and row deltas.
func (t Tetromino) Translated(columns, rows int) Tetromino {
	t.Pivot = Position{Column: t.Pivot.Column + columns, Row: t.Pivot.Row + rows}
	return t
}

// Rotated returns the piece advanced to its next rotation state.
func (t Tetromino) Rotated() Tetromino {
	t.Rotation = (t.Rotation + 1) % t.Type.Rotations()
	return t
}
