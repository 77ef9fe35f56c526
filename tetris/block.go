package tetris

// BlockType tags a tetromino shape. It doubles as the color key for renderers.
type BlockType uint8

const (
	BlockI BlockType = iota
	BlockJ
	BlockL
	BlockO
	BlockS
	BlockZ
	BlockT
)

var blockTypeNames = [...]string{"I", "J", "L", "O", "S", "Z", "T"}

func (t BlockType) String() string {
	if int(t) < len(blockTypeNames) {
		return blockTypeNames[t]
	}
	return "?"
}

// BlockID identifies a block for the lifetime of a game.
type BlockID int64

// Block is a single cell of a tetromino. While the piece falls it is owned by the
// Controller; once frozen it belongs to the Board. Removed is set while the row it
// sits in waits to be collapsed.
type Block struct {
	ID       BlockID
	Type     BlockType
	Position Position
	Removed  bool
}
