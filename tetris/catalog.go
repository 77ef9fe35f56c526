package tetris

// TetrominoType is an immutable shape definition. Each rotation state lists the
// four cell offsets relative to the pivot. Entries are shared by pointer and must
// never be modified.
type TetrominoType struct {
	BlockType    BlockType
	ShapeOffsets [][4]Offset
}

// Rotations returns the number of distinct rotation states.
func (t *TetrominoType) Rotations() int {
	return len(t.ShapeOffsets)
}

// Offsets returns the offsets for a rotation index, wrapping modulo the state count.
func (t *TetrominoType) Offsets(rotation int) [4]Offset {
	n := len(t.ShapeOffsets)
	return t.ShapeOffsets[((rotation%n)+n)%n]
}

var (
	TypeI = &TetrominoType{
		BlockType: BlockI,
		ShapeOffsets: [][4]Offset{
			{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
			{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		},
	}
	TypeJ = &TetrominoType{
		BlockType: BlockJ,
		ShapeOffsets: [][4]Offset{
			{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
			{{1, -1}, {0, -1}, {0, 0}, {0, 1}},
			{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
			{{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
		},
	}
	TypeL = &TetrominoType{
		BlockType: BlockL,
		ShapeOffsets: [][4]Offset{
			{{1, -1}, {-1, 0}, {0, 0}, {1, 0}},
			{{0, -1}, {0, 0}, {0, 1}, {1, 1}},
			{{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
			{{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
		},
	}
	TypeO = &TetrominoType{
		BlockType: BlockO,
		ShapeOffsets: [][4]Offset{
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		},
	}
	TypeS = &TetrominoType{
		BlockType: BlockS,
		ShapeOffsets: [][4]Offset{
			{{0, -1}, {1, -1}, {-1, 0}, {0, 0}},
			{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		},
	}
	TypeZ = &TetrominoType{
		BlockType: BlockZ,
		ShapeOffsets: [][4]Offset{
			{{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
			{{1, -1}, {0, 0}, {1, 0}, {0, 1}},
		},
	}
	TypeT = &TetrominoType{
		BlockType: BlockT,
		ShapeOffsets: [][4]Offset{
			{{0, -1}, {-1, 0}, {0, 0}, {1, 0}},
			{{0, -1}, {0, 0}, {1, 0}, {0, 1}},
			{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
			{{0, -1}, {-1, 0}, {0, 0}, {0, 1}},
		},
	}
)

// Catalog lists every shape, indexed by BlockType.
var Catalog = []*TetrominoType{TypeI, TypeJ, TypeL, TypeO, TypeS, TypeZ, TypeT}

// TypeOf returns the catalog entry for a block type.
func TypeOf(t BlockType) *TetrominoType {
	return Catalog[t]
}
