package tetris

import (
	"sort"

	"github.com/kamstrup/intmap"
)

// Board is the 10x20 grid of settled blocks.
type Board struct {
	cells [BoardHeight][BoardWidth]*Block
	index *intmap.Map[BlockID, *Block]
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		index: intmap.New[BlockID, *Block](BoardWidth * BoardHeight),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return BoardWidth }

// Height returns the number of rows.
func (b *Board) Height() int { return BoardHeight }

// Reset empties the board.
func (b *Board) Reset() {
	b.cells = [BoardHeight][BoardWidth]*Block{}
	b.index.Clear()
}

// Cell returns the block at a position, or nil when empty or off the board.
func (b *Board) Cell(p Position) *Block {
	if !p.InBounds() {
		return nil
	}
	return b.cells[p.Row][p.Column]
}

// Lookup finds a settled block by id.
func (b *Board) Lookup(id BlockID) (*Block, bool) {
	return b.index.Get(id)
}

// Len returns the number of settled blocks.
func (b *Board) Len() int {
	return b.index.Len()
}

// Blocks returns the settled blocks in row-major order.
func (b *Board) Blocks() []*Block {
	blocks := make([]*Block, 0, b.index.Len())
	for row := range b.cells {
		for _, block := range b.cells[row] {
			if block != nil {
				blocks = append(blocks, block)
			}
		}
	}
	return blocks
}

// IsAvailableSlot reports whether p is on the board and empty.
func (b *Board) IsAvailableSlot(p Position) bool {
	return p.InBounds() && b.cells[p.Row][p.Column] == nil
}

// IsValidPlacement reports whether every on-board cell of the piece is available.
// Cells above the top edge are not tested.
func (b *Board) IsValidPlacement(t Tetromino) bool {
	for _, p := range t.Positions() {
		if p.Row < 0 {
			continue
		}
		if !b.IsAvailableSlot(p) {
			return false
		}
	}
	return true
}

// Freeze writes blocks into the grid at their positions. Blocks above the board are
// dropped. Occupancy is not checked; callers freeze only validated placements.
func (b *Board) Freeze(blocks []*Block) {
	for _, block := range blocks {
		p := block.Position
		if p.Row < 0 || !p.InBounds() {
			continue
		}
		if prev := b.cells[p.Row][p.Column]; prev != nil {
			b.index.Del(prev.ID)
		}
		b.cells[p.Row][p.Column] = block
		b.index.Put(block.ID, block)
	}
}

// DetectFullRows returns the rows, bottom to top, whose cells are all occupied by
// blocks not yet marked removed.
func (b *Board) DetectFullRows() []int {
	var rows []int
	for row := BoardHeight - 1; row >= 0; row-- {
		if b.rowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (b *Board) rowFull(row int) bool {
	for _, block := range b.cells[row] {
		if block == nil || block.Removed {
			return false
		}
	}
	return true
}

// MarkRemoved flags every block in the given rows as pending removal. The rows stay
// occupied until Collapse.
func (b *Board) MarkRemoved(rows []int) {
	for _, row := range rows {
		if row < 0 || row >= BoardHeight {
			continue
		}
		for _, block := range b.cells[row] {
			if block != nil {
				block.Removed = true
			}
		}
	}
}

// Collapse deletes the given rows, drops the rows above them and renumbers every
// remaining block to its new cell.
func (b *Board) Collapse(rows []int) {
	if len(rows) == 0 {
		return
	}

	drop := make(map[int]bool, len(rows))
	for _, row := range rows {
		if row >= 0 && row < BoardHeight {
			drop[row] = true
		}
	}

	var next [BoardHeight][BoardWidth]*Block
	write := BoardHeight - 1
	for row := BoardHeight - 1; row >= 0; row-- {
		if drop[row] {
			for _, block := range b.cells[row] {
				if block != nil {
					b.index.Del(block.ID)
				}
			}
			continue
		}
		next[write] = b.cells[row]
		write--
	}
	b.cells = next

	for row := range b.cells {
		for column, block := range b.cells[row] {
			if block != nil {
				block.Position = Position{Column: column, Row: row}
			}
		}
	}
}

// sortedRows returns a copy of rows ordered bottom to top.
func sortedRows(rows []int) []int {
	out := append([]int(nil), rows...)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
