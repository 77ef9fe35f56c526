package tetris_test

import (
	"strings"
	"testing"

	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

var blockTypesByLetter = map[byte]tetris.BlockType{
	'I': tetris.BlockI,
	'J': tetris.BlockJ,
	'L': tetris.BlockL,
	'O': tetris.BlockO,
	'S': tetris.BlockS,
	'Z': tetris.BlockZ,
	'T': tetris.BlockT,
}

// loadFixture returns the named grid from testdata/boards.txtar.
func loadFixture(t *testing.T, name string) []string {
	t.Helper()

	archive, err := txtar.ParseFile("testdata/boards.txtar")
	require.NoError(t, err)

	for _, f := range archive.Files {
		if f.Name != name {
			continue
		}
		rows := strings.Split(strings.TrimRight(string(f.Data), "\n"), "\n")
		require.Len(t, rows, tetris.BoardHeight, "fixture %s", name)
		for _, row := range rows {
			require.Len(t, row, tetris.BoardWidth, "fixture %s", name)
		}
		return rows
	}

	t.Fatalf("fixture %q not found", name)
	return nil
}

// fixtureBlocks converts a grid to blocks with ids starting at firstID.
func fixtureBlocks(t *testing.T, rows []string, firstID tetris.BlockID) []*tetris.Block {
	t.Helper()

	var blocks []*tetris.Block
	id := firstID
	for row, line := range rows {
		for column := 0; column < len(line); column++ {
			if line[column] == '.' {
				continue
			}
			typ, ok := blockTypesByLetter[line[column]]
			require.True(t, ok, "unknown cell %q", line[column])
			blocks = append(blocks, &tetris.Block{
				ID:       id,
				Type:     typ,
				Position: tetris.Position{Column: column, Row: row},
			})
			id++
		}
	}
	return blocks
}

// loadBoard builds a board from a named fixture.
func loadBoard(t *testing.T, name string) *tetris.Board {
	t.Helper()

	board := tetris.NewBoard()
	board.Freeze(fixtureBlocks(t, loadFixture(t, name), 1_000_000))
	return board
}

// render draws a board in fixture notation, marking removed blocks with '*'.
func render(board *tetris.Board) []string {
	rows := make([]string, tetris.BoardHeight)
	for row := range rows {
		var sb strings.Builder
		for column := 0; column < tetris.BoardWidth; column++ {
			block := board.Cell(tetris.Position{Column: column, Row: row})
			switch {
			case block == nil:
				sb.WriteByte('.')
			case block.Removed:
				sb.WriteByte('*')
			default:
				sb.WriteString(block.Type.String())
			}
		}
		rows[row] = sb.String()
	}
	return rows
}
