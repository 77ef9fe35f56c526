// Package palette holds the block colors shared by the renderers.
package palette

import (
	"image/color"

	"github.com/plus3/tetris/tetris"
)

var blocks = [...]color.RGBA{
	tetris.BlockI: {102, 191, 255, 255},
	tetris.BlockJ: {0, 121, 241, 255},
	tetris.BlockL: {255, 161, 0, 255},
	tetris.BlockO: {255, 203, 0, 255},
	tetris.BlockS: {0, 158, 47, 255},
	tetris.BlockZ: {230, 41, 55, 255},
	tetris.BlockT: {135, 60, 190, 255},
}

var (
	Background = color.RGBA{18, 18, 24, 255}
	Frame      = color.RGBA{130, 130, 130, 255}
	Text       = color.RGBA{255, 255, 255, 255}
	Disabled   = color.RGBA{80, 80, 80, 255}
	Flash      = color.RGBA{250, 250, 250, 255}
)

// Block returns the fill color of a block. Blocks marked for removal flash
// between white and their own color; after game over every block is grey.
func Block(b tetris.Block, flashOn, gameOver bool) color.RGBA {
	switch {
	case gameOver:
		return Disabled
	case b.Removed && flashOn:
		return Flash
	}
	return blocks[b.Type]
}

// Of returns the base color of a block type.
func Of(t tetris.BlockType) color.RGBA {
	return blocks[t]
}
