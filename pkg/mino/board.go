package mino

import (
	"fmt"
	"strings"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Board is the playfield. Row 0 is the top row.
type Board struct {
	W int // Width
	H int // Height

	M []Block
}

func I(x int, y int, w int) int {
	return (y * w) + x
}

func NewBoard(w int, h int) *Board {
	return &Board{W: w, H: h, M: make([]Block, w*h)}
}

func (b *Board) InBounds(x int, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

func (b *Board) Block(x int, y int) Block {
	return b.M[I(x, y, b.W)]
}

func (b *Board) Empty(x int, y int) bool {
	return b.M[I(x, y, b.W)] == BlockNone
}

// SetBlock writes a cell. Writing outside the board means an invariant was
// broken upstream.
func (b *Board) SetBlock(x int, y int, block Block) {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("board: write outside %dx%d board at (%d,%d)", b.W, b.H, x, y))
	}

	b.M[I(x, y, b.W)] = block
}

func (b *Board) LineFilled(y int) bool {
	for x := 0; x < b.W; x++ {
		if b.Empty(x, y) {
			return false
		}
	}

	return true
}

// ClearFullLines removes every filled row, shifting the rows above it down
// and inserting empty rows at the top. It returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	cleared := 0

	dst := b.H - 1
	for y := b.H - 1; y >= 0; y-- {
		if b.LineFilled(y) {
			cleared++
			continue
		}

		if dst != y {
			copy(b.M[I(0, dst, b.W):I(0, dst+1, b.W)], b.M[I(0, y, b.W):I(0, y+1, b.W)])
		}
		dst--
	}

	for y := dst; y >= 0; y-- {
		row := b.M[I(0, y, b.W):I(0, y+1, b.W)]
		for x := range row {
			row[x] = BlockNone
		}
	}

	return cleared
}

// Cells returns a copy of the board contents.
func (b *Board) Cells() []Block {
	cells := make([]Block, len(b.M))
	copy(cells, b.M)

	return cells
}

func (b *Board) Render() string {
	var s strings.Builder

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.Empty(x, y) {
				s.WriteRune('.')
			} else {
				s.WriteRune('X')
			}
		}

		s.WriteRune('\n')
	}

	return s.String()
}
