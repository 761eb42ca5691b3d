package mino

import "fmt"

type Color struct {
	R, G, B uint8
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Block is a single board cell. BlockNone is empty; any other value is a
// solid cell carrying its color in the low 24 bits.
type Block uint32

const (
	BlockNone Block = 0

	blockSolid Block = 1 << 24
)

func SolidBlock(c Color) Block {
	return blockSolid | Block(c.R)<<16 | Block(c.G)<<8 | Block(c.B)
}

func (b Block) Solid() bool {
	return b&blockSolid != 0
}

func (b Block) Color() Color {
	return Color{R: uint8(b >> 16), G: uint8(b >> 8), B: uint8(b)}
}

func (b Block) Rune() rune {
	if b == BlockNone {
		return ' '
	}

	return '█'
}

func (b Block) String() string {
	return string(b.Rune())
}
