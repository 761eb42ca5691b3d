package mino

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testColor = Color{R: 0xdd, G: 0xdd, B: 0x00}

func maskOf(rows ...string) Mask {
	var m Mask
	for y, row := range rows {
		for x, r := range row {
			m[y][x] = r == 'X'
		}
	}

	return m
}

var testShapes = map[Kind][]Mask{
	KindI: {
		maskOf("....", "XXXX", "....", "...."),
		maskOf("..X.", "..X.", "..X.", "..X."),
		maskOf("....", "....", "XXXX", "...."),
		maskOf(".X..", ".X..", ".X..", ".X.."),
	},
	KindO: {
		maskOf(".XX.", ".XX."),
		maskOf(".XX.", ".XX."),
		maskOf(".XX.", ".XX."),
		maskOf(".XX.", ".XX."),
	},
	KindT: {
		maskOf(".X..", "XXX."),
		maskOf(".X..", ".XX.", ".X.."),
		maskOf("....", "XXX.", ".X.."),
		maskOf(".X..", "XX..", ".X.."),
	},
	KindS: {
		maskOf(".XX.", "XX.."),
		maskOf(".X..", ".XX.", "..X."),
		maskOf("....", ".XX.", "XX.."),
		maskOf("X...", "XX..", ".X.."),
	},
	KindZ: {
		maskOf("XX..", ".XX."),
		maskOf("..X.", ".XX.", ".X.."),
		maskOf("....", "XX..", ".XX."),
		maskOf(".X..", "XX..", "X..."),
	},
	KindJ: {
		maskOf("X...", "XXX."),
		maskOf(".XX.", ".X..", ".X.."),
		maskOf("....", "XXX.", "..X."),
		maskOf(".X..", ".X..", "XX.."),
	},
	KindL: {
		maskOf("..X.", "XXX."),
		maskOf(".X..", ".X..", ".XX."),
		maskOf("....", "XXX.", "X..."),
		maskOf("XX..", ".X..", ".X.."),
	},
}

func newTestCatalog(t testing.TB) *Catalog {
	t.Helper()

	c, err := NewCatalog(testShapes)
	require.NoError(t, err)

	return c
}

// fillRow fills row y except the listed columns.
func fillRow(b *Board, y int, holes ...int) {
	for x := 0; x < b.W; x++ {
		hole := false
		for _, h := range holes {
			if h == x {
				hole = true
			}
		}
		if !hole {
			b.SetBlock(x, y, SolidBlock(testColor))
		}
	}
}
