package mino

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Rotation0 = 0
	RotationR = 1
	Rotation2 = 2
	RotationL = 3

	RotationStates = 4

	MaskSize  = 4
	MaskCells = 4
)

type Direction int

const (
	CW Direction = iota
	CCW
)

func (d Direction) String() string {
	if d == CCW {
		return "CCW"
	}

	return "CW"
}

// Mask is the occupancy grid of one rotation state, indexed [y][x].
type Mask [MaskSize][MaskSize]bool

// Cells returns the occupied points of the mask in row-major order.
func (m Mask) Cells() []Point {
	var cells []Point
	for y := 0; y < MaskSize; y++ {
		for x := 0; x < MaskSize; x++ {
			if m[y][x] {
				cells = append(cells, Point{x, y})
			}
		}
	}

	return cells
}

func (m Mask) Count() int {
	n := 0
	for y := range m {
		for x := range m[y] {
			if m[y][x] {
				n++
			}
		}
	}

	return n
}

func (m Mask) Render() string {
	var b strings.Builder
	for y := 0; y < MaskSize; y++ {
		for x := 0; x < MaskSize; x++ {
			if m[y][x] {
				b.WriteRune('X')
			} else {
				b.WriteRune('.')
			}
		}
		b.WriteRune('\n')
	}

	return b.String()
}

// ParseMask builds a mask from rows of 0/1 values.
func ParseMask(rows [][]int) (Mask, error) {
	var m Mask
	if len(rows) != MaskSize {
		return m, fmt.Errorf("mask has %d rows, want %d", len(rows), MaskSize)
	}

	for y, row := range rows {
		if len(row) != MaskSize {
			return m, fmt.Errorf("mask row %d has %d cells, want %d", y, len(row), MaskSize)
		}

		for x, v := range row {
			switch v {
			case 0:
			case 1:
				m[y][x] = true
			default:
				return m, fmt.Errorf("mask cell (%d,%d) has value %d, want 0 or 1", x, y, v)
			}
		}
	}

	return m, nil
}

// Catalog holds every rotation state of every piece kind. It is immutable
// once built and safe to share.
type Catalog struct {
	masks [NumKinds][RotationStates]Mask
}

func NewCatalog(shapes map[Kind][]Mask) (*Catalog, error) {
	c := &Catalog{}

	for _, k := range Kinds {
		rotations, ok := shapes[k]
		if !ok {
			return nil, fmt.Errorf("piece %s: no rotation states", k)
		} else if len(rotations) != RotationStates {
			return nil, fmt.Errorf("piece %s: %d rotation states, want %d", k, len(rotations), RotationStates)
		}

		for r, m := range rotations {
			if n := m.Count(); n != MaskCells {
				return nil, fmt.Errorf("piece %s rotation %d: %d occupied cells, want %d", k, r, n, MaskCells)
			}

			c.masks[k][r] = m
		}
	}

	if len(shapes) != NumKinds {
		return nil, errors.New("catalog contains an unknown piece kind")
	}

	return c, nil
}

func (c *Catalog) Mask(k Kind, rotation int) Mask {
	return c.masks[k][rotation]
}
