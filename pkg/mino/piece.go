package mino

import (
	"errors"
	"fmt"
)

// ErrSpawnBlocked is returned when a new piece has no legal position at its
// spawn point. It ends the run.
var ErrSpawnBlocked = errors.New("spawn blocked")

type GravityResult int

const (
	GravityNone GravityResult = iota
	GravityLocked
)

// Side reports which lateral neighbours of a piece are blocked.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideBoth
)

func (s Side) Blocks(dx int) bool {
	switch {
	case dx < 0:
		return s == SideLeft || s == SideBoth
	case dx > 0:
		return s == SideRight || s == SideBoth
	default:
		return false
	}
}

// Piece is the active piece falling through a board.
type Piece struct {
	Point
	Kind     Kind
	Rotation int
	Color    Color

	// Threshold is the number of gravity ticks per row.
	Threshold int
	counter   int

	masks *[RotationStates]Mask
}

func NewPiece(c *Catalog, k Kind, color Color, loc Point, threshold int, b *Board) (*Piece, error) {
	p := &Piece{Point: loc, Kind: k, Color: color, Threshold: threshold, masks: &c.masks[k]}

	if !p.LegalAt(Rotation0, loc.X, loc.Y, b) {
		return nil, fmt.Errorf("piece %s at %s: %w", k, loc, ErrSpawnBlocked)
	}

	return p, nil
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s@%s r%d", p.Kind, p.Point, p.Rotation)
}

func (p *Piece) Mask() Mask {
	return p.masks[p.Rotation]
}

// LegalAt reports whether the piece in the given rotation fits at (x, y).
// Cells above the board are not checked.
func (p *Piece) LegalAt(rotation int, x int, y int, b *Board) bool {
	m := p.masks[rotation]
	for my := 0; my < MaskSize; my++ {
		for mx := 0; mx < MaskSize; mx++ {
			if !m[my][mx] {
				continue
			}

			cx, cy := x+mx, y+my
			if cy < 0 {
				continue
			}

			if cx < 0 || cx >= b.W || cy >= b.H || !b.Empty(cx, cy) {
				return false
			}
		}
	}

	return true
}

// Rotate turns the piece one state in the given direction, leaving it
// untouched when the new state does not fit.
func (p *Piece) Rotate(d Direction, b *Board) bool {
	rotation := p.Rotation + 1
	if d == CCW {
		rotation = p.Rotation + RotationStates - 1
	}
	rotation %= RotationStates

	if !p.LegalAt(rotation, p.X, p.Y, b) {
		return false
	}

	p.Rotation = rotation
	return true
}

func (p *Piece) CheckMoveDownCollision(b *Board) bool {
	return !p.LegalAt(p.Rotation, p.X, p.Y+1, b)
}

// SideCollision probes the cell directly left and right of every occupied
// cell.
func (p *Piece) SideCollision(b *Board) Side {
	var left, right bool
	for _, c := range p.Cells() {
		if c.X <= 0 || (c.Y >= 0 && !b.Empty(c.X-1, c.Y)) {
			left = true
		}
		if c.X+1 >= b.W || (c.Y >= 0 && !b.Empty(c.X+1, c.Y)) {
			right = true
		}
	}

	switch {
	case left && right:
		return SideBoth
	case left:
		return SideLeft
	case right:
		return SideRight
	default:
		return SideNone
	}
}

// Shift moves the piece one column left (dx < 0) or right (dx > 0) unless
// that side is blocked.
func (p *Piece) Shift(dx int, b *Board) bool {
	if dx == 0 || p.SideCollision(b).Blocks(dx) {
		return false
	}

	if dx < 0 {
		p.X--
	} else {
		p.X++
	}

	return true
}

func (p *Piece) SetThreshold(threshold int) {
	p.Threshold = threshold
}

// LockOnto writes the piece into the board in its color.
func (p *Piece) LockOnto(b *Board) {
	block := SolidBlock(p.Color)
	for _, c := range p.Cells() {
		b.SetBlock(c.X, c.Y, block)
	}
}

// TickGravity advances the fall counter. Once it reaches the threshold the
// piece either moves down one row or, when it cannot, locks onto the board.
func (p *Piece) TickGravity(b *Board) GravityResult {
	p.counter++
	if p.counter < p.Threshold {
		return GravityNone
	}

	p.counter = 0
	if p.CheckMoveDownCollision(b) {
		p.LockOnto(b)
		return GravityLocked
	}

	p.Y++
	return GravityNone
}

// Cells returns the board coordinates of the occupied cells.
func (p *Piece) Cells() []Point {
	cells := p.masks[p.Rotation].Cells()
	for i := range cells {
		cells[i] = cells[i].Add(p.Point)
	}

	return cells
}
