package game

import (
	"github.com/qnkhuat/blockterm/pkg/mino"
)

// Snapshot is a read-only copy of everything a renderer draws. It shares no
// memory with the session.
type Snapshot struct {
	State State

	Width, Height int
	Cells         []mino.Block

	Piece      []mino.Point
	PieceColor mino.Color

	Next      mino.Kind
	NextCells []mino.Point
	NextColor mino.Color

	Score     int
	Level     int
	Lines     int
	HighScore int

	Paused  bool
	Focused bool

	// Confirmation is the label of the retry control while awaiting retry.
	Confirmation string
}

func (s Snapshot) Block(x int, y int) mino.Block {
	return s.Cells[mino.I(x, y, s.Width)]
}

func (r *Run) snapshot() Snapshot {
	s := Snapshot{
		Width:     r.board.W,
		Height:    r.board.H,
		Cells:     r.board.Cells(),
		Next:      r.Next,
		NextCells: r.cfg.Catalog.Mask(r.Next, mino.Rotation0).Cells(),
		NextColor: r.cfg.Colors[r.Next],
		Score:     r.Score,
		Level:     r.Level,
		Lines:     r.Lines,
		HighScore: r.HighScore,
		Paused:    r.Paused,
		Focused:   r.Focused,
	}

	if r.piece != nil {
		s.Piece = r.piece.Cells()
		s.PieceColor = r.piece.Color
	}

	return s
}
