package game

import (
	"io"
	"log"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/blockterm/pkg/config"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

var testLogger = log.New(io.Discard, "", 0)

type memoryStore struct {
	saved []int
	err   error
}

func (m *memoryStore) Save(score int) error {
	m.saved = append(m.saved, score)
	return m.err
}

func newTestRun(t *testing.T, startingLevel int) (*Run, *memoryStore) {
	t.Helper()

	store := &memoryStore{}
	r, err := NewRun(config.Default(), mino.NewBoard(mino.DefaultWidth, mino.DefaultHeight), startingLevel, 0, rand.New(rand.NewSource(1)), store, testLogger)
	require.NoError(t, err)

	r.HandleFocus(true)

	return r, store
}

// setPiece replaces the active piece.
func setPiece(t *testing.T, r *Run, k mino.Kind, loc mino.Point) {
	t.Helper()

	p, err := mino.NewPiece(r.cfg.Catalog, k, r.cfg.Colors[k], loc, r.cfg.FallThreshold(r.Level), r.board)
	require.NoError(t, err)

	r.piece = p
}

// fillRows fills the given rows, leaving the listed hole column empty when
// hole is not negative.
func fillRows(b *mino.Board, hole int, rows ...int) {
	for _, y := range rows {
		for x := 0; x < b.W; x++ {
			if x == hole {
				continue
			}
			b.SetBlock(x, y, mino.SolidBlock(mino.Color{R: 0xbb, G: 0xbb, B: 0xbb}))
		}
	}
}
