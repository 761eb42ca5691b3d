package game

import (
	"log"
	"math/rand"

	"github.com/qnkhuat/blockterm/pkg/config"
	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

const (
	MaxStartingLevel = 19

	// Held lateral input shifts once the DAS counter reaches DASDelay, then
	// every DASRepeat ticks.
	DASDelay  = 16
	DASRepeat = 6

	SoftDropThreshold = 2

	LinesPerLevel = 10
)

type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

// HighScoreStore persists a new high score.
type HighScoreStore interface {
	Save(score int) error
}

// Run is the state of one game from the first piece until a spawn is
// blocked.
type Run struct {
	cfg    *config.Config
	board  *mino.Board
	piece  *mino.Piece
	rng    *rand.Rand
	store  HighScoreStore
	logger *log.Logger

	StartingLevel int
	Level         int
	Lines         int
	Score         int
	HighScore     int
	Next          mino.Kind

	dasDirection int
	dasCounter   int
	softDrop     bool

	Paused  bool
	Focused bool
}

// NormalizeStartingLevel maps a requested starting level to a playable one.
// Anything outside 0-19 starts at level 0.
func NormalizeStartingLevel(level int) int {
	if level < 0 || level > MaxStartingLevel {
		return 0
	}

	return level
}

// NewRun creates a run on b and spawns its first piece. The returned error
// wraps mino.ErrSpawnBlocked when the board has no room for it.
func NewRun(cfg *config.Config, b *mino.Board, startingLevel int, highScore int, rng *rand.Rand, store HighScoreStore, logger *log.Logger) (*Run, error) {
	startingLevel = NormalizeStartingLevel(startingLevel)

	r := &Run{
		cfg:           cfg,
		board:         b,
		rng:           rng,
		store:         store,
		logger:        logger,
		StartingLevel: startingLevel,
		Level:         startingLevel,
		HighScore:     highScore,
	}

	r.Next = r.drawKind()

	if err := r.spawnPiece(); err != nil {
		return r, err
	}

	return r, nil
}

func (r *Run) Board() *mino.Board { return r.board }

func (r *Run) Piece() *mino.Piece { return r.piece }

func (r *Run) drawKind() mino.Kind {
	return mino.Kinds[r.rng.Intn(mino.NumKinds)]
}

func (r *Run) spawnPiece() error {
	kind := r.Next
	loc := mino.Point{X: (r.board.W - mino.MaskSize) / 2, Y: 0}

	p, err := mino.NewPiece(r.cfg.Catalog, kind, r.cfg.Colors[kind], loc, r.cfg.FallThreshold(r.Level), r.board)
	r.Next = r.drawKind()
	if err != nil {
		return err
	}

	r.piece = p
	return nil
}

func (r *Run) frozen() bool {
	return r.Paused || !r.Focused
}

func (r *Run) HandleKeyDown(a event.GameAction) {
	if r.Paused {
		if a == event.ActionPauseToggle {
			r.Paused = false
			r.dasDirection = 0
			r.dasCounter = 0
			r.softDrop = false
		}
		return
	}

	switch a {
	case event.ActionMoveLeft:
		r.pressLateral(-1)
	case event.ActionMoveRight:
		r.pressLateral(1)
	case event.ActionSoftDrop:
		r.softDrop = true
	case event.ActionRotateCCW:
		r.piece.Rotate(mino.CCW, r.board)
	case event.ActionRotateCW:
		r.piece.Rotate(mino.CW, r.board)
	case event.ActionPauseToggle:
		r.Paused = true
	}
}

func (r *Run) pressLateral(direction int) {
	r.dasDirection = direction
	r.dasCounter = 0

	r.piece.Shift(direction, r.board)
}

func (r *Run) HandleKeyUp(a event.GameAction) {
	switch a {
	case event.ActionMoveLeft, event.ActionMoveRight:
		r.dasDirection = 0
		r.dasCounter = 0
	case event.ActionSoftDrop:
		r.softDrop = false
	}
}

func (r *Run) HandleFocus(focused bool) {
	r.Focused = focused
}

func (r *Run) handlePieceMovement() {
	if r.dasCounter == DASDelay || (r.dasCounter > DASDelay && r.dasCounter%DASRepeat == DASDelay%DASRepeat) {
		r.piece.Shift(r.dasDirection, r.board)
	}

	threshold := r.cfg.FallThreshold(r.Level)
	if r.softDrop && SoftDropThreshold < threshold {
		threshold = SoftDropThreshold
	}
	r.piece.SetThreshold(threshold)

	r.dasCounter++
}

func (r *Run) shouldLevelUp() bool {
	if r.StartingLevel < LinesPerLevel {
		return r.Lines >= (r.Level+1)*LinesPerLevel
	}

	linesSinceStart := r.Lines - r.StartingLevel*LinesPerLevel
	return linesSinceStart >= (r.Level-r.StartingLevel+1)*LinesPerLevel
}

func (r *Run) award(cleared int) {
	r.Score += r.cfg.LineScore(cleared) * (r.Level + 1)
	r.Lines += cleared

	if r.shouldLevelUp() {
		r.Level++
		r.logger.Printf("Level up: %d (%d lines)", r.Level, r.Lines)
	}

	if r.Score > r.HighScore {
		r.HighScore = r.Score
		if r.store != nil {
			if err := r.store.Save(r.HighScore); err != nil {
				r.logger.Printf("Failed to save high score %d: %s", r.HighScore, err)
			}
		}
	}
}

// Tick advances the run by one frame.
func (r *Run) Tick() Status {
	if r.frozen() {
		return StatusRunning
	}

	r.handlePieceMovement()

	if cleared := r.board.ClearFullLines(); cleared > 0 {
		r.award(cleared)
	}

	if r.piece.TickGravity(r.board) == mino.GravityLocked {
		if err := r.spawnPiece(); err != nil {
			r.logger.Printf("Game over: %s", err)
			return StatusGameOver
		}
	}

	return StatusRunning
}
