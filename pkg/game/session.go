package game

import (
	"log"
	"math/rand"

	"github.com/qnkhuat/blockterm/pkg/config"
	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

type State int

const (
	StatePlaying State = iota
	StateAwaitingRetry
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateAwaitingRetry:
		return "AwaitingRetry"
	default:
		return "Unknown"
	}
}

type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeQuit
)

const ConfirmationLabel = "Play Again"

// Confirmation is the control shown while awaiting a retry.
type Confirmation struct {
	Label     string
	Confirmed bool
}

// Session switches between playing a run and waiting for the player to
// start another one.
type Session struct {
	cfg           *config.Config
	startingLevel int
	rng           *rand.Rand
	store         HighScoreStore
	logger        *log.Logger

	state   State
	run     *Run
	confirm *Confirmation

	// last is the final view of the previous run, drawn behind the retry
	// control.
	last Snapshot

	highScore int
	focused   bool
}

func NewSession(cfg *config.Config, startingLevel int, highScore int, rng *rand.Rand, store HighScoreStore, logger *log.Logger) *Session {
	s := &Session{
		cfg:           cfg,
		startingLevel: NormalizeStartingLevel(startingLevel),
		rng:           rng,
		store:         store,
		logger:        logger,
		highScore:     highScore,
	}

	s.enter(StatePlaying)

	return s
}

func (s *Session) State() State { return s.state }

// Run returns the active run, or nil while awaiting retry.
func (s *Session) Run() *Run { return s.run }

func (s *Session) StartingLevel() int { return s.startingLevel }

func (s *Session) HighScore() int {
	if s.run != nil && s.run.HighScore > s.highScore {
		return s.run.HighScore
	}

	return s.highScore
}

func (s *Session) transition(to State) {
	s.logger.Printf("Session %s -> %s", s.state, to)

	s.exit(s.state)
	s.enter(to)
}

func (s *Session) enter(state State) {
	s.state = state

	switch state {
	case StatePlaying:
		b := mino.NewBoard(mino.DefaultWidth, mino.DefaultHeight)

		run, err := NewRun(s.cfg, b, s.startingLevel, s.highScore, s.rng, s.store, s.logger)
		run.Focused = s.focused
		s.run = run

		if err != nil {
			s.logger.Printf("Failed to start run: %s", err)
			s.transition(StateAwaitingRetry)
		}
	case StateAwaitingRetry:
		s.confirm = &Confirmation{Label: ConfirmationLabel}
	}
}

func (s *Session) exit(state State) {
	switch state {
	case StatePlaying:
		s.last = s.run.snapshot()
		s.highScore = s.run.HighScore
		s.logger.Printf("Game over: score %d, level %d, lines %d", s.run.Score, s.run.Level, s.run.Lines)
		s.run = nil
	case StateAwaitingRetry:
		s.confirm = nil
	}
}

// Handle applies one input event immediately.
func (s *Session) Handle(ev event.Input) Outcome {
	switch ev.Type {
	case event.InputQuit:
		return OutcomeQuit
	case event.InputFocusGained, event.InputFocusLost:
		s.focused = ev.Type == event.InputFocusGained
		if s.run != nil {
			s.run.HandleFocus(s.focused)
		}
		return OutcomeContinue
	}

	switch s.state {
	case StatePlaying:
		switch ev.Type {
		case event.InputKeyDown:
			s.run.HandleKeyDown(ev.Action)
		case event.InputKeyUp:
			s.run.HandleKeyUp(ev.Action)
		}
	case StateAwaitingRetry:
		if ev.Type == event.InputKeyDown && ev.Action == event.ActionConfirm {
			s.confirm.Confirmed = true
		}
	}

	return OutcomeContinue
}

// Tick advances the session by one frame.
func (s *Session) Tick() {
	switch s.state {
	case StatePlaying:
		if s.run.Tick() == StatusGameOver {
			s.transition(StateAwaitingRetry)
		}
	case StateAwaitingRetry:
		if s.confirm.Confirmed {
			s.transition(StatePlaying)
		}
	}
}

func (s *Session) Snapshot() Snapshot {
	var snap Snapshot
	switch s.state {
	case StatePlaying:
		snap = s.run.snapshot()
	case StateAwaitingRetry:
		snap = s.last
		snap.Cells = append([]mino.Block(nil), s.last.Cells...)
		snap.Piece = nil
		snap.Confirmation = s.confirm.Label
	}

	snap.State = s.state
	snap.HighScore = s.HighScore()
	snap.Focused = s.focused

	return snap
}
