package gui

import (
	"io"
	"log"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/blockterm/pkg/config"
	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestActionFor(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want event.GameAction
	}{
		{key(tcell.KeyLeft), event.ActionMoveLeft},
		{runeKey('h'), event.ActionMoveLeft},
		{key(tcell.KeyRight), event.ActionMoveRight},
		{runeKey('L'), event.ActionMoveRight},
		{key(tcell.KeyDown), event.ActionSoftDrop},
		{key(tcell.KeyUp), event.ActionRotateCW},
		{runeKey('x'), event.ActionRotateCW},
		{runeKey('z'), event.ActionRotateCCW},
		{runeKey('p'), event.ActionPauseToggle},
		{key(tcell.KeyEscape), event.ActionPauseToggle},
		{runeKey('?'), event.ActionUnknown},
		{key(tcell.KeyEnter), event.ActionUnknown},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, actionFor(c.ev), c.ev.Name())
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(key(tcell.KeyCtrlC)))
	assert.True(t, isQuit(runeKey('q')))
	assert.False(t, isQuit(key(tcell.KeyEscape)), "escape pauses")
	assert.False(t, isQuit(runeKey('z')))
	assert.False(t, isQuit(key(tcell.KeyEnter)))
}

func TestHoldable(t *testing.T) {
	assert.True(t, holdable(event.ActionMoveLeft))
	assert.True(t, holdable(event.ActionMoveRight))
	assert.True(t, holdable(event.ActionSoftDrop))
	assert.False(t, holdable(event.ActionRotateCW))
	assert.False(t, holdable(event.ActionRotateCCW))
	assert.False(t, holdable(event.ActionPauseToggle))
}

func TestReleaserTap(t *testing.T) {
	r := newReleaser()
	start := time.Now()

	assert.Equal(t, []event.Input{event.KeyDown(event.ActionMoveLeft), event.KeyUp(event.ActionMoveLeft)}, r.press(event.ActionMoveLeft, start))

	assert.Empty(t, r.expire(start.Add(ReleaseDelay-time.Millisecond)))
	assert.Empty(t, r.expire(start.Add(ReleaseDelay)), "a tap was already released")

	assert.Equal(t, []event.Input{event.KeyDown(event.ActionMoveLeft), event.KeyUp(event.ActionMoveLeft)}, r.press(event.ActionMoveLeft, start.Add(time.Second)))
}

func TestReleaserHold(t *testing.T) {
	r := newReleaser()
	start := time.Now()

	require.Len(t, r.press(event.ActionSoftDrop, start), 2)

	// The first repeat turns the tap into a hold.
	at := start.Add(400 * time.Millisecond)
	assert.Equal(t, []event.Input{event.KeyDown(event.ActionSoftDrop)}, r.press(event.ActionSoftDrop, at))

	for i := 1; i <= 10; i++ {
		at = at.Add(30 * time.Millisecond)
		assert.Empty(t, r.press(event.ActionSoftDrop, at))
		assert.Empty(t, r.expire(at))
	}

	assert.Empty(t, r.expire(at.Add(RepeatReleaseDelay-time.Millisecond)))
	assert.Equal(t, []event.GameAction{event.ActionSoftDrop}, r.expire(at.Add(RepeatReleaseDelay)))
	assert.Empty(t, r.expire(at.Add(10*RepeatReleaseDelay)), "a hold is released once")
}

func TestReleaserIndependentKeys(t *testing.T) {
	r := newReleaser()
	start := time.Now()

	r.press(event.ActionMoveLeft, start)
	r.press(event.ActionMoveLeft, start.Add(300*time.Millisecond))
	r.press(event.ActionSoftDrop, start.Add(300*time.Millisecond))
	r.press(event.ActionSoftDrop, start.Add(350*time.Millisecond))

	assert.Equal(t, []event.GameAction{event.ActionMoveLeft}, r.expire(start.Add(300*time.Millisecond+RepeatReleaseDelay)))
	assert.Equal(t, []event.GameAction{event.ActionSoftDrop}, r.expire(start.Add(350*time.Millisecond+RepeatReleaseDelay)))
}

func drain(events chan event.Input) []event.Input {
	var got []event.Input
	for {
		select {
		case ev := <-events:
			got = append(got, ev)
		default:
			return got
		}
	}
}

func TestHandleKeypress(t *testing.T) {
	events := make(chan event.Input, 8)
	g := NewGUI(events, ThemeBasic)

	assert.Nil(t, g.handleKeypress(key(tcell.KeyLeft)))
	assert.Equal(t, []event.Input{event.KeyDown(event.ActionMoveLeft), event.KeyUp(event.ActionMoveLeft)}, drain(events))

	assert.Nil(t, g.handleKeypress(key(tcell.KeyLeft)))
	assert.Equal(t, []event.Input{event.KeyDown(event.ActionMoveLeft)}, drain(events))

	assert.Nil(t, g.handleKeypress(key(tcell.KeyLeft)))
	assert.Empty(t, drain(events), "auto-repeat is swallowed")

	enter := key(tcell.KeyEnter)
	assert.Equal(t, enter, g.handleKeypress(enter), "unbound keys reach the focused widget")
	assert.Empty(t, drain(events))

	assert.Nil(t, g.handleKeypress(key(tcell.KeyEscape)))
	assert.Equal(t, []event.Input{event.KeyDown(event.ActionPauseToggle)}, drain(events))

	assert.Nil(t, g.handleKeypress(runeKey('q')))
	assert.Equal(t, []event.Input{event.Quit()}, drain(events))
}

func TestRepeatedTapsAllArrive(t *testing.T) {
	events := make(chan event.Input, 8)
	g := NewGUI(events, ThemeBasic)

	g.handleKeypress(runeKey('x'))
	g.handleKeypress(runeKey('x'))
	g.handleKeypress(runeKey('p'))
	g.handleKeypress(runeKey('p'))

	assert.Equal(t, []event.Input{
		event.KeyDown(event.ActionRotateCW),
		event.KeyDown(event.ActionRotateCW),
		event.KeyDown(event.ActionPauseToggle),
		event.KeyDown(event.ActionPauseToggle),
	}, drain(events))
}

// playFrames feeds pending events and synthesized releases to s for n frames
// starting at start.
func playFrames(s *game.Session, g *GUI, events chan event.Input, start time.Time, n int) {
	for i := 0; i < n; i++ {
		for _, ev := range drain(events) {
			s.Handle(ev)
		}
		for _, a := range g.keys.expire(start.Add(time.Duration(i) * time.Second / game.TickRate)) {
			s.Handle(event.KeyUp(a))
		}
		s.Tick()
	}
}

func newInputSession(t *testing.T) *game.Session {
	t.Helper()

	s := game.NewSession(config.Default(), 0, 0, rand.New(rand.NewSource(1)), nil, log.New(io.Discard, "", 0))
	s.Handle(event.Focus(true))
	require.Equal(t, game.StatePlaying, s.State())

	return s
}

func TestSingleTapShiftsOnce(t *testing.T) {
	events := make(chan event.Input, 8)
	g := NewGUI(events, ThemeBasic)
	s := newInputSession(t)
	startX := s.Run().Piece().X

	g.handleKeypress(key(tcell.KeyLeft))
	playFrames(s, g, events, time.Now(), game.TickRate)

	assert.Equal(t, startX-1, s.Run().Piece().X)
}

func TestSingleRotateTapRotatesOnce(t *testing.T) {
	events := make(chan event.Input, 8)
	g := NewGUI(events, ThemeBasic)
	s := newInputSession(t)

	g.handleKeypress(runeKey('x'))
	playFrames(s, g, events, time.Now(), game.TickRate)

	assert.Equal(t, mino.RotationR, s.Run().Piece().Rotation)
}

func TestRenderKeepsLatestSnapshot(t *testing.T) {
	g := NewGUI(make(chan event.Input, 1), ThemeBasic)

	first := testSnapshot()
	second := testSnapshot()
	second.Score = 99

	g.Render(first)
	g.Render(second)

	assert.Len(t, g.redraw, 1)
	assert.Equal(t, 99, g.snap.Score)

	s := newTestScreen(t)
	defer s.Fini()
	g.draw(s, 0, 0, Width(10), Height(20))

	col, row := sideOrigin(0, 0, second)
	assert.Equal(t, "99", text(s, col, row+mino.MaskSize+2+4, 2))
}

func TestDrawBeforeFirstSnapshot(t *testing.T) {
	g := NewGUI(make(chan event.Input, 1), ThemeBasic)

	s := newTestScreen(t)
	defer s.Fini()
	g.draw(s, 0, 0, Width(10), Height(20))

	ox, oy := boardOrigin(0, 0)
	r, _, _, _ := s.GetContent(ox-1, oy-1)
	assert.Equal(t, ' ', r)
}

func TestUpdateShowsRetry(t *testing.T) {
	g := NewGUI(make(chan event.Input, 1), ThemeBasic)

	snap := testSnapshot()
	snap.State = game.StateAwaitingRetry
	snap.Confirmation = game.ConfirmationLabel
	g.Render(snap)
	g.update()

	assert.True(t, g.retrying)
	assert.True(t, g.retry.HasFocus())

	snap.State = game.StatePlaying
	g.Render(snap)
	g.update()

	assert.False(t, g.retrying)
	assert.True(t, g.board.HasFocus())
	assert.False(t, g.retry.HasFocus())
}
