package gui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/blockterm/pkg/event"
)

const (
	// Terminals send no key releases. A press followed by another within
	// ReleaseDelay is the start of auto-repeat; a held key is released once
	// no repeat arrives for RepeatReleaseDelay.
	ReleaseDelay       = 550 * time.Millisecond
	RepeatReleaseDelay = 120 * time.Millisecond

	releaseInterval = 20 * time.Millisecond
)

type Keybinding struct {
	k tcell.Key
	r rune

	a event.GameAction
}

var keybindings = []*Keybinding{
	{r: 'z', a: event.ActionRotateCCW},
	{r: 'Z', a: event.ActionRotateCCW},
	{r: 'x', a: event.ActionRotateCW},
	{r: 'X', a: event.ActionRotateCW},
	{k: tcell.KeyUp, a: event.ActionRotateCW},
	{r: 'k', a: event.ActionRotateCW},
	{r: 'K', a: event.ActionRotateCW},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{k: tcell.KeyEscape, a: event.ActionPauseToggle},
	{r: 'p', a: event.ActionPauseToggle},
	{r: 'P', a: event.ActionPauseToggle},
}

func actionFor(ev *tcell.EventKey) event.GameAction {
	for _, bind := range keybindings {
		if bind.k != 0 && bind.k == ev.Key() {
			return bind.a
		}
		if bind.r != 0 && ev.Key() == tcell.KeyRune && bind.r == ev.Rune() {
			return bind.a
		}
	}

	return event.ActionUnknown
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}

	return false
}

// holdable actions keep acting while their key is down. Every other action
// happens once per press.
func holdable(a event.GameAction) bool {
	switch a {
	case event.ActionMoveLeft, event.ActionMoveRight, event.ActionSoftDrop:
		return true
	}

	return false
}

type heldKey struct {
	last     time.Time
	repeated bool
}

// releaser turns the press and auto-repeat stream of a terminal into key
// downs and key ups. A press is a tap: down and up at once. The key only
// counts as held once the terminal starts repeating it, and it is released
// when the repeats stop.
type releaser struct {
	sync.Mutex

	held map[event.GameAction]*heldKey
}

func newReleaser() *releaser {
	return &releaser{held: make(map[event.GameAction]*heldKey)}
}

// press records a key event for a holdable action and returns the inputs it
// produces.
func (r *releaser) press(a event.GameAction, now time.Time) []event.Input {
	r.Lock()
	defer r.Unlock()

	h, ok := r.held[a]
	if !ok {
		r.held[a] = &heldKey{last: now}
		return []event.Input{event.KeyDown(a), event.KeyUp(a)}
	}

	h.last = now
	if h.repeated {
		return nil
	}

	h.repeated = true
	return []event.Input{event.KeyDown(a)}
}

// expire forgets keys that stopped repeating before now and returns the
// ones still held down, which need a key up.
func (r *releaser) expire(now time.Time) []event.GameAction {
	r.Lock()
	defer r.Unlock()

	var released []event.GameAction
	for a, h := range r.held {
		delay := ReleaseDelay
		if h.repeated {
			delay = RepeatReleaseDelay
		}

		if now.Sub(h.last) < delay {
			continue
		}

		delete(r.held, a)
		if h.repeated {
			released = append(released, a)
		}
	}

	return released
}
