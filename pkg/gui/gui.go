package gui

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/game"
)

const (
	pageBoard = "board"
	pageRetry = "retry"
)

// GUI hosts the game in a terminal. It turns key presses into input events
// and draws the snapshots it is given.
type GUI struct {
	App   *tview.Application
	pages *tview.Pages
	board *tview.Box
	retry *tview.Modal

	theme  Theme
	events chan<- event.Input
	keys   *releaser

	// retrying is only touched from the application goroutine.
	retrying bool

	sync.Mutex
	snap     game.Snapshot
	received bool

	redraw chan struct{}
	done   chan struct{}
}

func NewGUI(events chan<- event.Input, t Theme) *GUI {
	g := &GUI{
		App:    tview.NewApplication(),
		theme:  t,
		events: events,
		keys:   newReleaser(),
		redraw: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}

	g.board = tview.NewBox().SetDrawFunc(g.draw)

	g.retry = tview.NewModal().
		AddButtons([]string{game.ConfirmationLabel}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonLabel == game.ConfirmationLabel {
				g.send(event.KeyDown(event.ActionConfirm))
			}
		})

	g.pages = tview.NewPages().
		AddPage(pageBoard, g.board, true, true).
		AddPage(pageRetry, g.retry, false, false)

	g.App.SetInputCapture(g.handleKeypress)

	return g
}

// Render keeps the latest snapshot and schedules a redraw. It never blocks
// on the terminal.
func (g *GUI) Render(s game.Snapshot) {
	g.Lock()
	g.snap = s
	g.received = true
	g.Unlock()

	select {
	case g.redraw <- struct{}{}:
	default:
	}
}

// Run reports focus and blocks until the application stops.
func (g *GUI) Run() error {
	g.send(event.Focus(true))

	go g.handleDraw()
	go g.handleRelease()
	defer close(g.done)

	return g.App.SetRoot(g.pages, true).SetFocus(g.board).Run()
}

func (g *GUI) Stop() {
	g.App.Stop()
}

func (g *GUI) send(ev event.Input) {
	select {
	case g.events <- ev:
	case <-g.done:
	}
}

func (g *GUI) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	if isQuit(ev) {
		g.send(event.Quit())
		return nil
	}

	a := actionFor(ev)
	if a == event.ActionUnknown {
		return ev
	}

	if !holdable(a) {
		g.send(event.KeyDown(a))
		return nil
	}

	for _, in := range g.keys.press(a, time.Now()) {
		g.send(in)
	}

	return nil
}

func (g *GUI) handleRelease() {
	t := time.NewTicker(releaseInterval)
	defer t.Stop()

	for {
		select {
		case <-g.done:
			return
		case now := <-t.C:
			for _, a := range g.keys.expire(now) {
				g.send(event.KeyUp(a))
			}
		}
	}
}

func (g *GUI) handleDraw() {
	for {
		select {
		case <-g.done:
			return
		case <-g.redraw:
			g.App.QueueUpdateDraw(g.update)
		}
	}
}

// update shows or hides the retry control to match the last snapshot.
func (g *GUI) update() {
	g.Lock()
	snap := g.snap
	g.Unlock()

	awaiting := snap.State == game.StateAwaitingRetry
	if awaiting == g.retrying {
		return
	}
	g.retrying = awaiting

	if awaiting {
		g.retry.SetText(fmt.Sprintf("GAME OVER\n\nScore %d  Level %d  Lines %d", snap.Score, snap.Level, snap.Lines))
		g.pages.ShowPage(pageRetry)
		g.App.SetFocus(g.retry)
		return
	}

	g.pages.HidePage(pageRetry)
	g.App.SetFocus(g.board)
}

func (g *GUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	g.Lock()
	snap, ok := g.snap, g.received
	g.Unlock()

	if ok {
		Draw(screen, x, y, snap, g.theme)
	}

	return x, y, width, height
}
