package game

import (
	"context"

	"github.com/qnkhuat/blockterm/pkg/event"
)

// Renderer draws snapshots. It must not hold on to game state.
type Renderer interface {
	Render(s Snapshot)
}

// Loop drives the session at the ticker's rate. Every tick it applies the
// pending input events, advances the session once and renders it. It
// returns nil when a quit event arrives or the event channel closes, and
// ctx.Err() when ctx ends.
func Loop(ctx context.Context, s *Session, events <-chan event.Input, r Renderer, t Ticker) error {
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C():
		}

	DRAIN:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return nil
				}

				if s.Handle(ev) == OutcomeQuit {
					s.logger.Println("Quit")
					return nil
				}
			default:
				break DRAIN
			}
		}

		s.Tick()
		r.Render(s.Snapshot())
	}
}
