package game

import (
	"context"

	"github.com/qnkhuat/queensterm/pkg/board"
)

type Renderer interface {
	Render(Snapshot)
}

type RendererFunc func(Snapshot)

func (f RendererFunc) Render(s Snapshot) { f(s) }

// Run advances the game on the turn timer and renders on the frame timer. Both
// run in this goroutine, so a frame never observes half a turn. Run returns nil
// once the game is finished, the turn error, or the context error.
func (g *Game) Run(ctx context.Context, r Renderer) error {
	turns := NewTimer(g.Config.TurnInterval)
	defer turns.Stop()

	frames := NewTimer(g.Config.FrameInterval)
	defer frames.Stop()

	stop := func() {
		turns.Stop()
		frames.Stop()
	}

	g.Lock()
	unsubscribe := g.Board.Subscribe(func(ev board.Event) {
		if _, ok := ev.(board.GameFinished); ok {
			stop()
		}
	})
	if g.state == Finished {
		stop()
	}
	g.Unlock()

	defer func() {
		g.Lock()
		defer g.Unlock()
		unsubscribe()
	}()

	r.Render(g.Snapshot())

	for turns.Running() {
		select {
		case <-ctx.Done():
			stop()
			return ctx.Err()

		case <-turns.C():
			if _, err := g.Advance(); err != nil {
				stop()
				r.Render(g.Snapshot())
				return err
			}

		case <-frames.C():
			r.Render(g.Snapshot())
		}
	}

	r.Render(g.Snapshot())
	return nil
}
