package starfield

import (
	"context"
	"errors"
	"time"

	"starfolio.dev/internal/models"
)

// Loop is a running animation loop
type Loop struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Start runs the animation loop on its own goroutine. Every tick renders one
// frame; resize events are handled between frames. The loop ends when ctx is
// done, ticks is closed, Stop is called, or the backend fails.
func (r *Renderer) Start(ctx context.Context, ticks <-chan time.Time, resizes <-chan models.Viewport) (*Loop, error) {
	if !r.ready {
		return nil, ErrUnavailable
	}

	ctx, cancel := context.WithCancel(ctx)
	l := &Loop{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(l.done)
		defer cancel()
		l.err = r.run(ctx, ticks, resizes)
	}()
	return l, nil
}

func (r *Renderer) run(ctx context.Context, ticks <-chan time.Time, resizes <-chan models.Viewport) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if err := r.RenderFrame(); err != nil {
				return err
			}
		case vp, ok := <-resizes:
			if !ok {
				resizes = nil
				continue
			}
			if err := r.HandleResize(vp); err != nil && !errors.Is(err, ErrInvalidViewport) {
				return err
			}
		}
	}
}

// Stop cancels the loop and waits for it to exit
func (l *Loop) Stop() {
	l.cancel()
	<-l.done
}

// Done is closed once the loop has exited
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Err returns the error that ended the loop. Only meaningful after Done is closed.
func (l *Loop) Err() error {
	select {
	case <-l.done:
		return l.err
	default:
		return nil
	}
}
