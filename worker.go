// Package worker.go implements background workers owned by widgets.
// Workers never touch widget state directly; they deliver their result as
// a message into the owner's queue, which drains on the executor. Unmount
// cancels every worker the widget owns.

package schirmwerk

import "context"

// WorkerFunc is the body of a worker. It must observe ctx cancellation at
// its blocking points.
type WorkerFunc func(ctx context.Context) (any, error)

// Worker is a cancellable background computation owned by a widget.
type Worker struct {
	owner  Widget
	cancel context.CancelFunc
	done   chan struct{}
}

// RunWorker starts a worker goroutine owned by the widget. The result (or
// error) is posted back to the owner as a WorkerMessage. The worker is
// cancelled automatically when the owner unmounts.
func RunWorker(owner Widget, fn WorkerFunc) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	worker := &Worker{
		owner:  owner,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	owner.Base().adoptWorker(worker)

	go func() {
		defer close(worker.done)
		result, err := fn(ctx)
		if ctx.Err() != nil {
			return // cancelled; the owner no longer expects a result
		}
		owner.Base().Post(&WorkerMessage{Worker: worker, Result: result, Err: err})
	}()
	return worker
}

// Cancel requests cancellation. The worker observes it at its next
// context check.
func (w *Worker) Cancel() {
	w.cancel()
}

// Wait blocks until the worker goroutine has finished. Intended for
// tests and shutdown paths, not for handlers.
func (w *Worker) Wait() {
	<-w.done
}
