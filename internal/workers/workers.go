// Package workers runs the client's background jobs. It defines the Worker
// interface and a Workers aggregate that starts every registered worker in a
// unified way.
package workers

import "context"

// Worker is a background job tied to the process lifetime. Run must not
// block: implementations spawn their goroutines internally and wind down when
// ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Workers starts a set of workers in registration order.
type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
