package sinks

import (
	"context"

	"github.com/pkg/errors"

	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/scheduler"
	"github.com/arielf-camacho/fp-source/task"
)

// ReduceBuilder is a fluent builder for reducing tasks.
type ReduceBuilder[IN, OUT any] struct {
	source       primitives.Source[IN]
	fn           func(result OUT, value IN, index uint) (OUT, error)
	initial      OUT
	errorHandler func(error, uint, IN, OUT)
	scheduler    scheduler.Scheduler
}

// Reduce creates a new ReduceBuilder for a task folding every value of source
// into a single result using fn, starting from initial.
//
// Graphically, Reduce looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 ------- | -->
//
// -- Reduce f(result, value, index) = result + value --
//
// -> ----------------------- 15 -- |
func Reduce[IN, OUT any](
	source primitives.Source[IN],
	fn func(result OUT, value IN, index uint) (OUT, error),
	initial OUT,
) *ReduceBuilder[IN, OUT] {
	if fn == nil {
		panic("fn cannot be nil")
	}

	return &ReduceBuilder[IN, OUT]{
		source:  source,
		fn:      fn,
		initial: initial,
	}
}

// ErrorHandler sets a handler called when fn fails, before the task fails.
func (b *ReduceBuilder[IN, OUT]) ErrorHandler(
	handler func(error, uint, IN, OUT),
) *ReduceBuilder[IN, OUT] {
	b.errorHandler = handler
	return b
}

// Scheduler sets the scheduler the source runs on.
func (b *ReduceBuilder[IN, OUT]) Scheduler(
	s scheduler.Scheduler,
) *ReduceBuilder[IN, OUT] {
	b.scheduler = s
	return b
}

// Build creates the task. A failing fn closes the source and fails the task.
func (b *ReduceBuilder[IN, OUT]) Build() task.Task[OUT] {
	var (
		source       = b.source
		fn           = b.fn
		initial      = b.initial
		errorHandler = b.errorHandler
		sched        = b.scheduler
	)

	return func(ctx context.Context) (OUT, error) {
		var (
			result = initial
			index  uint
			done   = make(chan error, 1)
		)

		if err := ctx.Err(); err != nil {
			return initial, err
		}

		c := consume(sched, source, func(value IN) bool {
			next, err := fn(result, value, index)
			if err != nil {
				if errorHandler != nil {
					errorHandler(err, index, value, result)
				}
				done <- errors.Wrapf(err, "reducing value %d", index)
				return false
			}
			result = next
			index++
			return true
		}, func(err error) {
			done <- err
		})

		select {
		case err := <-done:
			return result, err
		case <-ctx.Done():
			c.close(nil)
			return initial, ctx.Err()
		}
	}
}
