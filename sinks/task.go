package sinks

import (
	"context"

	"github.com/pkg/errors"

	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/scheduler"
	"github.com/arielf-camacho/fp-source/task"
)

// ErrNoValue is returned by the task of a source that completed without
// emitting.
var ErrNoValue = errors.New("source completed without emitting a value")

// ToTask returns a task running source and resolving with the last value it
// emitted once it completes. The task fails with the error the source ended
// with, or ErrNoValue if it emitted nothing. Cancelling the context given to
// the task closes the source.
//
// Graphically, ToTask looks like this:
//
// -- 1 -- 2 -- 3 -- | -->
//
// -- ToTask --------------
//
// -> ------------ 3
func ToTask[T any](source primitives.Source[T]) task.Task[T] {
	return ToTaskOn(nil, source)
}

// ToTaskOn is ToTask running on s.
func ToTaskOn[T any](
	s scheduler.Scheduler,
	source primitives.Source[T],
) task.Task[T] {
	return func(ctx context.Context) (T, error) {
		var (
			zero   T
			last   T
			has    bool
			result = make(chan error, 1)
		)

		if err := ctx.Err(); err != nil {
			return zero, err
		}

		c := consume(s, source, func(value T) bool {
			last, has = value, true
			return true
		}, func(err error) {
			if err == nil && !has {
				err = ErrNoValue
			}
			result <- err
		})

		select {
		case err := <-result:
			if err != nil {
				return zero, err
			}
			return last, nil
		case <-ctx.Done():
			c.close(nil)
			return zero, ctx.Err()
		}
	}
}
