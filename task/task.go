// Package task defines the deferred computations sources are lifted from and
// lowered to.
package task

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/sync/errgroup"
)

// IO is a synchronous side effect producing an A.
type IO[A any] func() A

// IOEither is a synchronous side effect producing a success or a failure.
type IOEither[E, A any] = IO[mo.Either[E, A]]

// Task is an asynchronous computation. It resolves exactly once, with a value
// or with an error, and stops early when ctx is done.
type Task[A any] func(ctx context.Context) (A, error)

// TaskEither is a Task resolving to a domain success or failure.
type TaskEither[E, A any] = Task[mo.Either[E, A]]

// Of returns a Task resolving to a.
func Of[A any](a A) Task[A] {
	return func(context.Context) (A, error) {
		return a, nil
	}
}

// Fail returns a Task failing with err.
func Fail[A any](err error) Task[A] {
	return func(context.Context) (A, error) {
		var zero A
		return zero, err
	}
}

// FromIO returns a Task running io each time it is run.
func FromIO[A any](io IO[A]) Task[A] {
	return func(context.Context) (A, error) {
		return io(), nil
	}
}

// Map returns a Task applying f to the result of t.
func Map[A, B any](t Task[A], f func(A) B) Task[B] {
	return func(ctx context.Context) (B, error) {
		a, err := t(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// Right returns a TaskEither resolving to a success.
func Right[E, A any](a A) TaskEither[E, A] {
	return Of(mo.Right[E, A](a))
}

// Left returns a TaskEither resolving to a failure.
func Left[E, A any](e E) TaskEither[E, A] {
	return Of(mo.Left[E, A](e))
}

// All runs the tasks concurrently and resolves to their results in order. The
// first failure cancels the remaining tasks.
func All[A any](tasks ...Task[A]) Task[[]A] {
	return func(ctx context.Context) ([]A, error) {
		results := make([]A, len(tasks))
		g, gctx := errgroup.WithContext(ctx)

		lo.ForEach(tasks, func(t Task[A], i int) {
			g.Go(func() error {
				result, err := t(gctx)
				if err != nil {
					return errors.Wrapf(err, "task %d failed", i)
				}
				results[i] = result
				return nil
			})
		})

		if err := g.Wait(); err != nil {
			return nil, err
		}

		return results, nil
	}
}
