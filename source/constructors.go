// Package source is the algebra of primitives.Source: functor, applicative,
// monad, alternative and filterable combinators over a value-carrying
// stream, plus a do-notation for building records field by field.
//
// Every combinator returns a new source; nothing runs until a terminal such
// as ToTask or sinks.ToArray attaches to it.
package source

import (
	"github.com/samber/mo"

	"github.com/arielf-camacho/fp-source/operators"
	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/sinks"
	"github.com/arielf-camacho/fp-source/sources"
	"github.com/arielf-camacho/fp-source/task"
)

// Source is the stream the algebra works on.
type Source[A any] = primitives.Source[A]

// Of returns a source emitting a once.
func Of[A any](a A) Source[A] {
	return sources.FromValue(a)
}

// Zero returns the source completing without emitting.
func Zero[A any]() Source[A] {
	return sources.Empty[A]()
}

// FromOption returns a source emitting the value of o, or Zero when o is
// empty.
func FromOption[A any](o mo.Option[A]) Source[A] {
	if value, ok := o.Get(); ok {
		return Of(value)
	}
	return Zero[A]()
}

// FromIO returns a source running io when the first sink attaches and
// emitting its result to every sink attached meanwhile.
func FromIO[A any](io task.IO[A]) Source[A] {
	return operators.Defer(func() primitives.Source[A] {
		return sources.FromValue(io())
	})
}

// FromTask returns a source running t when the first sink attaches and
// emitting its result to every sink attached before it resolves. A failed task
// ends the source with its error.
func FromTask[A any](t task.Task[A]) Source[A] {
	return operators.Defer(func() primitives.Source[A] {
		return sources.FromTask(t)
	})
}

// FromSource returns fa unchanged.
func FromSource[A any](fa Source[A]) Source[A] {
	return fa
}

// ToTask returns a task resolving with the last value fa emits before
// completing. The task never resolves for a source that never completes,
// unless its context is bounded.
func ToTask[A any](fa Source[A]) task.Task[A] {
	return sinks.ToTask(fa)
}
