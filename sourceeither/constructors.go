// Package sourceeither is the algebra of sources emitting mo.Either values.
// A Left emission is a domain failure carried as an ordinary value: it never
// ends the stream, and every combinator treats each emission on its own.
//
// Chain, for instance, subscribes to its continuation for every Right and
// re-emits every Left untouched without calling it.
package sourceeither

import (
	"github.com/samber/mo"

	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/source"
	"github.com/arielf-camacho/fp-source/task"
)

// SourceEither is a source whose emissions are either a failure E or a
// success A.
type SourceEither[E, A any] = primitives.Source[mo.Either[E, A]]

// Left returns a source emitting the failure e once.
func Left[E, A any](e E) SourceEither[E, A] {
	return source.Of(mo.Left[E, A](e))
}

// Right returns a source emitting the success a once.
func Right[E, A any](a A) SourceEither[E, A] {
	return source.Of(mo.Right[E, A](a))
}

// Of is Right.
func Of[E, A any](a A) SourceEither[E, A] {
	return Right[E](a)
}

// ThrowError is Left.
func ThrowError[E, A any](e E) SourceEither[E, A] {
	return Left[E, A](e)
}

// RightSource tags every emission of ma as a success.
func RightSource[E, A any](ma source.Source[A]) SourceEither[E, A] {
	return source.Map(ma, mo.Right[E, A])
}

// LeftSource tags every emission of me as a failure.
func LeftSource[E, A any](me source.Source[E]) SourceEither[E, A] {
	return source.Map(me, mo.Left[E, A])
}

// RightIO returns a source emitting the result of io as a success. io runs
// once for all the sinks attached while it is pending.
func RightIO[E, A any](io task.IO[A]) SourceEither[E, A] {
	return RightSource[E](source.FromIO(io))
}

// LeftIO returns a source emitting the result of io as a failure.
func LeftIO[E, A any](io task.IO[E]) SourceEither[E, A] {
	return LeftSource[E, A](source.FromIO(io))
}

// FromIOEither returns a source emitting the result of io.
func FromIOEither[E, A any](io task.IOEither[E, A]) SourceEither[E, A] {
	return source.FromIO(io)
}

// FromTaskEither returns a source emitting the result of t. An error returned
// by t is a stream fault and ends the source with it.
func FromTaskEither[E, A any](t task.TaskEither[E, A]) SourceEither[E, A] {
	return source.FromTask(t)
}

// FromIO is RightIO.
func FromIO[E, A any](io task.IO[A]) SourceEither[E, A] {
	return RightIO[E](io)
}

// FromTask returns a source emitting the result of t as a success.
func FromTask[E, A any](t task.Task[A]) SourceEither[E, A] {
	return RightSource[E](source.FromTask(t))
}

// FromSource is RightSource.
func FromSource[E, A any](ma source.Source[A]) SourceEither[E, A] {
	return RightSource[E](ma)
}

// FromEither returns a source emitting ea once.
func FromEither[E, A any](ea mo.Either[E, A]) SourceEither[E, A] {
	return fold(ea, ThrowError[E, A], Of[E, A])
}

// FromOption returns a source emitting the value of o as a success, or the
// result of onNone as a failure when o is empty.
func FromOption[E, A any](o mo.Option[A], onNone func() E) SourceEither[E, A] {
	if a, ok := o.Get(); ok {
		return Of[E](a)
	}
	return ThrowError[E, A](onNone())
}

// FromPredicate returns a function lifting the values satisfying predicate
// as successes, and the others as the failure onFalse builds from them.
func FromPredicate[E, A any](
	predicate func(A) bool,
	onFalse func(A) E,
) func(A) SourceEither[E, A] {
	return func(a A) SourceEither[E, A] {
		if predicate(a) {
			return Of[E](a)
		}
		return ThrowError[E, A](onFalse(a))
	}
}

// ToTaskEither returns a task resolving with the last emission of fa.
func ToTaskEither[E, A any](fa SourceEither[E, A]) task.TaskEither[E, A] {
	return source.ToTask(fa)
}

func fold[E, A, B any](ea mo.Either[E, A], onLeft func(E) B, onRight func(A) B) B {
	if e, ok := ea.Left(); ok {
		return onLeft(e)
	}
	a, _ := ea.Right()
	return onRight(a)
}
