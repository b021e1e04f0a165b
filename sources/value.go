package sources

import (
	"github.com/arielf-camacho/fp-source/primitives"
)

// FromValue returns a source emitting the given value once it is pulled, then
// completing.
//
// Graphically, FromValue(1) looks like this:
//
// -- 1 -- | -->
func FromValue[T any](value T) primitives.Source[T] {
	return func(sink primitives.Sink[T]) {
		ended := false

		sink(primitives.Start[T](func(kind primitives.TalkbackKind) {
			if ended {
				return
			}
			ended = true
			if kind == primitives.Close {
				return
			}

			sink(primitives.Push(value))
			sink(primitives.End[T](nil))
		}))
	}
}

// Single returns a source calling get when it is pulled and emitting its
// result. An error returned by get ends the stream with that error.
//
// Graphically, Single(f) where f() = 1 looks like this:
//
// ----------------------------- | -->
//
// -- Single f(x) = 1 ----------------
//
// -----------------------1 ---- | -->
func Single[T any](get func() (T, error)) primitives.Source[T] {
	return func(sink primitives.Sink[T]) {
		ended := false

		sink(primitives.Start[T](func(kind primitives.TalkbackKind) {
			if ended {
				return
			}
			ended = true
			if kind == primitives.Close {
				return
			}

			value, err := get()
			if err != nil {
				sink(primitives.End[T](err))
				return
			}
			sink(primitives.Push(value))
			sink(primitives.End[T](nil))
		}))
	}
}

// Empty returns a source that completes as soon as it starts.
func Empty[T any]() primitives.Source[T] {
	return func(sink primitives.Sink[T]) {
		sink(primitives.Start[T](primitives.NoopTalkback))
		sink(primitives.End[T](nil))
	}
}

// Never returns a source that starts and then stays silent forever.
func Never[T any]() primitives.Source[T] {
	return func(sink primitives.Sink[T]) {
		sink(primitives.Start[T](primitives.NoopTalkback))
	}
}

// Fail returns a source that ends with err as soon as it starts.
func Fail[T any](err error) primitives.Source[T] {
	return func(sink primitives.Sink[T]) {
		sink(primitives.Start[T](primitives.NoopTalkback))
		sink(primitives.End[T](err))
	}
}
