package operators

import (
	"github.com/arielf-camacho/fp-source/primitives"
)

// Tap returns a source emitting the values of source unchanged, calling fn
// with each of them before it is forwarded.
//
// Graphically, Tap looks like this:
//
// -- 1 -- 2 -- 3 -- | -->
//
// -- Tap f(x) -----------
//
// -- 1 -- 2 -- 3 -- | -->
func Tap[T any](source primitives.Source[T], fn func(T)) primitives.Source[T] {
	return func(sink primitives.Sink[T]) {
		source(func(signal primitives.Signal[T]) {
			if signal.Kind == primitives.PushSignal {
				fn(signal.Value)
			}
			sink(signal)
		})
	}
}
