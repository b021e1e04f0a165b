package sources

import (
	"github.com/arielf-camacho/fp-source/primitives"
)

// FromSlice returns a source emitting the values of the given slice in order,
// one per pull, and completing after the last one. Pulls received while a
// value is being delivered are queued instead of recursing, so a sink pulling
// from within its push handler enumerates the slice iteratively.
//
// Graphically, FromSlice([]int{1, 2, 3, 4, 5}) looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
func FromSlice[T any](values []T) primitives.Source[T] {
	return func(sink primitives.Sink[T]) {
		var (
			ended   bool
			looping bool
			pulled  bool
			current int
		)

		sink(primitives.Start[T](func(kind primitives.TalkbackKind) {
			if kind == primitives.Close {
				ended = true
				return
			}
			if looping {
				pulled = true
				return
			}

			pulled, looping = true, true
			for pulled && !ended {
				if current < len(values) {
					pulled = false
					value := values[current]
					current++
					sink(primitives.Push(value))
				} else {
					ended = true
					sink(primitives.End[T](nil))
				}
			}
			looping = false
		}))
	}
}
