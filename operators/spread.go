package operators

import (
	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/sources"
)

// Spread returns a source emitting the elements of every slice emitted by
// source, one by one.
//
// Graphically, Spread looks like this:
//
// -- [1, 2] -------- [3, 4] ------- | -->
//
// -- Spread --------------------------
//
// -- 1 -- 2 ------- 3 -- 4 ------- | -->
func Spread[T any](source primitives.Source[[]T]) primitives.Source[T] {
	return MergeMap(source, sources.FromSlice[T])
}
