package source

import (
	"github.com/samber/mo"
)

// Separated holds the two sources a partition produces.
type Separated[L, R any] struct {
	Left  Source[L]
	Right Source[R]
}

// FilterMap emits the present results of f applied to every emission of fa.
func FilterMap[A, B any](fa Source[A], f func(A) mo.Option[B]) Source[B] {
	return Chain(fa, func(a A) Source[B] {
		return FromOption(f(a))
	})
}

// Compact emits the values of the present options of fa.
func Compact[A any](fa Source[mo.Option[A]]) Source[A] {
	return FilterMap(fa, func(o mo.Option[A]) mo.Option[A] { return o })
}

// Filter emits the values of fa satisfying predicate.
func Filter[A any](fa Source[A], predicate func(A) bool) Source[A] {
	return FilterMap(fa, func(a A) mo.Option[A] {
		if predicate(a) {
			return mo.Some(a)
		}
		return mo.None[A]()
	})
}

// PartitionMap splits the emissions of fa by the side of f's result.
//
// Each side subscribes to fa on its own, so an unshared fa runs once per
// subscribed side. Wrap fa with operators.Defer or operators.Share when it must
// run once.
func PartitionMap[A, B, C any](fa Source[A], f func(A) mo.Either[B, C]) Separated[B, C] {
	return Separated[B, C]{
		Left: FilterMap(fa, func(a A) mo.Option[B] {
			if left, ok := f(a).Left(); ok {
				return mo.Some(left)
			}
			return mo.None[B]()
		}),
		Right: FilterMap(fa, func(a A) mo.Option[C] {
			if right, ok := f(a).Right(); ok {
				return mo.Some(right)
			}
			return mo.None[C]()
		}),
	}
}

// Separate splits fa into its left and right values. Like PartitionMap, each
// side runs fa on its own.
func Separate[A, B any](fa Source[mo.Either[A, B]]) Separated[A, B] {
	return PartitionMap(fa, func(e mo.Either[A, B]) mo.Either[A, B] { return e })
}

// Partition splits fa into the values failing predicate, on the left, and the
// values satisfying it, on the right. Like PartitionMap, each side runs fa on
// its own.
func Partition[A any](fa Source[A], predicate func(A) bool) Separated[A, A] {
	return PartitionMap(fa, func(a A) mo.Either[A, A] {
		if predicate(a) {
			return mo.Right[A, A](a)
		}
		return mo.Left[A, A](a)
	})
}
