package flows

import (
	"time"

	"github.com/samber/lo"

	"github.com/arielf-camacho/fp-source/operators"
	"github.com/arielf-camacho/fp-source/primitives"
)

// Map is the operator form of operators.Map.
func Map[IN, OUT any](fn func(IN) OUT) primitives.Operator[IN, OUT] {
	return func(source primitives.Source[IN]) primitives.Source[OUT] {
		return operators.Map(source, fn)
	}
}

// Filter is the operator form of operators.Filter.
func Filter[T any](predicate func(T) bool) primitives.Operator[T, T] {
	return func(source primitives.Source[T]) primitives.Source[T] {
		return operators.Filter(source, predicate)
	}
}

// Tap is the operator form of operators.Tap.
func Tap[T any](fn func(T)) primitives.Operator[T, T] {
	return func(source primitives.Source[T]) primitives.Source[T] {
		return operators.Tap(source, fn)
	}
}

// Take is the operator form of operators.Take.
func Take[T any](count int) primitives.Operator[T, T] {
	return func(source primitives.Source[T]) primitives.Source[T] {
		return operators.Take(source, count)
	}
}

// MergeMap is the operator form of operators.MergeMap.
func MergeMap[IN, OUT any](
	fn func(IN) primitives.Source[OUT],
	opts ...operators.Option,
) primitives.Operator[IN, OUT] {
	return func(source primitives.Source[IN]) primitives.Source[OUT] {
		return operators.MergeMap(source, fn, opts...)
	}
}

// MergeWith returns the operator merging its source with others.
func MergeWith[T any](others ...primitives.Source[T]) primitives.Operator[T, T] {
	return func(source primitives.Source[T]) primitives.Source[T] {
		return operators.Merge(append([]primitives.Source[T]{source}, others...)...)
	}
}

// CombineWith returns the operator combining its source with other.
func CombineWith[A, B any](
	other primitives.Source[B],
) primitives.Operator[A, lo.Tuple2[A, B]] {
	return func(source primitives.Source[A]) primitives.Source[lo.Tuple2[A, B]] {
		return operators.Combine(source, other)
	}
}

// BufferTime is the operator form of operators.BufferTime.
func BufferTime[T any](period time.Duration) primitives.Operator[T, []T] {
	return func(source primitives.Source[T]) primitives.Source[[]T] {
		return operators.BufferTime(source, period)
	}
}

// Spread is the operator form of operators.Spread.
func Spread[T any]() primitives.Operator[[]T, T] {
	return operators.Spread[T]
}

// Share is the operator form of operators.Share.
func Share[T any]() primitives.Operator[T, T] {
	return operators.Share[T]
}
