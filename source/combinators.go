package source

import (
	"github.com/samber/lo"

	"github.com/arielf-camacho/fp-source/operators"
)

// Map applies f to every emission of fa.
func Map[A, B any](fa Source[A], f func(A) B) Source[B] {
	return operators.Map(fa, f)
}

// Flap applies every function emitted by fab to a.
func Flap[A, B any](fab Source[func(A) B], a A) Source[B] {
	return Map(fab, func(f func(A) B) B { return f(a) })
}

// Ap applies the latest function emitted by fab to the latest value emitted by
// fa, every time either of them emits once both have.
//
// Graphically, Ap looks like this:
//
// fab: -- f ------------ g ----------- | -->
//
// fa:  ------ 1 --- 2 --------- 3 ---- | -->
//
// ------- f(1) - f(2) - g(2) - g(3) -- | -->
func Ap[A, B any](fab Source[func(A) B], fa Source[A]) Source[B] {
	return Map(operators.Combine(fab, fa), func(t lo.Tuple2[func(A) B, A]) B {
		return t.A(t.B)
	})
}

// ApFirst combines fa and fb, keeping the values of fa.
func ApFirst[A, B any](fa Source[A], fb Source[B]) Source[A] {
	return Ap(Map(fa, func(a A) func(B) A {
		return func(B) A { return a }
	}), fb)
}

// ApSecond combines fa and fb, keeping the values of fb.
func ApSecond[A, B any](fa Source[A], fb Source[B]) Source[B] {
	return Ap(Map(fa, func(A) func(B) B {
		return func(b B) B { return b }
	}), fb)
}

// Chain subscribes to f(a) for every emission a of fa and merges the values
// of all of them.
func Chain[A, B any](fa Source[A], f func(A) Source[B]) Source[B] {
	return operators.MergeMap(fa, f)
}

// ChainFirst is Chain emitting the value of fa once for every emission of
// f(a).
func ChainFirst[A, B any](fa Source[A], f func(A) Source[B]) Source[A] {
	return Chain(fa, func(a A) Source[A] {
		return Map(f(a), func(B) A { return a })
	})
}

// Flatten merges the sources emitted by mma.
func Flatten[A any](mma Source[Source[A]]) Source[A] {
	return Chain(mma, func(ma Source[A]) Source[A] { return ma })
}

// Alt merges fa with the source returned by that. The function is called
// right away, not when the result is subscribed.
func Alt[A any](fa Source[A], that func() Source[A]) Source[A] {
	return operators.Merge(fa, that())
}
