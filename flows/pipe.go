// Package flows chains operators over sources whose element types differ
// from step to step.
package flows

import (
	"github.com/arielf-camacho/fp-source/primitives"
)

// Through applies op to source. It is the single-step form of Pipe.
func Through[IN, OUT any](
	source primitives.Source[IN],
	op primitives.Operator[IN, OUT],
) primitives.Source[OUT] {
	return op(source)
}

// Pipe2 applies two operators to source, in order.
//
//	Example of usage:
//
//	doubled := flows.Pipe2(
//		sources.FromSlice([]int{1, 2, 3}),
//		flows.Map(func(x int) int { return x * 2 }),
//		flows.Map(strconv.Itoa),
//	)
func Pipe2[A, B, C any](
	source primitives.Source[A],
	ab primitives.Operator[A, B],
	bc primitives.Operator[B, C],
) primitives.Source[C] {
	return bc(ab(source))
}

// Pipe3 applies three operators to source, in order.
func Pipe3[A, B, C, D any](
	source primitives.Source[A],
	ab primitives.Operator[A, B],
	bc primitives.Operator[B, C],
	cd primitives.Operator[C, D],
) primitives.Source[D] {
	return cd(bc(ab(source)))
}

// Pipe4 applies four operators to source, in order.
func Pipe4[A, B, C, D, E any](
	source primitives.Source[A],
	ab primitives.Operator[A, B],
	bc primitives.Operator[B, C],
	cd primitives.Operator[C, D],
	de primitives.Operator[D, E],
) primitives.Source[E] {
	return de(cd(bc(ab(source))))
}

// Pipe5 applies five operators to source, in order.
func Pipe5[A, B, C, D, E, F any](
	source primitives.Source[A],
	ab primitives.Operator[A, B],
	bc primitives.Operator[B, C],
	cd primitives.Operator[C, D],
	de primitives.Operator[D, E],
	ef primitives.Operator[E, F],
) primitives.Source[F] {
	return ef(de(cd(bc(ab(source)))))
}

// Compose returns the operator applying ab and then bc.
func Compose[A, B, C any](
	ab primitives.Operator[A, B],
	bc primitives.Operator[B, C],
) primitives.Operator[A, C] {
	return func(source primitives.Source[A]) primitives.Source[C] {
		return bc(ab(source))
	}
}
