package sourceeither

import (
	"github.com/samber/mo"

	"github.com/arielf-camacho/fp-source/source"
)

// Match subscribes, for every emission of ma, to onLeft of its failure or
// onRight of its success, and merges their values.
func Match[E, A, B any](
	ma SourceEither[E, A],
	onLeft func(E) source.Source[B],
	onRight func(A) source.Source[B],
) source.Source[B] {
	return source.Chain(ma, func(ea mo.Either[E, A]) source.Source[B] {
		return fold(ea, onLeft, onRight)
	})
}

// MatchE is Match.
func MatchE[E, A, B any](
	ma SourceEither[E, A],
	onLeft func(E) source.Source[B],
	onRight func(A) source.Source[B],
) source.Source[B] {
	return Match(ma, onLeft, onRight)
}

// Fold is MatchE.
func Fold[E, A, B any](
	ma SourceEither[E, A],
	onLeft func(E) source.Source[B],
	onRight func(A) source.Source[B],
) source.Source[B] {
	return MatchE(ma, onLeft, onRight)
}

// GetOrElse emits the successes of ma, and the values of onLeft for each of
// its failures.
func GetOrElse[E, A any](ma SourceEither[E, A], onLeft func(E) source.Source[A]) source.Source[A] {
	return Match(ma, onLeft, source.Of[A])
}

// OrElse replaces every failure of ma with onLeft of it.
func OrElse[E, A, M any](
	ma SourceEither[E, A],
	onLeft func(E) SourceEither[M, A],
) SourceEither[M, A] {
	return source.Chain(ma, func(ea mo.Either[E, A]) SourceEither[M, A] {
		return fold(ea, onLeft, Right[M, A])
	})
}

// OrElseFirst runs onLeft for every failure of ma. The failure is kept once
// for every success onLeft emits, and replaced by the failures it emits.
func OrElseFirst[E, A, B any](
	ma SourceEither[E, A],
	onLeft func(E) SourceEither[E, B],
) SourceEither[E, A] {
	return OrElse(ma, func(e E) SourceEither[E, A] {
		return source.Map(onLeft(e), func(eb mo.Either[E, B]) mo.Either[E, A] {
			return fold(eb, mo.Left[E, A], func(B) mo.Either[E, A] {
				return mo.Left[E, A](e)
			})
		})
	})
}

// OrLeft replaces every failure of ma with the values of onLeft of it,
// tagged as failures.
func OrLeft[E1, E2, A any](
	ma SourceEither[E1, A],
	onLeft func(E1) source.Source[E2],
) SourceEither[E2, A] {
	return source.Chain(ma, func(ea mo.Either[E1, A]) SourceEither[E2, A] {
		return fold(ea, func(e E1) SourceEither[E2, A] {
			return LeftSource[E2, A](onLeft(e))
		}, Right[E2, A])
	})
}
