package sourceeither

import (
	"github.com/samber/mo"

	"github.com/arielf-camacho/fp-source/source"
)

// Map applies f to every success of fa.
func Map[E, A, B any](fa SourceEither[E, A], f func(A) B) SourceEither[E, B] {
	return source.Map(fa, func(ea mo.Either[E, A]) mo.Either[E, B] {
		return mapRight(ea, f)
	})
}

// MapLeft applies f to every failure of fa.
func MapLeft[E, G, A any](fa SourceEither[E, A], f func(E) G) SourceEither[G, A] {
	return Bimap(fa, f, func(a A) A { return a })
}

// Bimap applies f to every failure and g to every success of fa.
func Bimap[E, G, A, B any](fa SourceEither[E, A], f func(E) G, g func(A) B) SourceEither[G, B] {
	return source.Map(fa, func(ea mo.Either[E, A]) mo.Either[G, B] {
		return fold(ea, func(e E) mo.Either[G, B] {
			return mo.Left[G, B](f(e))
		}, func(a A) mo.Either[G, B] {
			return mo.Right[G, B](g(a))
		})
	})
}

// Swap turns every success of ma into a failure, and every failure into a
// success.
func Swap[E, A any](ma SourceEither[E, A]) SourceEither[A, E] {
	return source.Map(ma, func(ea mo.Either[E, A]) mo.Either[A, E] {
		return fold(ea, mo.Right[A, E], mo.Left[A, E])
	})
}

// Flap applies every function emitted by fab to a.
func Flap[E, A, B any](fab SourceEither[E, func(A) B], a A) SourceEither[E, B] {
	return Map(fab, func(f func(A) B) B { return f(a) })
}

// Ap pairs the latest emissions of fab and fa like source.Ap does. A pair
// holding a failure emits the failure, the one of fab first.
func Ap[E, A, B any](fab SourceEither[E, func(A) B], fa SourceEither[E, A]) SourceEither[E, B] {
	lifted := source.Map(fab, func(gab mo.Either[E, func(A) B]) func(mo.Either[E, A]) mo.Either[E, B] {
		return func(ga mo.Either[E, A]) mo.Either[E, B] {
			return fold(gab, mo.Left[E, B], func(f func(A) B) mo.Either[E, B] {
				return mapRight(ga, f)
			})
		}
	})
	return source.Ap(lifted, fa)
}

// ApFirst combines fa and fb, keeping the successes of fa.
func ApFirst[E, A, B any](fa SourceEither[E, A], fb SourceEither[E, B]) SourceEither[E, A] {
	return Ap(Map(fa, func(a A) func(B) A {
		return func(B) A { return a }
	}), fb)
}

// ApSecond combines fa and fb, keeping the successes of fb.
func ApSecond[E, A, B any](fa SourceEither[E, A], fb SourceEither[E, B]) SourceEither[E, B] {
	return Ap(Map(fa, func(A) func(B) B {
		return func(b B) B { return b }
	}), fb)
}

// Chain subscribes to f(a) for every success a of ma and merges their
// emissions. Every failure of ma is emitted as it is, without calling f.
func Chain[E, A, B any](ma SourceEither[E, A], f func(A) SourceEither[E, B]) SourceEither[E, B] {
	return source.Chain(ma, func(ea mo.Either[E, A]) SourceEither[E, B] {
		return fold(ea, Left[E, B], f)
	})
}

// ChainFirst is Chain emitting the success of ma once for every success
// of f(a).
func ChainFirst[E, A, B any](ma SourceEither[E, A], f func(A) SourceEither[E, B]) SourceEither[E, A] {
	return Chain(ma, func(a A) SourceEither[E, A] {
		return Map(f(a), func(B) A { return a })
	})
}

// Flatten merges the sources carried by the successes of mma.
func Flatten[E, A any](mma SourceEither[E, SourceEither[E, A]]) SourceEither[E, A] {
	return Chain(mma, func(ma SourceEither[E, A]) SourceEither[E, A] { return ma })
}

// Alt replaces every failure of fa with the emissions of that(). that is
// called again for each failure.
func Alt[E, A any](fa SourceEither[E, A], that func() SourceEither[E, A]) SourceEither[E, A] {
	return source.Chain(fa, func(ea mo.Either[E, A]) SourceEither[E, A] {
		if ea.IsLeft() {
			return that()
		}
		return source.Of(ea)
	})
}

// FilterOrElse turns every success of ma failing predicate into the failure
// onFalse builds from it.
func FilterOrElse[E, A any](
	ma SourceEither[E, A],
	predicate func(A) bool,
	onFalse func(A) E,
) SourceEither[E, A] {
	return Chain(ma, FromPredicate(predicate, onFalse))
}

func mapRight[E, A, B any](ea mo.Either[E, A], f func(A) B) mo.Either[E, B] {
	return fold(ea, mo.Left[E, B], func(a A) mo.Either[E, B] {
		return mo.Right[E, B](f(a))
	})
}
