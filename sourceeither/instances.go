package sourceeither

import (
	"github.com/arielf-camacho/fp-source/source"
	"github.com/arielf-camacho/fp-source/task"
)

// Functor maps the successes of a source.
type Functor[E, A, B any] interface {
	Map(fa SourceEither[E, A], f func(A) B) SourceEither[E, B]
}

// Bifunctor maps the failures and the successes of a source.
type Bifunctor[E, G, A, B any] interface {
	Bimap(fa SourceEither[E, A], f func(E) G, g func(A) B) SourceEither[G, B]
	MapLeft(fa SourceEither[E, A], f func(E) G) SourceEither[G, A]
}

// Apply applies functions carried by a source.
type Apply[E, A, B any] interface {
	Functor[E, A, B]
	Ap(fab SourceEither[E, func(A) B], fa SourceEither[E, A]) SourceEither[E, B]
}

// Monad lifts successes and sequences sources.
type Monad[E, A, B any] interface {
	Apply[E, A, B]
	Of(a A) SourceEither[E, A]
	Chain(ma SourceEither[E, A], f func(A) SourceEither[E, B]) SourceEither[E, B]
}

// Altable recovers from failures.
type Altable[E, A, B any] interface {
	Functor[E, A, B]
	Alt(fa SourceEither[E, A], that func() SourceEither[E, A]) SourceEither[E, A]
}

// MonadThrow is a Monad lifting failures.
type MonadThrow[E, A, B any] interface {
	Monad[E, A, B]
	ThrowError(e E) SourceEither[E, A]
}

// MonadIO is a Monad lifting synchronous computations.
type MonadIO[E, A, B any] interface {
	Monad[E, A, B]
	FromIO(io task.IO[A]) SourceEither[E, A]
}

// MonadTask is a MonadIO lifting asynchronous computations.
type MonadTask[E, A, B any] interface {
	MonadIO[E, A, B]
	FromTask(t task.Task[A]) SourceEither[E, A]
}

// MonadSource is a MonadTask lifting plain sources.
type MonadSource[E, A, B any] interface {
	MonadTask[E, A, B]
	FromSource(ma source.Source[A]) SourceEither[E, A]
}

// Instance implements every interface of the package keeping the failure
// type E, for successes of type A mapped to successes of type B.
type Instance[E, A, B any] struct{}

// BifunctorInstance implements Bifunctor.
type BifunctorInstance[E, G, A, B any] struct{}

var (
	_ MonadThrow[string, int, bool]        = Instance[string, int, bool]{}
	_ MonadSource[string, int, bool]       = Instance[string, int, bool]{}
	_ Altable[string, int, bool]           = Instance[string, int, bool]{}
	_ Bifunctor[string, error, int, bool]  = BifunctorInstance[string, error, int, bool]{}
	_ Bifunctor[string, string, int, bool] = Instance[string, int, bool]{}
)

func (Instance[E, A, B]) Map(fa SourceEither[E, A], f func(A) B) SourceEither[E, B] {
	return Map(fa, f)
}

func (Instance[E, A, B]) Ap(fab SourceEither[E, func(A) B], fa SourceEither[E, A]) SourceEither[E, B] {
	return Ap(fab, fa)
}

func (Instance[E, A, B]) Of(a A) SourceEither[E, A] {
	return Of[E](a)
}

func (Instance[E, A, B]) Chain(ma SourceEither[E, A], f func(A) SourceEither[E, B]) SourceEither[E, B] {
	return Chain(ma, f)
}

func (Instance[E, A, B]) Alt(fa SourceEither[E, A], that func() SourceEither[E, A]) SourceEither[E, A] {
	return Alt(fa, that)
}

func (Instance[E, A, B]) ThrowError(e E) SourceEither[E, A] {
	return ThrowError[E, A](e)
}

func (Instance[E, A, B]) FromIO(io task.IO[A]) SourceEither[E, A] {
	return FromIO[E](io)
}

func (Instance[E, A, B]) FromTask(t task.Task[A]) SourceEither[E, A] {
	return FromTask[E](t)
}

func (Instance[E, A, B]) FromSource(ma source.Source[A]) SourceEither[E, A] {
	return FromSource[E](ma)
}

func (Instance[E, A, B]) Bimap(fa SourceEither[E, A], f func(E) E, g func(A) B) SourceEither[E, B] {
	return Bimap(fa, f, g)
}

func (Instance[E, A, B]) MapLeft(fa SourceEither[E, A], f func(E) E) SourceEither[E, A] {
	return MapLeft(fa, f)
}

func (BifunctorInstance[E, G, A, B]) Bimap(
	fa SourceEither[E, A],
	f func(E) G,
	g func(A) B,
) SourceEither[G, B] {
	return Bimap(fa, f, g)
}

func (BifunctorInstance[E, G, A, B]) MapLeft(fa SourceEither[E, A], f func(E) G) SourceEither[G, A] {
	return MapLeft(fa, f)
}
