package source

import (
	"github.com/samber/mo"

	"github.com/arielf-camacho/fp-source/operators"
	"github.com/arielf-camacho/fp-source/task"
)

// Functor maps the values of a source.
type Functor[A, B any] interface {
	Map(fa Source[A], f func(A) B) Source[B]
}

// Apply applies functions carried by a source.
type Apply[A, B any] interface {
	Functor[A, B]
	Ap(fab Source[func(A) B], fa Source[A]) Source[B]
}

// Applicative lifts plain values into sources.
type Applicative[A, B any] interface {
	Apply[A, B]
	Of(a A) Source[A]
}

// Chainable sequences sources.
type Chainable[A, B any] interface {
	Apply[A, B]
	Chain(fa Source[A], f func(A) Source[B]) Source[B]
}

// Monad is an Applicative that can Chain.
type Monad[A, B any] interface {
	Applicative[A, B]
	Chain(fa Source[A], f func(A) Source[B]) Source[B]
}

// Altable combines two sources of the same type.
type Altable[A, B any] interface {
	Functor[A, B]
	Alt(fa Source[A], that func() Source[A]) Source[A]
}

// Alternative is an Applicative with an Alt and its identity.
type Alternative[A, B any] interface {
	Applicative[A, B]
	Alt(fa Source[A], that func() Source[A]) Source[A]
	Zero() Source[A]
}

// Compactable removes the empty options, and splits the either values, of a
// source.
type Compactable[A, B any] interface {
	Compact(fa Source[mo.Option[A]]) Source[A]
	Separate(fa Source[mo.Either[A, B]]) Separated[A, B]
}

// Filterable filters and partitions sources.
type Filterable[A, B any] interface {
	Functor[A, B]
	Compactable[A, B]
	Filter(fa Source[A], predicate func(A) bool) Source[A]
	FilterMap(fa Source[A], f func(A) mo.Option[B]) Source[B]
	Partition(fa Source[A], predicate func(A) bool) Separated[A, A]
	PartitionMap(fa Source[A], f func(A) mo.Either[B, B]) Separated[B, B]
}

// MonadIO is a Monad lifting synchronous computations.
type MonadIO[A, B any] interface {
	Monad[A, B]
	FromIO(io task.IO[A]) Source[A]
}

// MonadTask is a MonadIO lifting asynchronous computations.
type MonadTask[A, B any] interface {
	MonadIO[A, B]
	FromTask(t task.Task[A]) Source[A]
}

// MonadSource is a MonadTask lifting sources.
type MonadSource[A, B any] interface {
	MonadTask[A, B]
	FromSource(fa Source[A]) Source[A]
}

// Monoid combines values associatively around an identity.
type Monoid[T any] interface {
	Concat(x, y T) T
	Empty() T
}

// Instance implements every interface of the package for values of type A
// mapped to values of type B.
type Instance[A, B any] struct{}

var (
	_ MonadSource[int, string] = Instance[int, string]{}
	_ Alternative[int, string] = Instance[int, string]{}
	_ Filterable[int, string]  = Instance[int, string]{}
	_ Chainable[int, string]   = Instance[int, string]{}
	_ Altable[int, string]     = Instance[int, string]{}
)

func (Instance[A, B]) Map(fa Source[A], f func(A) B) Source[B] {
	return Map(fa, f)
}

func (Instance[A, B]) Ap(fab Source[func(A) B], fa Source[A]) Source[B] {
	return Ap(fab, fa)
}

func (Instance[A, B]) Of(a A) Source[A] {
	return Of(a)
}

func (Instance[A, B]) Chain(fa Source[A], f func(A) Source[B]) Source[B] {
	return Chain(fa, f)
}

func (Instance[A, B]) Alt(fa Source[A], that func() Source[A]) Source[A] {
	return Alt(fa, that)
}

func (Instance[A, B]) Zero() Source[A] {
	return Zero[A]()
}

func (Instance[A, B]) Compact(fa Source[mo.Option[A]]) Source[A] {
	return Compact(fa)
}

func (Instance[A, B]) Separate(fa Source[mo.Either[A, B]]) Separated[A, B] {
	return Separate(fa)
}

func (Instance[A, B]) Filter(fa Source[A], predicate func(A) bool) Source[A] {
	return Filter(fa, predicate)
}

func (Instance[A, B]) FilterMap(fa Source[A], f func(A) mo.Option[B]) Source[B] {
	return FilterMap(fa, f)
}

func (Instance[A, B]) Partition(fa Source[A], predicate func(A) bool) Separated[A, A] {
	return Partition(fa, predicate)
}

func (Instance[A, B]) PartitionMap(fa Source[A], f func(A) mo.Either[B, B]) Separated[B, B] {
	return PartitionMap(fa, f)
}

func (Instance[A, B]) FromIO(io task.IO[A]) Source[A] {
	return FromIO(io)
}

func (Instance[A, B]) FromTask(t task.Task[A]) Source[A] {
	return FromTask(t)
}

func (Instance[A, B]) FromSource(fa Source[A]) Source[A] {
	return FromSource(fa)
}

type monoid[A any] struct{}

func (monoid[A]) Concat(x, y Source[A]) Source[A] {
	return operators.Merge(x, y)
}

func (monoid[A]) Empty() Source[A] {
	return Zero[A]()
}

// GetMonoid returns the monoid of sources merging them, with Zero as its
// identity.
func GetMonoid[A any]() Monoid[Source[A]] {
	return monoid[A]{}
}
