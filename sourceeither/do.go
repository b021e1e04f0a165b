package sourceeither

import (
	"github.com/arielf-camacho/fp-source/source"
)

// Record is the value built by the do-notation.
type Record = source.Record

// Do returns a source emitting an empty Record once as a success.
func Do[E any]() SourceEither[E, Record] {
	return Of[E](Record{})
}

// BindTo wraps every success of fa in a Record under name.
func BindTo[E, A any](fa SourceEither[E, A], name string) SourceEither[E, Record] {
	return Map(fa, func(a A) Record {
		return Record{name: a}
	})
}

// Bind adds, for every record emitted by fa, one record per success of f
// under name. Failures of either side pass through. Binding a name the record
// already holds panics.
func Bind[E, B any](
	fa SourceEither[E, Record],
	name string,
	f func(Record) SourceEither[E, B],
) SourceEither[E, Record] {
	return Chain(fa, func(r Record) SourceEither[E, Record] {
		r.MustBeUnbound(name)
		return Map(f(r), func(b B) Record {
			return r.With(name, b)
		})
	})
}

// ApS adds the successes of fb to the records of fa under name, pairing them
// like Ap does.
func ApS[E, B any](
	fa SourceEither[E, Record],
	name string,
	fb SourceEither[E, B],
) SourceEither[E, Record] {
	return Ap(Map(fa, func(r Record) func(B) Record {
		r.MustBeUnbound(name)
		return func(b B) Record {
			return r.With(name, b)
		}
	}), fb)
}
