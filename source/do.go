package source

import (
	"fmt"

	"github.com/samber/lo"
)

// Record is the value built by the do-notation, one entry per bound name.
type Record map[string]any

// With returns a copy of r holding value under name. It panics if r already
// binds name.
func (r Record) With(name string, value any) Record {
	r.MustBeUnbound(name)
	return lo.Assign(r, Record{name: value})
}

// MustBeUnbound panics if r already binds name.
func (r Record) MustBeUnbound(name string) {
	if lo.HasKey(r, name) {
		panic(fmt.Sprintf("name %q is already bound", name))
	}
}

// Do returns a source emitting an empty Record once.
func Do() Source[Record] {
	return Of(Record{})
}

// BindTo wraps every emission of fa in a Record under name.
func BindTo[A any](fa Source[A], name string) Source[Record] {
	return Map(fa, func(a A) Record {
		return Record{name: a}
	})
}

// Bind adds, for every record emitted by fa, one record per emission of f
// under name. Binding a name the record already holds panics.
func Bind[B any](fa Source[Record], name string, f func(Record) Source[B]) Source[Record] {
	return Chain(fa, func(r Record) Source[Record] {
		r.MustBeUnbound(name)
		return Map(f(r), func(b B) Record {
			return r.With(name, b)
		})
	})
}

// ApS adds the values of fb to the records of fa under name, pairing them like
// Ap does. Binding a name the record already holds panics.
func ApS[B any](fa Source[Record], name string, fb Source[B]) Source[Record] {
	return Ap(Map(fa, func(r Record) func(B) Record {
		r.MustBeUnbound(name)
		return func(b B) Record {
			return r.With(name, b)
		}
	}), fb)
}
