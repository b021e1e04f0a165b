package operators

import (
	"github.com/arielf-camacho/fp-source/primitives"
)

// Filter returns a source emitting only the values of source satisfying
// predicate. Rejected values are replaced by a pull upstream.
//
// Graphically, Filter looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- Filter f(x) = x % 2 == 0 ------
//
// ------- 2 ------- 4 ------- | -->
func Filter[T any](
	source primitives.Source[T],
	predicate func(T) bool,
) primitives.Source[T] {
	return func(sink primitives.Sink[T]) {
		talkback := primitives.NoopTalkback

		source(func(signal primitives.Signal[T]) {
			switch signal.Kind {
			case primitives.StartSignal:
				talkback = signal.Talkback
				sink(signal)
			case primitives.PushSignal:
				if !predicate(signal.Value) {
					talkback(primitives.Pull)
					return
				}
				sink(signal)
			default:
				sink(signal)
			}
		})
	}
}
