package operators

import (
	"github.com/arielf-camacho/fp-source/primitives"
)

// Map returns a source emitting fn applied to every value of source.
//
// Graphically, Map looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- Map f(x) = x * 2 ---------------
//
// -- 2 -- 4 -- 6 -- 8 -- 10 - | -->
func Map[IN, OUT any](
	source primitives.Source[IN],
	fn func(IN) OUT,
) primitives.Source[OUT] {
	return func(sink primitives.Sink[OUT]) {
		source(func(signal primitives.Signal[IN]) {
			switch signal.Kind {
			case primitives.StartSignal:
				sink(primitives.Start[OUT](signal.Talkback))
			case primitives.PushSignal:
				sink(primitives.Push(fn(signal.Value)))
			default:
				sink(primitives.End[OUT](signal.Err))
			}
		})
	}
}
