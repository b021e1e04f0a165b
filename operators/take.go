package operators

import (
	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/sources"
)

// Take returns a source emitting the first count values of source, closing it
// once they have been emitted.
//
// Graphically, Take(3) looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- Take(3) -------------------------
//
// -- 1 -- 2 -- 3 | ------------------>
func Take[T any](source primitives.Source[T], count int) primitives.Source[T] {
	if count <= 0 {
		return func(sink primitives.Sink[T]) {
			source(func(signal primitives.Signal[T]) {
				if signal.Kind == primitives.StartSignal {
					signal.Talkback(primitives.Close)
				}
			})
			sources.Empty[T]()(sink)
		}
	}

	return func(sink primitives.Sink[T]) {
		var (
			ended    bool
			taken    int
			talkback = primitives.NoopTalkback
			s        = &starter[T]{sink: sink}
		)

		source(func(signal primitives.Signal[T]) {
			if ended {
				return
			}

			switch signal.Kind {
			case primitives.StartSignal:
				talkback = signal.Talkback
			case primitives.PushSignal:
				taken++
				sink(signal)
				if !ended && taken >= count {
					ended = true
					talkback(primitives.Close)
					s.end(nil)
				}
			case primitives.EndSignal:
				ended = true
				s.end(signal.Err)
			}
		})

		s.start(func(kind primitives.TalkbackKind) {
			if ended {
				return
			}
			if kind == primitives.Close {
				ended = true
				talkback(primitives.Close)
				return
			}
			talkback(primitives.Pull)
		})
	}
}
