package operators

import (
	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/sources"
)

// Merge returns a source emitting the values of all the given sources as they
// arrive. Pulls and closes are forwarded to every source. It completes once all
// of them completed, or ends with the first error, closing the rest.
//
// Graphically, Merge looks like this:
//
// -- 1 ------- 3 ------- 5 -- | -->
//
// ------- 2 ------- 4 ------- | -->
//
// -- Merge ------------------------
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
func Merge[T any](inputs ...primitives.Source[T]) primitives.Source[T] {
	if len(inputs) == 0 {
		return sources.Empty[T]()
	}

	return func(sink primitives.Sink[T]) {
		var (
			talkbacks = make([]primitives.Talkback, len(inputs))
			done      = make([]bool, len(inputs))
			remaining = len(inputs)
			ended     bool
			s         = &starter[T]{sink: sink}
		)
		for i := range talkbacks {
			talkbacks[i] = primitives.NoopTalkback
		}

		closeAll := func() {
			for i, talkback := range talkbacks {
				if !done[i] {
					done[i] = true
					talkback(primitives.Close)
				}
			}
		}

		for i, source := range inputs {
			source(func(signal primitives.Signal[T]) {
				if ended || done[i] {
					if signal.Kind == primitives.StartSignal {
						done[i] = true
						signal.Talkback(primitives.Close)
					}
					return
				}

				switch signal.Kind {
				case primitives.StartSignal:
					talkbacks[i] = signal.Talkback
				case primitives.PushSignal:
					sink(signal)
				case primitives.EndSignal:
					done[i] = true
					if signal.Err != nil {
						ended = true
						closeAll()
						s.end(signal.Err)
						return
					}

					remaining--
					if remaining == 0 {
						ended = true
						s.end(nil)
					}
				}
			})
		}

		s.start(func(kind primitives.TalkbackKind) {
			if ended {
				return
			}
			if kind == primitives.Close {
				ended = true
				closeAll()
				return
			}

			for i, talkback := range talkbacks {
				if !done[i] {
					talkback(kind)
				}
			}
		})
	}
}
