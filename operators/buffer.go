package operators

import (
	"time"

	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/sources"
)

// Buffer returns a source collecting the values of source and emitting them
// as a slice every time notifier emits, if any were collected. Values still
// buffered when source completes are emitted before completing. The notifier
// is closed once the result ends.
//
// Graphically, Buffer looks like this:
//
// -- 1 -- 2 ------- 3 -- 4 -- 5 -- | -->
//
// ----------- n ----------- n ---------->
//
// -- Buffer ----------------------------
//
// ----------[1,2]---------[3,4]--[5]| -->
func Buffer[T, N any](
	source primitives.Source[T],
	notifier primitives.Source[N],
) primitives.Source[[]T] {
	return func(sink primitives.Sink[[]T]) {
		var (
			buffer           []T
			sourceTalkback   = primitives.NoopTalkback
			notifierTalkback = primitives.NoopTalkback
			pulled, ended    bool
			s                = &starter[[]T]{sink: sink}
		)

		flush := func() {
			if len(buffer) == 0 {
				return
			}
			values := buffer
			buffer = nil
			sink(primitives.Push(values))
		}

		source(func(signal primitives.Signal[T]) {
			if ended {
				return
			}

			switch signal.Kind {
			case primitives.StartSignal:
				sourceTalkback = signal.Talkback
				notifier(func(signal primitives.Signal[N]) {
					if ended {
						return
					}

					switch signal.Kind {
					case primitives.StartSignal:
						notifierTalkback = signal.Talkback
						notifierTalkback(primitives.Pull)
					case primitives.PushSignal:
						flush()
					case primitives.EndSignal:
						if signal.Err != nil {
							ended = true
							sourceTalkback(primitives.Close)
							s.end(signal.Err)
						}
					}
				})
			case primitives.PushSignal:
				buffer = append(buffer, signal.Value)
				if !pulled {
					pulled = true
					sourceTalkback(primitives.Pull)
					notifierTalkback(primitives.Pull)
				} else {
					pulled = false
				}
			case primitives.EndSignal:
				ended = true
				notifierTalkback(primitives.Close)
				if signal.Err == nil {
					flush()
				}
				s.end(signal.Err)
			}
		})

		s.start(func(kind primitives.TalkbackKind) {
			if ended {
				return
			}
			if kind == primitives.Close {
				ended = true
				sourceTalkback(primitives.Close)
				notifierTalkback(primitives.Close)
				return
			}
			if !pulled {
				pulled = true
				sourceTalkback(primitives.Pull)
				notifierTalkback(primitives.Pull)
			}
		})
	}
}

// BufferTime is Buffer flushing every period.
func BufferTime[T any](
	source primitives.Source[T],
	period time.Duration,
) primitives.Source[[]T] {
	return Buffer(source, sources.Interval(period))
}
