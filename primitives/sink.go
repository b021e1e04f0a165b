package primitives

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// Sink is the consumer side of the protocol: a single handler receiving every
// lifecycle signal of one source execution.
type Sink[T any] func(Signal[T])

// Guard wraps the sink so that nothing reaches it after an EndSignal or after
// it closed the source through its talkback. Dropped signals are reported at
// Warn level since they indicate a misbehaving producer.
func Guard[T any](sink Sink[T], loggers ldlog.Loggers) Sink[T] {
	ended := false

	return func(signal Signal[T]) {
		if ended {
			loggers.Warnf("dropping %s signal received after the stream ended", signal.Kind)
			return
		}

		switch signal.Kind {
		case StartSignal:
			talkback := signal.Talkback
			sink(Start[T](func(kind TalkbackKind) {
				if ended {
					return
				}
				if kind == Close {
					ended = true
				}
				talkback(kind)
			}))
		case EndSignal:
			ended = true
			sink(signal)
		default:
			sink(signal)
		}
	}
}
