package sinks

import (
	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/scheduler"
)

// ToArray returns the values source emits synchronously once it is pulled, and
// the error it ended with if it ended. A source still running after the
// synchronous phase is closed.
//
// Graphically, ToArray looks like this:
//
// -- 1 -- 2 -- 3 -- | -->
//
// -- ToArray -------------
//
// -> [1, 2, 3]
func ToArray[T any](source primitives.Source[T]) ([]T, error) {
	return ToArrayOn(nil, source)
}

// ToArrayOn is ToArray running on s.
func ToArrayOn[T any](
	s scheduler.Scheduler,
	source primitives.Source[T],
) (values []T, err error) {
	scheduler.OrDefault(s).Run(func() {
		var (
			talkback = primitives.NoopTalkback
			ended    bool
		)

		source(func(signal primitives.Signal[T]) {
			if ended {
				return
			}

			switch signal.Kind {
			case primitives.StartSignal:
				talkback = signal.Talkback
				talkback(primitives.Pull)
			case primitives.PushSignal:
				values = append(values, signal.Value)
				talkback(primitives.Pull)
			case primitives.EndSignal:
				ended = true
				err = signal.Err
			}
		})

		if !ended {
			ended = true
			talkback(primitives.Close)
		}
	})

	return values, err
}
