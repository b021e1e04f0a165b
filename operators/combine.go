package operators

import (
	"github.com/samber/lo"

	"github.com/arielf-camacho/fp-source/primitives"
)

// Combine returns a source emitting the pair of the latest values of a and b
// every time either of them emits, once both emitted at least once. It
// completes once both completed or as soon as one completes without having
// emitted, and ends with the first error of either, closing the other.
//
// Graphically, Combine looks like this:
//
// -- a ------- b ------------------ | -->
//
// ------ 1 ------- 2 ------ 3 ----- | -->
//
// -- Combine -------------------------
//
// ------ a1 -- b1 - b2 ----- b3 --- | -->
func Combine[A, B any](
	a primitives.Source[A],
	b primitives.Source[B],
) primitives.Source[lo.Tuple2[A, B]] {
	return func(sink primitives.Sink[lo.Tuple2[A, B]]) {
		var (
			lastA                    A
			lastB                    B
			hasA, hasB               bool
			talkbackA                = primitives.NoopTalkback
			talkbackB                = primitives.NoopTalkback
			gotSignal, gotEnd, ended bool
			s                        = &starter[lo.Tuple2[A, B]]{sink: sink}
		)

		end := func(err error, hasValue bool, other primitives.Talkback) {
			if err != nil || !hasValue {
				ended = true
				other(primitives.Close)
				s.end(err)
				return
			}
			if !gotEnd {
				gotEnd = true
				return
			}
			ended = true
			s.end(nil)
		}

		a(func(signal primitives.Signal[A]) {
			if ended {
				return
			}

			switch signal.Kind {
			case primitives.StartSignal:
				talkbackA = signal.Talkback
			case primitives.PushSignal:
				lastA, hasA = signal.Value, true
				if !hasB {
					if !gotSignal {
						talkbackB(primitives.Pull)
					} else {
						gotSignal = false
					}
					return
				}
				gotSignal = false
				sink(primitives.Push(lo.T2(lastA, lastB)))
			case primitives.EndSignal:
				end(signal.Err, hasA, talkbackB)
			}
		})

		b(func(signal primitives.Signal[B]) {
			if ended {
				if signal.Kind == primitives.StartSignal {
					signal.Talkback(primitives.Close)
				}
				return
			}

			switch signal.Kind {
			case primitives.StartSignal:
				talkbackB = signal.Talkback
			case primitives.PushSignal:
				lastB, hasB = signal.Value, true
				if !hasA {
					if !gotSignal {
						talkbackA(primitives.Pull)
					} else {
						gotSignal = false
					}
					return
				}
				gotSignal = false
				sink(primitives.Push(lo.T2(lastA, lastB)))
			case primitives.EndSignal:
				end(signal.Err, hasB, talkbackA)
			}
		})

		s.start(func(kind primitives.TalkbackKind) {
			if ended {
				return
			}
			if kind == primitives.Close {
				ended = true
				talkbackA(primitives.Close)
				talkbackB(primitives.Close)
				return
			}
			if !gotSignal {
				gotSignal = true
				talkbackA(primitives.Pull)
				talkbackB(primitives.Pull)
			}
		})
	}
}
