package sources

import (
	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/scheduler"
)

// Observer receives the values of a producer given to Make. Its methods are
// safe to call from any goroutine; every call is delivered through the
// scheduler in call order.
type Observer[T any] struct {
	next     func(T)
	complete func()
	fail     func(error)
}

// Next emits value.
func (o Observer[T]) Next(value T) {
	o.next(value)
}

// Complete ends the stream.
func (o Observer[T]) Complete() {
	o.complete()
}

// Error ends the stream with err.
func (o Observer[T]) Error(err error) {
	o.fail(err)
}

// Make returns a source driven by producer. The producer is called once per
// subscription and returns a teardown, called once when the subscription is
// closed or ends. A nil teardown is allowed.
func Make[T any](producer func(Observer[T]) func()) primitives.Source[T] {
	return MakeOn(nil, producer)
}

// MakeOn is Make delivering its values through s.
func MakeOn[T any](
	s scheduler.Scheduler,
	producer func(Observer[T]) func(),
) primitives.Source[T] {
	sched := scheduler.OrDefault(s)

	return func(sink primitives.Sink[T]) {
		var (
			ended    bool
			teardown func()
		)
		finish := func() {
			ended = true
			if teardown != nil {
				t := teardown
				teardown = nil
				t()
			}
		}
		end := func(err error) {
			sched.Post(func() {
				if ended {
					return
				}
				finish()
				sink(primitives.End[T](err))
			})
		}

		sink(primitives.Start[T](func(kind primitives.TalkbackKind) {
			if kind == primitives.Close && !ended {
				finish()
			}
		}))
		if ended {
			return
		}

		teardown = producer(Observer[T]{
			next: func(value T) {
				sched.Post(func() {
					if !ended {
						sink(primitives.Push(value))
					}
				})
			},
			complete: func() { end(nil) },
			fail:     end,
		})
	}
}
