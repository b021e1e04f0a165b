package sinks

import (
	"sync"
	"sync/atomic"

	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/scheduler"
)

// Subscription is a running consumption started by Subscribe.
type Subscription struct {
	closing atomic.Bool
	close   func()
	once    sync.Once
	done    chan struct{}
}

// Subscribe pulls every value of source, calling onPush with each of them and
// onEnd, if not nil, with the error the source ended with.
func Subscribe[T any](
	source primitives.Source[T],
	onPush func(T),
	onEnd func(error),
) *Subscription {
	return SubscribeOn(nil, source, onPush, onEnd)
}

// SubscribeOn is Subscribe running on s.
func SubscribeOn[T any](
	s scheduler.Scheduler,
	source primitives.Source[T],
	onPush func(T),
	onEnd func(error),
) *Subscription {
	sub := &Subscription{done: make(chan struct{})}

	c := newConsumer(s, func(value T) bool {
		if sub.closing.Load() {
			sub.finish()
			return false
		}
		onPush(value)
		if sub.closing.Load() {
			sub.finish()
			return false
		}
		return true
	}, func(err error) {
		if onEnd != nil {
			onEnd(err)
		}
		sub.finish()
	})
	sub.close = func() {
		c.close(sub.finish)
	}
	c.start(source)

	return sub
}

// Unsubscribe stops the delivery of values and closes the source. It is safe
// to call from any goroutine, including from within onPush.
func (s *Subscription) Unsubscribe() {
	if s.closing.CompareAndSwap(false, true) {
		s.close()
	}
}

// Done is closed once the source ended or was closed.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) finish() {
	s.once.Do(func() {
		close(s.done)
	})
}
