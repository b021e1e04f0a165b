package sinks

import (
	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/scheduler"
)

// consumer is a sink pulling every value of its source. onPush returning false
// closes the source; onEnd is called once when the source ends.
type consumer[T any] struct {
	scheduler scheduler.Scheduler
	talkback  primitives.Talkback
	ended     bool
	onPush    func(T) bool
	onEnd     func(error)
}

func newConsumer[T any](
	s scheduler.Scheduler,
	onPush func(T) bool,
	onEnd func(error),
) *consumer[T] {
	return &consumer[T]{
		scheduler: scheduler.OrDefault(s),
		talkback:  primitives.NoopTalkback,
		onPush:    onPush,
		onEnd:     onEnd,
	}
}

func consume[T any](
	s scheduler.Scheduler,
	source primitives.Source[T],
	onPush func(T) bool,
	onEnd func(error),
) *consumer[T] {
	c := newConsumer(s, onPush, onEnd)
	c.start(source)
	return c
}

func (c *consumer[T]) start(source primitives.Source[T]) {
	c.scheduler.Run(func() {
		source(c.sink)
	})
}

func (c *consumer[T]) sink(signal primitives.Signal[T]) {
	if c.ended {
		return
	}

	switch signal.Kind {
	case primitives.StartSignal:
		c.talkback = signal.Talkback
		c.talkback(primitives.Pull)
	case primitives.PushSignal:
		if !c.onPush(signal.Value) {
			c.ended = true
			c.talkback(primitives.Close)
			return
		}
		if !c.ended {
			c.talkback(primitives.Pull)
		}
	case primitives.EndSignal:
		c.ended = true
		c.onEnd(signal.Err)
	}
}

// close closes the source on the scheduler, calling onClosed if it had not
// ended yet. It is safe to call from any goroutine.
func (c *consumer[T]) close(onClosed func()) {
	c.scheduler.Post(func() {
		if c.ended {
			return
		}
		c.ended = true
		c.talkback(primitives.Close)
		if onClosed != nil {
			onClosed()
		}
	})
}
