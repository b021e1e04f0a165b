package sinks

import (
	"context"
	"sync"

	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/scheduler"
)

type channelConfig struct {
	ctx          context.Context
	errorHandler func(error)
	scheduler    scheduler.Scheduler
}

// ChannelOption is a function that can be used to configure ToChannel.
type ChannelOption func(*channelConfig)

// WithContext returns a ChannelOption setting the context of the channel sink.
// Once it is done the source is closed and the channel is closed.
func WithContext(ctx context.Context) ChannelOption {
	return func(c *channelConfig) {
		c.ctx = ctx
	}
}

// WithErrorHandler returns a ChannelOption setting the handler receiving the
// error the source ended with.
func WithErrorHandler(handler func(error)) ChannelOption {
	return func(c *channelConfig) {
		c.errorHandler = handler
	}
}

// WithChannelScheduler returns a ChannelOption setting the scheduler the
// source runs on.
func WithChannelScheduler(s scheduler.Scheduler) ChannelOption {
	return func(c *channelConfig) {
		c.scheduler = s
	}
}

// ToChannel pulls every value of source and sends it to channel, closing it
// once the source ended. Values are queued while the channel is not ready so
// the source is never blocked by the reader.
//
// Graphically, ToChannel looks like this:
//
// -- 1 -- 2 -- 3 -- | -->
//
// -- ToChannel -----------
//
// channel <- 1, 2, 3; close(channel)
func ToChannel[T any](
	source primitives.Source[T],
	channel chan<- T,
	opts ...ChannelOption,
) *Subscription {
	cfg := &channelConfig{ctx: context.Background()}
	for _, opt := range opts {
		opt(cfg)
	}

	q := &queue[T]{notify: make(chan struct{}, 1)}
	sub := SubscribeOn(cfg.scheduler, source, q.push, func(err error) {
		if err != nil && cfg.errorHandler != nil {
			cfg.errorHandler(err)
		}
		q.close()
	})

	go func() {
		defer close(channel)
		defer sub.Unsubscribe()

		for {
			value, ok := q.pop(cfg.ctx, sub.Done())
			if !ok {
				return
			}

			select {
			case <-cfg.ctx.Done():
				return
			case channel <- value:
			}
		}
	}()

	return sub
}

// Channel is ToChannel into a new unbuffered channel.
func Channel[T any](
	source primitives.Source[T],
	opts ...ChannelOption,
) <-chan T {
	channel := make(chan T)
	ToChannel(source, channel, opts...)
	return channel
}

type queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
	notify chan struct{}
}

func (q *queue[T]) push(value T) {
	q.mu.Lock()
	q.items = append(q.items, value)
	q.mu.Unlock()
	q.wake()
}

func (q *queue[T]) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.wake()
}

func (q *queue[T]) wake() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// pop waits for the next value. It reports false once the queue is closed and
// drained, the context is done, or done is closed with nothing queued.
func (q *queue[T]) pop(ctx context.Context, done <-chan struct{}) (T, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			value := q.items[0]
			q.items = q.items[1:]
			q.mu.Unlock()
			return value, true
		}
		closed := q.closed
		q.mu.Unlock()

		if closed {
			var zero T
			return zero, false
		}

		select {
		case <-q.notify:
		case <-done:
			q.close()
		case <-ctx.Done():
			var zero T
			return zero, false
		}
	}
}
