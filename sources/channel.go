package sources

import (
	"context"
	"sync/atomic"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/arielf-camacho/fp-source/logging"
	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/scheduler"
)

// ChannelSourceBuilder is a fluent builder for channel-backed sources.
type ChannelSourceBuilder[T any] struct {
	ctx       context.Context
	channel   <-chan T
	loggers   *ldlog.Loggers
	scheduler scheduler.Scheduler
}

// Channel creates a new ChannelSourceBuilder for building a source that emits
// the values of the given channel until it is closed or the context is
// cancelled.
//
// Graphically, the channel source looks like this:
//
// ---channel -> 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- Channel -------------------------- | -->
//
// ------------- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
func Channel[T any](channel <-chan T) *ChannelSourceBuilder[T] {
	return &ChannelSourceBuilder[T]{
		ctx:     context.Background(),
		channel: channel,
	}
}

// FromChannel is a shorthand for Channel(channel).Build().
func FromChannel[T any](channel <-chan T) primitives.Source[T] {
	return Channel(channel).Build()
}

// Context sets the context for the source. Cancelling it ends every active
// subscription with the context's error.
func (b *ChannelSourceBuilder[T]) Context(
	ctx context.Context,
) *ChannelSourceBuilder[T] {
	b.ctx = ctx
	return b
}

// Loggers sets the loggers used to report misuse of the source.
func (b *ChannelSourceBuilder[T]) Loggers(
	loggers ldlog.Loggers,
) *ChannelSourceBuilder[T] {
	b.loggers = &loggers
	return b
}

// Scheduler sets the scheduler on which the values are delivered.
func (b *ChannelSourceBuilder[T]) Scheduler(
	s scheduler.Scheduler,
) *ChannelSourceBuilder[T] {
	b.scheduler = s
	return b
}

// Build creates the source. Values are pushed as they arrive regardless of
// pulls.
func (b *ChannelSourceBuilder[T]) Build() primitives.Source[T] {
	var (
		parent  = b.ctx
		channel = b.channel
		sched   = scheduler.OrDefault(b.scheduler)
		active  atomic.Int32
	)
	loggers := logging.Loggers()
	if b.loggers != nil {
		loggers = *b.loggers
	}

	return func(sink primitives.Sink[T]) {
		if active.Add(1) > 1 {
			loggers.Warn("channel source subscribed more than once, values will be split between subscribers")
		}

		ctx, cancel := context.WithCancel(parent)
		ended := false
		finish := func() {
			ended = true
			cancel()
			active.Add(-1)
		}

		sink(primitives.Start[T](func(kind primitives.TalkbackKind) {
			if kind == primitives.Close && !ended {
				finish()
			}
		}))
		if ended {
			return
		}

		go func() {
			for {
				select {
				case <-ctx.Done():
					err := parent.Err()
					sched.Post(func() {
						if ended {
							return
						}
						finish()
						sink(primitives.End[T](err))
					})
					return
				case value, ok := <-channel:
					if !ok {
						sched.Post(func() {
							if ended {
								return
							}
							finish()
							sink(primitives.End[T](nil))
						})
						return
					}

					sched.Post(func() {
						if !ended {
							sink(primitives.Push(value))
						}
					})
				}
			}
		}()
	}
}
