package helpers

import (
	"context"
	"sync"

	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/scheduler"
)

// Collector is a sink that pulls every value of the source it is attached to
// and keeps it. If the context is done before the source ends, the source is
// closed and the values collected so far are kept.
type Collector[T any] struct {
	ctx       context.Context
	scheduler scheduler.Scheduler

	mu       sync.Mutex
	items    []T
	err      error
	talkback primitives.Talkback
	ended    bool
	done     chan struct{}
}

// NewCollector returns a new Collector given the context.
func NewCollector[T any](ctx context.Context) *Collector[T] {
	return &Collector[T]{
		ctx:       ctx,
		scheduler: scheduler.Default(),
		talkback:  primitives.NoopTalkback,
		done:      make(chan struct{}),
	}
}

// Collect attaches the Collector to the given source and returns it.
func (c *Collector[T]) Collect(source primitives.Source[T]) *Collector[T] {
	c.scheduler.Run(func() {
		source(c.Sink())
	})

	go func() {
		select {
		case <-c.done:
		case <-c.ctx.Done():
			c.scheduler.Post(func() {
				if c.finish(c.ctx.Err()) {
					c.talkback(primitives.Close)
				}
			})
		}
	}()

	return c
}

// Sink returns the sink function of the Collector. It must be attached to a
// single source.
func (c *Collector[T]) Sink() primitives.Sink[T] {
	return func(signal primitives.Signal[T]) {
		switch signal.Kind {
		case primitives.StartSignal:
			c.talkback = signal.Talkback
			c.talkback(primitives.Pull)
		case primitives.PushSignal:
			c.mu.Lock()
			if c.ended {
				c.mu.Unlock()
				return
			}
			c.items = append(c.items, signal.Value)
			c.mu.Unlock()
			c.talkback(primitives.Pull)
		case primitives.EndSignal:
			c.finish(signal.Err)
		}
	}
}

// Done is closed once the source ended or the context is done.
func (c *Collector[T]) Done() <-chan struct{} {
	return c.done
}

// Items returns the items collected by the Collector, waiting for the source
// to end or the context to be done.
func (c *Collector[T]) Items() []T {
	c.wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Err returns the error the source ended with, or the context error if the
// Collector closed the source, waiting like Items does.
func (c *Collector[T]) Err() error {
	c.wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Collector[T]) wait() {
	select {
	case <-c.done:
	case <-c.ctx.Done():
	}
}

func (c *Collector[T]) finish(err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ended {
		return false
	}
	c.ended = true
	c.err = err
	close(c.done)
	return true
}
