package operators

import (
	"sync"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/arielf-camacho/fp-source/logging"
	"github.com/arielf-camacho/fp-source/metrics"
	"github.com/arielf-camacho/fp-source/primitives"
)

// DeferBuilder is a fluent builder for deferred sources.
type DeferBuilder[T any] struct {
	factory func() primitives.Source[T]
	name    string
	loggers *ldlog.Loggers
}

// Deferred creates a new DeferBuilder for a source whose upstream is created
// by factory when the first sink attaches. Every sink attached while that
// upstream runs shares its single execution. Once the last sink detached, the
// next sink calls factory again.
//
// A panicking factory propagates to the attaching caller and leaves the
// deferred source ready to call it again.
func Deferred[T any](factory func() primitives.Source[T]) *DeferBuilder[T] {
	return &DeferBuilder[T]{
		factory: factory,
		name:    defaultName,
	}
}

// Defer is a shorthand for Deferred(factory).Build().
func Defer[T any](factory func() primitives.Source[T]) primitives.Source[T] {
	return Deferred(factory).Build()
}

// Name sets the name under which the factory calls are counted and logged.
func (b *DeferBuilder[T]) Name(name string) *DeferBuilder[T] {
	b.name = name
	return b
}

// Loggers sets the loggers of the deferred source.
func (b *DeferBuilder[T]) Loggers(loggers ldlog.Loggers) *DeferBuilder[T] {
	b.loggers = &loggers
	return b
}

// Build creates the deferred source.
func (b *DeferBuilder[T]) Build() primitives.Source[T] {
	d := &deferred[T]{
		factory: b.factory,
		name:    b.name,
		loggers: logging.Loggers(),
	}
	if b.loggers != nil {
		d.loggers = *b.loggers
	}
	return d.attach
}

type deferred[T any] struct {
	factory func() primitives.Source[T]
	name    string
	loggers ldlog.Loggers

	mu       sync.Mutex
	upstream primitives.Source[T]
	attached int
}

func (d *deferred[T]) attach(sink primitives.Sink[T]) {
	upstream := d.acquire()

	released := false
	release := func() {
		if !released {
			released = true
			d.release()
		}
	}

	upstream(func(signal primitives.Signal[T]) {
		switch signal.Kind {
		case primitives.StartSignal:
			talkback := signal.Talkback
			sink(primitives.Start[T](func(kind primitives.TalkbackKind) {
				talkback(kind)
				if kind == primitives.Close {
					release()
				}
			}))
		case primitives.EndSignal:
			release()
			sink(signal)
		default:
			sink(signal)
		}
	})
}

func (d *deferred[T]) acquire() primitives.Source[T] {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.upstream == nil {
		metrics.DeferFactoryCalls.WithLabelValues(d.name).Inc()
		d.loggers.Debugf("defer %q: creating upstream", d.name)
		d.upstream = Shared(d.factory()).Name(d.name).Loggers(d.loggers).Build()
	}
	d.attached++

	return d.upstream
}

func (d *deferred[T]) release() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.attached--
	if d.attached == 0 {
		d.loggers.Debugf("defer %q: last sink detached", d.name)
		d.upstream = nil
	}
}
