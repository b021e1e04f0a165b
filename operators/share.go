package operators

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/rs/xid"
	"github.com/samber/lo"

	"github.com/arielf-camacho/fp-source/logging"
	"github.com/arielf-camacho/fp-source/metrics"
	"github.com/arielf-camacho/fp-source/primitives"
)

// ShareBuilder is a fluent builder for shared sources.
type ShareBuilder[T any] struct {
	source  primitives.Source[T]
	name    string
	loggers *ldlog.Loggers
}

// Shared creates a new ShareBuilder for a source multicasting a single
// execution of source to every sink attached while it runs. The execution
// starts with the first sink and is closed when the last one closes. A sink
// attaching after the execution ended starts a new one.
//
// Graphically, Share looks like this:
//
// -- 1 -- 2 -- 3 -- | -->
//
// -- Share ----------------
//
// sink A: -- 1 -- 2 -- 3 -- | -->
//
// sink B: ------- 2 -- 3 -- | -->
func Shared[T any](source primitives.Source[T]) *ShareBuilder[T] {
	return &ShareBuilder[T]{
		source: source,
		name:   defaultName,
	}
}

// Share is a shorthand for Shared(source).Build().
func Share[T any](source primitives.Source[T]) primitives.Source[T] {
	return Shared(source).Build()
}

// Name sets the name under which the executions are counted and logged.
func (b *ShareBuilder[T]) Name(name string) *ShareBuilder[T] {
	b.name = name
	return b
}

// Loggers sets the loggers of the shared source.
func (b *ShareBuilder[T]) Loggers(loggers ldlog.Loggers) *ShareBuilder[T] {
	b.loggers = &loggers
	return b
}

// Build creates the shared source.
func (b *ShareBuilder[T]) Build() primitives.Source[T] {
	s := &shared[T]{
		source:   b.source,
		name:     b.name,
		loggers:  logging.Loggers(),
		talkback: primitives.NoopTalkback,
	}
	if b.loggers != nil {
		s.loggers = *b.loggers
	}
	return s.attach
}

type shareEntry[T any] struct {
	sink    primitives.Sink[T]
	started bool
	closed  bool
	ended   bool
	// pending holds an End reached before the sink received its Start.
	pending bool
	err     error
}

type shared[T any] struct {
	source  primitives.Source[T]
	name    string
	loggers ldlog.Loggers

	sinks     []*shareEntry[T]
	talkback  primitives.Talkback
	gotSignal bool
	execution xid.ID
}

func (s *shared[T]) attach(sink primitives.Sink[T]) {
	entry := &shareEntry[T]{sink: primitives.Guard(sink, s.loggers)}
	s.sinks = append(s.sinks, entry)

	if len(s.sinks) == 1 {
		s.execute()
	}

	entry.started = true
	entry.sink(primitives.Start[T](func(kind primitives.TalkbackKind) {
		if entry.closed || entry.ended {
			return
		}

		if kind == primitives.Close {
			entry.closed = true
			s.sinks = lo.Without(s.sinks, entry)
			if len(s.sinks) == 0 {
				s.loggers.Debugf("share %q: closing execution %s", s.name, s.execution)
				s.talkback(primitives.Close)
			}
			return
		}

		if !s.gotSignal {
			s.gotSignal = true
			s.talkback(primitives.Pull)
		}
	}))

	if entry.pending {
		entry.pending = false
		entry.sink(primitives.End[T](entry.err))
	}
}

func (s *shared[T]) execute() {
	execution := xid.New()
	s.execution = execution
	s.talkback = primitives.NoopTalkback
	s.gotSignal = false
	metrics.ShareExecutions.WithLabelValues(s.name).Inc()
	s.loggers.Debugf("share %q: starting execution %s", s.name, execution)

	s.source(func(signal primitives.Signal[T]) {
		if s.execution != execution {
			return
		}

		switch signal.Kind {
		case primitives.StartSignal:
			s.talkback = signal.Talkback
		case primitives.PushSignal:
			s.gotSignal = false
			for _, entry := range s.sinks {
				if entry.started && !entry.closed {
					entry.sink(signal)
				}
			}
		case primitives.EndSignal:
			s.loggers.Debugf("share %q: execution %s ended", s.name, execution)
			sinks := s.sinks
			s.sinks = nil
			s.execution = xid.ID{}
			for _, entry := range sinks {
				if entry.closed {
					continue
				}
				entry.ended = true
				if !entry.started {
					entry.pending = true
					entry.err = signal.Err
					continue
				}
				entry.sink(signal)
			}
		}
	})
}
