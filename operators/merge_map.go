package operators

import (
	"github.com/samber/lo"

	"github.com/arielf-camacho/fp-source/metrics"
	"github.com/arielf-camacho/fp-source/primitives"
)

// MergeMap maps every value of source to an inner source and emits the values
// of all inner sources as they arrive. Inner sources run concurrently with each
// other and with source. The result completes once source and every inner
// source completed, and ends with the first error seen anywhere, closing
// everything still open.
//
// Graphically, MergeMap f(x) = [x, x+1] looks like this:
//
// -- 1 ----------- 2 ----------- | -->
//
// -- MergeMap f(x) = [x, x + 1] ------
//
// -- 1 -- 2 ------ 2 -- 3 ------ | -->
func MergeMap[IN, OUT any](
	source primitives.Source[IN],
	fn func(IN) primitives.Source[OUT],
	opts ...Option,
) primitives.Source[OUT] {
	cfg := newConfig(opts)

	return func(sink primitives.Sink[OUT]) {
		m := &mergeMap[IN, OUT]{
			name:          cfg.name,
			fn:            fn,
			sink:          sink,
			starter:       &starter[OUT]{sink: sink},
			outerTalkback: primitives.NoopTalkback,
		}
		m.subscribe(source)
	}
}

type inner struct {
	talkback primitives.Talkback
}

type mergeMap[IN, OUT any] struct {
	name    string
	fn      func(IN) primitives.Source[OUT]
	sink    primitives.Sink[OUT]
	starter *starter[OUT]

	inners        []*inner
	outerTalkback primitives.Talkback
	outerPulled   bool
	outerEnded    bool
	done          bool
}

func (m *mergeMap[IN, OUT]) subscribe(source primitives.Source[IN]) {
	source(func(signal primitives.Signal[IN]) {
		if m.done || m.outerEnded {
			return
		}

		switch signal.Kind {
		case primitives.StartSignal:
			m.outerTalkback = signal.Talkback
		case primitives.PushSignal:
			m.outerPulled = false
			m.applyInner(m.fn(signal.Value))
			if !m.outerPulled && !m.done && !m.outerEnded {
				m.outerPulled = true
				m.outerTalkback(primitives.Pull)
			}
		case primitives.EndSignal:
			m.outerEnded = true
			if signal.Err != nil {
				m.fail(signal.Err)
				return
			}
			if len(m.inners) == 0 {
				m.done = true
				m.starter.end(nil)
			}
		}
	})

	m.starter.start(m.talkback)
}

func (m *mergeMap[IN, OUT]) applyInner(source primitives.Source[OUT]) {
	in := &inner{talkback: primitives.NoopTalkback}
	registered := false

	source(func(signal primitives.Signal[OUT]) {
		if m.done {
			return
		}

		switch signal.Kind {
		case primitives.StartSignal:
			in.talkback = signal.Talkback
			registered = true
			m.inners = append(m.inners, in)
			metrics.InnerSubscriptions.WithLabelValues(m.name).Inc()
			in.talkback(primitives.Pull)
		case primitives.PushSignal:
			if registered {
				m.sink(signal)
				if !m.done {
					in.talkback(primitives.Pull)
				}
			}
		case primitives.EndSignal:
			if !registered {
				return
			}
			registered = false
			m.remove(in)

			if signal.Err != nil {
				m.fail(signal.Err)
				return
			}
			if len(m.inners) > 0 {
				return
			}
			if m.outerEnded {
				m.done = true
				m.starter.end(nil)
			} else if !m.outerPulled {
				m.outerPulled = true
				m.outerTalkback(primitives.Pull)
			}
		}
	})
}

func (m *mergeMap[IN, OUT]) talkback(kind primitives.TalkbackKind) {
	if m.done {
		return
	}

	if kind == primitives.Close {
		m.done = true
		m.closeAll()
		return
	}

	if !m.outerEnded && !m.outerPulled {
		m.outerPulled = true
		m.outerTalkback(primitives.Pull)
	} else {
		m.outerPulled = false
	}

	for _, in := range m.inners {
		in.talkback(primitives.Pull)
	}
}

func (m *mergeMap[IN, OUT]) fail(err error) {
	m.done = true
	m.closeAll()
	m.starter.end(err)
}

func (m *mergeMap[IN, OUT]) closeAll() {
	if !m.outerEnded {
		m.outerEnded = true
		m.outerTalkback(primitives.Close)
	}

	inners := m.inners
	m.inners = nil
	for _, in := range inners {
		metrics.InnerSubscriptions.WithLabelValues(m.name).Dec()
		in.talkback(primitives.Close)
	}
}

func (m *mergeMap[IN, OUT]) remove(in *inner) {
	m.inners = lo.Without(m.inners, in)
	metrics.InnerSubscriptions.WithLabelValues(m.name).Dec()
}
