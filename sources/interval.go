package sources

import (
	"time"

	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/scheduler"
)

// TickerBuilder is a fluent builder for periodic sources.
type TickerBuilder struct {
	period    time.Duration
	scheduler scheduler.Scheduler
}

// Ticker creates a new TickerBuilder for a source emitting 0, 1, 2, ... once
// every period until it is closed.
//
// Graphically, Ticker(d) looks like this:
//
// --d-- 0 --d-- 1 --d-- 2 --d-- 3 -->
func Ticker(period time.Duration) *TickerBuilder {
	return &TickerBuilder{period: period}
}

// Interval is a shorthand for Ticker(period).Build().
func Interval(period time.Duration) primitives.Source[int] {
	return Ticker(period).Build()
}

// Scheduler sets the scheduler on which the ticks are delivered.
func (b *TickerBuilder) Scheduler(s scheduler.Scheduler) *TickerBuilder {
	b.scheduler = s
	return b
}

// Build creates the source. The timer of a subscription is stopped as soon as
// it is closed.
func (b *TickerBuilder) Build() primitives.Source[int] {
	var (
		period = b.period
		sched  = scheduler.OrDefault(b.scheduler)
	)

	return func(sink primitives.Sink[int]) {
		var (
			ended    bool
			tick     int
			stop     func() bool
			schedule func()
		)

		schedule = func() {
			stop = sched.AfterFunc(period, func() {
				if ended {
					return
				}
				current := tick
				tick++
				schedule()
				sink(primitives.Push(current))
			})
		}

		sink(primitives.Start[int](func(kind primitives.TalkbackKind) {
			if kind != primitives.Close || ended {
				return
			}
			ended = true
			if stop != nil {
				stop()
			}
		}))

		if !ended {
			schedule()
		}
	}
}
