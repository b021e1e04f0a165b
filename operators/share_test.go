package operators_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-sdk-common/v3/ldlogtest"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielf-camacho/fp-source/helpers"
	"github.com/arielf-camacho/fp-source/metrics"
	"github.com/arielf-camacho/fp-source/operators"
	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/scheduler"
	"github.com/arielf-camacho/fp-source/sources"
)

// gatedTask returns a source resolving to value once release is closed, and
// a counter of how many times the task ran.
func gatedTask(value int, release <-chan struct{}) (primitives.Source[int], *atomic.Int32) {
	runs := &atomic.Int32{}
	return sources.FromTask(func(ctx context.Context) (int, error) {
		runs.Add(1)
		select {
		case <-release:
			return value, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}), runs
}

func TestShare(t *testing.T) {
	t.Parallel()

	t.Run("multicasts-one-execution", func(t *testing.T) {
		t.Parallel()

		// Given
		name := "share-multicasts-one-execution"
		release := make(chan struct{})
		task, runs := gatedTask(42, release)
		source := operators.Shared(task).Name(name).Build()
		first := helpers.NewCollector[int](context.Background())
		second := helpers.NewCollector[int](context.Background())

		// When
		scheduler.Default().Run(func() {
			source(first.Sink())
			source(second.Sink())
		})
		close(release)

		// Then
		assert.Equal(t, []int{42}, first.Items())
		assert.Equal(t, []int{42}, second.Items())
		assert.EqualValues(t, 1, runs.Load())
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ShareExecutions.WithLabelValues(name)))
	})

	t.Run("restarts-after-completion", func(t *testing.T) {
		t.Parallel()

		// Given
		name := "share-restarts-after-completion"
		source := operators.Shared(sources.FromSlice([]int{1, 2, 3})).Name(name).Build()

		// When
		first := collect(t, source).Items()
		second := collect(t, source).Items()

		// Then
		assert.Equal(t, []int{1, 2, 3}, first)
		assert.Equal(t, []int{1, 2, 3}, second)
		assert.Equal(t, 2.0, testutil.ToFloat64(metrics.ShareExecutions.WithLabelValues(name)))
	})

	t.Run("closes-upstream-with-last-sink", func(t *testing.T) {
		t.Parallel()

		// Given
		mockLog := ldlogtest.NewMockLog()
		mockLog.Loggers.SetMinLevel(ldlog.Debug)
		cancelled := make(chan struct{})
		source := operators.Shared(sources.FromTask(func(ctx context.Context) (int, error) {
			<-ctx.Done()
			close(cancelled)
			return 0, ctx.Err()
		})).Name("closing").Loggers(mockLog.Loggers).Build()
		var talkbacks []primitives.Talkback
		sink := func(signal primitives.Signal[int]) {
			if signal.Kind == primitives.StartSignal {
				talkbacks = append(talkbacks, signal.Talkback)
			}
		}

		// When
		scheduler.Default().Run(func() {
			source(sink)
			source(sink)
			talkbacks[0](primitives.Close)
		})

		// Then
		select {
		case <-cancelled:
			t.Fatal("the upstream was closed while a sink was attached")
		default:
		}

		scheduler.Default().Run(func() {
			talkbacks[1](primitives.Close)
		})
		<-cancelled
		assert.True(t, mockLog.HasMessageMatch(ldlog.Debug, `share "closing": closing execution`))
	})
}

func TestDefer(t *testing.T) {
	t.Parallel()

	t.Run("shares-the-factory-between-concurrent-sinks", func(t *testing.T) {
		t.Parallel()

		// Given
		name := "defer-shares-the-factory"
		release := make(chan struct{})
		var calls atomic.Int32
		source := operators.Deferred(func() primitives.Source[int] {
			calls.Add(1)
			task, _ := gatedTask(7, release)
			return task
		}).Name(name).Build()
		first := helpers.NewCollector[int](context.Background())
		second := helpers.NewCollector[int](context.Background())

		// When
		scheduler.Default().Run(func() {
			source(first.Sink())
			source(second.Sink())
		})
		close(release)

		// Then
		assert.Equal(t, []int{7}, first.Items())
		assert.Equal(t, []int{7}, second.Items())
		assert.EqualValues(t, 1, calls.Load())
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DeferFactoryCalls.WithLabelValues(name)))
	})

	t.Run("calls-the-factory-again-once-detached", func(t *testing.T) {
		t.Parallel()

		// Given
		var calls atomic.Int32
		source := operators.Defer(func() primitives.Source[int] {
			return sources.FromValue(int(calls.Add(1)))
		})

		// When
		first := collect(t, source).Items()
		second := collect(t, source).Items()

		// Then
		assert.Equal(t, []int{1}, first)
		assert.Equal(t, []int{2}, second)
	})

	t.Run("recovers-from-a-panicking-factory", func(t *testing.T) {
		t.Parallel()

		// Given
		var calls atomic.Int32
		source := operators.Defer(func() primitives.Source[int] {
			if calls.Add(1) == 1 {
				panic("factory failed")
			}
			return sources.FromValue(3)
		})

		// When
		require.Panics(t, func() {
			source(func(primitives.Signal[int]) {})
		})
		collector := collect(t, source)

		// Then
		assert.Equal(t, []int{3}, collector.Items())
		assert.EqualValues(t, 2, calls.Load())
	})
}

func TestShare_SinkPullingOnStart(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		subject func() primitives.Source[int]
	}{
		"share": {
			subject: func() primitives.Source[int] {
				return operators.Share(sources.FromValue(1))
			},
		},
		"defer": {
			subject: func() primitives.Source[int] {
				return operators.Defer(func() primitives.Source[int] {
					return sources.FromValue(1)
				})
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			source := c.subject()
			var kinds []primitives.SignalKind
			sink := func(signal primitives.Signal[int]) {
				kinds = append(kinds, signal.Kind)
				if signal.Kind == primitives.StartSignal {
					signal.Talkback(primitives.Pull)
				}
			}

			// When
			scheduler.Default().Run(func() {
				source(sink)
			})

			// Then
			assert.Equal(t, []primitives.SignalKind{
				primitives.StartSignal,
				primitives.PushSignal,
				primitives.EndSignal,
			}, kinds)
		})
	}
}
