package scheduler_test

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielf-camacho/fp-source/metrics"
	"github.com/arielf-camacho/fp-source/scheduler"
)

func TestLoop_Post(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		expected []int
		tasks    int
	}{
		"runs-tasks-in-order": {
			expected: []int{0, 1, 2, 3, 4},
			tasks:    5,
		},
		"runs-single-task": {
			expected: []int{0},
			tasks:    1,
		},
		"runs-nothing": {
			expected: nil,
			tasks:    0,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			loop := scheduler.New(scheduler.WithName("post-" + name))
			var got []int

			// When
			for i := 0; i < c.tasks; i++ {
				i := i
				loop.Post(func() { got = append(got, i) })
			}
			loop.Close()

			// Then
			assert.Equal(t, c.expected, got)
		})
	}
}

func TestLoop_RunIsExclusiveWithPostedTasks(t *testing.T) {
	t.Parallel()

	// Given
	loop := scheduler.New(scheduler.WithName("exclusive"))
	defer loop.Close()

	running := 0
	overlapped := false
	var wg sync.WaitGroup

	task := func() {
		running++
		if running > 1 {
			overlapped = true
		}
		time.Sleep(time.Millisecond)
		running--
	}

	// When
	for i := 0; i < 20; i++ {
		loop.Post(task)
		wg.Add(1)
		go func() {
			defer wg.Done()
			loop.Run(task)
		}()
	}
	wg.Wait()

	done := make(chan struct{})
	loop.Post(func() { close(done) })
	<-done

	// Then
	loop.Run(func() {
		assert.False(t, overlapped)
		assert.Zero(t, running)
	})
}

func TestLoop_AfterFunc(t *testing.T) {
	t.Parallel()

	t.Run("posts-after-delay", func(t *testing.T) {
		t.Parallel()

		// Given
		loop := scheduler.New(scheduler.WithName("after-func"))
		defer loop.Close()
		fired := make(chan time.Time, 1)
		start := time.Now()

		// When
		loop.AfterFunc(10*time.Millisecond, func() { fired <- time.Now() })

		// Then
		select {
		case at := <-fired:
			assert.GreaterOrEqual(t, at.Sub(start), 10*time.Millisecond)
		case <-time.After(time.Second):
			t.Fatal("task was never posted")
		}
	})

	t.Run("stop-prevents-the-task", func(t *testing.T) {
		t.Parallel()

		// Given
		loop := scheduler.New(scheduler.WithName("after-func-stop"))
		fired := false

		// When
		stop := loop.AfterFunc(20*time.Millisecond, func() { fired = true })
		stopped := stop()
		time.Sleep(40 * time.Millisecond)
		loop.Close()

		// Then
		assert.True(t, stopped)
		assert.False(t, fired)
	})
}

func TestLoop_Close(t *testing.T) {
	t.Parallel()

	// Given
	loop := scheduler.New(scheduler.WithName("closed"))
	ran := false
	loop.Post(func() { ran = true })

	// When
	loop.Close()
	err := loop.Submit(func() {})

	// Then
	assert.True(t, ran)
	require.ErrorIs(t, err, scheduler.ErrLoopClosed)
	assert.NotPanics(t, loop.Close)
}

func TestLoop_Metrics(t *testing.T) {
	t.Parallel()

	// Given
	loop := scheduler.New(scheduler.WithName("metered"))

	// When
	for i := 0; i < 3; i++ {
		loop.Post(func() {})
	}
	loop.Close()

	// Then
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.SchedulerTasks.WithLabelValues("metered")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.SchedulerQueueDepth.WithLabelValues("metered")))
}

func TestOrDefault(t *testing.T) {
	t.Parallel()

	loop := scheduler.New(scheduler.WithName("explicit"))
	defer loop.Close()

	assert.Same(t, scheduler.Default(), scheduler.OrDefault(nil))
	assert.Same(t, loop, scheduler.OrDefault(loop))
}
