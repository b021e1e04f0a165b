// Package scheduler provides the task queue on which asynchronous producers
// deliver their signals. Every signal of every source is handled while the
// loop's execution lock is held, so the rest of the library can be written as
// single-threaded, cooperative code.
package scheduler

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrLoopClosed is returned when a task is submitted to a closed Loop.
var ErrLoopClosed = errors.New("scheduler loop is closed")

// Scheduler serialises the execution of tasks.
type Scheduler interface {
	// Post queues the task to run after every task queued before it.
	Post(task func())

	// Run executes the task immediately on the calling goroutine, mutually
	// exclusive with the tasks run by the scheduler. It must not be called from
	// within a running task.
	Run(task func())

	// AfterFunc posts the task once d has elapsed. The returned function
	// prevents the task from being posted if it has not been yet.
	AfterFunc(d time.Duration, task func()) (stop func() bool)
}

var (
	defaultOnce sync.Once
	defaultLoop *Loop
)

// Default returns the process-wide loop, starting it on first use.
func Default() *Loop {
	defaultOnce.Do(func() {
		defaultLoop = New(WithName("default"))
	})
	return defaultLoop
}

// OrDefault returns s, or the default loop when s is nil.
func OrDefault(s Scheduler) Scheduler {
	if s == nil {
		return Default()
	}
	return s
}
