package scheduler

import (
	"sync"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/arielf-camacho/fp-source/logging"
	"github.com/arielf-camacho/fp-source/metrics"
)

var _ Scheduler = (*Loop)(nil)

// Loop is a Scheduler backed by an unbounded FIFO queue drained by a single
// goroutine.
//
// Graphically, the Loop looks like this:
//
// -- Post(a) -- Post(b) -- Run(c) -------------- | -->
//
// -- Loop ---------------------------------------------
//
// ------------------------ c -- a -- b --------- | -->
type Loop struct {
	name    string
	loggers ldlog.Loggers

	exec sync.Mutex

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	done   chan struct{}
}

// Option configures a Loop.
type Option func(*Loop)

// WithName sets the name used in logs and metric labels.
func WithName(name string) Option {
	return func(l *Loop) {
		l.name = name
	}
}

// WithLoggers sets the loggers of the Loop.
func WithLoggers(loggers ldlog.Loggers) Option {
	return func(l *Loop) {
		l.loggers = loggers
	}
}

// New creates and starts a Loop.
func New(opts ...Option) *Loop {
	l := &Loop{
		name:    "loop",
		loggers: logging.Loggers(),
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(l)
	}

	l.cond = sync.NewCond(&l.mu)

	go l.start()

	l.loggers.Debugf("scheduler loop %q started", l.name)

	return l
}

// Name returns the name of the loop.
func (l *Loop) Name() string {
	return l.name
}

// Submit queues the task, failing with ErrLoopClosed once the loop is closed.
func (l *Loop) Submit(task func()) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrLoopClosed
	}
	l.queue = append(l.queue, task)
	metrics.SchedulerQueueDepth.WithLabelValues(l.name).Set(float64(len(l.queue)))
	l.mu.Unlock()

	l.cond.Signal()

	return nil
}

// Post queues the task. Tasks posted after Close are dropped.
func (l *Loop) Post(task func()) {
	if err := l.Submit(task); err != nil {
		l.loggers.Warnf("scheduler loop %q dropped a task: %s", l.name, err)
	}
}

// Run executes the task on the calling goroutine while no queued task runs.
func (l *Loop) Run(task func()) {
	l.exec.Lock()
	defer l.exec.Unlock()

	task()
}

// AfterFunc posts the task once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, task func()) func() bool {
	timer := time.AfterFunc(d, func() {
		l.Post(task)
	})
	return timer.Stop
}

// Close stops accepting tasks, runs the ones already queued and waits for the
// loop goroutine to exit.
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.closed = true
	l.mu.Unlock()

	l.cond.Broadcast()
	<-l.done

	l.loggers.Debugf("scheduler loop %q closed", l.name)
}

func (l *Loop) start() {
	defer close(l.done)

	for {
		l.mu.Lock()
		for len(l.queue) == 0 && !l.closed {
			l.cond.Wait()
		}
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}

		task := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		metrics.SchedulerQueueDepth.WithLabelValues(l.name).Set(float64(len(l.queue)))
		l.mu.Unlock()

		l.Run(task)

		metrics.SchedulerTasks.WithLabelValues(l.name).Inc()
	}
}
