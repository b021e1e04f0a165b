package sources

import (
	"context"

	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/scheduler"
	"github.com/arielf-camacho/fp-source/task"
)

// TaskSourceBuilder is a fluent builder for sources backed by a task.
type TaskSourceBuilder[T any] struct {
	ctx       context.Context
	task      task.Task[T]
	scheduler scheduler.Scheduler
}

// Task creates a new TaskSourceBuilder. Every subscription runs the task on its
// own goroutine and emits its result once it resolves; a failed task ends the
// stream with its error.
//
// Graphically, Task(t) where t resolves to 1 looks like this:
//
// -- t --------- 1 -->
//
// -- Task ----------------
//
// ------------ 1 | -->
func Task[T any](t task.Task[T]) *TaskSourceBuilder[T] {
	return &TaskSourceBuilder[T]{
		ctx:  context.Background(),
		task: t,
	}
}

// FromTask is a shorthand for Task(t).Build().
func FromTask[T any](t task.Task[T]) primitives.Source[T] {
	return Task(t).Build()
}

// Context sets the parent context given to the task.
func (b *TaskSourceBuilder[T]) Context(ctx context.Context) *TaskSourceBuilder[T] {
	b.ctx = ctx
	return b
}

// Scheduler sets the scheduler on which the result is delivered.
func (b *TaskSourceBuilder[T]) Scheduler(
	s scheduler.Scheduler,
) *TaskSourceBuilder[T] {
	b.scheduler = s
	return b
}

// Build creates the source. Closing a subscription before the task resolves
// cancels the context handed to it.
func (b *TaskSourceBuilder[T]) Build() primitives.Source[T] {
	var (
		parent = b.ctx
		t      = b.task
		sched  = scheduler.OrDefault(b.scheduler)
	)

	return func(sink primitives.Sink[T]) {
		ctx, cancel := context.WithCancel(parent)
		ended := false

		sink(primitives.Start[T](func(kind primitives.TalkbackKind) {
			if kind == primitives.Close && !ended {
				ended = true
				cancel()
			}
		}))
		if ended {
			return
		}

		go func() {
			value, err := t(ctx)
			sched.Post(func() {
				if ended {
					return
				}
				ended = true
				cancel()

				if err != nil {
					sink(primitives.End[T](err))
					return
				}
				sink(primitives.Push(value))
				sink(primitives.End[T](nil))
			})
		}()
	}
}
