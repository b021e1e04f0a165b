package sinks

import (
	"io"

	"github.com/pkg/errors"

	"github.com/arielf-camacho/fp-source/primitives"
	"github.com/arielf-camacho/fp-source/scheduler"
	"github.com/arielf-camacho/fp-source/task"
)

type writerConfig struct {
	separator []byte
	scheduler scheduler.Scheduler
}

// WriterOption is a function that can be used to configure ToWriter.
type WriterOption func(*writerConfig)

// WithSeparator returns a WriterOption writing separator after every chunk.
func WithSeparator(separator []byte) WriterOption {
	return func(c *writerConfig) {
		c.separator = separator
	}
}

// WithScheduler returns a WriterOption setting the scheduler the source runs
// on.
func WithScheduler(s scheduler.Scheduler) WriterOption {
	return func(c *writerConfig) {
		c.scheduler = s
	}
}

// ToWriter returns a task writing every chunk of source to w and resolving with
// the number of bytes written. A failed write closes the source and fails the
// task.
//
// Graphically, ToWriter looks like this:
//
// -- "a" -- "b" -- "c" -- | -->
//
// -- ToWriter ----------------
//
// -> ----------------- 3 ----
func ToWriter(
	source primitives.Source[[]byte],
	w io.Writer,
	opts ...WriterOption,
) task.Task[int] {
	cfg := &writerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return Reduce(source, func(written int, chunk []byte, _ uint) (int, error) {
		n, err := w.Write(chunk)
		written += n
		if err != nil {
			return written, errors.Wrap(err, "writing chunk")
		}

		if len(cfg.separator) > 0 {
			n, err = w.Write(cfg.separator)
			written += n
			if err != nil {
				return written, errors.Wrap(err, "writing separator")
			}
		}

		return written, nil
	}, 0).Scheduler(cfg.scheduler).Build()
}
