package operators

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/arielf-camacho/fp-source/logging"
)

const defaultName = "default"

type config struct {
	name    string
	loggers ldlog.Loggers
}

// Option is a function that configures an operator.
type Option func(*config)

// WithName sets the name under which the operator reports its metrics and
// logs.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLoggers sets the loggers of the operator.
func WithLoggers(loggers ldlog.Loggers) Option {
	return func(c *config) {
		c.loggers = loggers
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		name:    defaultName,
		loggers: logging.Loggers(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
