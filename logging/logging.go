// Package logging holds the loggers shared by every component that does not
// receive its own through a builder.
package logging

import (
	"sync"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

var (
	mu      sync.RWMutex
	loggers = defaultLoggers()
)

func defaultLoggers() ldlog.Loggers {
	l := ldlog.NewDefaultLoggers()
	l.SetPrefix("[fp-source]")
	return l
}

// Loggers returns the package-level loggers.
func Loggers() ldlog.Loggers {
	mu.RLock()
	defer mu.RUnlock()
	return loggers
}

// SetLoggers replaces the package-level loggers. Components already built keep
// the loggers they were created with.
func SetLoggers(l ldlog.Loggers) {
	mu.Lock()
	defer mu.Unlock()
	loggers = l
}

// Disable silences the package-level loggers.
func Disable() {
	SetLoggers(ldlog.NewDisabledLoggers())
}
