// Package clog provides a small switchable logger shared by the decoder
// and sender so neither forces a particular logging framework onto
// callers. Output is off by default; callers opt in with LogMode and may
// redirect it anywhere with SetLogProvider.
package clog

import (
	"log"
	"os"
	"sync/atomic"
)

// LogProvider is the logging interface a caller can substitute for the
// default stdlib-backed logger. Only Debug/Warn/Error are defined: the
// decoder reports recoverable warnings, and the sender traces its
// traffic at Debug level and returns its errors to the caller instead of
// logging them, so there is no Critical level in this domain.
type LogProvider interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Clog is an internal debugging logger, embeddable by value.
type Clog struct {
	provider LogProvider
	// enabled is 1 when log output is active, 0 otherwise.
	enabled uint32
}

// New creates a logger with the default stdlib-backed provider, prefixed
// with prefix.
func New(prefix string) Clog {
	return Clog{
		provider: defaultLogger{log.New(os.Stderr, prefix, log.LstdFlags)},
	}
}

// LogMode enables or disables log output.
func (sf *Clog) LogMode(enable bool) {
	if enable {
		atomic.StoreUint32(&sf.enabled, 1)
	} else {
		atomic.StoreUint32(&sf.enabled, 0)
	}
}

// SetLogProvider overrides the log provider used when output is enabled.
func (sf *Clog) SetLogProvider(p LogProvider) {
	if p != nil {
		sf.provider = p
	}
}

// Error logs an ERROR level message.
func (sf Clog) Error(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.enabled) == 1 {
		sf.provider.Error(format, v...)
	}
}

// Warn logs a WARN level message.
func (sf Clog) Warn(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.enabled) == 1 {
		sf.provider.Warn(format, v...)
	}
}

// Debug logs a DEBUG level message.
func (sf Clog) Debug(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.enabled) == 1 {
		sf.provider.Debug(format, v...)
	}
}

type defaultLogger struct {
	*log.Logger
}

var _ LogProvider = defaultLogger{}

func (sf defaultLogger) Error(format string, v ...interface{}) {
	sf.Printf("[E] "+format, v...)
}

func (sf defaultLogger) Warn(format string, v ...interface{}) {
	sf.Printf("[W] "+format, v...)
}

func (sf defaultLogger) Debug(format string, v ...interface{}) {
	sf.Printf("[D] "+format, v...)
}
