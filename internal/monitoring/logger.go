package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests mute it with SetLogger(nil).
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// WithRun returns a logger that prefixes every line with a run identifier,
// so output from concurrent invocations can be told apart.
func WithRun(runID string, f func(format string, v ...interface{})) func(format string, v ...interface{}) {
	if f == nil {
		f = log.Printf
	}
	return func(format string, v ...interface{}) {
		f("[run %s] "+format, v...)
	}
}
