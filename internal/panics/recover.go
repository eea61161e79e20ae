// Package panics turns a core-package panic — an invariant violation
// that is never recoverable in-process — into one structured log line
// and a clean, non-zero process exit, instead of a raw Go stack trace
// reaching the terminal.
package panics

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Recover returns a function to defer at the outermost frame of a CLI
// command. If the deferred call observes a panic, it logs the panic
// value together with its immediate caller's file and line through
// logger, then exits the process with status 1. A call with no panic in
// flight is a no-op.
func Recover(logger *zerolog.Logger) func() {
	return func() {
		r := recover()
		if r == nil {
			return
		}
		_, file, line, ok := runtime.Caller(3)
		event := logger.Error()
		if ok {
			event = event.Str("at", file).Int("line", line)
		}
		event.Interface("panic", r).Msg("aborting: invariant violated")
		os.Exit(1)
	}
}
