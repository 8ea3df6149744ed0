package goentity

import (
	"os"

	"github.com/rs/zerolog"
)

// pkgLogger records diagnostics for the non-strict filter paths: malformed
// whole input replaced by an empty default, malformed dict entries dropped.
// Strict-mode failures never log; they surface as Issues.
var pkgLogger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "goentity").Logger()

// SetLogger replaces the package diagnostics logger. Embedding applications
// route recovery diagnostics into their own sink; tests capture them.
func SetLogger(l zerolog.Logger) { pkgLogger = l }

// DiagLogger returns the package diagnostics logger. Used by the values
// subpackage so scalar validators report through the same sink.
func DiagLogger() *zerolog.Logger { return &pkgLogger }
