// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the go-meet binaries.
//
// The server logs JSON to stdout; the seeder and the development client
// log to a console writer. Handlers and services never hold a logger of
// their own for a request: they fetch the request-scoped one, enriched
// with the trace id, via FromRequest or FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the JSON logger of a long-running process.
//
// Every entry carries "role", a timestamp and a "func" field holding the
// fully-qualified name of the calling function. The global level is reset
// to debug; use SetLevel afterwards to raise it.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(os.Stdout).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewCLILogger returns a console logger writing to w. Only warnings and
// errors are shown unless verbose is set.
func NewCLILogger(role string, w io.Writer, verbose bool) *Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return &Logger{
		zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
			Level(level).
			With().
			Str("role", role).
			Timestamp().
			Logger(),
	}
}

// SetLevel changes the global log level. An empty level keeps the current one.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(parsed)
	return nil
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context by the
// trace id middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one, zerolog's
// default context logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
