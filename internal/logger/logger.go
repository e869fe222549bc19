// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the front controller. Request handlers
// never hold a logger of their own: the trace-id middleware stores one in
// the request context and everything downstream reads it back with
// FromRequest or FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelEnv names the environment variable holding the minimum log level.
const LevelEnv = "LOG_LEVEL"

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the process logger for the given role (the binary name).
// It writes JSON to stdout at the level named by LOG_LEVEL, debug when unset.
func NewLogger(role string) *Logger {
	return New(role, os.Stdout, ParseLevel(os.Getenv(LevelEnv)))
}

// New builds a logger writing to w. zerolog keeps its level and caller
// settings globally, so the last call wins.
func New(role string, w io.Writer, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// ParseLevel maps a level name ("info", "WARN", ...) to a zerolog level.
// Empty or unknown names fall back to debug.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return level
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Component returns a child logger tagged with the component name, for
// long-running parts of the server (workers, health reporters).
func (l *Logger) Component(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// WithTraceID stores a child of l carrying trace_id in ctx.
func (l *Logger) WithTraceID(ctx context.Context, traceID string) context.Context {
	child := l.With().Str("trace_id", traceID).Logger()
	return child.WithContext(ctx)
}

// FromRequest returns the logger stored in the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. Without one, zerolog hands
// back its default context logger (disabled unless configured), never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
