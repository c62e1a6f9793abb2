// Package log carries a cdr.dev/slog logger on the context so that the theme
// pipeline can log without threading a logger through every call.
package log

import (
	"context"
	stdlog "log"
	"os"
	"testing"

	"cdr.dev/slog"
	"cdr.dev/slog/sloggers/sloghuman"
	"cdr.dev/slog/sloggers/slogtest"

	"github.com/railroad-think/rrtheme/lib/env"
)

const name = "rrtheme"

var _default = slog.Make(sloghuman.Sink(os.Stderr)).Named(name)

type loggerKey struct{}

func from(ctx context.Context) slog.Logger {
	l, ok := ctx.Value(loggerKey{}).(slog.Logger)
	if !ok {
		return _default
	}
	return l
}

func With(ctx context.Context, l slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// WithFields attaches fields to every later entry logged through ctx.
func WithFields(ctx context.Context, fields ...slog.Field) context.Context {
	return With(ctx, from(ctx).With(fields...))
}

// WithTB logs to t. DEBUG lowers the level as it does for Stderr.
func WithTB(ctx context.Context, t testing.TB, opts *slogtest.Options) context.Context {
	return With(ctx, leveled(slogtest.Make(t, opts)))
}

func Debug(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Debug(ctx, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Warn(ctx, msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Error(ctx, msg, fields...)
}

func Named(ctx context.Context, name string) context.Context {
	return With(ctx, from(ctx).Named(name))
}

// Leveled is how --debug takes effect after the process logger was installed.
func Leveled(ctx context.Context, level slog.Level) context.Context {
	return With(ctx, from(ctx).Leveled(level))
}

// Stderr installs the process logger and routes the standard library logger
// through it.
func Stderr(ctx context.Context) context.Context {
	l := leveled(slog.Make(sloghuman.Sink(os.Stderr)).Named(name))
	stdlog.SetOutput(slog.Stdlib(ctx, l, slog.LevelInfo).Writer())
	return With(ctx, l)
}

func leveled(l slog.Logger) slog.Logger {
	if env.Debug() {
		return l.Leveled(slog.LevelDebug)
	}
	return l
}
