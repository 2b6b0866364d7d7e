// Package logctx carries a leveled logger through a context.Context, so a
// command can attach request-scoped fields (the operation name, the
// repository path) once and have every function down the call chain log
// through the same entry without passing a logger argument everywhere.
package logctx

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
)

var defaultLogger = logrus.StandardLogger().WithField("go.version", runtime.Version())

// Logger provides a leveled-logging interface.
type Logger interface {
	Print(args ...any)
	Printf(format string, args ...any)
	Println(args ...any)

	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Fatalln(args ...any)

	Panic(args ...any)
	Panicf(format string, args ...any)
	Panicln(args ...any)

	Debug(args ...any)
	Debugf(format string, args ...any)
	Debugln(args ...any)

	Error(args ...any)
	Errorf(format string, args ...any)
	Errorln(args ...any)

	Info(args ...any)
	Infof(format string, args ...any)
	Infoln(args ...any)

	Warn(args ...any)
	Warnf(format string, args ...any)
	Warnln(args ...any)

	WithError(err error) *logrus.Entry
}

type loggerKey struct{}

// WithLogger attaches logger to ctx, returning the derived context.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the logger attached to ctx by WithLogger, or a package
// default if none was attached. If keys are given, each is resolved against
// ctx and, when present, added to the returned logger as a field.
func GetLogger(ctx context.Context, keys ...any) Logger {
	logger, ok := ctx.Value(loggerKey{}).(*logrus.Entry)
	if !ok {
		logger = defaultLogger
	}

	if len(keys) == 0 {
		return logger
	}

	fields := make(logrus.Fields, len(keys))
	for _, key := range keys {
		if v := ctx.Value(key); v != nil {
			fields[fmt.Sprint(key)] = v
		}
	}
	return logger.WithFields(fields)
}
