package auroradataapi

import (
	"context"
	"io"

	rlog "github.com/sirupsen/logrus"
)

// ADADatabaseKey is the context key for the database name attached to log entries.
const ADADatabaseKey contextKey = "LOG_DATABASE"

// ADAResourceKey is the context key for the cluster resource ARN attached to log entries.
const ADAResourceKey contextKey = "LOG_RESOURCE"

type contextKey string

// logKeys are the context keys written to logs when logger.WithContext is used.
var logKeys = [...]contextKey{ADADatabaseKey, ADAResourceKey}

// ADALogger is the logging interface used by the driver. It abstracts away the
// underlying logging mechanism; the default implementation delegates to logrus.
type ADALogger interface {
	rlog.Ext1FieldLogger
	SetLogLevel(level string) error
	GetLogLevel() string
	WithContext(ctx context.Context) *rlog.Entry
	SetOutput(output io.Writer)
}

type defaultLogger struct {
	*rlog.Logger
}

func (log *defaultLogger) SetLogLevel(level string) error {
	actualLevel, err := rlog.ParseLevel(level)
	if err != nil {
		return err
	}
	log.Logger.SetLevel(actualLevel)
	return nil
}

func (log *defaultLogger) GetLogLevel() string {
	return log.Logger.GetLevel().String()
}

// WithContext returns an entry carrying the fields extracted from ctx for the
// registered log keys.
func (log *defaultLogger) WithContext(ctx context.Context) *rlog.Entry {
	fields := context2Fields(ctx)
	return log.Logger.WithFields(*fields)
}

func createDefaultLogger() defaultLogger {
	inner := rlog.New()
	inner.SetLevel(rlog.WarnLevel)
	return defaultLogger{Logger: inner}
}

var logger = newLogger()

func newLogger() ADALogger {
	l := createDefaultLogger()
	return &l
}

// SetLogger sets a new logger of the ADALogger interface for the package.
func SetLogger(inLogger ADALogger) {
	logger = inLogger
}

// GetLogger returns the current logger.
func GetLogger() ADALogger {
	return logger
}

func context2Fields(ctx context.Context) *rlog.Fields {
	fields := rlog.Fields{}
	if ctx == nil {
		return &fields
	}
	for i := 0; i < len(logKeys); i++ {
		if ctx.Value(logKeys[i]) != nil {
			fields[string(logKeys[i])] = ctx.Value(logKeys[i])
		}
	}
	return &fields
}
