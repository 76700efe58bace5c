package logger

import (
	"os"

	sentryhook "github.com/chadsr/logrus-sentry"
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is passed to WithFields for structured log entries.
type Fields logrus.Fields

var logger = logrus.New()

func init() {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// SetupSentry attaches a Sentry hook for error-level entries when
// SENTRY_DSN is configured. Without a DSN it is a no-op.
func SetupSentry() error {
	dsn := viper.GetString("SENTRY_DSN")
	if dsn == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: viper.GetString("SENTRY_ENVIRONMENT"),
	}); err != nil {
		return err
	}

	hook := sentryhook.New([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	})
	logger.AddHook(&hook)

	return nil
}

// WithFields returns an entry carrying the given fields.
func WithFields(fields Fields) *logrus.Entry {
	return logger.WithFields(logrus.Fields(fields))
}

// Infof logs a formatted message at info level.
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Errorf logs a formatted message at error level.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Fatalf logs a formatted message at fatal level and exits.
func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}
