package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logrus logger configured for the daemon: text
// format with timestamps on stdout. An unparseable level falls back to
// info.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
		logger.WithField("level", level).Warn("Unknown log level, using info")
	}
	logger.SetLevel(parsed)

	return logger
}
