package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when the requested level cannot be parsed
const DefaultLevel = logrus.InfoLevel

// Setup configures the standard logrus logger and returns the level in effect.
// An invalid level is reported and replaced by DefaultLevel.
func Setup(level string, out io.Writer) logrus.Level {
	if out == nil {
		out = os.Stderr
	}
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		logrus.WithField("level", level).Warn("Invalid log level, defaulting to info")
		parsed = DefaultLevel
	}
	logrus.SetLevel(parsed)
	logrus.WithField("level", parsed).Debug("Log level set")
	return parsed
}

// Component returns a logger entry tagged with the component name
func Component(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}
