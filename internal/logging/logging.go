// Package logging configures the runner's diagnostic logger.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps normal runs quiet; the console belongs to the child.
const DefaultLevel = logrus.WarnLevel

// New returns a logger writing text entries to w at the named level. An
// unrecognized level falls back to DefaultLevel with a warning.
func New(level string, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(DefaultLevel)

	if level == "" {
		return log
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("invalid log level %s, defaulting to %s", level, DefaultLevel)
		return log
	}
	log.SetLevel(parsed)
	return log
}
