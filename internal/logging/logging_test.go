package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		level string
		want  logrus.Level
	}{
		{"", DefaultLevel},
		{"debug", logrus.DebugLevel},
		{"ERROR", logrus.ErrorLevel},
		{"bogus", DefaultLevel},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.level, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log := New(tc.level, &buf)
			assert.Equal(t, tc.want, log.GetLevel())
		})
	}
}

func TestNewWarnsOnInvalidLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New("bogus", &buf)
	assert.Contains(t, buf.String(), "invalid log level bogus")
}

func TestDebugSuppressedByDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New("", &buf)
	log.Debug("spawning child")
	log.Info("child finished")
	assert.Empty(t, buf.String())
}
