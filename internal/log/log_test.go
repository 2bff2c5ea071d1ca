package log

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitInvalidLevel(t *testing.T) {
	err := Init(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestInitUnknownAppender(t *testing.T) {
	err := Init(Config{Appenders: []AppenderConfig{{Type: "syslog"}}})
	assert.Error(t, err)
}

func TestInitFileAppenderRequiresFilename(t *testing.T) {
	err := Init(Config{Appenders: []AppenderConfig{{Type: "file"}}})
	assert.Error(t, err)
}

func TestFormatterPattern(t *testing.T) {
	f := &formatter{pattern: "%time [%level] %msg %field\n", time: "2006-01-02"}
	entry := &logrus.Entry{
		Time:    time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "registry loaded",
		Data:    logrus.Fields{"entries": 30, "path": "data/rp210.csv"},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31 [info] registry loaded entries=30 path=data/rp210.csv\n", string(out))
}

func TestFormatterNoFields(t *testing.T) {
	f := &formatter{pattern: "%level %msg%field", time: "2006"}
	entry := &logrus.Entry{
		Time:    time.Now(),
		Level:   logrus.WarnLevel,
		Message: "bare",
	}

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "warning bare", string(out))
}

func TestWithFieldReturnsNewLogger(t *testing.T) {
	base := GetLogger()
	derived := base.WithField("key", "value")
	assert.NotSame(t, base, derived)
}
