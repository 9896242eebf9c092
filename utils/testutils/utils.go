package testutils

import (
	"testing"

	"github.com/benoitkugler/cssom/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	require.Equal(t, exp, got)
}

func AssertNoErr(t *testing.T, err error) {
	t.Helper()
	require.NoError(t, err)
}

// Capture stores the warnings emitted through the package loggers.
type Capture struct {
	logs    *observer.ObservedLogs
	restore func()
}

// CaptureLogs starts recording the output of the package loggers,
// until one of Logs or AssertNoLogs is called.
func CaptureLogs() *Capture {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Capture{logs: logs, restore: logger.Redirect(core)}
}

// Logs stops the capture and returns the recorded messages.
func (c *Capture) Logs() []string {
	c.restore()
	entries := c.logs.AllUntimed()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func (c *Capture) AssertNoLogs(t *testing.T) {
	t.Helper()
	logs := c.Logs()
	assert.Empty(t, logs, "unexpected logs")
}
