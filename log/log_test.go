package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

// TestSetLevel verifies that SetLevel correctly updates the underlying
// zap atomic level according to the provided level string.
func TestSetLevel(t *testing.T) {
	cases := []struct {
		in       string
		expected zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{LevelInfo, zapcore.InfoLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{LevelFatal, zapcore.FatalLevel},
		{"unknown", zapcore.InfoLevel},
	}

	for _, c := range cases {
		SetLevel(c.in)
		assert.Equal(t, c.expected, zapLevel.Level())
	}
}

type stubLogger struct {
	lastMsg  string
	lastKV   []any
	warnfFmt string
}

func (s *stubLogger) Debug(args ...any)                 {}
func (s *stubLogger) Debugf(format string, args ...any) {}
func (s *stubLogger) Info(args ...any)                  {}
func (s *stubLogger) Infof(format string, args ...any)  {}
func (s *stubLogger) Warn(args ...any)                  {}
func (s *stubLogger) Warnf(format string, args ...any)  { s.warnfFmt = format }
func (s *stubLogger) Warnw(msg string, keysAndValues ...any) {
	s.lastMsg = msg
	s.lastKV = keysAndValues
}
func (s *stubLogger) Error(args ...any)                 {}
func (s *stubLogger) Errorf(format string, args ...any) {}

// TestWarnw verifies that the package-level Warnw forwards to Default with
// its structured fields intact.
func TestWarnw(t *testing.T) {
	stub := &stubLogger{}
	old := Default
	Default = stub
	defer func() { Default = old }()

	Warnw("unexpected state key", "key", "foo", "action", "INIT")
	assert.Equal(t, "unexpected state key", stub.lastMsg)
	assert.Equal(t, []any{"key", "foo", "action", "INIT"}, stub.lastKV)
}

// TestWarnf verifies that the package-level Warnf forwards the format
// string to Default.
func TestWarnf(t *testing.T) {
	stub := &stubLogger{}
	old := Default
	Default = stub
	defer func() { Default = old }()

	Warnf("reducer %q ignored", "counter")
	assert.Equal(t, "reducer %q ignored", stub.warnfFmt)
}
