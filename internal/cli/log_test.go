package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestNewSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	quiet := newSlogLogger(&buf, false)
	quiet.Debug("hidden")
	assert.Empty(t, buf.String())

	quiet.Info("shown", "ops", 3)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "ops=3")

	buf.Reset()
	loud := newSlogLogger(&buf, true)
	loud.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newSlogLogger(&buf, false)

	ctx := withLogger(context.Background(), logger)
	assert.Same(t, logger, loggerFromContext(ctx))

	// Without a logger attached, logging is a no-op.
	assert.NotPanics(t, func() {
		loggerFromContext(context.Background()).Info("dropped")
	})
}
