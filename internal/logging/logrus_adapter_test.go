package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{
			name:        "debug level with text format",
			level:       "debug",
			format:      "text",
			expectLevel: logrus.DebugLevel,
		},
		{
			name:        "info level with json format",
			level:       "info",
			format:      "json",
			expectLevel: logrus.InfoLevel,
		},
		{
			name:        "invalid level defaults to info",
			level:       "invalid",
			format:      "text",
			expectLevel: logrus.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestLogrusAdapter_FieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	underlying := logrus.New()
	underlying.SetOutput(&buf)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)

	logger.WithField(FieldMerchant, "Starbucks").Info("categorized")
	assert.Contains(t, buf.String(), "Starbucks")
	assert.Contains(t, buf.String(), "categorized")

	buf.Reset()
	logger.WithError(errors.New("boom")).Warn("import failed")
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	logger.WithFields(
		Field{Key: FieldCategory, Value: "Travel"},
		Field{Key: FieldCount, Value: 3},
	).Info("summary")
	assert.Contains(t, buf.String(), "Travel")
}

func TestMockLogger(t *testing.T) {
	mock := &MockLogger{}
	mock.Info("hello", Field{Key: FieldCount, Value: 1})
	mock.Warn("careful")

	entries := mock.GetEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "hello", entries[0].Message)
	assert.Equal(t, Field{Key: FieldCount, Value: 1}, entries[0].Fields[0])
	assert.Equal(t, "WARN", entries[1].Level)

	chained, ok := mock.WithError(errors.New("boom")).(*MockLogger)
	require.True(t, ok)
	chained.Error("failed")
	require.NotEmpty(t, chained.Entries)
	assert.EqualError(t, chained.Entries[len(chained.Entries)-1].Error, "boom")

	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}
