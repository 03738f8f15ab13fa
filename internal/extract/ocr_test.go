package extract

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOCRRunner_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test helper needs a POSIX shell")
	}

	runner := NewOCRRunner("sh", []string{"-c", `echo '[{"gross_amount": 5000, "pay_date": "2026-01-15"}]'`}, &logging.MockLogger{})

	records, err := runner.Run(context.Background(), "stub.pdf")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 5000.0, records[0]["gross_amount"])
}

func TestOCRRunner_CommandFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test helper needs a POSIX shell")
	}

	runner := NewOCRRunner("sh", []string{"-c", "exit 3"}, &logging.MockLogger{})

	_, err := runner.Run(context.Background(), "stub.pdf")
	require.Error(t, err)
	var extractionErr *parsererror.ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
}

func TestOCRRunner_NonJSONOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test helper needs a POSIX shell")
	}

	runner := NewOCRRunner("sh", []string{"-c", "echo not-json"}, &logging.MockLogger{})

	_, err := runner.Run(context.Background(), "stub.pdf")
	require.Error(t, err)
	var extractionErr *parsererror.ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
}
