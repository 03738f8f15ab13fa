package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	inner := errors.New("bad value")
	err := &ParseError{Source: "csv", Field: "amount", Value: "abc", Err: inner}

	assert.Contains(t, err.Error(), "csv")
	assert.Contains(t, err.Error(), "amount")
	assert.True(t, errors.Is(err, inner))
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{ExpectedFormat: "JSON array", Msg: "unexpected token"}
	assert.Contains(t, err.Error(), "JSON array")

	withFile := &InvalidFormatError{FilePath: "a.json", ExpectedFormat: "JSON array", Msg: "unexpected token"}
	assert.Contains(t, withFile.Error(), "a.json")
}

func TestEmptyResultError(t *testing.T) {
	nothing := &EmptyResultError{FilePath: "a.csv"}
	assert.True(t, nothing.NothingExtracted())
	assert.Contains(t, nothing.Error(), "a.csv")

	filtered := &EmptyResultError{FilePath: "a.csv", Extracted: 3, Filtered: 3}
	assert.False(t, filtered.NothingExtracted())
	assert.Contains(t, filtered.Error(), "filtered out")
}

func TestExtractionError(t *testing.T) {
	inner := errors.New("exit status 1")
	err := &ExtractionError{FilePath: "stub.pdf", Stage: "OCR", Err: inner}

	assert.Contains(t, err.Error(), "OCR")
	assert.True(t, errors.Is(err, inner))
}
