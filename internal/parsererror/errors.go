package parsererror

import "fmt"

// ParseError represents an error during parsing of a single value.
type ParseError struct {
	Source string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Source, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input does not conform to
// the expected container format at all (unparseable JSON text, a CSV with no
// recognizable header). It is fatal to the single import operation that hit
// it and never corrupts previously persisted data.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
			e.FilePath, e.Msg, e.ExpectedFormat)
	}
	return fmt.Sprintf("invalid format: %s. Expected: %s", e.Msg, e.ExpectedFormat)
}

// EmptyResultError distinguishes "nothing extracted at all" from "extracted
// but everything was filtered out by month or category". Callers report the
// two cases with different messages.
type EmptyResultError struct {
	FilePath  string
	Extracted int // records produced before filtering
	Filtered  int // records removed by month/category filters
}

func (e *EmptyResultError) Error() string {
	if e.Extracted == 0 {
		return fmt.Sprintf("no records could be extracted from '%s'", e.FilePath)
	}
	return fmt.Sprintf("%d record(s) extracted from '%s' but all were filtered out",
		e.Extracted, e.FilePath)
}

// NothingExtracted reports whether the empty result came from extraction
// producing zero records, as opposed to filtering removing them all.
func (e *EmptyResultError) NothingExtracted() bool {
	return e.Extracted == 0
}

// ExtractionError represents a failure of an external extraction collaborator
// (AI call, OCR subprocess) for one file.
type ExtractionError struct {
	FilePath string
	Stage    string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s extraction failed for '%s': %v", e.Stage, e.FilePath, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
