package importer

import "fmt"

// FileResult records the outcome of importing one file.
type FileResult struct {
	File      string
	Extracted int // records produced by parsing/extraction
	Imported  int // records that survived filtering and were stored
	Filtered  int // records removed by the month/category filters
	Err       error
}

// Failed reports whether this file's import failed outright.
func (r FileResult) Failed() bool {
	return r.Err != nil
}

// BatchReport aggregates the results of a sequential multi-file import.
// Per-file failures are isolated; successes are kept.
type BatchReport struct {
	Results []FileResult
}

// Imported returns the total number of records stored across the batch.
func (b BatchReport) Imported() int {
	total := 0
	for _, r := range b.Results {
		total += r.Imported
	}
	return total
}

// Failures returns the results for files that failed.
func (b BatchReport) Failures() []FileResult {
	var failed []FileResult
	for _, r := range b.Results {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Summary renders a one-line human-readable description of the batch.
func (b BatchReport) Summary() string {
	failures := b.Failures()
	if len(failures) == 0 {
		return fmt.Sprintf("imported %d record(s) from %d file(s)", b.Imported(), len(b.Results))
	}
	names := make([]string, 0, len(failures))
	for _, f := range failures {
		names = append(names, f.File)
	}
	return fmt.Sprintf("imported %d record(s) from %d file(s); %d failed: %v",
		b.Imported(), len(b.Results)-len(failures), len(failures), names)
}
