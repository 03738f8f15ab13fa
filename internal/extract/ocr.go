package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"

	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/parsererror"
)

// OCRRunner invokes the external pay stub OCR helper as a subprocess and
// consumes its JSON output. The helper prints a JSON array of snake_case
// paycheck objects on stdout.
type OCRRunner struct {
	Command string
	Args    []string
	logger  logging.Logger
}

// NewOCRRunner creates an OCRRunner for the given helper command.
func NewOCRRunner(command string, args []string, logger logging.Logger) *OCRRunner {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &OCRRunner{
		Command: command,
		Args:    args,
		logger:  logger,
	}
}

// Run executes the helper against one file and decodes its output. A failed
// subprocess or non-JSON output is an extraction error for that file only.
func (r *OCRRunner) Run(ctx context.Context, filePath string) ([]map[string]interface{}, error) {
	args := append(append([]string{}, r.Args...), filePath)
	cmd := exec.CommandContext(ctx, r.Command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldOperation, Value: "ocr"},
	).Debug("Running OCR helper")

	if err := cmd.Run(); err != nil {
		r.logger.WithError(err).WithField("stderr", stderr.String()).Warn("OCR helper failed")
		return nil, &parsererror.ExtractionError{FilePath: filePath, Stage: "OCR", Err: err}
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(stdout.Bytes(), &records); err != nil {
		return nil, &parsererror.ExtractionError{FilePath: filePath, Stage: "OCR", Err: err}
	}
	return records, nil
}
