// Package importer orchestrates file imports: it routes each file to the
// right parser or extraction collaborator, finalizes the records, applies
// the caller-side filters, and merges the results into the persisted
// collection. Multi-file batches run strictly sequentially so a rate-limited
// extraction collaborator is never hammered; a per-file failure is isolated
// and never aborts the rest of the batch.
package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mbaxter/ledgerize/internal/extract"
	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/models"
	"mbaxter/ledgerize/internal/normalizer"
	"mbaxter/ledgerize/internal/parsererror"
	"mbaxter/ledgerize/internal/paystub"
	"mbaxter/ledgerize/internal/store"
)

// Importer wires the normalizer, the stores, and the optional extraction
// collaborators together.
type Importer struct {
	normalizer *normalizer.Normalizer
	mappings   *store.MappingStore
	records    *store.RecordStore
	ai         extract.TransactionExtractor
	paycheckAI extract.PaycheckExtractor
	ocr        *extract.OCRRunner
	logger     logging.Logger
}

// Options carries the optional collaborators for New.
type Options struct {
	AI         extract.TransactionExtractor
	PaycheckAI extract.PaycheckExtractor
	OCR        *extract.OCRRunner
}

// New creates an Importer. The extraction collaborators are optional;
// importing document formats that need a missing collaborator fails per
// file, not globally.
func New(n *normalizer.Normalizer, mappings *store.MappingStore, records *store.RecordStore, opts Options, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Importer{
		normalizer: n,
		mappings:   mappings,
		records:    records,
		ai:         opts.AI,
		paycheckAI: opts.PaycheckAI,
		ocr:        opts.OCR,
		logger:     logger,
	}
}

// ImportTransactionsFile imports one statement file (CSV/TSV, JSON, or a
// document handled by the AI collaborator) for the given target month.
func (im *Importer) ImportTransactionsFile(ctx context.Context, path, targetMonth string) FileResult {
	result := FileResult{File: path}

	raw, err := im.parseTransactionsFile(ctx, path, targetMonth)
	if err != nil {
		result.Err = err
		return result
	}
	result.Extracted = len(raw)

	final := im.normalizer.Finalize(raw, im.mappings.Get())

	// Second-stage filter: exclude payments/credits and re-check the month.
	// The CSV parser already pre-filtered by month, but this stage also
	// covers JSON and AI sources.
	kept := final[:0]
	for _, tx := range final {
		if tx.Category == models.CategoryPayment || !tx.InMonth(targetMonth) {
			continue
		}
		kept = append(kept, tx)
	}
	final = kept
	result.Filtered = result.Extracted - len(final)

	if len(final) == 0 {
		result.Err = &parsererror.EmptyResultError{
			FilePath:  path,
			Extracted: result.Extracted,
			Filtered:  result.Filtered,
		}
		return result
	}

	if err := im.records.AddTransactions(final); err != nil {
		result.Err = err
		return result
	}
	result.Imported = len(final)

	im.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldMonth, Value: targetMonth},
		logging.Field{Key: logging.FieldCount, Value: result.Imported},
	).Info("Imported transactions")
	return result
}

func (im *Importer) parseTransactionsFile(ctx context.Context, path, targetMonth string) ([]models.RawTransaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return im.normalizer.ParseCSV(string(data), targetMonth)
	case ".json":
		return normalizer.ParseJSON(data)
	default:
		if im.ai == nil {
			return nil, fmt.Errorf("no AI extractor configured for %s", path)
		}
		return im.ai.ExtractTransactions(ctx, data, mimeTypeFor(path), targetMonth)
	}
}

// ImportPaycheckFile imports one pay statement file. JSON is normalized
// directly; other formats go through the OCR helper when the path follows
// the OCR drop convention, otherwise through the AI collaborator.
func (im *Importer) ImportPaycheckFile(ctx context.Context, path string, fallbackYear int) FileResult {
	result := FileResult{File: path}

	paychecks, err := im.parsePaycheckFile(ctx, path, fallbackYear)
	if err != nil {
		result.Err = err
		return result
	}
	result.Extracted = len(paychecks)

	if len(paychecks) == 0 {
		result.Err = &parsererror.EmptyResultError{FilePath: path}
		return result
	}

	if err := im.records.AddPaychecks(paychecks); err != nil {
		result.Err = err
		return result
	}
	result.Imported = len(paychecks)

	im.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: result.Imported},
	).Info("Imported paychecks")
	return result
}

func (im *Importer) parsePaycheckFile(ctx context.Context, path string, fallbackYear int) ([]models.Paycheck, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading file: %w", err)
		}
		return paystub.ParseJSON(data, fallbackYear)
	}

	if _, ok := paystub.DetectOCRMonth(path); ok && im.ocr != nil {
		records, err := im.ocr.Run(ctx, path)
		if err != nil {
			return nil, err
		}
		paychecks := make([]models.Paycheck, 0, len(records))
		for _, record := range records {
			p := paystub.Normalize(record, fallbackYear)
			paystub.ApplyOCROverride(&p, path, fallbackYear)
			paychecks = append(paychecks, p)
		}
		return paychecks, nil
	}

	if im.paycheckAI == nil {
		return nil, fmt.Errorf("no extractor configured for %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	records, err := im.paycheckAI.ExtractPaycheck(ctx, data, mimeTypeFor(path))
	if err != nil {
		return nil, err
	}
	paychecks := make([]models.Paycheck, 0, len(records))
	for _, record := range records {
		paychecks = append(paychecks, paystub.Normalize(record, fallbackYear))
	}
	return paychecks, nil
}

// ImportTransactionsBatch processes the files strictly sequentially,
// collecting per-file failures without aborting the remainder.
func (im *Importer) ImportTransactionsBatch(ctx context.Context, paths []string, targetMonth string) BatchReport {
	report := BatchReport{}
	for _, path := range paths {
		result := im.ImportTransactionsFile(ctx, path, targetMonth)
		if result.Failed() {
			im.logger.WithError(result.Err).WithField(logging.FieldFile, path).Warn("File import failed")
		}
		report.Results = append(report.Results, result)
	}
	return report
}

// ImportPaychecksBatch processes pay statement files strictly sequentially.
func (im *Importer) ImportPaychecksBatch(ctx context.Context, paths []string, fallbackYear int) BatchReport {
	report := BatchReport{}
	for _, path := range paths {
		result := im.ImportPaycheckFile(ctx, path, fallbackYear)
		if result.Failed() {
			im.logger.WithError(result.Err).WithField(logging.FieldFile, path).Warn("File import failed")
		}
		report.Results = append(report.Results, result)
	}
	return report
}

// YearOf extracts the year from a YYYY-MM target month, falling back to 0
// for malformed input.
func YearOf(targetMonth string) int {
	if len(targetMonth) < 4 {
		return 0
	}
	year, err := strconv.Atoi(targetMonth[:4])
	if err != nil {
		return 0
	}
	return year
}

func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "text/plain"
	}
}
