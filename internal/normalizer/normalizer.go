// Package normalizer turns raw transaction records from any import source
// (CSV columns, AI JSON, pasted JSON) into canonical transactions.
package normalizer

import (
	"encoding/json"
	"math"

	"mbaxter/ledgerize/internal/categorizer"
	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/models"
	"mbaxter/ledgerize/internal/parsererror"

	"github.com/google/uuid"
)

// Normalizer finalizes raw records into canonical transactions.
type Normalizer struct {
	engine *categorizer.Engine
	logger logging.Logger
}

// New creates a Normalizer backed by the given categorization engine.
func New(engine *categorizer.Engine, logger logging.Logger) *Normalizer {
	if engine == nil {
		engine = categorizer.NewEngine(nil, logger)
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Normalizer{
		engine: engine,
		logger: logger,
	}
}

// Finalize converts raw records into canonical transactions. The merchant is
// whitespace-normalized, the amount's sign is consumed by categorization and
// the magnitude stored, and each transaction gets a fresh id. Records whose
// date is not already canonical YYYY-MM-DD are dropped; date resolution
// happens upstream. Input order is preserved.
func (n *Normalizer) Finalize(raw []models.RawTransaction, mappings map[string]string) []models.Transaction {
	out := make([]models.Transaction, 0, len(raw))
	for _, record := range raw {
		if !models.IsCanonicalDate(record.Date) {
			n.logger.WithFields(
				logging.Field{Key: "date", Value: record.Date},
				logging.Field{Key: logging.FieldMerchant, Value: record.Merchant},
				logging.Field{Key: logging.FieldReason, Value: "bad date"},
			).Debug("Dropping record")
			continue
		}

		merchant := models.NormalizeMerchant(record.Merchant)
		category := n.engine.Categorize(merchant, record.Amount, mappings)

		out = append(out, models.Transaction{
			ID:               uuid.New().String(),
			Date:             record.Date,
			Merchant:         merchant,
			Amount:           math.Abs(record.Amount),
			Category:         category,
			OriginalCategory: record.Category,
		})
	}
	return out
}

// ParseJSON decodes a JSON array of raw transaction records. Malformed JSON
// text is a hard error; malformed individual values coerce to zero inside
// RawTransaction's decoder.
func ParseJSON(data []byte) ([]models.RawTransaction, error) {
	var records []models.RawTransaction
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: "JSON transaction array",
			Msg:            err.Error(),
		}
	}
	return records, nil
}
