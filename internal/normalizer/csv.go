package normalizer

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"mbaxter/ledgerize/internal/common"
	"mbaxter/ledgerize/internal/dateutil"
	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/models"
	"mbaxter/ledgerize/internal/parsererror"
)

// Header column candidates, matched case-insensitively in order. A statement
// either has a single signed amount column or split debit/credit columns.
var (
	dateColumns     = []string{"date", "transaction date", "posted date", "trans date"}
	merchantColumns = []string{"merchant", "description", "name", "memo"}
	amountColumns   = []string{"amount", "transaction amount", "amt"}
	debitColumns    = []string{"debit"}
	creditColumns   = []string{"credit"}
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

var errInvalidMonth = errors.New("target month must be YYYY-MM")

// ParseCSV extracts raw transaction records from statement CSV/TSV text.
// Header columns are located by case-insensitive name matching; each row's
// date is resolved with the target month's year as fallback, and rows whose
// resolved date falls outside targetMonth (YYYY-MM) are discarded. This
// month pre-filter is independent of the caller's later category-based
// exclusion. Amounts come from the amount column when present, otherwise
// debit − credit (debit is spend, credit reduces spend).
func (n *Normalizer) ParseCSV(csvText, targetMonth string) ([]models.RawTransaction, error) {
	if !monthPattern.MatchString(targetMonth) {
		return nil, &parsererror.ParseError{
			Source: "csv",
			Field:  "targetMonth",
			Value:  targetMonth,
			Err:    errInvalidMonth,
		}
	}
	fallbackYear, _ := strconv.Atoi(targetMonth[:4])

	rows := common.ParseCSV(csvText)
	if len(rows) == 0 {
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: "CSV with a header row",
			Msg:            "no rows found",
		}
	}

	header := rows[0]
	dateCol := findColumn(header, dateColumns)
	merchantCol := findColumn(header, merchantColumns)
	amountCol := findColumn(header, amountColumns)
	debitCol := findColumn(header, debitColumns)
	creditCol := findColumn(header, creditColumns)

	if dateCol < 0 || merchantCol < 0 || (amountCol < 0 && debitCol < 0 && creditCol < 0) {
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: "CSV with date, merchant/description, and amount (or debit/credit) columns",
			Msg:            "required columns not found in header",
		}
	}

	var records []models.RawTransaction
	for _, row := range rows[1:] {
		date := dateutil.Normalize(cell(row, dateCol), fallbackYear)
		if date == "" {
			n.logger.WithFields(
				logging.Field{Key: "raw_date", Value: cell(row, dateCol)},
				logging.Field{Key: logging.FieldReason, Value: "unparseable date"},
			).Debug("Skipping CSV row")
			continue
		}
		if !strings.HasPrefix(date, targetMonth) {
			continue
		}

		records = append(records, models.RawTransaction{
			Date:     date,
			Merchant: cell(row, merchantCol),
			Amount:   rowAmount(row, amountCol, debitCol, creditCol),
		})
	}
	return records, nil
}

func rowAmount(row []string, amountCol, debitCol, creditCol int) float64 {
	if amountCol >= 0 {
		f, _ := models.ParseAmount(cell(row, amountCol)).Float64()
		return f
	}
	debit, _ := models.ParseAmount(cell(row, debitCol)).Float64()
	credit, _ := models.ParseAmount(cell(row, creditCol)).Float64()
	return debit - credit
}

func findColumn(header []string, candidates []string) int {
	for _, candidate := range candidates {
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), candidate) {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
