// Package common provides shared CSV functionality used by the normalizer
// and the export command.
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// ParseCSV splits raw CSV or TSV text into rows of fields.
//
// Fields are separated by comma or tab. A field may be quoted with `"`; a
// doubled quote inside a quoted field is a literal quote. \r\n, \r, or \n
// outside quotes ends a row. Rows whose fields are all blank are dropped,
// including a trailing blank row. Column counts are not validated across
// rows; this is a minimal RFC-4180-adjacent parser, not a general one.
func ParseCSV(text string) [][]string {
	var rows [][]string
	var row []string
	var field strings.Builder
	inQuotes := false

	runes := []rune(text)
	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRow := func() {
		endField()
		if !blankRow(row) {
			rows = append(rows, row)
		}
		row = nil
	}

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case !inQuotes && (c == ',' || c == '\t'):
			endField()
		case !inQuotes && (c == '\n' || c == '\r'):
			if c == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			endRow()
		default:
			field.WriteRune(c)
		}
	}
	// Final row without a trailing newline.
	if field.Len() > 0 || len(row) > 0 {
		endRow()
	}

	return rows
}

func blankRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// WriteTransactionsToCSV writes canonical transactions to a CSV file.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&transactions, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}
