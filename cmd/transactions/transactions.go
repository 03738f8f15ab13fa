// Package transactions handles the import command for statement files.
package transactions

import (
	"errors"
	"time"

	"mbaxter/ledgerize/cmd/root"
	"mbaxter/ledgerize/internal/parsererror"

	"github.com/spf13/cobra"
)

// Cmd represents the import command.
var Cmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Import statement files (CSV, JSON, PDF, or image) for a month",
	Long: `Import spending transactions from one or more statement files.

Files are processed strictly sequentially; a failure in one file never
aborts the rest. Rows outside the target month and payment/credit entries
are filtered out.

Example:
  ledgerize import -m 2026-01 statement.csv extra.json`,
	Args: cobra.MinimumNArgs(1),
	Run:  importFunc,
}

func importFunc(cmd *cobra.Command, args []string) {
	app := root.GetApp()
	log := app.Logger

	month := root.Month
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	report := app.Importer.ImportTransactionsBatch(cmd.Context(), args, month)

	for _, result := range report.Results {
		if !result.Failed() {
			continue
		}
		var empty *parsererror.EmptyResultError
		if errors.As(result.Err, &empty) {
			if empty.NothingExtracted() {
				log.WithField("file", result.File).Warn("No transactions could be extracted")
			} else {
				log.WithField("file", result.File).Warn("Transactions were extracted but all fell outside the month or were payments/credits")
			}
			continue
		}
		log.WithError(result.Err).WithField("file", result.File).Error("Import failed")
	}

	log.Info(report.Summary())
}
