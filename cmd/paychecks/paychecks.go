// Package paychecks handles the paychecks import command.
package paychecks

import (
	"errors"
	"time"

	"mbaxter/ledgerize/cmd/root"
	"mbaxter/ledgerize/internal/parsererror"

	"github.com/spf13/cobra"
)

var year int

// Cmd represents the paychecks command.
var Cmd = &cobra.Command{
	Use:   "paychecks [files...]",
	Short: "Import pay statement files (JSON, PDF, or image)",
	Long: `Import pay statements from one or more files.

JSON files are normalized directly. Files under a "<MonthName>OCR/"
directory go through the configured OCR helper; anything else goes through
the AI extractor.

Example:
  ledgerize paychecks stub.json scans/JanuaryOCR/stub.pdf`,
	Args: cobra.MinimumNArgs(1),
	Run:  paychecksFunc,
}

func init() {
	Cmd.Flags().IntVar(&year, "year", 0, "Fallback year for dates without one (default current year)")
}

func paychecksFunc(cmd *cobra.Command, args []string) {
	app := root.GetApp()
	log := app.Logger

	fallbackYear := year
	if fallbackYear == 0 {
		fallbackYear = time.Now().Year()
	}

	report := app.Importer.ImportPaychecksBatch(cmd.Context(), args, fallbackYear)

	for _, result := range report.Results {
		if !result.Failed() {
			continue
		}
		var empty *parsererror.EmptyResultError
		if errors.As(result.Err, &empty) {
			log.WithField("file", result.File).Warn("No paycheck data could be extracted")
			continue
		}
		log.WithError(result.Err).WithField("file", result.File).Error("Import failed")
	}

	log.Info(report.Summary())
}
