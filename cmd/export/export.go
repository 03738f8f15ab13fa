// Package export handles exporting canonical transactions to CSV.
package export

import (
	"mbaxter/ledgerize/cmd/root"
	"mbaxter/ledgerize/internal/common"
	"mbaxter/ledgerize/internal/summary"

	"github.com/spf13/cobra"
)

var output string

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored transactions to a CSV file",
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "transactions.csv", "Output CSV file")
}

func exportFunc(cmd *cobra.Command, args []string) {
	app := root.GetApp()
	log := app.Logger

	collection, err := app.Records.Load()
	if err != nil {
		log.Fatalf("Failed to load records: %v", err)
	}

	transactions := collection.Transactions
	if root.Month != "" {
		transactions = summary.FilterTransactions(transactions, root.Month, "")
	}

	if err := common.WriteTransactionsToCSV(transactions, output); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	log.WithField("output_file", output).Info("Export complete")
}
