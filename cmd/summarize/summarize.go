// Package summarize handles the month summary command.
package summarize

import (
	"fmt"
	"time"

	"mbaxter/ledgerize/cmd/root"
	"mbaxter/ledgerize/internal/summary"

	"github.com/spf13/cobra"
)

var search string

// Cmd represents the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-category totals for a month",
	Run:   summaryFunc,
}

func init() {
	Cmd.Flags().StringVar(&search, "search", "", "Only include merchants matching this text")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	app := root.GetApp()
	log := app.Logger

	month := root.Month
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	collection, err := app.Records.Load()
	if err != nil {
		log.Fatalf("Failed to load records: %v", err)
	}

	transactions := summary.FilterTransactions(collection.Transactions, month, search)
	summaries := summary.ForMonth(transactions, month)
	if len(summaries) == 0 {
		fmt.Printf("No transactions for %s\n", month)
		return
	}

	var total float64
	fmt.Printf("Spending for %s:\n", month)
	for _, s := range summaries {
		fmt.Printf("  %-18s %10.2f  (%d transaction(s))\n", s.Category, s.Total, s.Count)
		total += s.Total
	}
	fmt.Printf("  %-18s %10.2f\n", "Total", total)
}
