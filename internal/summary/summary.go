// Package summary derives per-category spending views from the current
// transaction set. Summaries are recomputed on every read and never stored.
package summary

import (
	"strings"

	"mbaxter/ledgerize/internal/models"
)

// ForMonth computes category summaries for the transactions belonging to the
// given YYYY-MM month. Categories appear in canonical order; categories with
// no transactions are omitted.
func ForMonth(transactions []models.Transaction, month string) []models.CategorySummary {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, tx := range transactions {
		if !tx.InMonth(month) {
			continue
		}
		totals[tx.Category] += tx.Amount
		counts[tx.Category]++
	}

	var out []models.CategorySummary
	for _, category := range models.CategoryOrder {
		if counts[category] == 0 {
			continue
		}
		out = append(out, models.CategorySummary{
			Category: category,
			Total:    totals[category],
			Count:    counts[category],
			Color:    models.CategoryColors[category],
		})
	}
	return out
}

// FilterTransactions returns the transactions in the month whose merchant
// matches the search text, case-insensitively. Empty search matches all.
func FilterTransactions(transactions []models.Transaction, month, search string) []models.Transaction {
	needle := strings.ToLower(strings.TrimSpace(search))
	var out []models.Transaction
	for _, tx := range transactions {
		if !tx.InMonth(month) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(tx.Merchant), needle) {
			continue
		}
		out = append(out, tx)
	}
	return out
}
