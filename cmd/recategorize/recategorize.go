// Package recategorize handles manual recategorization of a transaction.
package recategorize

import (
	"mbaxter/ledgerize/cmd/root"
	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the recategorize command.
var Cmd = &cobra.Command{
	Use:   "recategorize <transaction-id> <category>",
	Short: "Change a transaction's category and teach the merchant mapping",
	Long: `Change one transaction's category. The merchant→category mapping is
updated so future imports of the same merchant categorize consistently;
already-stored transactions other than the edited one are untouched.`,
	Args: cobra.ExactArgs(2),
	Run:  recategorizeFunc,
}

func recategorizeFunc(cmd *cobra.Command, args []string) {
	app := root.GetApp()
	log := app.Logger
	id, category := args[0], args[1]

	if !models.IsValidCategory(category) {
		log.Fatalf("Unknown category %q; valid categories: %v", category, models.CategoryOrder)
	}

	merchant, err := app.Records.Recategorize(id, category)
	if err != nil {
		log.Fatalf("Recategorize failed: %v", err)
	}

	if err := app.Mappings.Set(merchant, category); err != nil {
		log.Fatalf("Failed to save merchant mapping: %v", err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldMerchant, Value: merchant},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Info("Transaction recategorized and mapping learned")
}
