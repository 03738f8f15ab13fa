// Package migrate handles the paycheck collection migration command.
package migrate

import (
	"mbaxter/ledgerize/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the migrate command.
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade persisted paycheck records to the current shape",
	Long: `Run the paycheck collection migration. Records missing deduction
sub-fields get zero defaults and the FSA/Medicare guard is re-applied.
Running the migration twice is the same as running it once; conforming
records are never altered.`,
	Run: migrateFunc,
}

func migrateFunc(cmd *cobra.Command, args []string) {
	app := root.GetApp()
	log := app.Logger

	// Load runs the migration and writes back any upgraded records.
	collection, err := app.Records.Load()
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.WithField("count", len(collection.Paychecks)).Info("Paycheck records are up to date")
}
