// Package remove handles deletion of stored records.
package remove

import (
	"mbaxter/ledgerize/cmd/root"

	"github.com/spf13/cobra"
)

var (
	paycheck       bool
	clearPaychecks bool
)

// Cmd represents the delete command.
var Cmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a stored transaction or paycheck",
	Args:  cobra.MaximumNArgs(1),
	Run:   deleteFunc,
}

func init() {
	Cmd.Flags().BoolVar(&paycheck, "paycheck", false, "Delete a paycheck instead of a transaction")
	Cmd.Flags().BoolVar(&clearPaychecks, "clear-paychecks", false, "Remove every stored paycheck")
}

func deleteFunc(cmd *cobra.Command, args []string) {
	app := root.GetApp()
	log := app.Logger

	if clearPaychecks {
		if err := app.Records.ClearPaychecks(); err != nil {
			log.Fatalf("Clear failed: %v", err)
		}
		log.Info("All paychecks removed")
		return
	}

	if len(args) == 0 {
		log.Fatalf("An id is required unless --clear-paychecks is given")
	}

	var err error
	if paycheck {
		err = app.Records.DeletePaycheck(args[0])
	} else {
		err = app.Records.DeleteTransaction(args[0])
	}
	if err != nil {
		log.Fatalf("Delete failed: %v", err)
	}
	log.WithField("id", args[0]).Info("Record deleted")
}
