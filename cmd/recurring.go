package cmd

import (
	"fmt"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/recurring"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Work with recurring rules",
	}

	run := &cobra.Command{
		Use:   "run",
		Short: "Create the transactions of all due recurring rules once",
		Long: `Create the transactions of all due recurring rules once.

This is what "serve" does periodically when RECURRING_INTERVAL is set,
use it from cron when the worker is disabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, _ := cmd.Flags().GetString("user")

			closeDB, err := connectDatabase()
			if err != nil {
				return err
			}
			defer closeDB()

			ctx := log.Logger.WithContext(cmd.Context())

			var result recurring.Result
			if userID != "" {
				result, err = recurring.MaterializeUser(ctx, userID, time.Now())
			} else {
				result, err = recurring.Materialize(ctx, time.Now())
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "rules: %d, created: %d, deactivated: %d\n", result.Rules, result.Created, result.Deactivated)
			return nil
		},
	}
	run.Flags().String("user", "", "only process the rules of this user")

	cmd.AddCommand(run)
	return cmd
}
