package cmd

import (
	"fmt"

	"github.com/HuyTapCode05/quanlythuchi/internal/router"
	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "quanlythuchi %s\n", router.Version())
			return err
		},
	}
}
