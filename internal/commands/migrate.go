package commands

import (
	"github.com/spf13/cobra"
)

// MigrateCmd creates the tables, or the MongoDB indexes, and exits
func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			return migrate(cmd.Context(), cfg, log)
		},
	}
}
