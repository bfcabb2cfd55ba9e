package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-insights/internal/config"
	"github.com/carson-networks/budget-insights/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := config.ProcessEnvironmentVariables()
		if err != nil {
			return err
		}
		status, err := storage.RunMigrations(env.PostgresURL())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema version %d -> %d\n", status.PreMigrationVersion, status.PostMigrationVersion)
		return err
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
