package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"yenisei/internal/store"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations to the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.StoreEngine == store.EngineMemory {
				fmt.Fprintln(cmd.OutOrStdout(), "memory engine has no schema, nothing to migrate")
				return nil
			}
			// Opening a SQL store applies migrations.
			return withSource(cfg, func(src store.Source) error {
				fmt.Fprintf(cmd.OutOrStdout(), "%s schema is up to date\n", src.Engine())
				return nil
			})
		},
	}
}
