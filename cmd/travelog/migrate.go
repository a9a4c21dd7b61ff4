package main

import (
	"github.com/deppfellow/travelog/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var to int32

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations",
		Long:  "Migrate the schema to the latest version, or to --to. Version 0 drops every table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadDeps()
			if err != nil {
				return err
			}
			defer rt.close()

			return database.MigrateTo(cmd.Context(), &rt.logger, rt.cfg, to)
		},
	}

	cmd.Flags().Int32Var(&to, "to", -1, "target schema version; negative means latest")

	return cmd
}
