package main

import (
	"database/sql"
	"fmt"

	"github.com/GlebRadaev/aescholar/internal/config"
	"github.com/GlebRadaev/aescholar/internal/pg"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down|status|redo]",
		Short: "Apply the embedded database migrations",
		Long: `Runs a goose command against DATABASE_URL using the migrations compiled
into the binary. Defaults to "up".

Examples:
  portalctl migrate
  portalctl migrate status`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"up", "down", "status", "redo"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}

			cfg, err := config.FromEnv()
			if err != nil {
				return fmt.Errorf("invalid environment: %w", err)
			}
			db, err := sql.Open("postgres", cfg.Database)
			if err != nil {
				return fmt.Errorf("can't open database: %w", err)
			}
			defer db.Close()

			if err := pg.Migrate(db, command); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", command)
			return nil
		},
	}
}
