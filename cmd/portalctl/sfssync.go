package main

import (
	"fmt"

	"github.com/GlebRadaev/aescholar/internal/sfs"
	"github.com/GlebRadaev/aescholar/pkg/clients"
	"github.com/spf13/cobra"
)

func sfsSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sfs-sync",
		Short: "Run one enrollment check against the student finance system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, repos, pool, err := openRepos(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			syncer := sfs.NewSyncer(repos.ApplicationRepo, sfs.New(cfg.SFSAddress, clients.NewHTTPClient()), cfg.SFSWorkers)
			res, err := syncer.Sync(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "checked %d: %d confirmed, %d pending, %d errors\n",
				res.EnrollmentChecks, res.EnrollmentConfirmed, res.EnrollmentPending, len(res.Errors))
			return nil
		},
	}
}
