package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/dto"
	"github.com/GlebRadaev/aescholar/internal/service/activity"
	"github.com/GlebRadaev/aescholar/internal/service/adminservice"
	"github.com/spf13/cobra"
)

func importLegacyCmd() *cobra.Command {
	var adminEmail string

	cmd := &cobra.Command{
		Use:   "import-legacy [file.json]",
		Short: "Import paper-era applications from a JSON file",
		Long: `Reads either a JSON array of submissions or an object with a
"submissions" array and imports them in one transaction. Rows that fail are
reported and skipped; the run is recorded in the import history.

Examples:
  portalctl import-legacy paper-2024.json --admin-email ops@example.ca`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			subs, err := readSubmissions(f)
			if err != nil {
				return fmt.Errorf("can't parse %s: %w", args[0], err)
			}

			ctx := cmd.Context()
			_, repos, pool, err := openRepos(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			user, err := repos.UserRepo.FindByEmail(ctx, strings.ToLower(adminEmail))
			if err != nil {
				return err
			}
			if user == nil || !domain.Authorize(user.Role, domain.CapAdmin) {
				return fmt.Errorf("%s is not an administrator", adminEmail)
			}

			recorder := activity.New(repos.NotificationRepo, repos.AuditRepo, repos.TxManager)
			admin := adminservice.New(repos.UserRepo, repos.ApplicationRepo, repos.ScholarshipRepo, repos.ImportRepo,
				repos.AuditRepo, nil, recorder, repos.TxManager)

			res, err := admin.ImportLegacy(ctx, domain.Actor{ID: user.ID, Role: user.Role}, subs, filepath.Base(args[0]))
			if err != nil {
				return err
			}
			printImportResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&adminEmail, "admin-email", "", "administrator the import is recorded against")
	cmd.MarkFlagRequired("admin-email")

	return cmd
}

func readSubmissions(r io.Reader) ([]domain.LegacySubmission, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)

	var subs []domain.LegacySubmission
	if len(raw) > 0 && raw[0] == '[' {
		err = json.Unmarshal(raw, &subs)
		return subs, err
	}
	var req dto.LegacyImportRequestDTO
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	return req.Submissions, nil
}

func printImportResult(w io.Writer, res *domain.ImportResult) {
	fmt.Fprintf(w, "imported %d of %d (%d failed)\n", res.Imported, res.Total, res.Failed)
	for _, e := range res.Errors {
		fmt.Fprintf(w, "  %s: %s\n", e.Email, e.Error)
	}
}
