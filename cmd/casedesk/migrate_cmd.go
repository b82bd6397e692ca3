package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/casedesk/internal/app"
	"github.com/heartmarshall/casedesk/internal/database"
)

type migrateOutput struct {
	Applied []string `json:"applied"`
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				results, err := database.Migrate(ctx, a.Pool())
				if err != nil {
					return err
				}
				out := migrateOutput{Applied: make([]string, 0, len(results))}
				for _, r := range results {
					out.Applied = append(out.Applied, r.Source.Path)
				}
				a.Logger.InfoContext(ctx, "migrations applied", slog.Int("count", len(out.Applied)))
				return writeJSON(cmd.OutOrStdout(), out)
			})
		},
	}
}
