package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/app"
	"github.com/heartmarshall/casedesk/internal/config"
	"github.com/heartmarshall/casedesk/internal/safeexec"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "casedesk",
		Short:         "Case and task admin data layer tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("metrics-file", "", "write Prometheus metrics to this file when the command ends")
	cmd.AddCommand(
		newVersionCmd(),
		newMigrateCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newCasesCmd(),
		newAuditCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}

// withApp loads config, opens the application and closes it after fn.
// With --metrics-file the registry is written once pending audit writes
// have drained. Errors are printed to stderr before they are returned.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	metricsFile, _ := cmd.Flags().GetString("metrics-file")

	err := func() error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log, cmd.ErrOrStderr())

		a, err := app.Open(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			a.Close()
			if metricsFile == "" {
				return
			}
			if err := a.WriteMetrics(metricsFile); err != nil {
				logger.Warn("metrics not written", slog.String("path", metricsFile), slog.Any("error", err))
			}
		}()

		return fn(cmd.Context(), a)
	}()
	if err != nil {
		reportError(cmd.ErrOrStderr(), err)
	}
	return err
}

// appOp is a command body run under a validated session.
type appOp[T any] func(ctx context.Context, a *app.App, p *access.Principal) (T, error)

// guarded runs op through the session executor and prints the value as JSON.
func guarded[T any](cmd *cobra.Command, name, module, action string, op appOp[T]) error {
	return guardedTo(cmd, cmd.OutOrStdout(), name, module, action, op)
}

func guardedTo[T any](cmd *cobra.Command, w io.Writer, name, module, action string, op appOp[T]) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		res := safeexec.Run(ctx, a.Exec, func(ctx context.Context, p *access.Principal) (T, error) {
			return op(ctx, a, p)
		}, safeexec.Named(name), safeexec.Require(module, action))
		v, err := res.Unwrap()
		if err != nil {
			return err
		}
		return writeJSON(w, v)
	})
}
