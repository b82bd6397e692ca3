package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/app"
	"github.com/heartmarshall/casedesk/internal/audit"
)

const auditModule = "audit"

type auditFilterFlags struct {
	table     string
	operation string
	actor     string
	record    string
	search    string
	from, to  string
}

func (f *auditFilterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.table, "table", "", "Audited table")
	cmd.Flags().StringVar(&f.operation, "operation", "", "INSERT, UPDATE, DELETE or SELECT")
	cmd.Flags().StringVar(&f.actor, "actor", "", "Actor UUID")
	cmd.Flags().StringVar(&f.record, "record", "", "Record UUID")
	cmd.Flags().StringVar(&f.search, "search", "", "Match description")
	cmd.Flags().StringVar(&f.from, "from", "", "Changed at or after")
	cmd.Flags().StringVar(&f.to, "to", "", "Changed before")
}

func (f auditFilterFlags) filter() (audit.Filter, error) {
	var (
		out audit.Filter
		err error
	)
	out.Table = f.table
	out.Search = f.search
	if out.Operation, err = parseOperation(f.operation); err != nil {
		return out, err
	}
	if out.ActorID, err = optionalID("actor", f.actor); err != nil {
		return out, err
	}
	if out.RecordID, err = optionalID("record", f.record); err != nil {
		return out, err
	}
	if out.From, err = optionalTime("from", f.from); err != nil {
		return out, err
	}
	if out.To, err = optionalTime("to", f.to); err != nil {
		return out, err
	}
	return out, nil
}

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Read the audit trail",
	}
	cmd.AddCommand(newAuditListCmd(), newAuditStatsCmd(), newAuditExportCmd())
	return cmd
}

func newAuditListCmd() *cobra.Command {
	var (
		ff auditFilterFlags
		pf pageFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audit entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := ff.filter()
			if err != nil {
				reportError(cmd.ErrOrStderr(), err)
				return err
			}
			return guarded(cmd, "audit.list", auditModule, "read",
				func(ctx context.Context, a *app.App, p *access.Principal) (audit.QueryResult, error) {
					return a.Audit.Query(ctx, p.Scope(), filter, pf.request())
				})
		},
	}
	ff.bind(cmd)
	pf.bind(cmd)
	return cmd
}

func newAuditStatsCmd() *cobra.Command {
	var window time.Duration
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the audit trail",
		RunE: func(cmd *cobra.Command, args []string) error {
			return guarded(cmd, "audit.stats", auditModule, "read",
				func(ctx context.Context, a *app.App, p *access.Principal) (audit.Stats, error) {
					w := window
					if w <= 0 {
						w = a.Config.Audit.StatsWindow
					}
					return a.Audit.Stats(ctx, p.Scope(), w)
				})
		},
	}
	cmd.Flags().DurationVar(&window, "window", 0, "Recent-activity window (default from config)")
	return cmd
}

func newAuditExportCmd() *cobra.Command {
	var (
		ff  auditFilterFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export audit entries as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := ff.filter()
			if err != nil {
				reportError(cmd.ErrOrStderr(), err)
				return err
			}
			w, closeFn, err := outputFile(cmd, out)
			if err != nil {
				reportError(cmd.ErrOrStderr(), err)
				return err
			}
			defer func() { _ = closeFn() }()

			summary := cmd.OutOrStdout()
			if w == summary {
				summary = cmd.ErrOrStderr()
			}
			return guardedTo(cmd, summary, "audit.export", auditModule, "export",
				func(ctx context.Context, a *app.App, p *access.Principal) (audit.ExportResult, error) {
					return a.Audit.ExportCSV(ctx, p.Scope(), p.ActorID(), filter, w)
				})
		},
	}
	ff.bind(cmd)
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	return cmd
}
