package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/app"
	"github.com/heartmarshall/casedesk/internal/model"
	"github.com/heartmarshall/casedesk/internal/service/archive"
	"github.com/heartmarshall/casedesk/internal/service/caserecord"
)

const casesModule = "cases"

type caseFilterFlags struct {
	search      string
	status      string
	application string
	priority    string
	assignee    string
}

func (f *caseFilterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.search, "search", "", "Match case number or title")
	cmd.Flags().StringVar(&f.status, "status", "", "Case status")
	cmd.Flags().StringVar(&f.application, "application", "", "Application UUID")
	cmd.Flags().StringVar(&f.priority, "priority", "", "Priority UUID")
	cmd.Flags().StringVar(&f.assignee, "assignee", "", "Assigned actor UUID")
}

func (f caseFilterFlags) filter() (caserecord.Filter, error) {
	var (
		out caserecord.Filter
		err error
	)
	out.Search = f.search
	if out.Status, err = parseStatus(f.status); err != nil {
		return out, err
	}
	if out.ApplicationID, err = optionalID("application", f.application); err != nil {
		return out, err
	}
	if out.PriorityID, err = optionalID("priority", f.priority); err != nil {
		return out, err
	}
	if out.AssignedToActorID, err = optionalID("assignee", f.assignee); err != nil {
		return out, err
	}
	return out, nil
}

func newCasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cases",
		Short: "Case records visible to the current actor",
	}
	cmd.AddCommand(
		newCasesListCmd(),
		newCasesShowCmd(),
		newCasesExportCmd(),
		newCasesArchiveCmd(),
		newCasesRestoreCmd(),
		newCasesArchivedCmd(),
	)
	return cmd
}

func newCasesListCmd() *cobra.Command {
	var (
		ff caseFilterFlags
		pf pageFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := ff.filter()
			if err != nil {
				reportError(cmd.ErrOrStderr(), err)
				return err
			}
			return guarded(cmd, "cases.list", casesModule, "read",
				func(ctx context.Context, a *app.App, p *access.Principal) (model.PageResult[model.CaseRecord], error) {
					return a.Services.Cases.List(ctx, p.Scope(), filter, pf.request())
				})
		},
	}
	ff.bind(cmd)
	pf.bind(cmd)
	return cmd
}

func newCasesShowCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one case",
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID("id", id)
			if err != nil {
				reportError(cmd.ErrOrStderr(), err)
				return err
			}
			return guarded(cmd, "cases.show", casesModule, "read",
				func(ctx context.Context, a *app.App, p *access.Principal) (*model.CaseRecord, error) {
					return a.Services.Cases.Get(ctx, caseID, p.Scope())
				})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Case UUID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

type exportOutput struct {
	Rows int `json:"rows"`
}

func newCasesExportCmd() *cobra.Command {
	var (
		ff  caseFilterFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export visible cases as CSV",
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
			return guardedTo(cmd, summary, "cases.export", casesModule, "export",
				func(ctx context.Context, a *app.App, p *access.Principal) (exportOutput, error) {
					n, err := a.Services.Cases.ExportCSV(ctx, p.Scope(), p.ActorID(), filter, w)
					return exportOutput{Rows: n}, err
				})
		},
	}
	ff.bind(cmd)
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	return cmd
}

func newCasesArchiveCmd() *cobra.Command {
	var (
		ids    []string
		reason string
	)
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Archive one or more cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			caseIDs := make([]uuid.UUID, 0, len(ids))
			for _, raw := range ids {
				id, err := parseID("id", raw)
				if err != nil {
					reportError(cmd.ErrOrStderr(), err)
					return err
				}
				caseIDs = append(caseIDs, id)
			}
			return guarded(cmd, "cases.archive", casesModule, "archive",
				func(ctx context.Context, a *app.App, p *access.Principal) (archive.Result, error) {
					svc := a.Services.Archive
					if len(caseIDs) == 1 {
						return svc.ArchiveCase(ctx, p.ActorID(), caseIDs[0], reason)
					}
					return svc.BulkArchive(ctx, p.ActorID(), caseIDs, reason)
				})
		},
	}
	cmd.Flags().StringSliceVar(&ids, "id", nil, "Case UUID, repeatable (required)")
	cmd.Flags().StringVar(&reason, "reason", "", "Archive reason")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newCasesRestoreCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore an archived case",
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID("id", id)
			if err != nil {
				reportError(cmd.ErrOrStderr(), err)
				return err
			}
			return guarded(cmd, "cases.restore", casesModule, "archive",
				func(ctx context.Context, a *app.App, p *access.Principal) (archive.Result, error) {
					return a.Services.Archive.RestoreCase(ctx, p.ActorID(), caseID)
				})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Case UUID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newCasesArchivedCmd() *cobra.Command {
	var (
		query    string
		from, to string
		pf       pageFlags
	)
	cmd := &cobra.Command{
		Use:   "archived",
		Short: "Search archived cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := archive.SearchParams{Query: query, Page: pf.request()}
			var err error
			if params.From, err = parseDate("from", from); err == nil {
				params.To, err = parseDate("to", to)
			}
			if err != nil {
				reportError(cmd.ErrOrStderr(), err)
				return err
			}
			return guarded(cmd, "cases.archived", casesModule, "read",
				func(ctx context.Context, a *app.App, p *access.Principal) (archive.Result, error) {
					return a.Services.Archive.SearchArchived(ctx, p.ActorID(), params)
				})
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "Search text")
	cmd.Flags().StringVar(&from, "from", "", "Archived on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Archived on or before (YYYY-MM-DD)")
	pf.bind(cmd)
	return cmd
}
