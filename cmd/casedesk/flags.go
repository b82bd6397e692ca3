package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/casedesk/internal/model"
)

// pageFlags binds the shared listing flags.
type pageFlags struct {
	page     int
	pageSize int
	sortBy   string
	desc     bool
}

func (f *pageFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&f.pageSize, "page-size", model.DefaultPageSize, "Rows per page")
	cmd.Flags().StringVar(&f.sortBy, "sort", "", "Sort key")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "Sort descending")
}

func (f pageFlags) request() model.PageRequest {
	return model.PageRequest{Page: f.page, PageSize: f.pageSize, SortBy: f.sortBy, SortDesc: f.desc}
}

func parseID(flag, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.Validation(flag, "must be a UUID")
	}
	return id, nil
}

// optionalID returns nil for an empty flag.
func optionalID(flag, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := parseID(flag, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// optionalTime accepts RFC 3339 timestamps or YYYY-MM-DD dates (UTC).
func optionalTime(flag, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, model.Validation(flag, "must be RFC 3339 or YYYY-MM-DD")
}

// parseDate checks a YYYY-MM-DD flag and returns it unchanged.
func parseDate(flag, raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse(time.DateOnly, raw); err != nil {
		return "", model.Validation(flag, "must be YYYY-MM-DD")
	}
	return raw, nil
}

func parseStatus(raw string) (model.CaseStatus, error) {
	if raw == "" {
		return "", nil
	}
	s := model.CaseStatus(raw)
	if !s.IsValid() {
		return "", model.Validation("status", fmt.Sprintf("unknown status %q", raw))
	}
	return s, nil
}

func parseOperation(raw string) (model.AuditOperation, error) {
	if raw == "" {
		return "", nil
	}
	op := model.AuditOperation(raw)
	if !op.IsValid() {
		return "", model.Validation("operation", fmt.Sprintf("unknown operation %q", raw))
	}
	return op, nil
}

// outputFile opens path for writing, or returns stdout for "" and "-".
func outputFile(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, f.Close, nil
}
