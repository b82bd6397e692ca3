package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/heartmarshall/casedesk/internal/model"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// errorOutput is what a failed command prints.
type errorOutput struct {
	Kind    model.ErrorKind    `json:"kind"`
	Field   string             `json:"field,omitempty"`
	Message string             `json:"message"`
	Fields  []model.FieldError `json:"fields,omitempty"`
}

func reportError(w io.Writer, err error) {
	var e *model.Error
	if errors.As(err, &e) {
		_ = writeJSON(w, errorOutput{Kind: e.Kind, Field: e.Field, Message: e.Message, Fields: e.Fields})
		return
	}
	fmt.Fprintln(w, "error:", err)
}
