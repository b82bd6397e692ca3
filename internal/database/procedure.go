package database

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var identifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Procedures invokes named server-side functions that return a single jsonb value.
type Procedures struct {
	q Querier
}

// NewProcedures creates a procedure caller over q.
func NewProcedures(q Querier) *Procedures {
	return &Procedures{q: q}
}

// Call runs `SELECT name(key => $n, ...)` with params bound in key order and
// decodes the jsonb result into dst. A nil dst discards the result.
func (p *Procedures) Call(ctx context.Context, name string, params map[string]any, dst any) error {
	sql, args, err := BuildCall(name, params)
	if err != nil {
		return err
	}

	var raw []byte
	if err := p.q.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return WrapDBError(err)
	}

	if dst == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s result: %w", name, err)
	}
	return nil
}

// BuildCall renders the statement for a named procedure call.
func BuildCall(name string, params map[string]any) (string, []any, error) {
	if !identifier.MatchString(name) {
		return "", nil, fmt.Errorf("%w: procedure name %q", ErrInvalidInput, name)
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		if !identifier.MatchString(k) {
			return "", nil, fmt.Errorf("%w: parameter name %q", ErrInvalidInput, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s => $%d", k, i+1)
		args[i] = params[k]
	}

	return fmt.Sprintf("SELECT %s(%s)", name, strings.Join(parts, ", ")), args, nil
}
