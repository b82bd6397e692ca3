package role

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Input holds the parameters for creating or updating a role. On update,
// nil fields are left unchanged.
type Input struct {
	Name        *string
	Description *string
	IsAdmin     *bool
	IsActive    *bool
}

// Validate checks all fields. requireName is set on create.
func (i Input) Validate(requireName bool) error {
	var errs []model.FieldError

	if i.Name == nil && requireName {
		errs = append(errs, model.FieldError{Field: "name", Message: "required"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, model.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 100 {
			errs = append(errs, model.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > 500 {
		errs = append(errs, model.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return model.NewValidationError(errs...)
	}
	return nil
}

var capabilityToken = regexp.MustCompile(`^([a-z][a-z0-9_]*|\*)$`)

// normalizeCapabilities validates caps, lowercases them and drops duplicates
// while keeping the first occurrence order.
func normalizeCapabilities(caps []access.Capability) ([]access.Capability, error) {
	var errs []model.FieldError
	seen := make(map[access.Capability]struct{}, len(caps))
	out := make([]access.Capability, 0, len(caps))

	for _, c := range caps {
		c.Module = strings.ToLower(strings.TrimSpace(c.Module))
		c.Action = strings.ToLower(strings.TrimSpace(c.Action))
		if c.Module == access.Wildcard || !capabilityToken.MatchString(c.Module) {
			errs = append(errs, model.FieldError{Field: "module", Message: "invalid module " + `"` + c.Module + `"`})
			continue
		}
		if !capabilityToken.MatchString(c.Action) {
			errs = append(errs, model.FieldError{Field: "action", Message: "invalid action " + `"` + c.Action + `"`})
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	if len(errs) > 0 {
		return nil, model.NewValidationError(errs...)
	}
	return out, nil
}
