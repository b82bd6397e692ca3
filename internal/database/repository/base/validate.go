package base

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/database"
)

// ValidateUUID rejects the zero UUID.
func ValidateUUID(id uuid.UUID, field string) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: %s is required", database.ErrInvalidInput, field)
	}
	return nil
}

// ValidateString rejects empty and whitespace-only strings.
func ValidateString(s, field string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s is required", database.ErrInvalidInput, field)
	}
	return nil
}
