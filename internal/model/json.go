package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON is a jsonb column decoded into a generic object.
type JSON map[string]any

// Value implements driver.Valuer. A nil map is stored as SQL NULL.
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (j *JSON) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		return j.unmarshal(v)
	case string:
		return j.unmarshal([]byte(v))
	case JSON:
		*j = v
		return nil
	case map[string]any:
		*j = v
		return nil
	default:
		return fmt.Errorf("scan json: unsupported type %T", src)
	}
}

func (j *JSON) unmarshal(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*j = nil
		return nil
	}
	m := make(map[string]any)
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("scan json: %w", err)
	}
	*j = m
	return nil
}

// ToJSON converts any JSON-marshalable value into a JSON object.
// Structs are round-tripped through encoding/json so their json tags apply.
func ToJSON(v any) (JSON, error) {
	if v == nil {
		return nil, nil
	}
	if m, ok := v.(JSON); ok {
		return m, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if string(b) == "null" {
		return nil, nil
	}
	out := make(JSON)
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return out, nil
}
