package model

const (
	DefaultPageSize = 25
	MaxPageSize     = 200
)

// PageRequest selects one page of a sorted listing. Page is 1-based.
type PageRequest struct {
	Page     int
	PageSize int
	// SortBy is a public sort key; each repository maps it to a column and
	// falls back to its default for unknown keys.
	SortBy   string
	SortDesc bool
}

// Normalize applies defaults and clamps values.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset of the page.
func (p PageRequest) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.PageSize
}

// PageResult is one page of rows plus the total number of matching rows.
type PageResult[T any] struct {
	Rows       []T `json:"rows"`
	TotalCount int `json:"total_count"`
}
