// Package schema names the tables and columns of the store so queries never
// spell identifiers by hand.
package schema

// Table is a table name.
type Table string

func (t Table) String() string { return string(t) }

// Column is a column bound to its table.
type Column struct {
	table Table
	name  string
}

// Bare returns the column name without the table prefix.
func (c Column) Bare() string { return c.name }

// Qualified returns table.column.
func (c Column) Qualified() string { return string(c.table) + "." + c.name }

func (c Column) String() string { return c.Qualified() }

func qualified(cols ...Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Qualified()
	}
	return out
}

func bare(cols ...Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Bare()
	}
	return out
}
