package port

import (
	"context"
	"time"
)

// TableMetadata describes a warehouse table.
type TableMetadata struct {
	Ref          string
	LastModified time.Time
}

// ResultSet is a tabular query result. Rows hold values in column
// order; Index resolves a column name to its position.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// Index returns the position of the named column, or -1.
func (rs *ResultSet) Index(column string) int {
	for i, c := range rs.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Warehouse executes parameterized queries against the columnar
// analytics store. Query text is resolved from named templates owned by
// the implementation; callers pass a template name plus parameters.
type Warehouse interface {
	// Query runs a templated query and returns its rows.
	Query(ctx context.Context, template string, params map[string]any) (*ResultSet, error)
	// Exec runs a templated statement (refresh jobs, DDL) discarding
	// any result.
	Exec(ctx context.Context, template string, params map[string]any) error
	// TableMetadata returns ErrNotFound when the table does not exist.
	TableMetadata(ctx context.Context, ref string) (*TableMetadata, error)
}
