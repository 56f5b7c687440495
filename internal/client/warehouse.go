package client

import (
	"context"
	"fmt"
	"strings"

	"self-order-agent/internal/model"
)

// Warehouse abstracts the analytical store behind parameterized queries and
// a row insert that surfaces per-row errors. The BigQuery implementation is
// the production one; tests substitute fakes.
type Warehouse interface {
	// Query runs a parameterized SQL statement and returns the result rows
	// as column-name keyed mappings.
	Query(ctx context.Context, query string, params []QueryParam) ([]map[string]any, error)

	// Insert streams rows into the named table. When individual rows are
	// rejected the returned error is an *InsertError carrying the per-row
	// error list.
	Insert(ctx context.Context, table string, rows any) error

	// TableID renders the fully qualified identifier for a table, suitable
	// for interpolation into a query.
	TableID(table string) string
}

type QueryParam struct {
	Name  string
	Value any
}

// InsertError reports rows rejected by the warehouse during a streaming
// insert. The insert may have partially succeeded.
type InsertError struct {
	Rows []model.RowError
}

func (e *InsertError) Error() string {
	parts := make([]string, 0, len(e.Rows))
	for _, r := range e.Rows {
		parts = append(parts, fmt.Sprintf("row %d: %s", r.Index, strings.Join(r.Messages, "; ")))
	}
	return "warehouse insert: " + strings.Join(parts, " | ")
}
