// Package records implements the per-user record tables (applications,
// interviews, tasks, contacts) with one PostgreSQL repository parameterized
// by a Table schema.
package records

import "context"

// Row is a record as column name to value. Dates and timestamps are
// time.Time, integers int64, absent values nil.
type Row map[string]any

// Repository is the user-scoped CRUD contract over one table. Every method
// filters by userID; rows of other users behave as missing.
type Repository interface {
	List(ctx context.Context, userID string) ([]Row, error)
	Insert(ctx context.Context, userID string, fields map[string]any) (Row, error)
	Update(ctx context.Context, userID, id string, fields map[string]any) (Row, error)
	Delete(ctx context.Context, userID, id string) error
}
