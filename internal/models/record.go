// Package models defines the record types shared by the jobkeeper client and
// server. JSON tags are the wire field names and match the table columns.
package models

import "time"

// Collection names, used both as wire identifiers and table names.
const (
	CollectionApplications = "applications"
	CollectionInterviews   = "interviews"
	CollectionTasks        = "tasks"
	CollectionContacts     = "contacts"
)

// Record is implemented by every row type held in a collection.
type Record interface {
	Key() string
}

// Patch is a partial row: column name to new value. A nil value clears the column.
type Patch map[string]any

// SystemFields are owned by the store and never accepted from callers.
var SystemFields = []string{"id", "user_id", "created_at", "updated_at"}

// IsSystemField reports whether name is one of SystemFields.
func IsSystemField(name string) bool {
	for _, f := range SystemFields {
		if f == name {
			return true
		}
	}
	return false
}

// Identity is the authenticated user as seen by the client.
type Identity struct {
	ID       string            `json:"id"`
	Email    string            `json:"email"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Priority is shared by applications and tasks.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Day truncates t to midnight in its location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Ptr returns a pointer to v, for optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// clonePtr copies the value behind p so the copy shares no memory with p.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
