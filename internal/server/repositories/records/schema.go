package records

import (
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/google/uuid"
)

// Kind is the storage type of a column. It decides how wire values are
// converted before binding and how scanned values are returned.
type Kind int

const (
	Text Kind = iota
	UUID
	Int
	Bool
	Date
	Timestamp
)

const dateLayout = "2006-01-02"

// Column describes one table column. ReadOnly columns are owned by the store.
type Column struct {
	Name     string
	Kind     Kind
	ReadOnly bool
}

// Table is the schema the generic repository is parameterized by.
type Table struct {
	Name    string
	Columns []Column
	OrderBy string
}

func system() []Column {
	return []Column{
		{Name: "id", Kind: UUID, ReadOnly: true},
		{Name: "user_id", Kind: UUID, ReadOnly: true},
		{Name: "created_at", Kind: Timestamp, ReadOnly: true},
		{Name: "updated_at", Kind: Timestamp, ReadOnly: true},
	}
}

func table(name, orderBy string, cols ...Column) Table {
	return Table{Name: name, Columns: append(system(), cols...), OrderBy: orderBy}
}

var (
	Applications = table(models.CollectionApplications, "created_at DESC, id",
		Column{Name: "company"},
		Column{Name: "position"},
		Column{Name: "location"},
		Column{Name: "status"},
		Column{Name: "applied_date", Kind: Date},
		Column{Name: "salary_min", Kind: Int},
		Column{Name: "salary_max", Kind: Int},
		Column{Name: "priority"},
		Column{Name: "contact_person"},
		Column{Name: "contact_email"},
		Column{Name: "job_url"},
		Column{Name: "notes"},
	)

	Interviews = table(models.CollectionInterviews, "date ASC, time ASC, id",
		Column{Name: "application_id", Kind: UUID},
		Column{Name: "company"},
		Column{Name: "position"},
		Column{Name: "date", Kind: Date},
		Column{Name: "time"},
		Column{Name: "type"},
		Column{Name: "location"},
		Column{Name: "interviewer"},
		Column{Name: "duration", Kind: Int},
		Column{Name: "status"},
		Column{Name: "notes"},
		Column{Name: "meeting_link"},
	)

	Tasks = table(models.CollectionTasks, "created_at DESC, id",
		Column{Name: "application_id", Kind: UUID},
		Column{Name: "title"},
		Column{Name: "description"},
		Column{Name: "due_date", Kind: Date},
		Column{Name: "priority"},
		Column{Name: "status"},
		Column{Name: "completed", Kind: Bool},
		Column{Name: "completed_at", Kind: Timestamp},
		Column{Name: "category"},
	)

	Contacts = table(models.CollectionContacts, "lower(name) ASC, id",
		Column{Name: "name"},
		Column{Name: "email"},
		Column{Name: "phone"},
		Column{Name: "company"},
		Column{Name: "position"},
		Column{Name: "notes"},
		Column{Name: "linkedin_url"},
		Column{Name: "last_contact_date", Kind: Date},
	)
)

var tables = map[string]Table{
	Applications.Name: Applications,
	Interviews.Name:   Interviews,
	Tasks.Name:        Tasks,
	Contacts.Name:     Contacts,
}

// Lookup returns the table backing a collection name.
func Lookup(collection string) (Table, bool) {
	t, ok := tables[collection]
	return t, ok
}

func (t Table) column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// bind converts a wire value for column name into a driver argument.
// Unknown or store-owned columns and mistyped values are write errors. The
// zero time is not a valid date; it is what an unset Go time encodes to.
func (t Table) bind(name string, v any) (any, error) {
	c, ok := t.column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s.%s", common.ErrWrite, common.ErrUnknownColumn, t.Name, name)
	}
	if c.ReadOnly {
		return nil, fmt.Errorf("%w: %s is read-only", common.ErrWrite, name)
	}
	if v == nil {
		return nil, nil
	}

	bad := func() (any, error) {
		return nil, fmt.Errorf("%w: %s: unexpected value %v (%T)", common.ErrWrite, name, v, v)
	}

	switch c.Kind {
	case Text:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case UUID:
		if s, ok := v.(string); ok {
			if _, err := uuid.Parse(s); err != nil {
				return bad()
			}
			return s, nil
		}
	case Int:
		switch n := v.(type) {
		case float64:
			if n == math.Trunc(n) && !math.IsInf(n, 0) {
				return int64(n), nil
			}
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		}
	case Bool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case Date:
		if s, ok := v.(string); ok {
			if d, err := time.Parse(dateLayout, s); err == nil && !d.IsZero() {
				return d.Format(dateLayout), nil
			}
			if ts, err := time.Parse(time.RFC3339Nano, s); err == nil && !ts.IsZero() {
				return ts.Format(dateLayout), nil
			}
		}
	case Timestamp:
		if s, ok := v.(string); ok {
			if ts, err := time.Parse(time.RFC3339Nano, s); err == nil && !ts.IsZero() {
				return ts.UTC(), nil
			}
		}
	}

	return bad()
}
