package cache

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/jobkeeper/internal/client/store"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
)

// Collection is the in-memory mirror of one remote collection. It is not
// safe on its own; the Controller serializes access.
type Collection[T models.Record] struct {
	store  *store.Store[T]
	less   func(a, b T) bool
	clone  func(T) T
	rows   []T
	loaded bool
}

func newCollection[T models.Record](s *store.Store[T], less func(a, b T) bool, clone func(T) T) *Collection[T] {
	return &Collection[T]{store: s, less: less, clone: clone, rows: []T{}}
}

func (c *Collection[T]) name() string { return c.store.Collection() }

func (c *Collection[T]) isLoaded() bool { return c.loaded }

// snapshot copies the rows deeply; callers may change what they get back.
func (c *Collection[T]) snapshot() []T {
	out := make([]T, len(c.rows))
	for i, r := range c.rows {
		out[i] = c.clone(r)
	}
	return out
}

// fetch lists the remote rows and returns a commit that installs them.
// Nothing is touched until commit runs.
func (c *Collection[T]) fetch(ctx context.Context) (func(), error) {
	rows, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return func() {
		c.rows = rows
		c.loaded = true
	}, nil
}

func (c *Collection[T]) reset() {
	c.rows = []T{}
	c.loaded = false
}

func (c *Collection[T]) index(id string) int {
	for i, r := range c.rows {
		if r.Key() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) find(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.clone(c.rows[i]), true
	}
	var zero T
	return zero, false
}

// insert places row at its natural position, after rows that sort equal.
func (c *Collection[T]) insert(row T) {
	i := sort.Search(len(c.rows), func(i int) bool { return c.less(row, c.rows[i]) })
	c.rows = append(c.rows, row)
	copy(c.rows[i+1:], c.rows[i:])
	c.rows[i] = row
}

// replace swaps the row with the same id for row. If the sort key changed
// the row moves to its new position.
func (c *Collection[T]) replace(row T) {
	c.remove(row.Key())
	c.insert(row)
}

func (c *Collection[T]) remove(id string) {
	if i := c.index(id); i >= 0 {
		c.rows = append(c.rows[:i:i], c.rows[i+1:]...)
	}
}
