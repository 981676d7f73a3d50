// Package store is the typed view of one remote collection. A Store[T] only
// talks to the server; it keeps no state between calls.
package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/dmitrijs2005/jobkeeper/internal/wire"
)

// Transport is the collection half of client.Client.
type Transport interface {
	List(ctx context.Context, collection string, dst any) error
	Insert(ctx context.Context, collection string, fields map[string]any, dst any) error
	Update(ctx context.Context, collection, id string, fields map[string]any, dst any) error
	Delete(ctx context.Context, collection, id string) error
}

type Store[T models.Record] struct {
	collection string
	transport  Transport
	less       func(a, b T) bool
}

func New[T models.Record](collection string, transport Transport, less func(a, b T) bool) *Store[T] {
	return &Store[T]{collection: collection, transport: transport, less: less}
}

func (s *Store[T]) Collection() string {
	return s.collection
}

// List returns every row of the signed-in user in natural order. An empty
// collection is an empty, non-nil slice.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := s.transport.List(ctx, s.collection, &rows); err != nil {
		return nil, fmt.Errorf("list %s: %w", s.collection, err)
	}
	if rows == nil {
		rows = []T{}
	}
	if s.less != nil {
		sort.SliceStable(rows, func(i, j int) bool { return s.less(rows[i], rows[j]) })
	}
	return rows, nil
}

// Insert sends draft without its store-owned fields and returns the row the
// server created. Unset optional fields are omitted so column defaults apply.
func (s *Store[T]) Insert(ctx context.Context, draft T) (T, error) {
	var row T
	fields, err := wire.Fields(draft, models.SystemFields...)
	if err != nil {
		return row, fmt.Errorf("%w: %v", common.ErrWrite, err)
	}
	for k, v := range fields {
		if v == nil {
			delete(fields, k)
		}
	}

	if err := s.transport.Insert(ctx, s.collection, fields, &row); err != nil {
		return row, fmt.Errorf("insert %s: %w", s.collection, err)
	}
	return row, nil
}

func (s *Store[T]) Update(ctx context.Context, id string, patch models.Patch) (T, error) {
	var row T
	if id == "" {
		return row, fmt.Errorf("update %s: %w", s.collection, common.ErrNotFound)
	}
	for k := range patch {
		if models.IsSystemField(k) {
			return row, fmt.Errorf("update %s: %w: %s is read-only", s.collection, common.ErrWrite, k)
		}
	}

	if err := s.transport.Update(ctx, s.collection, id, patch, &row); err != nil {
		return row, fmt.Errorf("update %s: %w", s.collection, err)
	}
	return row, nil
}

// Delete fails with ErrNotFound when id does not exist for this user.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete %s: %w", s.collection, common.ErrNotFound)
	}
	if err := s.transport.Delete(ctx, s.collection, id); err != nil {
		return fmt.Errorf("delete %s: %w", s.collection, err)
	}
	return nil
}
