package store

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/dmitrijs2005/jobkeeper/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	collection string
	id         string
	fields     map[string]any
}

// fakeTransport answers with canned rows, decoded the way the wire does.
type fakeTransport struct {
	rows []map[string]any
	row  map[string]any
	err  error

	calls []call
}

func (f *fakeTransport) List(_ context.Context, collection string, dst any) error {
	f.calls = append(f.calls, call{collection: collection})
	if f.err != nil {
		return f.err
	}
	l, err := wire.ToList(f.rows)
	if err != nil {
		return err
	}
	return wire.FromList(l, dst)
}

func (f *fakeTransport) Insert(_ context.Context, collection string, fields map[string]any, dst any) error {
	f.calls = append(f.calls, call{collection: collection, fields: fields})
	return f.answer(dst)
}

func (f *fakeTransport) Update(_ context.Context, collection, id string, fields map[string]any, dst any) error {
	f.calls = append(f.calls, call{collection: collection, id: id, fields: fields})
	return f.answer(dst)
}

func (f *fakeTransport) Delete(_ context.Context, collection, id string) error {
	f.calls = append(f.calls, call{collection: collection, id: id})
	return f.err
}

func (f *fakeTransport) answer(dst any) error {
	if f.err != nil {
		return f.err
	}
	s, err := wire.ToStruct(f.row)
	if err != nil {
		return err
	}
	return wire.FromStruct(s, dst)
}

func newApplications(tr Transport) *Store[models.Application] {
	return New(models.CollectionApplications, tr, models.ApplicationLess)
}

func TestList_EmptyIsNonNil(t *testing.T) {
	s := newApplications(&fakeTransport{})

	rows, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestList_NaturalOrder(t *testing.T) {
	tr := &fakeTransport{rows: []map[string]any{
		{"id": "old", "company": "A", "position": "Dev", "created_at": "2024-01-01T00:00:00Z"},
		{"id": "new", "company": "B", "position": "Dev", "created_at": "2024-03-01T00:00:00Z"},
	}}
	s := newApplications(tr)

	rows, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "new", rows[0].ID)
	assert.Equal(t, "applications", tr.calls[0].collection)
}

func TestList_WrapsTransportError(t *testing.T) {
	s := newApplications(&fakeTransport{err: common.ErrNetwork})

	_, err := s.List(context.Background())
	require.ErrorIs(t, err, common.ErrNetwork)
	assert.Contains(t, err.Error(), "list applications")
}

func TestInsert_DropsSystemAndUnsetFields(t *testing.T) {
	tr := &fakeTransport{row: map[string]any{
		"id": "a1", "user_id": "u1", "company": "Acme", "position": "Dev",
		"status": "pending", "priority": "medium", "created_at": "2024-05-01T10:00:00Z",
	}}
	s := newApplications(tr)

	draft := models.Application{ID: "client-made", UserID: "someone", Company: "Acme", Position: "Dev", Notes: models.Ptr("n")}
	row, err := s.Insert(context.Background(), draft)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"company": "Acme", "position": "Dev", "notes": "n"}, tr.calls[0].fields)
	assert.Equal(t, "a1", row.ID)
	assert.Equal(t, models.StatusPending, row.Status)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), row.CreatedAt)
}

func TestInsert_UnsetInterviewDateIsNotSent(t *testing.T) {
	tr := &fakeTransport{err: common.ErrWrite}
	s := New[models.Interview](models.CollectionInterviews, tr, models.InterviewLess)

	_, err := s.Insert(context.Background(), models.Interview{Company: "Acme", Position: "Dev", Time: "10:00", Type: models.InterviewVideo})
	require.ErrorIs(t, err, common.ErrWrite)

	require.Len(t, tr.calls, 1)
	assert.NotContains(t, tr.calls[0].fields, "date")
	assert.Equal(t, "10:00", tr.calls[0].fields["time"])

	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	_, _ = s.Insert(context.Background(), models.Interview{Company: "Acme", Position: "Dev", Date: day, Time: "10:00", Type: models.InterviewVideo})
	assert.Equal(t, "2024-05-02T00:00:00Z", tr.calls[1].fields["date"])
}

func TestInsert_WriteError(t *testing.T) {
	s := newApplications(&fakeTransport{err: common.ErrWrite})

	_, err := s.Insert(context.Background(), models.Application{Position: "Dev"})
	require.ErrorIs(t, err, common.ErrWrite)
}

func TestUpdate(t *testing.T) {
	tr := &fakeTransport{row: map[string]any{"id": "t1", "title": "Call", "completed": true, "status": "done"}}
	s := New[models.Task](models.CollectionTasks, tr, models.TaskLess)

	row, err := s.Update(context.Background(), "t1", models.Patch{"completed": true})
	require.NoError(t, err)
	assert.True(t, row.Completed)
	assert.Equal(t, "t1", tr.calls[0].id)
}

func TestUpdate_RejectsLocally(t *testing.T) {
	tr := &fakeTransport{}
	s := New[models.Task](models.CollectionTasks, tr, models.TaskLess)

	_, err := s.Update(context.Background(), "t1", models.Patch{"user_id": "other"})
	require.ErrorIs(t, err, common.ErrWrite)

	_, err = s.Update(context.Background(), "", models.Patch{"title": "x"})
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, tr.calls)
}

func TestUpdate_NotFound(t *testing.T) {
	s := New[models.Task](models.CollectionTasks, &fakeTransport{err: common.ErrNotFound}, models.TaskLess)

	_, err := s.Update(context.Background(), "missing", models.Patch{"title": "x"})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	tr := &fakeTransport{}
	s := New[models.Contact](models.CollectionContacts, tr, models.ContactLess)

	require.NoError(t, s.Delete(context.Background(), "c1"))
	assert.Equal(t, call{collection: "contacts", id: "c1"}, tr.calls[0])

	tr.err = common.ErrNotFound
	require.ErrorIs(t, s.Delete(context.Background(), "c1"), common.ErrNotFound)
	require.ErrorIs(t, s.Delete(context.Background(), ""), common.ErrNotFound)
}
