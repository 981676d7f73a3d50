package cli

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(rows []map[string]any) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i], _ = r["id"].(string)
	}
	return out
}

func TestParseQuery(t *testing.T) {
	q, err := parseQuery(models.CollectionTasks, []string{"priority=high", "sort=-due_date", "completed=no"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"priority": "high", "completed": "no"}, q.match)
	assert.Equal(t, "due_date", q.sortBy)
	assert.True(t, q.reverse)

	_, err = parseQuery(models.CollectionContacts, []string{"salary=1"})
	require.ErrorIs(t, err, common.ErrUnknownColumn)

	_, err = parseQuery(models.CollectionContacts, []string{"sort=colour"})
	require.ErrorIs(t, err, common.ErrUnknownColumn)

	_, err = parseQuery(models.CollectionContacts, []string{"name"})
	require.ErrorIs(t, err, common.ErrWrite)
}

func TestQueryApply(t *testing.T) {
	rows := []map[string]any{
		{"id": "a", "company": "beta", "status": "active", "salary_min": float64(900)},
		{"id": "b", "company": "Acme", "status": "offer", "salary_min": nil},
		{"id": "c", "company": "Gamma", "status": "Active", "salary_min": float64(1000)},
	}

	q, err := parseQuery(models.CollectionApplications, []string{"status=active"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, ids(q.apply(rows)))

	q, _ = parseQuery(models.CollectionApplications, []string{"sort=company"})
	assert.Equal(t, []string{"b", "a", "c"}, ids(q.apply(rows)))

	q, _ = parseQuery(models.CollectionApplications, []string{"sort=-salary_min"})
	assert.Equal(t, []string{"c", "a", "b"}, ids(q.apply(rows)))

	q, _ = parseQuery(models.CollectionApplications, nil)
	assert.Equal(t, []string{"a", "b", "c"}, ids(q.apply(rows)))
}

func TestText(t *testing.T) {
	assert.Equal(t, "", text(nil))
	assert.Equal(t, "Acme", text("Acme"))
	assert.Equal(t, "yes", text(true))
	assert.Equal(t, "120000", text(float64(120000)))
	assert.Equal(t, "2024-05-02", text("2024-05-02T00:00:00Z"))

	ts := time.Date(2024, 5, 2, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, ts.Local().Format("2006-01-02 15:04"), text(ts.Format(time.RFC3339)))
}
