package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/dbx"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	smodels "github.com/dmitrijs2005/jobkeeper/internal/server/models"
	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/records"
	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsers struct {
	byEmail map[string]*smodels.User
	created []*smodels.User
	err     error
}

func (f *fakeUsers) Create(ctx context.Context, u *smodels.User) (*smodels.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrEmailTaken
	}
	u.ID = "u-new"
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*smodels.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*smodels.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeRefresh struct {
	tokens    map[string]*smodels.RefreshToken
	created   []string
	deleted   []string
	createErr error
}

func (f *fakeRefresh) Create(ctx context.Context, userID, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, token)
	return nil
}

func (f *fakeRefresh) Find(ctx context.Context, token string) (*smodels.RefreshToken, error) {
	if t, ok := f.tokens[token]; ok {
		return t, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeRefresh) Delete(ctx context.Context, userID, token string) error {
	f.deleted = append(f.deleted, userID+"/"+token)
	return nil
}

func (f *fakeRefresh) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return int64(len(f.tokens)), nil
}

type fakeRecords struct {
	records.Repository
	userID string
	fields map[string]any
	id     string
}

func (f *fakeRecords) List(ctx context.Context, userID string) ([]records.Row, error) {
	f.userID = userID
	return []records.Row{{"id": "a"}}, nil
}

func (f *fakeRecords) Insert(ctx context.Context, userID string, fields map[string]any) (records.Row, error) {
	f.userID, f.fields = userID, fields
	return records.Row{"id": "new"}, nil
}

func (f *fakeRecords) Update(ctx context.Context, userID, id string, fields map[string]any) (records.Row, error) {
	f.userID, f.id, f.fields = userID, id, fields
	return records.Row{"id": id}, nil
}

func (f *fakeRecords) Delete(ctx context.Context, userID, id string) error {
	f.userID, f.id = userID, id
	return nil
}

type fakeProfiles struct {
	saved *models.Profile
}

func (f *fakeProfiles) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return &models.Profile{UserID: userID}, nil
}

func (f *fakeProfiles) Save(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error) {
	f.saved = p
	return p, nil
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	u *fakeUsers
	r *fakeRefresh
	p *fakeProfiles
	// recs is keyed by collection; a missing key behaves like an unknown one.
	recs map[string]*fakeRecords
}

func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository           { return m.p }

func (m *fakeRepoManager) Records(db dbx.DBTX, collection string) (records.Repository, error) {
	r, ok := m.recs[collection]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r, nil
}
