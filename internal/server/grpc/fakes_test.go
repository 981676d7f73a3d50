package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	smodels "github.com/dmitrijs2005/jobkeeper/internal/server/models"
	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/records"
	"github.com/dmitrijs2005/jobkeeper/internal/server/services"
)

const testSecret = "secret"

type fakeUsers struct {
	signOutFor string
}

func (f *fakeUsers) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*smodels.User, error) {
	if email == "taken@example.com" {
		return nil, common.ErrEmailTaken
	}
	return &smodels.User{ID: "u-new", Email: email, Metadata: metadata}, nil
}

func (f *fakeUsers) SignIn(ctx context.Context, email, password string) (*services.TokenPair, *smodels.User, error) {
	if password != "secret1" {
		return nil, nil, common.ErrAuth
	}
	return &services.TokenPair{AccessToken: "a", RefreshToken: "r"}, &smodels.User{ID: "u1", Email: email}, nil
}

func (f *fakeUsers) Refresh(ctx context.Context, token string) (*services.TokenPair, *smodels.User, error) {
	if token != "r" {
		return nil, nil, common.ErrAuth
	}
	return &services.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, &smodels.User{ID: "u1", Email: "ann@example.com"}, nil
}

func (f *fakeUsers) SignOut(ctx context.Context, userID, token string) error {
	f.signOutFor = userID + "/" + token
	return nil
}

func (f *fakeUsers) Me(ctx context.Context, userID string) (*smodels.User, error) {
	return &smodels.User{ID: userID, Email: "ann@example.com"}, nil
}

// fakeRecords keeps rows per user and collection in memory.
type fakeRecords struct {
	rows map[string][]records.Row
	next int
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{rows: map[string][]records.Row{}}
}

func (f *fakeRecords) List(ctx context.Context, userID, collection string) ([]records.Row, error) {
	if collection != models.CollectionTasks {
		return nil, common.ErrNotFound
	}
	return f.rows[userID], nil
}

func (f *fakeRecords) Insert(ctx context.Context, userID, collection string, fields map[string]any) (records.Row, error) {
	if _, ok := fields["title"]; !ok {
		return nil, common.ErrWrite
	}
	f.next++
	row := records.Row{"id": string(rune('a' + f.next - 1)), "user_id": userID, "created_at": time.Date(2025, 1, f.next, 0, 0, 0, 0, time.UTC), "updated_at": nil}
	for k, v := range fields {
		row[k] = v
	}
	f.rows[userID] = append([]records.Row{row}, f.rows[userID]...)
	return row, nil
}

func (f *fakeRecords) Update(ctx context.Context, userID, collection, id string, fields map[string]any) (records.Row, error) {
	for _, row := range f.rows[userID] {
		if row["id"] == id {
			for k, v := range fields {
				row[k] = v
			}
			row["updated_at"] = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
			return row, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRecords) Delete(ctx context.Context, userID, collection, id string) error {
	rows := f.rows[userID]
	for i, row := range rows {
		if row["id"] == id {
			f.rows[userID] = append(rows[:i], rows[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

type fakeProfiles struct{}

func (fakeProfiles) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return &models.Profile{UserID: userID, Skills: []string{"go"}}, nil
}

func (fakeProfiles) Save(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error) {
	p.UserID = userID
	return p, nil
}

type fakeStorage struct{}

func (fakeStorage) PresignUpload(ctx context.Context, userID, path, contentType string, size int64) (*services.Upload, error) {
	if size > 100 {
		return nil, common.ErrWrite
	}
	key := "users/" + userID + "/" + path
	return &services.Upload{UploadURL: "http://s3/" + key + "?sig", PublicURL: "http://cdn/" + key, Key: key}, nil
}

func newTestServer() (*GRPCServer, *fakeUsers, *fakeRecords) {
	u, r := &fakeUsers{}, newFakeRecords()
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, u, r, fakeProfiles{}, fakeStorage{}, testSecret), u, r
}
