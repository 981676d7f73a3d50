package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/client/client"
	"github.com/dmitrijs2005/jobkeeper/internal/client/session"
	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuth signs anyone in and refuses every refresh.
type stubAuth struct{}

func (stubAuth) SignUp(context.Context, string, string) (models.Identity, error) {
	return models.Identity{}, nil
}

func (stubAuth) SignIn(context.Context, string, string) (client.Session, error) {
	return client.Session{
		Identity:     models.Identity{ID: "u1", Email: "ann@example.com"},
		AccessToken:  "A",
		RefreshToken: "R",
	}, nil
}

func (stubAuth) Refresh(context.Context, string) (client.Session, error) {
	return client.Session{}, common.ErrAuth
}

func (stubAuth) SignOut(context.Context) error { return nil }

func (stubAuth) OnTokens(func(client.Session)) {}

type memMeta struct {
	mu sync.Mutex
	kv map[string]string
}

func (m *memMeta) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.kv[key]
	return v, ok, nil
}

func (m *memMeta) SetAll(_ context.Context, kv map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range kv {
		m.kv[k] = v
	}
	return nil
}

func (m *memMeta) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.kv, k)
	}
	return nil
}

func (m *memMeta) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv = map[string]string{}
	return nil
}

func TestAuthRejection_ExpiresSession(t *testing.T) {
	tests := []struct {
		name string
		fail func(srv *memServer)
		call func(c *Controller) error
	}{
		{
			name: "insert",
			fail: func(srv *memServer) { srv.insertErr = fmt.Errorf("%w: token revoked", common.ErrAuth) },
			call: func(c *Controller) error {
				_, err := c.AddContact(context.Background(), models.Contact{Name: "Eve"})
				return err
			},
		},
		{
			name: "delete",
			fail: func(srv *memServer) { srv.deleteErr = common.ErrAuth },
			call: func(c *Controller) error {
				return c.DeleteContact(context.Background(), "bob")
			},
		},
		{
			name: "reload",
			fail: func(srv *memServer) {
				srv.mu.Lock()
				srv.listErr[models.CollectionTasks] = common.ErrAuth
				srv.mu.Unlock()
			},
			call: func(c *Controller) error { return c.Reload(context.Background()) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newMemServer()
			srv.seed(models.CollectionContacts, map[string]any{"id": "bob", "name": "Bob", "created_at": t0})
			meta := &memMeta{kv: map[string]string{"email": "ann@example.com", "user_id": "u1", "refresh_token": "R"}}

			p := session.NewProvider(stubAuth{}, meta, logging.Nop{}, time.Second)
			_, err := p.SignIn(context.Background(), "ann@example.com", "secret")
			require.NoError(t, err)

			c := NewController(p, srv, logging.Nop{}, time.Second)
			t.Cleanup(c.Close)
			require.NoError(t, c.Load(context.Background()))
			require.Len(t, c.Contacts(), 1)

			tt.fail(srv)
			require.ErrorIs(t, tt.call(c), common.ErrAuth)

			assert.Equal(t, session.StateAnonymous, p.State())
			assert.False(t, c.Loaded())
			assert.Empty(t, c.Contacts())
			assert.NotContains(t, meta.kv, "refresh_token")
			assert.Equal(t, "ann@example.com", meta.kv["email"])
		})
	}
}

func TestAuthRejection_WithoutSessionDoesNotExpire(t *testing.T) {
	c, _, sess := setup(t)
	sess.set(session.StateAnonymous)

	_, err := c.AddTask(context.Background(), models.Task{Title: "x"})
	require.ErrorIs(t, err, common.ErrAuth)
	assert.Zero(t, sess.expired)
}

func TestAuthRejection_AfterSessionChangeIsIgnored(t *testing.T) {
	c, srv, sess := setup(t)
	require.NoError(t, c.Load(context.Background()))
	srv.insertErr = common.ErrAuth
	srv.gate = make(chan struct{})
	srv.entered = make(chan struct{}, 1)

	done := make(chan error, 1)
	go func() {
		_, err := c.AddContact(context.Background(), models.Contact{Name: "Eve"})
		done <- err
	}()

	<-srv.entered
	sess.set(session.StateAnonymous)
	sess.set(session.StateAuthenticated)
	close(srv.gate)

	require.ErrorIs(t, <-done, common.ErrAuth)
	assert.Zero(t, sess.expired)
	_, ok := sess.Current()
	assert.True(t, ok)
}
