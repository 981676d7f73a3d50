// Package session owns the client's authenticated identity. The Provider is
// the single source of truth for "who is signed in"; everything that reads
// user data subscribes to it and drops its state when the identity changes.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/client/client"
	"github.com/dmitrijs2005/jobkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
)

// Keys in the local metadata store.
const (
	keyEmail        = "email"
	keyUserID       = "user_id"
	keyRefreshToken = "refresh_token"
)

type State int

const (
	StateUnknown State = iota
	StateLoading
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers on every state change.
type Event struct {
	State    State
	Identity models.Identity
	Epoch    uint64
}

// Auth is the part of the transport the provider needs.
type Auth interface {
	SignUp(ctx context.Context, email, password string) (models.Identity, error)
	SignIn(ctx context.Context, email, password string) (client.Session, error)
	Refresh(ctx context.Context, refreshToken string) (client.Session, error)
	SignOut(ctx context.Context) error
	OnTokens(fn func(client.Session))
}

type subscriber struct {
	id int
	fn func(Event)
}

type Provider struct {
	auth        Auth
	meta        metadata.Repository
	logger      logging.Logger
	authTimeout time.Duration

	mu       sync.RWMutex
	state    State
	identity models.Identity
	epoch    uint64
	subs     []subscriber
	nextSub  int
}

func NewProvider(auth Auth, meta metadata.Repository, logger logging.Logger, authTimeout time.Duration) *Provider {
	p := &Provider{
		auth:        auth,
		meta:        meta,
		logger:      logger.With("module", "session"),
		authTimeout: authTimeout,
	}
	auth.OnTokens(p.persist)
	return p
}

// Current returns the signed-in identity, if any.
func (p *Provider) Current() (models.Identity, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.state != StateAuthenticated {
		return models.Identity{}, false
	}
	return p.identity, true
}

func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *Provider) Loading() bool {
	s := p.State()
	return s == StateUnknown || s == StateLoading
}

// Epoch identifies the current session. It changes on every sign-in and
// sign-out, so a value captured before a call tells whether the session
// survived it.
func (p *Provider) Epoch() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.epoch
}

// Subscribe registers fn for state changes. Callbacks run synchronously, in
// registration order, outside the provider lock.
func (p *Provider) Subscribe(fn func(Event)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs = append(p.subs, subscriber{id: id, fn: fn})
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, s := range p.subs {
			if s.id == id {
				p.subs = append(p.subs[:i:i], p.subs[i+1:]...)
				return
			}
		}
	}
}

func (p *Provider) transition(state State, id models.Identity, bump bool) {
	p.mu.Lock()
	p.state = state
	p.identity = id
	if bump {
		p.epoch++
	}
	ev := Event{State: state, Identity: id, Epoch: p.epoch}
	subs := append([]subscriber(nil), p.subs...)
	p.mu.Unlock()

	for _, s := range subs {
		s.fn(ev)
	}
}

// Restore re-establishes the persisted session. It always ends in either
// the authenticated or the anonymous state and never waits longer than the
// auth timeout.
func (p *Provider) Restore(ctx context.Context) error {
	if p.State() == StateAuthenticated {
		return nil
	}
	p.transition(StateLoading, models.Identity{}, false)

	if p.authTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.authTimeout)
		defer cancel()
	}

	token, ok, err := p.meta.Get(ctx, keyRefreshToken)
	if err != nil || !ok || token == "" {
		if err != nil {
			p.logger.Warn(ctx, "Reading persisted session failed", "error", err)
		}
		p.transition(StateAnonymous, models.Identity{}, false)
		return err
	}

	sess, err := p.auth.Refresh(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrAuth) {
			p.forget(ctx)
		}
		p.logger.Info(ctx, "Session not restored", "error", err)
		p.transition(StateAnonymous, models.Identity{}, false)
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", common.ErrNetwork, err)
		}
		return err
	}

	p.logger.Info(ctx, "Session restored", "user_id", sess.Identity.ID)
	p.transition(StateAuthenticated, sess.Identity, true)
	return nil
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (models.Identity, error) {
	sess, err := p.auth.SignIn(ctx, email, password)
	if err != nil {
		return models.Identity{}, err
	}

	p.logger.Info(ctx, "Signed in", "user_id", sess.Identity.ID)
	p.transition(StateAuthenticated, sess.Identity, true)
	return sess.Identity, nil
}

// SignUp registers the account and signs straight into it.
func (p *Provider) SignUp(ctx context.Context, email, password string) (models.Identity, error) {
	if _, err := p.auth.SignUp(ctx, email, password); err != nil {
		return models.Identity{}, err
	}
	return p.SignIn(ctx, email, password)
}

// SignOut ends the session locally whatever the server says; a failed
// revocation is only logged.
func (p *Provider) SignOut(ctx context.Context) {
	if err := p.auth.SignOut(ctx); err != nil {
		p.logger.Warn(ctx, "Remote sign out failed", "error", err)
	}
	p.forget(ctx)
	p.logger.Info(ctx, "Signed out")
	p.transition(StateAnonymous, models.Identity{}, true)
}

// Expire ends a session the server no longer accepts. Unlike SignOut it
// does not call the server. It is a no-op unless a user is signed in.
func (p *Provider) Expire(ctx context.Context) {
	if p.State() != StateAuthenticated {
		return
	}
	p.forget(ctx)
	p.logger.Warn(ctx, "Session expired")
	p.transition(StateAnonymous, models.Identity{}, true)
}

func (p *Provider) persist(s client.Session) {
	ctx := context.Background()
	err := p.meta.SetAll(ctx, map[string]string{
		keyEmail:        s.Identity.Email,
		keyUserID:       s.Identity.ID,
		keyRefreshToken: s.RefreshToken,
	})
	if err != nil {
		p.logger.Error(ctx, "Persisting session failed", "error", err)
	}
}

// forget drops the tokens but keeps the email as the next sign-in default.
func (p *Provider) forget(ctx context.Context) {
	if err := p.meta.Delete(context.WithoutCancel(ctx), keyUserID, keyRefreshToken); err != nil {
		p.logger.Error(ctx, "Clearing persisted session failed", "error", err)
	}
}

// LastEmail returns the email of the last persisted session, for prompts.
func (p *Provider) LastEmail(ctx context.Context) string {
	v, _, err := p.meta.Get(ctx, keyEmail)
	if err != nil {
		return ""
	}
	return v
}
