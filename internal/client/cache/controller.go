// Package cache keeps in-memory mirrors of the signed-in user's collections
// consistent with the server.
//
// The Controller loads every collection once per session and then applies
// each mutation to the server first; the mirror changes only after the
// server confirmed it, and always to the exact row the server returned. A
// failed call leaves the mirror as it was. Every call is tagged with the
// epoch it was issued under; after Reset (sign-out) late answers are dropped
// with common.ErrSessionChanged. When the server rejects the session's
// credentials the controller expires the session, which resets the mirrors.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/client/session"
	"github.com/dmitrijs2005/jobkeeper/internal/client/stats"
	"github.com/dmitrijs2005/jobkeeper/internal/client/store"
	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Session is what the controller needs from the session provider.
type Session interface {
	Current() (models.Identity, bool)
	Subscribe(fn func(session.Event)) func()
	Expire(ctx context.Context)
}

type mirror interface {
	name() string
	isLoaded() bool
	fetch(ctx context.Context) (func(), error)
	reset()
}

type Controller struct {
	session     Session
	logger      logging.Logger
	loadTimeout time.Duration
	now         func() time.Time
	unsubscribe func()

	mu           sync.RWMutex
	epoch        uint64
	lastErr      error
	applications *Collection[models.Application]
	interviews   *Collection[models.Interview]
	tasks        *Collection[models.Task]
	contacts     *Collection[models.Contact]

	// loading counts fetches in flight. While it is non-zero every applied
	// mutation is also kept in pending and replayed over the fetched rows.
	loading int
	pending []func()

	// reopen remembers the status a task had before it was completed.
	reopen map[string]models.TaskStatus

	loads singleflight.Group
}

func NewController(sess Session, transport store.Transport, logger logging.Logger, loadTimeout time.Duration) *Controller {
	c := &Controller{
		session:     sess,
		logger:      logger.With("module", "cache"),
		loadTimeout: loadTimeout,
		now:         time.Now,
		reopen:      map[string]models.TaskStatus{},
	}
	c.applications = newCollection(store.New(models.CollectionApplications, transport, models.ApplicationLess), models.ApplicationLess, models.Application.Clone)
	c.interviews = newCollection(store.New(models.CollectionInterviews, transport, models.InterviewLess), models.InterviewLess, models.Interview.Clone)
	c.tasks = newCollection(store.New(models.CollectionTasks, transport, models.TaskLess), models.TaskLess, models.Task.Clone)
	c.contacts = newCollection(store.New(models.CollectionContacts, transport, models.ContactLess), models.ContactLess, models.Contact.Clone)

	c.unsubscribe = sess.Subscribe(func(e session.Event) {
		switch e.State {
		case session.StateAnonymous, session.StateAuthenticated:
			c.Reset()
		}
	})
	return c
}

// Close detaches the controller from the session.
func (c *Controller) Close() {
	c.unsubscribe()
}

func (c *Controller) mirrors() []mirror {
	return []mirror{c.applications, c.interviews, c.tasks, c.contacts}
}

// Epoch changes on every Reset.
func (c *Controller) Epoch() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch
}

// Loaded reports whether every collection holds server data.
func (c *Controller) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedLocked()
}

func (c *Controller) loadedLocked() bool {
	for _, m := range c.mirrors() {
		if !m.isLoaded() {
			return false
		}
	}
	return true
}

// LastError is the error of the most recent failed load, cleared by a
// successful load or Reset.
func (c *Controller) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// begin checks there is a session and returns the epoch to tag the call with.
func (c *Controller) begin() (uint64, error) {
	if _, ok := c.session.Current(); !ok {
		return 0, common.ErrAuth
	}
	return c.Epoch(), nil
}

// Load fills every collection from the server unless they are all loaded.
// Concurrent callers share a single load. The load is all-or-nothing: when
// any list fails no mirror changes.
func (c *Controller) Load(ctx context.Context) error {
	epoch, err := c.begin()
	if err != nil {
		return err
	}
	if c.Loaded() {
		return nil
	}

	_, err, _ = c.loads.Do(strconv.FormatUint(epoch, 10), func() (any, error) {
		if c.Loaded() {
			return nil, nil
		}
		return nil, c.load(ctx, epoch)
	})
	return err
}

// Reload fetches every collection again, even when they are loaded. The
// mirrors keep their rows until the new ones are committed, so a failed
// reload changes nothing. It joins a load already in flight.
func (c *Controller) Reload(ctx context.Context) error {
	epoch, err := c.begin()
	if err != nil {
		return err
	}

	_, err, _ = c.loads.Do(strconv.FormatUint(epoch, 10), func() (any, error) {
		return nil, c.load(ctx, epoch)
	})
	return err
}

func (c *Controller) load(ctx context.Context, epoch uint64) error {
	if c.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.loadTimeout)
		defer cancel()
	}

	c.mu.Lock()
	c.loading++
	c.mu.Unlock()

	ms := c.mirrors()
	commits := make([]func(), len(ms))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range ms {
		g.Go(func() error {
			commit, err := m.fetch(gctx)
			if err != nil {
				return err
			}
			commits[i] = commit
			return nil
		})
	}
	err := c.commit(ctx, epoch, commits, g.Wait())
	if errors.Is(err, common.ErrAuth) {
		c.expire(ctx, epoch)
	}
	return err
}

// commit installs fetched rows unless the fetch failed or the session
// changed meanwhile. Mutations confirmed during the fetch are replayed on
// top so a concurrent Add is not lost.
func (c *Controller) commit(ctx context.Context, epoch uint64, commits []func(), err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading--
	defer func() {
		if c.loading == 0 {
			c.pending = nil
		}
	}()

	if c.epoch != epoch {
		return common.ErrSessionChanged
	}
	if err != nil {
		err = fmt.Errorf("load: %w", classify(err))
		c.lastErr = err
		c.logger.Error(ctx, "Load failed", "error", err)
		return err
	}

	for _, commit := range commits {
		commit()
	}
	for _, replay := range c.pending {
		replay()
	}
	c.lastErr = nil
	c.logger.Debug(ctx, "Loaded",
		"applications", len(c.applications.rows),
		"interviews", len(c.interviews.rows),
		"tasks", len(c.tasks.rows),
		"contacts", len(c.contacts.rows))
	return nil
}

// Reset empties every mirror and starts a new epoch. In-flight calls issued
// before Reset will not touch the mirrors.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range c.mirrors() {
		m.reset()
	}
	c.epoch++
	c.lastErr = nil
	c.pending = nil
	c.reopen = map[string]models.TaskStatus{}
}

// expire ends the session unless it already changed since epoch.
func (c *Controller) expire(ctx context.Context, epoch uint64) {
	if c.Epoch() != epoch {
		return
	}
	c.session.Expire(ctx)
}

// applied records a mutation that reached a mirror so an in-flight load
// can replay it. Callers hold c.mu.
func (c *Controller) applied(replay func()) {
	if c.loading > 0 {
		c.pending = append(c.pending, replay)
	}
}

// classify folds context errors into the network kind; everything else is
// already a common sentinel from the transport.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, common.ErrNetwork) {
		return fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	return err
}

func (c *Controller) fail(ctx context.Context, epoch uint64, op, collection string, err error) error {
	err = classify(err)
	switch {
	case errors.Is(err, common.ErrWrite), errors.Is(err, common.ErrNotFound):
		c.logger.Warn(ctx, "Mutation rejected", "op", op, "collection", collection, "error", err)
	case errors.Is(err, common.ErrAuth):
		c.logger.Warn(ctx, "Mutation unauthorized", "op", op, "collection", collection, "error", err)
		c.expire(ctx, epoch)
	default:
		c.logger.Error(ctx, "Mutation failed", "op", op, "collection", collection, "error", err)
	}
	return err
}

func add[T models.Record](ctx context.Context, c *Controller, col *Collection[T], draft T) (T, error) {
	var zero T
	epoch, err := c.begin()
	if err != nil {
		return zero, err
	}

	row, err := col.store.Insert(ctx, draft)
	if err != nil {
		return zero, c.fail(ctx, epoch, "insert", col.name(), err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return zero, common.ErrSessionChanged
	}
	col.insert(row)
	c.applied(func() { col.replace(row) })
	return col.clone(row), nil
}

func update[T models.Record](ctx context.Context, c *Controller, col *Collection[T], id string, patch models.Patch) (T, error) {
	var zero T
	epoch, err := c.begin()
	if err != nil {
		return zero, err
	}

	row, err := col.store.Update(ctx, id, patch)
	if err != nil {
		return zero, c.fail(ctx, epoch, "update", col.name(), err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return zero, common.ErrSessionChanged
	}
	col.replace(row)
	c.applied(func() { col.replace(row) })
	return col.clone(row), nil
}

func remove[T models.Record](ctx context.Context, c *Controller, col *Collection[T], id string) error {
	epoch, err := c.begin()
	if err != nil {
		return err
	}

	if err := col.store.Delete(ctx, id); err != nil {
		return c.fail(ctx, epoch, "delete", col.name(), err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return common.ErrSessionChanged
	}
	col.remove(id)
	c.applied(func() { col.remove(id) })
	return nil
}

func (c *Controller) AddApplication(ctx context.Context, a models.Application) (models.Application, error) {
	return add(ctx, c, c.applications, a)
}

func (c *Controller) UpdateApplication(ctx context.Context, id string, patch models.Patch) (models.Application, error) {
	return update(ctx, c, c.applications, id, patch)
}

func (c *Controller) DeleteApplication(ctx context.Context, id string) error {
	return remove(ctx, c, c.applications, id)
}

func (c *Controller) AddInterview(ctx context.Context, iv models.Interview) (models.Interview, error) {
	return add(ctx, c, c.interviews, iv)
}

func (c *Controller) UpdateInterview(ctx context.Context, id string, patch models.Patch) (models.Interview, error) {
	return update(ctx, c, c.interviews, id, patch)
}

func (c *Controller) DeleteInterview(ctx context.Context, id string) error {
	return remove(ctx, c, c.interviews, id)
}

func (c *Controller) AddTask(ctx context.Context, t models.Task) (models.Task, error) {
	return add(ctx, c, c.tasks, t)
}

func (c *Controller) UpdateTask(ctx context.Context, id string, patch models.Patch) (models.Task, error) {
	return update(ctx, c, c.tasks, id, patch)
}

func (c *Controller) DeleteTask(ctx context.Context, id string) error {
	return remove(ctx, c, c.tasks, id)
}

// ToggleTask flips completion of a mirrored task together with its status
// and completion time. Un-completing restores the status the task had when
// this controller completed it, or todo when that is not known.
func (c *Controller) ToggleTask(ctx context.Context, id string) (models.Task, error) {
	c.mu.RLock()
	epoch := c.epoch
	t, ok := c.tasks.find(id)
	reopen := c.reopen[id]
	c.mu.RUnlock()
	if !ok {
		return models.Task{}, fmt.Errorf("toggle task %s: %w", id, common.ErrNotFound)
	}

	row, err := c.UpdateTask(ctx, id, t.TogglePatch(c.now(), reopen))
	if err != nil {
		return row, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch == epoch {
		if row.Completed {
			c.reopen[id] = t.Status
		} else {
			delete(c.reopen, id)
		}
	}
	return row, nil
}

func (c *Controller) AddContact(ctx context.Context, ct models.Contact) (models.Contact, error) {
	return add(ctx, c, c.contacts, ct)
}

func (c *Controller) UpdateContact(ctx context.Context, id string, patch models.Patch) (models.Contact, error) {
	return update(ctx, c, c.contacts, id, patch)
}

func (c *Controller) DeleteContact(ctx context.Context, id string) error {
	return remove(ctx, c, c.contacts, id)
}

func (c *Controller) Applications() []models.Application {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.applications.snapshot()
}

func (c *Controller) Interviews() []models.Interview {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.interviews.snapshot()
}

func (c *Controller) Tasks() []models.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tasks.snapshot()
}

func (c *Controller) Contacts() []models.Contact {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.contacts.snapshot()
}

// Snapshot copies all four collections under one lock.
func (c *Controller) Snapshot() stats.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return stats.Snapshot{
		Applications: c.applications.snapshot(),
		Interviews:   c.interviews.snapshot(),
		Tasks:        c.tasks.snapshot(),
		Contacts:     c.contacts.snapshot(),
	}
}

// Stats recomputes the dashboard from the current mirrors.
func (c *Controller) Stats(now time.Time) stats.Summary {
	return stats.Dashboard(c.Snapshot(), now)
}
