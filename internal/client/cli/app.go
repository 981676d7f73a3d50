package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/client/cache"
	"github.com/dmitrijs2005/jobkeeper/internal/client/client"
	"github.com/dmitrijs2005/jobkeeper/internal/client/config"
	"github.com/dmitrijs2005/jobkeeper/internal/client/profile"
	"github.com/dmitrijs2005/jobkeeper/internal/client/session"
	"github.com/dmitrijs2005/jobkeeper/internal/filex"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
)

type App struct {
	session  *session.Provider
	cache    *cache.Controller
	profiles *profile.Service
	logger   logging.Logger
	closers  []func() error

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp opens the local session store, connects to the server and wires
// the session provider, the cache controller and the profile service.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if err := filex.EnsureParentDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	repos, err := client.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	transport, err := client.NewJobKeeperClient(cfg.ServerEndpointAddr, cfg.RequestTimeout)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	sess := session.NewProvider(transport, repos.Metadata, logger, cfg.AuthTimeout)
	ctl := cache.NewController(sess, transport, logger, cfg.LoadTimeout)
	profiles := profile.NewService(transport, &http.Client{Timeout: cfg.RequestTimeout}, logger)

	a := newApp(sess, ctl, profiles, logger, in, out)
	a.closers = append(a.closers, transport.Close, repos.Close)
	return a, nil
}

func newApp(sess *session.Provider, ctl *cache.Controller, profiles *profile.Service, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		session:  sess,
		cache:    ctl,
		profiles: profiles,
		logger:   logger.With("module", "cli"),
		reader:   bufio.NewReader(in),
		out:      out,
		now:      time.Now,
	}
}

// Run restores the previous session, loads its data and serves commands
// until EOF or exit.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to jobkeeper (type 'help' for commands)")
	if err := a.session.Restore(ctx); err != nil {
		fmt.Fprintln(a.out, describe(err))
	}
	if a.isLoggedIn() {
		a.load(ctx)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() {
	a.cache.Close()
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn(context.Background(), "Close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Current()
	return ok
}

func (a *App) status() string {
	id, ok := a.session.Current()
	if !ok {
		return "anonymous"
	}
	if !a.cache.Loaded() {
		return id.Email + ", not loaded"
	}
	return id.Email
}

// load fetches every collection once; a failure is reported and can be
// retried with reload.
func (a *App) load(ctx context.Context) {
	if err := a.cache.Load(ctx); err != nil {
		fmt.Fprintln(a.out, describe(err))
		return
	}
	s := a.cache.Snapshot()
	fmt.Fprintf(a.out, "Loaded %d applications, %d interviews, %d tasks, %d contacts.\n",
		len(s.Applications), len(s.Interviews), len(s.Tasks), len(s.Contacts))
}
