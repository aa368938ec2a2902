package service

import (
	"context"
	"sync"
	"sync/atomic"

	"workerguard-console/internal/api"
	"workerguard-console/internal/domain"
	"workerguard-console/internal/store"

	"go.uber.org/zap"
)

// Console is the dashboard engine: one controller object owning the session,
// the view selections, the slot store, and every mutation entry point. All
// state changes funnel through its methods; there are no ambient globals.
//
// The console follows the UI's single-threaded event model. Methods are safe
// to call from one goroutine; internal locking only protects the render path
// and tests from torn reads.
type Console struct {
	api     *api.Client
	session *SessionManager
	slots   *store.Slots
	logger  *zap.Logger

	mu  sync.Mutex
	sel selections

	notice      string
	ratioGuards map[string]int
	loading     atomic.Bool

	editLog    logFlow
	editWorker workerFlow
	newJob     jobFlow
}

// selections are the raw UI inputs the ViewKey is derived from.
type selections struct {
	tab    domain.Tab
	mode   domain.Mode
	center string
	month  string
	date   string
}

func NewConsole(client *api.Client, session *SessionManager, slots *store.Slots, logger *zap.Logger) *Console {
	c := &Console{
		api:         client,
		session:     session,
		slots:       slots,
		logger:      logger,
		ratioGuards: map[string]int{},
	}
	c.sel = selections{
		tab:  domain.TabRisk,
		mode: domain.ModeRegular,
	}
	c.newJob.reset()
	return c
}

// Login authenticates against the backend and installs the session. The
// error, if any, is an *api.AuthError; the caller resubmits, nothing retries.
func (c *Console) Login(ctx context.Context, code, username, key string) error {
	session, err := c.api.Login(ctx, code, username, key)
	if err != nil {
		return err
	}
	c.session.Establish(session)
	return nil
}

// Logout drops the session. Slots keep their last data but nothing will be
// fetched for admin-gated tabs afterwards.
func (c *Console) Logout() {
	c.session.Logout()
}

// Session exposes the session manager for permission checks.
func (c *Console) Session() *SessionManager {
	return c.session
}

// Slots exposes the per-tab resource cache consumed by the render layer.
func (c *Console) Slots() *store.Slots {
	return c.slots
}

// Loading reports whether a fetch cycle is in flight. It is the only
// user-visible indicator of pending work.
func (c *Console) Loading() bool {
	return c.loading.Load()
}

// LastNotice returns the most recent operator-facing confirmation message.
func (c *Console) LastNotice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

func (c *Console) setNotice(msg string) {
	c.mu.Lock()
	c.notice = msg
	c.mu.Unlock()
}

func (c *Console) snapshot() selections {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel
}

// View returns the ViewKey for the active tab under the current selections.
func (c *Console) View() domain.ViewKey {
	return c.keyFor(c.snapshot().tab)
}

// keyFor resolves the ViewKey a given tab would fetch with right now.
func (c *Console) keyFor(tab domain.Tab) domain.ViewKey {
	sel := c.snapshot()
	return ResolveViewKey(tab, sel.mode, sel.center, sel.month, sel.date)
}

func (c *Console) SetTab(tab domain.Tab) {
	c.mu.Lock()
	c.sel.tab = tab
	c.mu.Unlock()
}

func (c *Console) SetMode(mode domain.Mode) {
	c.mu.Lock()
	c.sel.mode = mode
	c.mu.Unlock()
}

func (c *Console) SetCenter(center string) {
	c.mu.Lock()
	c.sel.center = center
	c.mu.Unlock()
}

func (c *Console) SetMonth(month string) {
	c.mu.Lock()
	c.sel.month = month
	c.mu.Unlock()
}

func (c *Console) SetDate(date string) {
	c.mu.Lock()
	c.sel.date = date
	c.mu.Unlock()
}
