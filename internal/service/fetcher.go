package service

import (
	"context"

	"workerguard-console/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Refresh issues exactly one read request for the active tab and replaces its
// slot with the normalized payload. Fetch failures are non-fatal: the slot
// keeps its previous value and the error is only logged, so the console keeps
// functioning with stale data.
func (c *Console) Refresh(ctx context.Context) {
	sel := c.snapshot()
	c.refreshView(ctx, c.keyFor(sel.tab))
}

// refreshTab re-reads a specific tab with the current selections. CRUD flows
// and the optimistic coordinator terminate here to restore authoritative
// server state for the tab they own.
func (c *Console) refreshTab(ctx context.Context, tab domain.Tab) {
	c.refreshView(ctx, c.keyFor(tab))
}

func (c *Console) refreshView(ctx context.Context, view domain.ViewKey) {
	c.loading.Store(true)
	defer c.loading.Store(false)

	log := c.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("tab", string(view.Tab)),
		zap.String("mode", string(view.Mode)),
	)

	// commit writes the slot only if the selections that spawned this fetch
	// are still current for its tab, so a slow response can never overwrite a
	// newer one.
	commit := func(write func()) {
		if c.keyFor(view.Tab) != view {
			log.Info("stale fetch discarded")
			return
		}
		write()
	}

	switch view.Tab {
	case domain.TabRisk:
		board, err := c.api.FetchRisk(ctx, view.Mode)
		if err != nil {
			log.Warn("risk fetch failed", zap.Error(err))
			return
		}
		commit(func() { c.slots.SetRisk(board) })

	case domain.TabAnalytics:
		trends, err := c.api.FetchAnalytics(ctx, view.Mode)
		if err != nil {
			log.Warn("analytics fetch failed", zap.Error(err))
			return
		}
		commit(func() { c.slots.SetAnalytics(trends) })

	case domain.TabWorkers:
		workers, err := c.api.FetchWorkers(ctx, view.Mode, view.Date)
		if err != nil {
			log.Warn("workers fetch failed", zap.Error(err))
			return
		}
		commit(func() { c.slots.SetWorkers(workers) })

	case domain.TabPayroll:
		entries, err := c.fetchPayroll(ctx, view)
		if err != nil {
			log.Warn("payroll fetch failed", zap.Error(err))
			return
		}
		commit(func() { c.slots.SetPayroll(entries) })

	case domain.TabSMS:
		if !c.session.IsAdmin() {
			log.Debug("sms fetch skipped: admin only")
			return
		}
		messages, err := c.api.FetchSMS(ctx, view.Center, view.Mode)
		if err != nil {
			log.Warn("sms fetch failed", zap.Error(err))
			return
		}
		commit(func() { c.slots.SetSMS(messages) })

	case domain.TabSettings:
		if !c.session.IsAdmin() {
			log.Debug("settings fetch skipped: admin only")
			return
		}
		settings, err := c.api.FetchSettings(ctx)
		if err != nil {
			log.Warn("settings fetch failed", zap.Error(err))
			return
		}
		commit(func() { c.slots.SetSettings(settings) })

	default:
		log.Warn("unknown tab, nothing fetched")
	}
}

// fetchPayroll normalizes the two payroll wire shapes into one slot type:
// REGULAR responses are arrays as-is, DAILY responses unwrap the list field
// and default to an empty slice.
func (c *Console) fetchPayroll(ctx context.Context, view domain.ViewKey) ([]domain.PayrollEntry, error) {
	if view.Mode == domain.ModeDaily {
		payroll, err := c.api.FetchPayrollDaily(ctx, view.Center, view.DateFilter())
		if err != nil {
			return nil, err
		}
		if payroll.List == nil {
			return []domain.PayrollEntry{}, nil
		}
		return payroll.List, nil
	}
	return c.api.FetchPayrollRegular(ctx, view.Center, view.DateFilter())
}

// ShowDetail loads the work-log breakdown for one worker into the detail
// slot, using the same month/day duality as payroll.
func (c *Console) ShowDetail(ctx context.Context, name string) error {
	sel := c.snapshot()
	view := ResolveViewKey(sel.tab, sel.mode, sel.center, sel.month, sel.date)
	details, err := c.api.WorkerDetail(ctx, name, view.DateFilter(), view.Mode)
	if err != nil {
		c.logger.Warn("worker detail fetch failed", zap.String("name", name), zap.Error(err))
		return err
	}
	c.slots.SetDetail(details)
	return nil
}
