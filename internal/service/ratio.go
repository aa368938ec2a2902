package service

import (
	"context"

	"workerguard-console/internal/domain"

	"go.uber.org/zap"
)

// SlideRatio is the continuous slider event: it patches the settings slot at
// a single index with no network call, so the displayed ratio tracks the
// pointer in real time. The first patch for a job records the
// server-confirmed value the drag started from, so a failed commit can put it
// back instead of leaving an unconfirmed value on screen indefinitely.
func (c *Console) SlideRatio(index, value int) {
	settings := c.slots.Settings()
	if index < 0 || index >= len(settings) {
		return
	}
	jobName := settings[index].JobName

	prev, ok := c.slots.PatchRatio(index, value)
	if !ok {
		return
	}

	c.mu.Lock()
	if _, held := c.ratioGuards[jobName]; !held {
		c.ratioGuards[jobName] = prev
	}
	c.mu.Unlock()
}

// CommitRatio is the trailing-edge event: it POSTs the final value and then
// refetches settings so the slot converges to the backend's authoritative
// state within one commit-and-refetch cycle. On failure the pre-drag value is
// restored explicitly. Settings writes are admin-only; other sessions are
// refused before any request is sent.
func (c *Console) CommitRatio(ctx context.Context, jobName string, value int) error {
	if !c.session.IsAdmin() {
		return ErrPermissionDenied
	}

	c.mu.Lock()
	prev, held := c.ratioGuards[jobName]
	delete(c.ratioGuards, jobName)
	c.mu.Unlock()

	if err := c.api.UpdateSetting(ctx, jobName, value); err != nil {
		if held {
			c.slots.RestoreRatio(jobName, prev)
			c.logger.Warn("ratio commit failed, restored previous value",
				zap.String("job_name", jobName),
				zap.Int("restored", prev),
				zap.Error(err),
			)
		} else {
			c.logger.Warn("ratio commit failed", zap.String("job_name", jobName), zap.Error(err))
		}
		return err
	}

	c.refreshTab(ctx, domain.TabSettings)
	return nil
}
