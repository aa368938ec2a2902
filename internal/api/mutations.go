package api

import (
	"context"

	"workerguard-console/internal/domain"

	"go.uber.org/zap"
)

// Write endpoints. Every mutation returns nil on 2xx and *BackendError on
// rejection; callers own the confirm-then-refetch sequencing.

// UpdateSetting commits a single job's ratio.
func (c *Client) UpdateSetting(ctx context.Context, jobName string, ratio int) error {
	body := map[string]any{"job_name": jobName, "ratio": ratio}
	if err := c.postJSON(ctx, "/settings/update", body, nil); err != nil {
		return err
	}
	c.logger.Info("ratio committed", zap.String("job_name", jobName), zap.Int("ratio", ratio))
	return nil
}

// AddJob creates a new job-weight record. New jobs always start at ratio 0.
func (c *Client) AddJob(ctx context.Context, job domain.JobSetting) error {
	body := map[string]any{
		"job_name":      job.JobName,
		"intensity":     job.Intensity,
		"hourly_wage":   job.HourlyWage,
		"ratio":         0,
		"required_cert": job.RequiredCert,
	}
	return c.postJSON(ctx, "/settings/add", body, nil)
}

// DeleteJob removes a job-weight record by name.
func (c *Client) DeleteJob(ctx context.Context, jobName string) error {
	return c.postJSON(ctx, "/settings/delete", map[string]string{"job_name": jobName}, nil)
}

// EditLog updates one DAILY work log.
func (c *Client) EditLog(ctx context.Context, draft domain.EditLogDraft) error {
	return c.postJSON(ctx, "/edit/log", draft, nil)
}

// EditWorker updates one roster record.
func (c *Client) EditWorker(ctx context.Context, draft domain.EditWorkerDraft) error {
	return c.postJSON(ctx, "/edit/worker", draft, nil)
}

// DeleteWorker removes one roster record.
func (c *Client) DeleteWorker(ctx context.Context, id int64) error {
	return c.postJSON(ctx, "/delete/worker", map[string]int64{"id": id}, nil)
}
