package api

import (
	"context"

	"workerguard-console/internal/domain"
)

// Read endpoints. Each call maps one-to-one onto a backend resource; response
// normalization across modes belongs to the fetcher, so the two payroll
// shapes are exposed as separate typed calls.

// FetchRisk returns the at-risk board grouped by center.
func (c *Client) FetchRisk(ctx context.Context, mode domain.Mode) (domain.RiskBoard, error) {
	board := domain.RiskBoard{}
	err := c.getJSON(ctx, "/risk", map[string]string{"type": string(mode)}, &board)
	if err != nil {
		return nil, err
	}
	return board, nil
}

// FetchAnalytics returns the ordered monthly center aggregates.
func (c *Client) FetchAnalytics(ctx context.Context, mode domain.Mode) ([]domain.CenterTrend, error) {
	var trends []domain.CenterTrend
	err := c.getJSON(ctx, "/analytics", map[string]string{"type": string(mode)}, &trends)
	if err != nil {
		return nil, err
	}
	return trends, nil
}

// FetchWorkers returns the roster for the mode; date narrows DAILY rosters to
// their validity day.
func (c *Client) FetchWorkers(ctx context.Context, mode domain.Mode, date string) ([]domain.Worker, error) {
	var workers []domain.Worker
	query := map[string]string{"type": string(mode), "date": date}
	if err := c.getJSON(ctx, "/workers/list", query, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

// FetchPayrollRegular returns the REGULAR per-worker monthly aggregates.
func (c *Client) FetchPayrollRegular(ctx context.Context, center, month string) ([]domain.PayrollEntry, error) {
	var entries []domain.PayrollEntry
	query := map[string]string{
		"center":      center,
		"date_filter": month,
		"type":        string(domain.ModeRegular),
	}
	if err := c.getJSON(ctx, "/payroll", query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FetchPayrollDaily returns the DAILY envelope; the per-log list sits under
// its List field.
func (c *Client) FetchPayrollDaily(ctx context.Context, center, date string) (*domain.DailyPayroll, error) {
	var payroll domain.DailyPayroll
	query := map[string]string{
		"center":      center,
		"date_filter": date,
		"type":        string(domain.ModeDaily),
	}
	if err := c.getJSON(ctx, "/payroll", query, &payroll); err != nil {
		return nil, err
	}
	return &payroll, nil
}

// FetchSMS returns the simulated assignment messages. Admin-only on the
// backend; the engine never issues this call for non-admin sessions.
func (c *Client) FetchSMS(ctx context.Context, center string, mode domain.Mode) ([]domain.SMSMessage, error) {
	var messages []domain.SMSMessage
	query := map[string]string{"center": center, "type": string(mode)}
	if err := c.getJSON(ctx, "/sms", query, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// FetchSettings returns the job-weight records. Admin-only on the backend.
func (c *Client) FetchSettings(ctx context.Context) ([]domain.JobSetting, error) {
	var settings []domain.JobSetting
	if err := c.getJSON(ctx, "/settings", nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// WorkerDetail returns the work-log breakdown behind one payroll row.
func (c *Client) WorkerDetail(ctx context.Context, name, dateFilter string, mode domain.Mode) ([]domain.WorkDetail, error) {
	var details []domain.WorkDetail
	query := map[string]string{
		"name":        name,
		"date_filter": dateFilter,
		"type":        string(mode),
	}
	if err := c.getJSON(ctx, "/workforce/detail", query, &details); err != nil {
		return nil, err
	}
	return details, nil
}
