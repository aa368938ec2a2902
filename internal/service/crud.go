package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"workerguard-console/internal/api"
	"workerguard-console/internal/domain"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// FlowState is the modal workflow state machine: Closed → Editing (draft
// held) → Submitting → back to Closed on success, or back to Editing with the
// error retained when the backend rejects the draft. The modal never closes
// on failure.
type FlowState int

const (
	FlowClosed FlowState = iota
	FlowEditing
	FlowSubmitting
)

// Defaults applied when the job form's numeric inputs do not parse.
const (
	defaultJobIntensity  = 1.0
	defaultJobHourlyWage = 10000
)

// newJobWageInput is the wage the job form resets to between submissions.
const newJobWageInput = "12000"

var validate = validator.New()

type logFlow struct {
	state   FlowState
	draft   domain.EditLogDraft
	lastErr string
}

type workerFlow struct {
	state   FlowState
	draft   domain.EditWorkerDraft
	lastErr string
}

// jobFlow backs the job-creation form. Unlike the edit modals it is always
// open: reset returns it to Editing with fresh defaults.
type jobFlow struct {
	state   FlowState
	draft   domain.NewJobDraft
	lastErr string
}

func (f *jobFlow) reset() {
	f.state = FlowEditing
	f.draft = domain.NewJobDraft{Intensity: "1.0", HourlyWage: newJobWageInput}
	f.lastErr = ""
}

// errDetail pulls the backend's own message out of a rejection for inline
// display, falling back to the plain error text.
func errDetail(err error) string {
	var rejected *api.BackendError
	if errors.As(err, &rejected) && rejected.Detail != "" {
		return rejected.Detail
	}
	return err.Error()
}

// ---- log edit (DAILY payroll rows) ----

// OpenEditLog opens the log edit modal with a shallow copy of the payroll row.
func (c *Console) OpenEditLog(entry domain.PayrollEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editLog.state != FlowClosed {
		return ErrNoDraft
	}
	c.editLog = logFlow{
		state: FlowEditing,
		draft: domain.EditLogDraft{ID: entry.ID, JobName: entry.JobName, WorkHours: entry.Hours},
	}
	return nil
}

func (c *Console) EditLogState() FlowState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editLog.state
}

func (c *Console) EditLogDraft() (domain.EditLogDraft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editLog.state == FlowClosed {
		return domain.EditLogDraft{}, false
	}
	return c.editLog.draft, true
}

func (c *Console) EditLogError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editLog.lastErr
}

func (c *Console) SetEditLogJob(jobName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editLog.state != FlowEditing {
		return ErrNoDraft
	}
	c.editLog.draft.JobName = jobName
	return nil
}

func (c *Console) SetEditLogHours(hours float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editLog.state != FlowEditing {
		return ErrNoDraft
	}
	c.editLog.draft.WorkHours = hours
	return nil
}

// CancelEditLog closes the modal and discards the draft. No network call.
func (c *Console) CancelEditLog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editLog = logFlow{}
}

// SubmitEditLog POSTs the draft and, on success, closes the modal and
// re-reads the payroll tab. On rejection the modal stays open in Editing with
// the backend's detail held for inline display.
func (c *Console) SubmitEditLog(ctx context.Context) error {
	c.mu.Lock()
	if c.editLog.state != FlowEditing {
		c.mu.Unlock()
		return ErrNoDraft
	}
	c.editLog.state = FlowSubmitting
	draft := c.editLog.draft
	c.mu.Unlock()

	if err := c.api.EditLog(ctx, draft); err != nil {
		c.mu.Lock()
		c.editLog.state = FlowEditing
		c.editLog.lastErr = errDetail(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.editLog = logFlow{}
	c.mu.Unlock()
	c.setNotice("work log updated")
	c.refreshTab(ctx, domain.TabPayroll)
	return nil
}

// ---- worker edit ----

// OpenEditWorker opens the roster edit modal. Restricted staff are refused
// before any state changes.
func (c *Console) OpenEditWorker(worker domain.Worker) error {
	if c.session.IsRestricted(c.snapshot().mode) {
		return ErrPermissionDenied
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editWorker.state != FlowClosed {
		return ErrNoDraft
	}
	c.editWorker = workerFlow{
		state: FlowEditing,
		draft: domain.EditWorkerDraft{ID: worker.ID, Phone: worker.Phone, Center: worker.Center},
	}
	return nil
}

func (c *Console) EditWorkerState() FlowState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editWorker.state
}

func (c *Console) EditWorkerDraft() (domain.EditWorkerDraft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editWorker.state == FlowClosed {
		return domain.EditWorkerDraft{}, false
	}
	return c.editWorker.draft, true
}

func (c *Console) EditWorkerError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editWorker.lastErr
}

func (c *Console) SetEditWorkerPhone(phone string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editWorker.state != FlowEditing {
		return ErrNoDraft
	}
	c.editWorker.draft.Phone = phone
	return nil
}

func (c *Console) SetEditWorkerCenter(center string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editWorker.state != FlowEditing {
		return ErrNoDraft
	}
	c.editWorker.draft.Center = center
	return nil
}

func (c *Console) CancelEditWorker() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editWorker = workerFlow{}
}

func (c *Console) SubmitEditWorker(ctx context.Context) error {
	if c.session.IsRestricted(c.snapshot().mode) {
		return ErrPermissionDenied
	}
	c.mu.Lock()
	if c.editWorker.state != FlowEditing {
		c.mu.Unlock()
		return ErrNoDraft
	}
	c.editWorker.state = FlowSubmitting
	draft := c.editWorker.draft
	c.mu.Unlock()

	if err := c.api.EditWorker(ctx, draft); err != nil {
		c.mu.Lock()
		c.editWorker.state = FlowEditing
		c.editWorker.lastErr = errDetail(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.editWorker = workerFlow{}
	c.mu.Unlock()
	c.setNotice("roster record updated")
	c.refreshTab(ctx, domain.TabWorkers)
	return nil
}

// ---- job creation ----

func (c *Console) NewJobDraft() domain.NewJobDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.newJob.draft
}

func (c *Console) NewJobError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.newJob.lastErr
}

func (c *Console) SetNewJobName(name string) {
	c.mu.Lock()
	c.newJob.draft.JobName = name
	c.mu.Unlock()
}

func (c *Console) SetNewJobWage(wage string) {
	c.mu.Lock()
	c.newJob.draft.HourlyWage = wage
	c.mu.Unlock()
}

func (c *Console) SetNewJobIntensity(intensity string) {
	c.mu.Lock()
	c.newJob.draft.Intensity = intensity
	c.mu.Unlock()
}

func (c *Console) SetNewJobCert(cert string) {
	c.mu.Lock()
	c.newJob.draft.RequiredCert = cert
	c.mu.Unlock()
}

// SubmitNewJob validates the form, coerces the numeric inputs with defaults,
// and creates the job. Settings writes are admin-only and refused before any
// request is sent. A rejected submission keeps the form contents so the
// operator can correct and resubmit; success clears the form.
func (c *Console) SubmitNewJob(ctx context.Context) error {
	if !c.session.IsAdmin() {
		return ErrPermissionDenied
	}
	c.mu.Lock()
	if c.newJob.state != FlowEditing {
		c.mu.Unlock()
		return ErrNoDraft
	}
	draft := c.newJob.draft
	draft.JobName = strings.TrimSpace(draft.JobName)
	if err := validate.Struct(draft); err != nil {
		c.mu.Unlock()
		return &ValidationError{Msg: "job name must not be blank"}
	}
	c.newJob.state = FlowSubmitting
	c.mu.Unlock()

	job := domain.JobSetting{
		JobName:    draft.JobName,
		Intensity:  parseFloatDefault(draft.Intensity, defaultJobIntensity),
		HourlyWage: parseIntDefault(draft.HourlyWage, defaultJobHourlyWage),
	}
	if cert := strings.TrimSpace(draft.RequiredCert); cert != "" {
		job.RequiredCert = &cert
	}

	if err := c.api.AddJob(ctx, job); err != nil {
		c.mu.Lock()
		c.newJob.state = FlowEditing
		c.newJob.lastErr = errDetail(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.newJob.reset()
	c.mu.Unlock()
	c.setNotice("job added: " + job.JobName)
	c.refreshTab(ctx, domain.TabSettings)
	return nil
}

// ---- deletes ----

// DeleteWorker removes a roster record. Requires the caller to have taken the
// confirmation step; re-reads the workers tab whether the call succeeded or
// not.
func (c *Console) DeleteWorker(ctx context.Context, id int64, confirmed bool) error {
	if c.session.IsRestricted(c.snapshot().mode) {
		return ErrPermissionDenied
	}
	if !confirmed {
		return ErrNotConfirmed
	}

	err := c.api.DeleteWorker(ctx, id)
	c.refreshTab(ctx, domain.TabWorkers)
	if err != nil {
		c.logger.Warn("worker delete failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	c.setNotice("worker removed")
	return nil
}

// DeleteJobPrompt is the confirmation text shown before a job delete, with
// the job name interpolated.
func DeleteJobPrompt(jobName string) string {
	return fmt.Sprintf("Delete the %s job? Its weight settings will be removed.", jobName)
}

// DeleteJob removes a job-weight record. Admin-only, confirm-gated. On
// rejection the backend detail is surfaced and no refetch happens; on success
// the settings tab is re-read.
func (c *Console) DeleteJob(ctx context.Context, jobName string, confirmed bool) error {
	if !c.session.IsAdmin() {
		return ErrPermissionDenied
	}
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := c.api.DeleteJob(ctx, jobName); err != nil {
		c.logger.Warn("job delete failed", zap.String("job_name", jobName), zap.Error(err))
		return err
	}
	c.setNotice("job removed: " + jobName)
	c.refreshTab(ctx, domain.TabSettings)
	return nil
}

func parseFloatDefault(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func parseIntDefault(s string, def int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
