package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"workerguard-console/internal/domain"
	"workerguard-console/internal/service"

	"github.com/stretchr/testify/require"
)

func TestEditLog_RoundTripUnchangedDraft(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)
	e.console.SetTab(domain.TabPayroll)
	e.console.SetMode(domain.ModeDaily)

	entry := domain.PayrollEntry{ID: 5, Name: "Kim", JobName: "Pack", Hours: 8, PaymentAmount: 96000}
	e.backend.routeJSON("POST /edit/log", map[string]string{"msg": "ok"})
	e.backend.routeJSON("GET /payroll", map[string]any{"list": []map[string]any{{"name": "Kim", "id": 5}}})

	require.NoError(t, e.console.OpenEditLog(entry))
	require.Equal(t, service.FlowEditing, e.console.EditLogState())

	// No fields changed: the POST payload must equal the record's own fields.
	require.NoError(t, e.console.SubmitEditLog(context.Background()))

	c, ok := e.backend.last("POST /edit/log")
	require.True(t, ok)
	var body domain.EditLogDraft
	require.NoError(t, json.Unmarshal(c.Body, &body))
	require.Equal(t, domain.EditLogDraft{ID: 5, JobName: "Pack", WorkHours: 8}, body)

	require.Equal(t, service.FlowClosed, e.console.EditLogState())
	require.Equal(t, 1, e.backend.count("GET /payroll"), "owning tab refetched after submit")
	require.Len(t, e.slots.Payroll(), 1)
}

func TestEditLog_RejectionKeepsModalOpen(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)
	e.console.SetTab(domain.TabPayroll)

	e.backend.routeReject("POST /edit/log", http.StatusBadRequest, "직무 설정이 존재하지 않습니다.")

	require.NoError(t, e.console.OpenEditLog(domain.PayrollEntry{ID: 5, JobName: "Pack", Hours: 8}))
	require.NoError(t, e.console.SetEditLogJob("Ghost"))

	err := e.console.SubmitEditLog(context.Background())
	require.Error(t, err)

	require.Equal(t, service.FlowEditing, e.console.EditLogState(), "failure must not close the modal")
	require.Equal(t, "직무 설정이 존재하지 않습니다.", e.console.EditLogError())
	draft, open := e.console.EditLogDraft()
	require.True(t, open)
	require.Equal(t, "Ghost", draft.JobName, "draft survives for correction")
	require.Zero(t, e.backend.count("GET /payroll"), "no refetch after rejection")
}

func TestEditLog_CancelDiscardsDraftWithoutNetwork(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)

	require.NoError(t, e.console.OpenEditLog(domain.PayrollEntry{ID: 5, JobName: "Pack", Hours: 8}))
	e.console.CancelEditLog()

	require.Equal(t, service.FlowClosed, e.console.EditLogState())
	_, open := e.console.EditLogDraft()
	require.False(t, open)
	require.Zero(t, e.backend.total())
}

func TestEditWorker_RestrictedStaffRefusedWithoutNetwork(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleStaff)
	e.console.SetMode(domain.ModeRegular)

	err := e.console.OpenEditWorker(domain.Worker{ID: 1, Phone: "010", Center: "서울 센터"})
	require.ErrorIs(t, err, service.ErrPermissionDenied)

	err = e.console.DeleteWorker(context.Background(), 1, true)
	require.ErrorIs(t, err, service.ErrPermissionDenied)

	require.Zero(t, e.backend.total(), "restricted mutations must not reach the network")
}

func TestEditWorker_StaffAllowedInDailyMode(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleStaff)
	e.console.SetTab(domain.TabWorkers)
	e.console.SetMode(domain.ModeDaily)

	e.backend.routeJSON("POST /edit/worker", map[string]string{"msg": "ok"})
	e.backend.routeJSON("GET /workers/list", []domain.Worker{{ID: 1, Phone: "010-9999", Center: "부산 센터"}})

	require.NoError(t, e.console.OpenEditWorker(domain.Worker{ID: 1, Phone: "010-1111", Center: "서울 센터"}))
	require.NoError(t, e.console.SetEditWorkerPhone("010-9999"))
	require.NoError(t, e.console.SetEditWorkerCenter("부산 센터"))
	require.NoError(t, e.console.SubmitEditWorker(context.Background()))

	c, ok := e.backend.last("POST /edit/worker")
	require.True(t, ok)
	var body domain.EditWorkerDraft
	require.NoError(t, json.Unmarshal(c.Body, &body))
	require.Equal(t, domain.EditWorkerDraft{ID: 1, Phone: "010-9999", Center: "부산 센터"}, body)
	require.Equal(t, 1, e.backend.count("GET /workers/list"))
}

func TestDeleteWorker_RequiresConfirmation(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)

	err := e.console.DeleteWorker(context.Background(), 7, false)
	require.ErrorIs(t, err, service.ErrNotConfirmed)
	require.Zero(t, e.backend.total())
}

func TestDeleteWorker_RefetchesEvenOnFailure(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)
	e.console.SetTab(domain.TabWorkers)
	e.console.SetMode(domain.ModeDaily)

	e.backend.routeReject("POST /delete/worker", http.StatusNotFound, "대상 근로자를 찾을 수 없습니다.")
	e.backend.routeJSON("GET /workers/list", []domain.Worker{})

	err := e.console.DeleteWorker(context.Background(), 7, true)
	require.Error(t, err)
	require.Equal(t, 1, e.backend.count("GET /workers/list"), "workers tab refetched regardless of outcome")
}

func TestSubmitNewJob_BlankNameBlocksBeforeNetwork(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)

	e.console.SetNewJobName("   ")
	err := e.console.SubmitNewJob(context.Background())

	var invalid *service.ValidationError
	require.ErrorAs(t, err, &invalid)
	require.Zero(t, e.backend.total(), "validation failures must not reach the network")
}

func TestSubmitNewJob_NumericDefaultsApplied(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)
	e.console.SetTab(domain.TabSettings)

	e.backend.routeJSON("POST /settings/add", map[string]string{"msg": "ok"})
	e.backend.routeJSON("GET /settings", []domain.JobSetting{{JobName: "Pick"}})

	e.console.SetNewJobName("Pick")
	e.console.SetNewJobWage("abc")
	e.console.SetNewJobIntensity("not-a-number")
	require.NoError(t, e.console.SubmitNewJob(context.Background()))

	c, ok := e.backend.last("POST /settings/add")
	require.True(t, ok)
	var body struct {
		JobName    string  `json:"job_name"`
		Intensity  float64 `json:"intensity"`
		HourlyWage int64   `json:"hourly_wage"`
		Ratio      int     `json:"ratio"`
	}
	require.NoError(t, json.Unmarshal(c.Body, &body))
	require.Equal(t, "Pick", body.JobName)
	require.Equal(t, 1.0, body.Intensity)
	require.Equal(t, int64(10000), body.HourlyWage)
	require.Zero(t, body.Ratio, "new jobs start at ratio 0")

	require.Empty(t, e.console.NewJobDraft().JobName, "form cleared after success")
	require.Equal(t, 1, e.backend.count("GET /settings"))
}

func TestSubmitNewJob_RejectionKeepsForm(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)

	e.backend.routeReject("POST /settings/add", http.StatusConflict, "이미 존재하는 직무입니다.")

	e.console.SetNewJobName("Pick")
	err := e.console.SubmitNewJob(context.Background())

	require.Error(t, err)
	require.Equal(t, "Pick", e.console.NewJobDraft().JobName, "form not cleared on failure")
	require.Equal(t, "이미 존재하는 직무입니다.", e.console.NewJobError())
	require.Zero(t, e.backend.count("GET /settings"))
}

func TestSettingsWrites_NonAdminRefusedWithoutNetwork(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleStaff)

	e.console.SetNewJobName("Pick")
	require.ErrorIs(t, e.console.SubmitNewJob(context.Background()), service.ErrPermissionDenied)
	require.ErrorIs(t, e.console.DeleteJob(context.Background(), "Pack", true), service.ErrPermissionDenied)
	require.Zero(t, e.backend.total(), "settings writes are admin-only")
}

func TestDeleteJob_PromptInterpolatesName(t *testing.T) {
	require.Contains(t, service.DeleteJobPrompt("Pack"), "Pack")
}

func TestDeleteJob_FailureSkipsRefetch(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)
	e.console.SetTab(domain.TabSettings)

	e.backend.routeReject("POST /settings/delete", http.StatusConflict, "사용 중인 직무입니다.")

	err := e.console.DeleteJob(context.Background(), "Pack", true)
	require.Error(t, err)
	require.Zero(t, e.backend.count("GET /settings"), "no refetch when the delete is rejected")

	require.ErrorIs(t, e.console.DeleteJob(context.Background(), "Pack", false), service.ErrNotConfirmed)
}

func TestDeleteJob_SuccessRefetchesSettings(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)
	e.console.SetTab(domain.TabSettings)

	e.backend.routeJSON("POST /settings/delete", map[string]string{"msg": "ok"})
	e.backend.routeJSON("GET /settings", []domain.JobSetting{})

	require.NoError(t, e.console.DeleteJob(context.Background(), "Pack", true))
	require.Equal(t, 1, e.backend.count("GET /settings"))
}
