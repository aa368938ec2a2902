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

func seedSettings(e *env) {
	e.slots.SetSettings([]domain.JobSetting{
		{JobName: "Pick", Intensity: 1.2, HourlyWage: 11000, Ratio: 40},
		{JobName: "Pack", Intensity: 1.0, HourlyWage: 10000, Ratio: 30},
	})
}

func TestSlideRatio_TracksPointerWithoutNetwork(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)
	seedSettings(e)

	for _, v := range []int{35, 42, 55} {
		e.console.SlideRatio(1, v)
	}

	require.Equal(t, 55, e.slots.Settings()[1].Ratio)
	require.Equal(t, 40, e.slots.Settings()[0].Ratio, "other entries untouched")
	require.Zero(t, e.backend.total(), "continuous events must not hit the network")
}

func TestCommitRatio_SendsLastValueAndRefetchesOnce(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)
	e.console.SetTab(domain.TabSettings)
	seedSettings(e)

	e.backend.routeJSON("POST /settings/update", map[string]string{"msg": "ok"})
	e.backend.routeJSON("GET /settings", []domain.JobSetting{
		{JobName: "Pick", Ratio: 40},
		{JobName: "Pack", Ratio: 55},
	})

	// Drag 30 → 55, then release.
	e.console.SlideRatio(1, 42)
	e.console.SlideRatio(1, 55)
	require.NoError(t, e.console.CommitRatio(context.Background(), "Pack", 55))

	c, ok := e.backend.last("POST /settings/update")
	require.True(t, ok)
	var body struct {
		JobName string `json:"job_name"`
		Ratio   int    `json:"ratio"`
	}
	require.NoError(t, json.Unmarshal(c.Body, &body))
	require.Equal(t, "Pack", body.JobName)
	require.Equal(t, 55, body.Ratio)

	require.Equal(t, 1, e.backend.count("GET /settings"), "exactly one settings refetch")
	require.Equal(t, 55, e.slots.Settings()[1].Ratio, "slot converges to backend state")
}

func TestCommitRatio_FailureRestoresPreDragValue(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)
	e.console.SetTab(domain.TabSettings)
	seedSettings(e)

	e.backend.routeReject("POST /settings/update", http.StatusForbidden, "not allowed")

	e.console.SlideRatio(1, 55)
	err := e.console.CommitRatio(context.Background(), "Pack", 55)

	require.Error(t, err)
	require.Equal(t, 30, e.slots.Settings()[1].Ratio, "failed commit restores the confirmed value")
	require.Zero(t, e.backend.count("GET /settings"), "no refetch after a failed commit")
}

func TestCommitRatio_FailureRestoresEachDraggedJob(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)
	e.console.SetTab(domain.TabSettings)
	seedSettings(e)

	e.backend.routeReject("POST /settings/update", http.StatusInternalServerError, "storage error")

	// Drag both sliders before either commit lands.
	e.console.SlideRatio(0, 45)
	e.console.SlideRatio(1, 55)

	require.Error(t, e.console.CommitRatio(context.Background(), "Pick", 45))
	require.Equal(t, 40, e.slots.Settings()[0].Ratio, "first job restored to its own pre-drag value")
	require.Equal(t, 55, e.slots.Settings()[1].Ratio, "second job keeps its in-flight value")

	require.Error(t, e.console.CommitRatio(context.Background(), "Pack", 55))
	require.Equal(t, 30, e.slots.Settings()[1].Ratio)
}

func TestCommitRatio_NonAdminRefusedWithoutNetwork(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleStaff)
	seedSettings(e)

	e.console.SlideRatio(1, 55)
	err := e.console.CommitRatio(context.Background(), "Pack", 55)

	require.ErrorIs(t, err, service.ErrPermissionDenied)
	require.Zero(t, e.backend.total(), "settings writes are admin-only")
}

func TestSlideRatio_OutOfRangeIsNoop(t *testing.T) {
	e := newEnv(t)
	e.loginAs(domain.RoleAdmin)
	seedSettings(e)

	e.console.SlideRatio(-1, 10)
	e.console.SlideRatio(7, 10)

	require.Equal(t, 40, e.slots.Settings()[0].Ratio)
	require.Equal(t, 30, e.slots.Settings()[1].Ratio)
}
