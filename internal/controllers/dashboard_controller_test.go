package controllers

import (
	"net/http"
	"testing"

	"formpick/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardController_Dashboard(t *testing.T) {
	app := newTestApp(t)
	sc := NewScheduleController(app.rs, app.schedule, app.clock)
	createEvent(t, sc, `{"memberId":"m_001","dateISO":"2024-06-01","time":"19:00"}`)
	createEvent(t, sc, `{"memberId":"m_002","dateISO":"2024-06-20","time":"10:00"}`)

	dc := NewDashboardController(app.rs, services.NewDashboardService(app.schedule, app.logs, app.clock))
	rr := call(dc.Dashboard, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, rr.Code)

	d := decodeBody[services.Dashboard](t, rr)
	assert.Equal(t, "2024-06-01", d.Today)
	assert.Equal(t, 1, d.TodayCount)
	assert.Equal(t, 2, d.MonthTotal)
	assert.Equal(t, 2, d.UnreadCount)
	assert.Len(t, d.Changes, 2)
	assert.Empty(t, d.RecentLogs)
}
