package services

import (
	"testing"
	"time"

	"formpick/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService(t *testing.T) {
	env := newTestEnv(t)
	for i, at := range []string{"18:00", "07:00", "12:00", "09:00", "10:00", "11:00"} {
		member := []string{"m_001", "m_002", "m_003"}[i%3]
		_, err := env.schedule.CreateEvent(CreateEventInput{MemberID: member, DateISO: "2024-06-01", Time: at})
		require.NoError(t, err)
	}
	_, err := env.schedule.CreateEvent(CreateEventInput{MemberID: "m_001", DateISO: "2024-06-15", Time: "10:00"})
	require.NoError(t, err)
	_, err = env.logs.UpdateHeader("m_001", "2024-06-01", workout.HeaderPatch{Focus: ptr("코어")})
	require.NoError(t, err)

	dash := NewDashboardService(env.schedule, env.logs, env.clock).Dashboard()

	assert.Equal(t, "2024-06-01", dash.Today)
	assert.Equal(t, 6, dash.TodayCount)
	assert.Equal(t, 7, dash.MonthTotal)
	assert.Equal(t, 7, dash.UnreadCount)
	assert.Equal(t, "07:00", dash.TodayEvents[0].Time)
	assert.Len(t, dash.Changes, 5)
	assert.Len(t, dash.Notifications, 5)
	require.Len(t, dash.RecentLogs, 1)
	assert.Equal(t, "m_001::2024-06-01", dash.RecentLogs[0].ID)
}

func TestCurrentMonth(t *testing.T) {
	env := newTestEnv(t)
	y, m := CurrentMonth(env.clock)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.June, m)
}
