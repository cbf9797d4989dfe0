package services

import (
	"formpick/internal/models"
	"formpick/internal/providers"
	"time"
)

const dashboardListSize = 5

// Dashboard is the admin home screen.
type Dashboard struct {
	Today         string                    `json:"today"`
	TodayCount    int                       `json:"todayCount"`
	MonthTotal    int                       `json:"monthTotal"`
	UnreadCount   int                       `json:"unreadCount"`
	TodayEvents   []models.ScheduleEvent    `json:"todayEvents"`
	Changes       []models.ChangeItem       `json:"changes"`
	Notifications []models.NotificationItem `json:"notifications"`
	RecentLogs    []models.RecentLogItem    `json:"recentLogs"`
}

type DashboardServiceInterface interface {
	Dashboard() Dashboard
}

type DashboardService struct {
	schedule ScheduleServiceInterface
	logs     WorkoutLogServiceInterface
	clock    providers.Clock
}

func NewDashboardService(schedule ScheduleServiceInterface, logs WorkoutLogServiceInterface, clock providers.Clock) *DashboardService {
	return &DashboardService{schedule: schedule, logs: logs, clock: clock}
}

func (s *DashboardService) Dashboard() Dashboard {
	now := s.clock.Now()
	today := s.clock.Today()
	todayEvents := s.schedule.TodayEvents()

	return Dashboard{
		Today:         today,
		TodayCount:    len(todayEvents),
		MonthTotal:    s.schedule.MonthTotal(now.Year(), now.Month()),
		UnreadCount:   s.schedule.UnreadCount(),
		TodayEvents:   todayEvents,
		Changes:       s.schedule.Changes(dashboardListSize),
		Notifications: s.schedule.Notifications(dashboardListSize),
		RecentLogs:    s.logs.RecentLogs(dashboardListSize),
	}
}

// CurrentMonth is the month the calendar opens on.
func CurrentMonth(clock providers.Clock) (int, time.Month) {
	now := clock.Now()
	return now.Year(), now.Month()
}
