package storage

import (
	"fmt"
	"strings"
)

const keyPrefix = "formpick_"

// Collection names one versioned record collection of the profile.
type Collection struct {
	Name    string
	Version int
}

func (c Collection) Key() string {
	return fmt.Sprintf("%s%s_v%d", keyPrefix, c.Name, c.Version)
}

func (c Collection) String() string {
	return c.Name
}

var (
	MembersV1       = Collection{Name: "members", Version: 1}
	MembersV2       = Collection{Name: "members", Version: 2}
	ScheduleEvents  = Collection{Name: "schedule_events", Version: 1}
	AdminChanges    = Collection{Name: "admin_changes", Version: 1}
	Notifications   = Collection{Name: "admin_notifications", Version: 1}
	Machines        = Collection{Name: "center_machines", Version: 1}
	LogIndex        = Collection{Name: "admin_log_index", Version: 1}
	Answers         = Collection{Name: "answers", Version: 1}
	FeedbackRequest = Collection{Name: "feedback_request", Version: 1}
	CoachFeedback   = Collection{Name: "coach_feedback", Version: 1}
	WorkoutLogs     = Collection{Name: "workoutlog", Version: 1}
)

const logKeySep = "::"

// WorkoutLogKey is the per-(member, date) key of a workout log document,
// e.g. formpick_workoutlog_v1::m_001::2024-06-01.
func WorkoutLogKey(memberID, dateISO string) string {
	return WorkoutLogs.Key() + logKeySep + memberID + logKeySep + dateISO
}

// WorkoutLogPrefix returns the key prefix of all logs of one member, or of
// all logs when memberID is empty.
func WorkoutLogPrefix(memberID string) string {
	if memberID == "" {
		return WorkoutLogs.Key() + logKeySep
	}
	return WorkoutLogs.Key() + logKeySep + memberID + logKeySep
}

// ParseWorkoutLogKey splits a workout log key into member id and date.
func ParseWorkoutLogKey(key string) (memberID, dateISO string, ok bool) {
	rest, found := strings.CutPrefix(key, WorkoutLogs.Key()+logKeySep)
	if !found {
		return "", "", false
	}
	idx := strings.LastIndex(rest, logKeySep)
	if idx <= 0 {
		return "", "", false
	}
	return rest[:idx], rest[idx+len(logKeySep):], true
}
