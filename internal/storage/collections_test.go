package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollection_Key(t *testing.T) {
	assert.Equal(t, "formpick_members_v1", MembersV1.Key())
	assert.Equal(t, "formpick_members_v2", MembersV2.Key())
	assert.Equal(t, "formpick_center_machines_v1", Machines.Key())
	assert.Equal(t, "formpick_admin_log_index_v1", LogIndex.Key())
	assert.Equal(t, "formpick_schedule_events_v1", ScheduleEvents.Key())
}

func TestWorkoutLogKey(t *testing.T) {
	key := WorkoutLogKey("m_001", "2024-06-01")
	assert.Equal(t, "formpick_workoutlog_v1::m_001::2024-06-01", key)

	member, date, ok := ParseWorkoutLogKey(key)
	assert.True(t, ok)
	assert.Equal(t, "m_001", member)
	assert.Equal(t, "2024-06-01", date)
}

func TestParseWorkoutLogKey_Rejects(t *testing.T) {
	for _, key := range []string{
		"formpick_members_v2",
		"formpick_workoutlog_v1::",
		"formpick_workoutlog_v1::2024-06-01",
	} {
		_, _, ok := ParseWorkoutLogKey(key)
		assert.False(t, ok, key)
	}
}
