package models

import "time"

type Attendance string

const (
	AttendancePresent Attendance = "present"
	AttendanceLate    Attendance = "late"
	AttendanceAbsent  Attendance = "absent"
)

func (a Attendance) Valid() bool {
	switch a {
	case AttendancePresent, AttendanceLate, AttendanceAbsent:
		return true
	}
	return false
}

var attendanceLabels = map[Attendance]string{
	AttendancePresent: "출석",
	AttendanceLate:    "지각",
	AttendanceAbsent:  "결석",
}

// Label is the Korean display name used in shared summaries.
func (a Attendance) Label() string {
	if l, ok := attendanceLabels[a]; ok {
		return l
	}
	return string(a)
}

// SetRow is one set. RPE is expected in 6..10 but not enforced.
type SetRow struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	RPE    float64 `json:"rpe"`
	Note   string  `json:"note,omitempty"`
}

type ExerciseRow struct {
	ID      string   `json:"id"`
	Machine string   `json:"machine"`
	Name    string   `json:"name"`
	Sets    []SetRow `json:"sets"`
}

// WorkoutLog is stored once per (member, date).
type WorkoutLog struct {
	MemberID   string        `json:"memberId"`
	MemberName string        `json:"memberName"`
	DateISO    string        `json:"dateISO"`
	Attendance Attendance    `json:"attendance"`
	Focus      string        `json:"focus"`
	CoachNote  string        `json:"coachNote"`
	Exercises  []ExerciseRow `json:"exercises"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// RecentLogItem is an entry of the bounded recent-activity index.
type RecentLogItem struct {
	ID         string    `json:"id"`
	MemberName string    `json:"memberName"`
	DateISO    string    `json:"dateISO"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LogID identifies a workout log inside the recent index.
func LogID(memberID, dateISO string) string {
	return memberID + "::" + dateISO
}
