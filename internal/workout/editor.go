// Package workout edits a single workout log in memory and derives its
// metrics and share text. Persistence belongs to the service layer.
package workout

import (
	"formpick/internal/models"
	"formpick/internal/providers"
)

const (
	DefaultRPE      = 7
	InitialSetCount = 3
)

type ExercisePatch struct {
	Machine *string `json:"machine"`
	Name    *string `json:"name"`
}

type SetPatch struct {
	Weight *float64 `json:"weight"`
	Reps   *int     `json:"reps"`
	RPE    *float64 `json:"rpe"`
	Note   *string  `json:"note"`
}

type HeaderPatch struct {
	Attendance *models.Attendance `json:"attendance"`
	Focus      *string            `json:"focus"`
	CoachNote  *string            `json:"coachNote"`
}

// Editor applies mutations to a log. Every successful mutation stamps
// UpdatedAt; a mutation that returns a notice leaves the log untouched.
type Editor struct {
	clock providers.Clock
	ids   providers.IDGenerator
}

func NewEditor(clock providers.Clock, ids providers.IDGenerator) *Editor {
	return &Editor{clock: clock, ids: ids}
}

// NewLog builds an empty log for a member and date, attendance present.
func (e *Editor) NewLog(memberID, memberName, dateISO string) models.WorkoutLog {
	now := e.clock.Now()
	return models.WorkoutLog{
		MemberID:   memberID,
		MemberName: memberName,
		DateISO:    dateISO,
		Attendance: models.AttendancePresent,
		Exercises:  []models.ExerciseRow{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (e *Editor) touch(log *models.WorkoutLog) {
	log.UpdatedAt = e.clock.Now()
}

func (e *Editor) emptySet() models.SetRow {
	return models.SetRow{ID: e.ids.NewID("set"), RPE: DefaultRPE}
}

// AddExercise puts a new row with three empty sets at the top of the log.
func (e *Editor) AddExercise(log *models.WorkoutLog, machine string) (string, error) {
	if log.Attendance == models.AttendanceAbsent {
		return "", models.ErrAbsentAttendance
	}
	row := models.ExerciseRow{
		ID:      e.ids.NewID("ex"),
		Machine: machine,
		Sets:    make([]models.SetRow, 0, InitialSetCount),
	}
	for i := 0; i < InitialSetCount; i++ {
		row.Sets = append(row.Sets, e.emptySet())
	}
	log.Exercises = append([]models.ExerciseRow{row}, log.Exercises...)
	e.touch(log)
	return row.ID, nil
}

func (e *Editor) RemoveExercise(log *models.WorkoutLog, exID string) error {
	idx := exerciseIndex(log, exID)
	if idx < 0 {
		return models.ErrExerciseNotFound
	}
	log.Exercises = append(log.Exercises[:idx:idx], log.Exercises[idx+1:]...)
	e.touch(log)
	return nil
}

func (e *Editor) UpdateExercise(log *models.WorkoutLog, exID string, patch ExercisePatch) error {
	idx := exerciseIndex(log, exID)
	if idx < 0 {
		return models.ErrExerciseNotFound
	}
	ex := &log.Exercises[idx]
	if patch.Machine != nil {
		ex.Machine = *patch.Machine
	}
	if patch.Name != nil {
		ex.Name = *patch.Name
	}
	e.touch(log)
	return nil
}

// AddSet appends an empty set to an exercise.
func (e *Editor) AddSet(log *models.WorkoutLog, exID string) (string, error) {
	if log.Attendance == models.AttendanceAbsent {
		return "", models.ErrAbsentAttendance
	}
	idx := exerciseIndex(log, exID)
	if idx < 0 {
		return "", models.ErrExerciseNotFound
	}
	set := e.emptySet()
	log.Exercises[idx].Sets = append(log.Exercises[idx].Sets, set)
	e.touch(log)
	return set.ID, nil
}

func (e *Editor) RemoveSet(log *models.WorkoutLog, exID, setID string) error {
	idx := exerciseIndex(log, exID)
	if idx < 0 {
		return models.ErrExerciseNotFound
	}
	sets := log.Exercises[idx].Sets
	si := setIndex(sets, setID)
	if si < 0 {
		return models.ErrSetNotFound
	}
	log.Exercises[idx].Sets = append(sets[:si:si], sets[si+1:]...)
	e.touch(log)
	return nil
}

func (e *Editor) UpdateSet(log *models.WorkoutLog, exID, setID string, patch SetPatch) error {
	if (patch.Weight != nil && *patch.Weight < 0) || (patch.Reps != nil && *patch.Reps < 0) {
		return models.ErrNegativeValue
	}
	idx := exerciseIndex(log, exID)
	if idx < 0 {
		return models.ErrExerciseNotFound
	}
	si := setIndex(log.Exercises[idx].Sets, setID)
	if si < 0 {
		return models.ErrSetNotFound
	}
	set := &log.Exercises[idx].Sets[si]
	if patch.Weight != nil {
		set.Weight = *patch.Weight
	}
	if patch.Reps != nil {
		set.Reps = *patch.Reps
	}
	if patch.RPE != nil {
		set.RPE = *patch.RPE
	}
	if patch.Note != nil {
		set.Note = *patch.Note
	}
	e.touch(log)
	return nil
}

func (e *Editor) UpdateHeader(log *models.WorkoutLog, patch HeaderPatch) error {
	if patch.Attendance != nil && !patch.Attendance.Valid() {
		return models.ErrInvalidAttendance
	}
	if patch.Attendance != nil {
		log.Attendance = *patch.Attendance
	}
	if patch.Focus != nil {
		log.Focus = *patch.Focus
	}
	if patch.CoachNote != nil {
		log.CoachNote = *patch.CoachNote
	}
	e.touch(log)
	return nil
}

func exerciseIndex(log *models.WorkoutLog, exID string) int {
	for i := range log.Exercises {
		if log.Exercises[i].ID == exID {
			return i
		}
	}
	return -1
}

func setIndex(sets []models.SetRow, setID string) int {
	for i := range sets {
		if sets[i].ID == setID {
			return i
		}
	}
	return -1
}
