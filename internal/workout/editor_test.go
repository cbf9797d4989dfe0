package workout

import (
	"testing"
	"time"

	"formpick/internal/models"
	"formpick/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor() (*Editor, *testutil.FixedClock) {
	clock := testutil.NewFixedClock("2024-06-01")
	return NewEditor(clock, &testutil.SeqIDs{}), clock
}

func ptr[T any](v T) *T { return &v }

func TestEditor_NewLog(t *testing.T) {
	e, clock := newTestEditor()
	log := e.NewLog("m_001", "김OO", "2024-06-01")

	assert.Equal(t, models.AttendancePresent, log.Attendance)
	assert.Empty(t, log.Exercises)
	assert.NotNil(t, log.Exercises)
	assert.Equal(t, clock.Now(), log.CreatedAt)
}

func TestEditor_AddExercisePrependsWithThreeSets(t *testing.T) {
	e, clock := newTestEditor()
	log := e.NewLog("m_001", "김OO", "2024-06-01")

	first, err := e.AddExercise(&log, "레그프레스")
	require.NoError(t, err)
	clock.Advance(time.Minute)
	second, err := e.AddExercise(&log, "덤벨")
	require.NoError(t, err)

	require.Len(t, log.Exercises, 2)
	assert.Equal(t, second, log.Exercises[0].ID)
	assert.Equal(t, first, log.Exercises[1].ID)
	assert.Equal(t, "덤벨", log.Exercises[0].Machine)
	require.Len(t, log.Exercises[0].Sets, InitialSetCount)
	for _, s := range log.Exercises[0].Sets {
		assert.Equal(t, float64(DefaultRPE), s.RPE)
		assert.Zero(t, s.Weight)
		assert.Zero(t, s.Reps)
	}
	assert.Equal(t, clock.Now(), log.UpdatedAt)
}

func TestEditor_AbsentBlocksAdds(t *testing.T) {
	e, clock := newTestEditor()
	log := e.NewLog("m_001", "김OO", "2024-06-01")
	exID, err := e.AddExercise(&log, "덤벨")
	require.NoError(t, err)
	require.NoError(t, e.UpdateHeader(&log, HeaderPatch{Attendance: ptr(models.AttendanceAbsent)}))
	stamped := log.UpdatedAt
	clock.Advance(time.Hour)

	_, err = e.AddExercise(&log, "바벨")
	assert.ErrorIs(t, err, models.ErrAbsentAttendance)
	_, err = e.AddSet(&log, exID)
	assert.ErrorIs(t, err, models.ErrAbsentAttendance)

	require.Len(t, log.Exercises, 1)
	assert.Len(t, log.Exercises[0].Sets, InitialSetCount)
	assert.Equal(t, stamped, log.UpdatedAt)
}

func TestEditor_SetLifecycle(t *testing.T) {
	e, _ := newTestEditor()
	log := e.NewLog("m_001", "김OO", "2024-06-01")
	exID, _ := e.AddExercise(&log, "레그프레스")

	setID, err := e.AddSet(&log, exID)
	require.NoError(t, err)
	require.Len(t, log.Exercises[0].Sets, 4)
	assert.Equal(t, setID, log.Exercises[0].Sets[3].ID)

	require.NoError(t, e.UpdateSet(&log, exID, setID, SetPatch{Weight: ptr(40.5), Reps: ptr(10), Note: ptr("가볍게")}))
	s := log.Exercises[0].Sets[3]
	assert.Equal(t, 40.5, s.Weight)
	assert.Equal(t, 10, s.Reps)
	assert.Equal(t, float64(DefaultRPE), s.RPE)
	assert.Equal(t, "가볍게", s.Note)

	require.NoError(t, e.RemoveSet(&log, exID, setID))
	assert.Len(t, log.Exercises[0].Sets, 3)
	assert.ErrorIs(t, e.RemoveSet(&log, exID, setID), models.ErrSetNotFound)
}

func TestEditor_UpdateSetRejectsNegative(t *testing.T) {
	e, _ := newTestEditor()
	log := e.NewLog("m_001", "김OO", "2024-06-01")
	exID, _ := e.AddExercise(&log, "덤벨")
	setID := log.Exercises[0].Sets[0].ID

	assert.ErrorIs(t, e.UpdateSet(&log, exID, setID, SetPatch{Weight: ptr(-1.0)}), models.ErrNegativeValue)
	assert.ErrorIs(t, e.UpdateSet(&log, exID, setID, SetPatch{Reps: ptr(-3)}), models.ErrNegativeValue)
	assert.Zero(t, log.Exercises[0].Sets[0].Weight)
}

func TestEditor_ExerciseUpdateAndRemove(t *testing.T) {
	e, _ := newTestEditor()
	log := e.NewLog("m_001", "김OO", "2024-06-01")
	a, _ := e.AddExercise(&log, "덤벨")
	b, _ := e.AddExercise(&log, "바벨")

	require.NoError(t, e.UpdateExercise(&log, a, ExercisePatch{Name: ptr("덤벨 RDL")}))
	assert.Equal(t, "덤벨 RDL", log.Exercises[1].Name)
	assert.Equal(t, "덤벨", log.Exercises[1].Machine)

	require.NoError(t, e.RemoveExercise(&log, b))
	require.Len(t, log.Exercises, 1)
	assert.Equal(t, a, log.Exercises[0].ID)

	assert.ErrorIs(t, e.RemoveExercise(&log, b), models.ErrExerciseNotFound)
	assert.ErrorIs(t, e.UpdateExercise(&log, b, ExercisePatch{}), models.ErrExerciseNotFound)
	_, err := e.AddSet(&log, b)
	assert.ErrorIs(t, err, models.ErrExerciseNotFound)
}

func TestEditor_UpdateHeader(t *testing.T) {
	e, _ := newTestEditor()
	log := e.NewLog("m_001", "김OO", "2024-06-01")

	require.NoError(t, e.UpdateHeader(&log, HeaderPatch{Focus: ptr("힙힌지"), CoachNote: ptr("좋아요")}))
	assert.Equal(t, "힙힌지", log.Focus)
	assert.Equal(t, "좋아요", log.CoachNote)

	bad := models.Attendance("sick")
	assert.ErrorIs(t, e.UpdateHeader(&log, HeaderPatch{Attendance: &bad, Focus: ptr("x")}), models.ErrInvalidAttendance)
	assert.Equal(t, "힙힌지", log.Focus)
}
