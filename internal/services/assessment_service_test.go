package services

import (
	"testing"

	"formpick/internal/models"
	"formpick/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessmentService_NoAnswers(t *testing.T) {
	svc := NewAssessmentService(storage.NewMemoryStore())
	_, ok := svc.LoadAnswers()
	assert.False(t, ok)

	_, ok, err := svc.Result(nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAssessmentService_MalformedAnswers(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Put(storage.Answers.Key(), []byte(`{"shoulderPainOverhead": tru`))
	_, ok := NewAssessmentService(store).LoadAnswers()
	assert.False(t, ok)
}

func TestAssessmentService_ResultAllMachines(t *testing.T) {
	svc := NewAssessmentService(storage.NewMemoryStore())
	require.NoError(t, svc.SaveAnswers(models.Answers{ShoulderPainOverhead: true}))

	res, ok, err := svc.Result(nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, res.Answers.ShoulderPainOverhead)
	assert.Len(t, res.Machines, 9)
	assert.Equal(t, []string{"lp", "sr", "lpull", "c_face"}, res.Result.RecommendedIDs)
	assert.Len(t, res.Exercises, 4)
}

func TestAssessmentService_ResultFiltered(t *testing.T) {
	svc := NewAssessmentService(storage.NewMemoryStore())
	require.NoError(t, svc.SaveAnswers(models.Answers{}))

	res, ok, err := svc.Result([]models.MachineKey{models.MachineSeatedRow, models.MachinePecDeck})
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, res.Exercises, 2)
	assert.Equal(t, "sr", res.Exercises[0].ID)
	assert.Equal(t, "pd", res.Exercises[1].ID)

	_, _, err = svc.Result([]models.MachineKey{"rowingMachine"})
	n, isNotice := models.AsNotice(err)
	require.True(t, isNotice)
	assert.Equal(t, "unknown_machine", n.Code)
}
