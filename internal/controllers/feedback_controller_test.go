package controllers

import (
	"net/http"
	"testing"

	"formpick/internal/models"
	"formpick/internal/services"
	"formpick/internal/structures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedbackController(app *testApp) *FeedbackController {
	conf := &structures.Config{Studio: structures.StudioConfig{MinPhotos: 3}}
	return NewFeedbackController(app.rs, services.NewFeedbackService(app.store, app.clock, conf))
}

func TestFeedbackController_Submit(t *testing.T) {
	app := newTestApp(t)
	fc := newFeedbackController(app)

	rr := call(fc.Request, http.MethodGet, "/api/feedback", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = call(fc.Submit, http.MethodPost, "/api/feedback", `{"notes":"허리","files":{"front":"a.jpg","side":"b.jpg"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "not_enough_photos", decodeBody[noticeResponse](t, rr).Code)

	rr = call(fc.Submit, http.MethodPost, "/api/feedback", `{"notes":"허리","files":{"back":"c.jpg","front":"a.jpg","side":"b.jpg"}}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	req := decodeBody[models.FeedbackRequest](t, rr)
	assert.Equal(t, []models.PhotoKey{models.PhotoFront, models.PhotoSide, models.PhotoBack}, req.PhotoKeys)

	rr = call(fc.Request, http.MethodGet, "/api/feedback", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "허리", decodeBody[models.FeedbackRequest](t, rr).Notes)
}

func TestFeedbackController_CoachNote(t *testing.T) {
	app := newTestApp(t)
	fc := newFeedbackController(app)

	rr := call(fc.CoachNote, http.MethodGet, "/api/feedback/coach", "")
	assert.Equal(t, "", decodeBody[coachNoteResponse](t, rr).Note)

	rr = call(fc.SaveCoachNote, http.MethodPut, "/api/feedback/coach", `{"note":"무릎 정렬 먼저"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = call(fc.CoachNote, http.MethodGet, "/api/feedback/coach", "")
	assert.Equal(t, "무릎 정렬 먼저", decodeBody[coachNoteResponse](t, rr).Note)
}
