package controllers

import (
	"formpick/internal/models"
	"formpick/internal/services"
	"net/http"
)

type feedbackInput struct {
	Notes string                     `json:"notes" validate:"maxLen:2000"`
	Files map[models.PhotoKey]string `json:"files"`
}

type coachNoteInput struct {
	Note string `json:"note" validate:"maxLen:4000"`
}

type coachNoteResponse struct {
	Note string `json:"note"`
}

type FeedbackController struct {
	rs      *Responder
	service services.FeedbackServiceInterface
}

func NewFeedbackController(rs *Responder, service services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{rs: rs, service: service}
}

func (fc *FeedbackController) Request(w http.ResponseWriter, r *http.Request) {
	req, ok := fc.service.Request()
	if !ok {
		fc.rs.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no feedback request"})
		return
	}
	fc.rs.writeJSON(w, http.StatusOK, req)
}

// Submit takes the photo slots as file names. The photos themselves never
// leave the member's device.
func (fc *FeedbackController) Submit(w http.ResponseWriter, r *http.Request) {
	var in feedbackInput
	if !fc.rs.decode(w, r, &in) {
		return
	}
	req, err := fc.service.Submit(in.Notes, in.Files)
	fc.rs.respond(w, r, http.StatusCreated, req, err)
}

func (fc *FeedbackController) CoachNote(w http.ResponseWriter, r *http.Request) {
	fc.rs.writeJSON(w, http.StatusOK, coachNoteResponse{Note: fc.service.CoachNote()})
}

func (fc *FeedbackController) SaveCoachNote(w http.ResponseWriter, r *http.Request) {
	var in coachNoteInput
	if !fc.rs.decode(w, r, &in) {
		return
	}
	err := fc.service.SaveCoachNote(in.Note)
	fc.rs.respond(w, r, http.StatusOK, coachNoteResponse{Note: in.Note}, err)
}
