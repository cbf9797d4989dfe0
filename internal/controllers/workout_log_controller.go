package controllers

import (
	"context"
	"formpick/internal/services"
	"formpick/internal/workout"
	"net/http"
)

type exerciseInput struct {
	Machine string `json:"machine" validate:"maxLen:40"`
}

// bufferClipboard is the clipboard of an HTTP caller: the share text is
// handed back in the response body.
type bufferClipboard struct {
	text string
}

func (c *bufferClipboard) WriteText(_ context.Context, text string) error {
	c.text = text
	return nil
}

type WorkoutLogController struct {
	rs      *Responder
	service services.WorkoutLogServiceInterface
}

func NewWorkoutLogController(rs *Responder, service services.WorkoutLogServiceInterface) *WorkoutLogController {
	return &WorkoutLogController{rs: rs, service: service}
}

func logPath(r *http.Request) (string, string) {
	return r.PathValue("member"), r.PathValue("date")
}

func (wc *WorkoutLogController) Recent(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil || limit < 0 {
		wc.rs.badRequest(w, "limit must be a non-negative number")
		return
	}
	wc.rs.cached(w, r, func() (any, error) {
		return wc.service.RecentLogs(limit), nil
	})
}

func (wc *WorkoutLogController) MemberLogs(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	wc.rs.cached(w, r, func() (any, error) {
		return wc.service.MemberLogs(id), nil
	})
}

// Get opens the log of a member and date. A missing log comes back empty
// and is stored on its first edit.
func (wc *WorkoutLogController) Get(w http.ResponseWriter, r *http.Request) {
	member, date := logPath(r)
	log, err := wc.service.LoadOrCreate(member, date)
	wc.rs.respond(w, r, http.StatusOK, log, err)
}

func (wc *WorkoutLogController) Clear(w http.ResponseWriter, r *http.Request) {
	member, date := logPath(r)
	log, err := wc.service.Clear(member, date)
	wc.rs.respond(w, r, http.StatusOK, log, err)
}

func (wc *WorkoutLogController) UpdateHeader(w http.ResponseWriter, r *http.Request) {
	var patch workout.HeaderPatch
	if !wc.rs.decode(w, r, &patch) {
		return
	}
	member, date := logPath(r)
	log, err := wc.service.UpdateHeader(member, date, patch)
	wc.rs.respond(w, r, http.StatusOK, log, err)
}

func (wc *WorkoutLogController) AddExercise(w http.ResponseWriter, r *http.Request) {
	var in exerciseInput
	if r.ContentLength != 0 && !wc.rs.decode(w, r, &in) {
		return
	}
	member, date := logPath(r)
	log, err := wc.service.AddExercise(member, date, in.Machine)
	wc.rs.respond(w, r, http.StatusCreated, log, err)
}

func (wc *WorkoutLogController) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	var patch workout.ExercisePatch
	if !wc.rs.decode(w, r, &patch) {
		return
	}
	member, date := logPath(r)
	log, err := wc.service.UpdateExercise(member, date, r.PathValue("ex"), patch)
	wc.rs.respond(w, r, http.StatusOK, log, err)
}

func (wc *WorkoutLogController) RemoveExercise(w http.ResponseWriter, r *http.Request) {
	member, date := logPath(r)
	log, err := wc.service.RemoveExercise(member, date, r.PathValue("ex"))
	wc.rs.respond(w, r, http.StatusOK, log, err)
}

func (wc *WorkoutLogController) AddSet(w http.ResponseWriter, r *http.Request) {
	member, date := logPath(r)
	log, err := wc.service.AddSet(member, date, r.PathValue("ex"))
	wc.rs.respond(w, r, http.StatusCreated, log, err)
}

func (wc *WorkoutLogController) UpdateSet(w http.ResponseWriter, r *http.Request) {
	var patch workout.SetPatch
	if !wc.rs.decode(w, r, &patch) {
		return
	}
	member, date := logPath(r)
	log, err := wc.service.UpdateSet(member, date, r.PathValue("ex"), r.PathValue("set"), patch)
	wc.rs.respond(w, r, http.StatusOK, log, err)
}

func (wc *WorkoutLogController) RemoveSet(w http.ResponseWriter, r *http.Request) {
	member, date := logPath(r)
	log, err := wc.service.RemoveSet(member, date, r.PathValue("ex"), r.PathValue("set"))
	wc.rs.respond(w, r, http.StatusOK, log, err)
}

func (wc *WorkoutLogController) Summary(w http.ResponseWriter, r *http.Request) {
	member, date := logPath(r)
	text, err := wc.service.Summary(member, date, workout.SummaryOptions{SkipEmptySets: queryBool(r, "skipEmpty")})
	if err != nil {
		wc.rs.writeError(w, r, err)
		return
	}
	writeText(w, text)
}

// Share copies the summary to the caller. The response body is the copied text.
func (wc *WorkoutLogController) Share(w http.ResponseWriter, r *http.Request) {
	member, date := logPath(r)
	clip := &bufferClipboard{}
	opts := workout.SummaryOptions{SkipEmptySets: queryBool(r, "skipEmpty")}
	if _, err := wc.service.Share(r.Context(), member, date, opts, clip); err != nil {
		wc.rs.writeError(w, r, err)
		return
	}
	writeText(w, clip.text)
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
