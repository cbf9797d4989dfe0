package controllers

import (
	"formpick/internal/models"
	"formpick/internal/recommend"
	"formpick/internal/services"
	"net/http"
	"strings"
)

type machineOption struct {
	Key   models.MachineKey `json:"key"`
	Label string            `json:"label"`
}

type catalogResponse struct {
	Machines  []machineOption   `json:"machines"`
	Exercises []models.Exercise `json:"exercises"`
}

type AssessmentController struct {
	rs      *Responder
	service services.AssessmentServiceInterface
}

func NewAssessmentController(rs *Responder, service services.AssessmentServiceInterface) *AssessmentController {
	return &AssessmentController{rs: rs, service: service}
}

func (ac *AssessmentController) Catalog(w http.ResponseWriter, r *http.Request) {
	ac.rs.cached(w, r, func() (any, error) {
		machines := make([]machineOption, 0, len(recommend.MachineKeys))
		for _, key := range recommend.MachineKeys {
			machines = append(machines, machineOption{Key: key, Label: recommend.MachineLabels[key]})
		}
		return catalogResponse{Machines: machines, Exercises: recommend.Catalog}, nil
	})
}

func (ac *AssessmentController) Answers(w http.ResponseWriter, r *http.Request) {
	answers, ok := ac.service.LoadAnswers()
	if !ok {
		ac.rs.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no saved answers"})
		return
	}
	ac.rs.writeJSON(w, http.StatusOK, answers)
}

func (ac *AssessmentController) SaveAnswers(w http.ResponseWriter, r *http.Request) {
	var answers models.Answers
	if !ac.rs.decode(w, r, &answers) {
		return
	}
	err := ac.service.SaveAnswers(answers)
	ac.rs.respond(w, r, http.StatusOK, answers, err)
}

// Result recommends for ?machines=a,b. Without saved answers the caller has
// to take the survey first.
func (ac *AssessmentController) Result(w http.ResponseWriter, r *http.Request) {
	var machines []models.MachineKey
	for _, raw := range strings.Split(r.URL.Query().Get("machines"), ",") {
		if key := strings.TrimSpace(raw); key != "" {
			machines = append(machines, models.MachineKey(key))
		}
	}

	res, ok, err := ac.service.Result(machines)
	if err != nil {
		ac.rs.writeError(w, r, err)
		return
	}
	if !ok {
		ac.rs.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no saved answers"})
		return
	}
	ac.rs.writeJSON(w, http.StatusOK, res)
}
