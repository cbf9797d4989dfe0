package services

import (
	"formpick/internal/models"
	"formpick/internal/recommend"
	"formpick/internal/storage"
)

// AssessmentResult is the result screen: rule output plus the exercises the
// selected machines allow.
type AssessmentResult struct {
	Answers   models.Answers      `json:"answers"`
	Machines  []models.MachineKey `json:"machines"`
	Result    recommend.Result    `json:"result"`
	Exercises []models.Exercise   `json:"exercises"`
}

type AssessmentServiceInterface interface {
	SaveAnswers(answers models.Answers) error
	LoadAnswers() (models.Answers, bool)
	Result(machines []models.MachineKey) (AssessmentResult, bool, error)
}

type AssessmentService struct {
	store storage.RecordStore
}

func NewAssessmentService(store storage.RecordStore) *AssessmentService {
	return &AssessmentService{store: store}
}

func (s *AssessmentService) SaveAnswers(answers models.Answers) error {
	return storage.Write(s.store, storage.Answers.Key(), answers)
}

// LoadAnswers reports false when nothing was saved or the saved document
// does not parse.
func (s *AssessmentService) LoadAnswers() (models.Answers, bool) {
	return storage.Lookup[models.Answers](s.store, storage.Answers.Key())
}

// Result recommends from the saved answers. An empty machine selection
// means every machine is available. Unknown machine keys are rejected.
func (s *AssessmentService) Result(machines []models.MachineKey) (AssessmentResult, bool, error) {
	answers, ok := s.LoadAnswers()
	if !ok {
		return AssessmentResult{}, false, nil
	}
	for _, m := range machines {
		if !recommend.ValidMachine(m) {
			return AssessmentResult{}, false, models.NewNotice("unknown_machine", "unknown machine: "+string(m))
		}
	}
	if len(machines) == 0 {
		machines = recommend.MachineKeys
	}
	res := recommend.Recommend(answers)
	return AssessmentResult{
		Answers:   answers,
		Machines:  machines,
		Result:    res,
		Exercises: recommend.Filter(res, machines),
	}, true, nil
}
