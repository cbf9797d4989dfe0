// Package recommend turns assessment answers into cautions, focus points and
// catalog exercises. Everything here is pure and deterministic.
package recommend

import "formpick/internal/models"

type rule struct {
	flag     func(models.Answers) bool
	excludes []string
	cautions []string
	focuses  []string
}

// rules are evaluated in flag declaration order.
var rules = []rule{
	{
		flag:     func(a models.Answers) bool { return a.ShoulderPainOverhead },
		excludes: []string{"오버헤드 프레스/머리 위로 미는 동작(초기 제외)"},
		cautions: []string{"랫풀다운/펙덱은 통증 없는 범위까지만(ROM 제한)"},
		focuses:  []string{"견갑 안정화(로우/페이스풀 중심)"},
	},
	{
		flag:     func(a models.Answers) bool { return a.SquatBackRounds },
		cautions: []string{"스쿼트 깊이 욕심 금지: 허리 중립 유지가 우선"},
		focuses:  []string{"힙힌지(엉덩이 접기) + 둔근/햄스트링 강화"},
	},
	{
		flag:     func(a models.Answers) bool { return a.KneeValgus },
		cautions: []string{"무릎이 안쪽으로 모이면 중량 내리고 발-무릎 정렬부터"},
		focuses:  []string{"둔근 중둔근/고관절 외회전 컨트롤"},
	},
	{
		flag:     func(a models.Answers) bool { return a.HipAsymmetry },
		cautions: []string{"한쪽만 불편하면 좌/우 볼륨을 동일하게, 가동범위부터 맞추기"},
		focuses:  []string{"편측 운동(스플릿 스쿼트/런지)로 균형"},
	},
}

var baseIDs = []string{"lp", "sr", "lpull"}

// Result is the outcome of one assessment. Excludes holds advisory movement
// patterns to avoid; ExcludedExerciseIDs is reserved for hard per-exercise
// exclusions and is currently always empty.
type Result struct {
	Cautions            []string `json:"cautions"`
	Focuses             []string `json:"focuses"`
	Excludes            []string `json:"excludes"`
	ExcludedExerciseIDs []string `json:"excludedExerciseIds"`
	RecommendedIDs      []string `json:"recommendedIds"`
}

func Recommend(a models.Answers) Result {
	res := Result{
		Cautions:            []string{},
		Focuses:             []string{},
		Excludes:            []string{},
		ExcludedExerciseIDs: []string{},
	}
	for _, r := range rules {
		if !r.flag(a) {
			continue
		}
		res.Excludes = append(res.Excludes, r.excludes...)
		res.Cautions = append(res.Cautions, r.cautions...)
		res.Focuses = append(res.Focuses, r.focuses...)
	}

	ids := newOrderedSet(baseIDs...)
	if a.SquatBackRounds {
		ids.add("db_rdl")
	}
	if a.KneeValgus || a.HipAsymmetry {
		ids.add("db_split")
	}
	if a.ShoulderPainOverhead {
		ids.add("c_face")
	} else {
		ids.add("pd")
	}
	res.RecommendedIDs = ids.items
	return res
}

// Filter resolves the recommended IDs against the catalog and keeps the
// exercises whose machine is available. An empty selection keeps nothing.
func Filter(res Result, machines []models.MachineKey) []models.Exercise {
	available := make(map[models.MachineKey]struct{}, len(machines))
	for _, m := range machines {
		available[m] = struct{}{}
	}
	excluded := make(map[string]struct{}, len(res.ExcludedExerciseIDs))
	for _, id := range res.ExcludedExerciseIDs {
		excluded[id] = struct{}{}
	}

	out := make([]models.Exercise, 0, len(res.RecommendedIDs))
	for _, id := range res.RecommendedIDs {
		if _, skip := excluded[id]; skip {
			continue
		}
		ex, ok := ExerciseByID(id)
		if !ok {
			continue
		}
		if _, ok := available[ex.Machine]; ok {
			out = append(out, ex)
		}
	}
	return out
}

type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet(items ...string) *orderedSet {
	s := &orderedSet{seen: make(map[string]struct{})}
	for _, it := range items {
		s.add(it)
	}
	return s
}

func (s *orderedSet) add(item string) {
	if _, ok := s.seen[item]; ok {
		return
	}
	s.seen[item] = struct{}{}
	s.items = append(s.items, item)
}
