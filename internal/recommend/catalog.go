package recommend

import "formpick/internal/models"

// Catalog is the fixed exercise list recommendations are drawn from.
var Catalog = []models.Exercise{
	{ID: "lp", Name: "레그프레스 (발 위치/깊이 조절)", Machine: models.MachineLegPress, Tags: []string{"하체", "초보"}},
	{ID: "le", Name: "레그익스텐션 (무릎 각도 주의)", Machine: models.MachineLegExtension, Tags: []string{"대퇴사두"}},
	{ID: "lc", Name: "레그컬 (햄스트링)", Machine: models.MachineLegCurl, Tags: []string{"햄스트링"}},
	{ID: "sr", Name: "시티드로우 (견갑 후인 중심)", Machine: models.MachineSeatedRow, Tags: []string{"등", "견갑"}},
	{ID: "lpull", Name: "랫풀다운 (어깨 통증 시 범위 제한)", Machine: models.MachineLatPulldown, Tags: []string{"등"}},
	{ID: "c_row", Name: "케이블 로우 (가슴 열고 당기기)", Machine: models.MachineCable, Tags: []string{"등", "자세"}},
	{ID: "pd", Name: "펙덱플라이 (어깨 불편 시 가동범위 줄이기)", Machine: models.MachinePecDeck, Tags: []string{"가슴"}},
	{ID: "db_rdl", Name: "덤벨 RDL (힙힌지 연습)", Machine: models.MachineDumbbell, Tags: []string{"둔근", "코어"}},
	{ID: "db_split", Name: "덤벨 스플릿 스쿼트 (균형)", Machine: models.MachineDumbbell, Tags: []string{"균형"}},
	{ID: "bb_box", Name: "박스 스쿼트(바벨/스미스 대체 가능)", Machine: models.MachineBarbell, Tags: []string{"스쿼트 패턴"}},
	{ID: "c_face", Name: "케이블 페이스풀 (어깨 안정화)", Machine: models.MachineCable, Tags: []string{"어깨"}},
}

// MachineKeys lists the machine categories in display order.
var MachineKeys = []models.MachineKey{
	models.MachineLegPress,
	models.MachineLegExtension,
	models.MachineLegCurl,
	models.MachinePecDeck,
	models.MachineSeatedRow,
	models.MachineLatPulldown,
	models.MachineCable,
	models.MachineDumbbell,
	models.MachineBarbell,
}

var MachineLabels = map[models.MachineKey]string{
	models.MachineLegPress:     "파워 레그프레스",
	models.MachineLegExtension: "레그익스텐션",
	models.MachineLegCurl:      "레그컬",
	models.MachinePecDeck:      "펙덱플라이",
	models.MachineSeatedRow:    "시티드로우",
	models.MachineLatPulldown:  "랫풀다운",
	models.MachineCable:        "케이블 머신",
	models.MachineDumbbell:     "덤벨",
	models.MachineBarbell:      "바벨",
}

// ValidMachine reports whether key names a known machine category.
func ValidMachine(key models.MachineKey) bool {
	_, ok := MachineLabels[key]
	return ok
}

// ExerciseByID looks an exercise up in the catalog.
func ExerciseByID(id string) (models.Exercise, bool) {
	for _, ex := range Catalog {
		if ex.ID == id {
			return ex, true
		}
	}
	return models.Exercise{}, false
}
