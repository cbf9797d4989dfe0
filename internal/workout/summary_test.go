package workout

import (
	"math"
	"strings"
	"testing"

	"formpick/internal/models"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func sampleLog() models.WorkoutLog {
	return models.WorkoutLog{
		MemberID:   "m_001",
		MemberName: "김OO",
		DateISO:    "2024-06-01",
		Attendance: models.AttendancePresent,
		Focus:      " 힙힌지 ",
		Exercises: []models.ExerciseRow{{
			ID:      "ex_1",
			Machine: "레그프레스",
			Name:    "레그프레스",
			Sets: []models.SetRow{
				{ID: "s1", Weight: 40, Reps: 10, RPE: 7},
				{ID: "s2", Weight: 50, Reps: 8, RPE: 8, Note: "마지막 세트 힘듦"},
			},
		}},
	}
}

func TestMetrics_Scenario(t *testing.T) {
	log := sampleLog()
	assert.Equal(t, 800.0, TotalVolume(log.Exercises))
	assert.Equal(t, 50.0, MaxWeight(log.Exercises))
	assert.Equal(t, 800.0, ExerciseVolume(log.Exercises[0]))
}

func TestMetrics_Empty(t *testing.T) {
	assert.Zero(t, TotalVolume(nil))
	assert.Zero(t, MaxWeight(nil))
}

func TestTotalVolume_IsSumOfExercises(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		exercises := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) models.ExerciseRow {
			sets := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) models.SetRow {
				return models.SetRow{
					Weight: float64(rapid.IntRange(0, 300).Draw(t, "w")) / 2,
					Reps:   rapid.IntRange(0, 30).Draw(t, "r"),
				}
			}), 0, 6).Draw(t, "sets")
			return models.ExerciseRow{Sets: sets}
		}), 0, 5).Draw(t, "exercises")

		var sum, heaviest float64
		for _, ex := range exercises {
			sum += ExerciseVolume(ex)
			for _, s := range ex.Sets {
				heaviest = math.Max(heaviest, s.Weight)
			}
		}
		if TotalVolume(exercises) != sum {
			t.Fatalf("total %v != %v", TotalVolume(exercises), sum)
		}
		if MaxWeight(exercises) != heaviest {
			t.Fatalf("max %v != %v", MaxWeight(exercises), heaviest)
		}
	})
}

func TestSummary_Full(t *testing.T) {
	log := sampleLog()
	log.CoachNote = "다음엔 55kg 도전"

	want := strings.Join([]string{
		"📌 오늘의 운동일지 (2024년 6월 1일)",
		"",
		"👤 회원: 김OO",
		"✅ 출석: 출석",
		"🎯 포커스: 힙힌지",
		"",
		"🏋️‍♂️ 운동 기록",
		"\n1) [레그프레스] 레그프레스",
		"- 1세트: 40kg x 10회 (RPE 7)",
		"- 2세트: 50kg x 8회 (RPE 8) / 메모: 마지막 세트 힘듦",
		"",
		"📊 오늘 운동량 요약",
		"- 총 볼륨(kg·reps): 800",
		"- 최고 중량: 50kg",
		"",
		"📝 코치 코멘트",
		"다음엔 55kg 도전",
		"",
		closingLine,
	}, "\n")
	assert.Equal(t, want, Summary(log, SummaryOptions{}))
}

func TestSummary_NoExercises(t *testing.T) {
	log := models.WorkoutLog{DateISO: "2024-06-01", Attendance: models.AttendanceLate}
	out := Summary(log, SummaryOptions{})

	assert.Contains(t, out, "👤 회원: 미선택")
	assert.Contains(t, out, "✅ 출석: 지각")
	assert.Contains(t, out, "오늘 기록된 운동이 없습니다.")
	assert.NotContains(t, out, "🎯")
	assert.NotContains(t, out, "📝")
}

func TestSummary_ThousandsAndFractions(t *testing.T) {
	log := models.WorkoutLog{
		DateISO:    "2024-06-01",
		Attendance: models.AttendancePresent,
		Exercises: []models.ExerciseRow{{
			Machine: "바벨",
			Sets:    []models.SetRow{{Weight: 102.5, Reps: 12, RPE: 9.5}},
		}},
	}
	out := Summary(log, SummaryOptions{})
	assert.Contains(t, out, "[바벨] 운동명 미입력")
	assert.Contains(t, out, "- 1세트: 102.5kg x 12회 (RPE 9.5)")
	assert.Contains(t, out, "- 총 볼륨(kg·reps): 1,230")
	assert.Contains(t, out, "- 최고 중량: 102.5kg")
}

func TestSummary_VolumeRoundsFloatNoise(t *testing.T) {
	log := models.WorkoutLog{
		DateISO:    "2024-06-01",
		Attendance: models.AttendancePresent,
		Exercises: []models.ExerciseRow{{
			Machine: "덤벨",
			Sets:    []models.SetRow{{Weight: 1.1, Reps: 3}},
		}},
	}
	out := Summary(log, SummaryOptions{})
	assert.Contains(t, out, "- 총 볼륨(kg·reps): 3.3\n")
}

func TestSummary_SkipEmptySets(t *testing.T) {
	log := sampleLog()
	log.Exercises[0].Sets = append(log.Exercises[0].Sets, models.SetRow{ID: "s3", RPE: 7})
	log.Exercises = append(log.Exercises, models.ExerciseRow{
		ID: "ex_2", Machine: "덤벨", Sets: []models.SetRow{{ID: "s4", RPE: 7}},
	})

	full := Summary(log, SummaryOptions{})
	assert.Contains(t, full, "- 3세트: 0kg x 0회 (RPE 7)")
	assert.Contains(t, full, "2) [덤벨]")

	skipped := Summary(log, SummaryOptions{SkipEmptySets: true})
	assert.NotContains(t, skipped, "3세트")
	assert.NotContains(t, skipped, "[덤벨]")
	assert.Contains(t, skipped, "- 총 볼륨(kg·reps): 800")

	// the log itself is untouched
	assert.Len(t, log.Exercises[0].Sets, 3)
}

func TestSummary_AllEmptyWithSkip(t *testing.T) {
	log := models.WorkoutLog{
		DateISO:    "2024-06-01",
		Attendance: models.AttendancePresent,
		Exercises:  []models.ExerciseRow{{Machine: "덤벨", Sets: []models.SetRow{{RPE: 7}}}},
	}
	assert.Contains(t, Summary(log, SummaryOptions{SkipEmptySets: true}), "오늘 기록된 운동이 없습니다.")
}
