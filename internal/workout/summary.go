package workout

import (
	"fmt"
	"formpick/internal/calendar"
	"formpick/internal/models"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

type SummaryOptions struct {
	// SkipEmptySets drops sets with zero weight and zero reps, then
	// exercises left without sets.
	SkipEmptySets bool `json:"skipEmptySets"`
}

const closingLine = "👍 수고하셨어요! 다음 수업 때 컨디션/통증 체크 후 진행할게요."

// Summary renders the share text sent to the member after a session.
func Summary(log models.WorkoutLog, opts SummaryOptions) string {
	exercises := log.Exercises
	if opts.SkipEmptySets {
		exercises = withoutEmptySets(exercises)
	}

	memberName := log.MemberName
	if memberName == "" {
		memberName = "미선택"
	}

	lines := []string{
		fmt.Sprintf("📌 오늘의 운동일지 (%s)", calendar.FormatKorean(log.DateISO)),
		"",
		"👤 회원: " + memberName,
		"✅ 출석: " + log.Attendance.Label(),
	}
	if focus := strings.TrimSpace(log.Focus); focus != "" {
		lines = append(lines, "🎯 포커스: "+focus)
	}
	lines = append(lines, "")

	if len(exercises) == 0 {
		lines = append(lines, "오늘 기록된 운동이 없습니다.")
	} else {
		lines = append(lines, "🏋️‍♂️ 운동 기록")
		for i, ex := range exercises {
			name := ex.Name
			if name == "" {
				name = "운동명 미입력"
			}
			lines = append(lines, fmt.Sprintf("\n%d) [%s] %s", i+1, ex.Machine, name))
			for si, s := range ex.Sets {
				line := fmt.Sprintf("- %d세트: %skg x %d회 (RPE %s)", si+1, formatNumber(s.Weight), s.Reps, formatNumber(s.RPE))
				if note := strings.TrimSpace(s.Note); note != "" {
					line += " / 메모: " + note
				}
				lines = append(lines, line)
			}
		}
		lines = append(lines,
			"",
			"📊 오늘 운동량 요약",
			"- 총 볼륨(kg·reps): "+humanize.CommafWithDigits(TotalVolume(exercises), 3),
			"- 최고 중량: "+formatNumber(MaxWeight(exercises))+"kg",
		)
	}

	if note := strings.TrimSpace(log.CoachNote); note != "" {
		lines = append(lines, "", "📝 코치 코멘트", note)
	}
	lines = append(lines, "", closingLine)
	return strings.Join(lines, "\n")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func withoutEmptySets(exercises []models.ExerciseRow) []models.ExerciseRow {
	out := make([]models.ExerciseRow, 0, len(exercises))
	for _, ex := range exercises {
		sets := make([]models.SetRow, 0, len(ex.Sets))
		for _, s := range ex.Sets {
			if s.Weight == 0 && s.Reps == 0 {
				continue
			}
			sets = append(sets, s)
		}
		if len(sets) == 0 {
			continue
		}
		ex.Sets = sets
		out = append(out, ex)
	}
	return out
}
