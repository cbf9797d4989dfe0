package workout

import "formpick/internal/models"

// ExerciseVolume is the sum of weight x reps over the exercise's sets.
func ExerciseVolume(ex models.ExerciseRow) float64 {
	var vol float64
	for _, s := range ex.Sets {
		vol += s.Weight * float64(s.Reps)
	}
	return vol
}

func TotalVolume(exercises []models.ExerciseRow) float64 {
	var vol float64
	for _, ex := range exercises {
		vol += ExerciseVolume(ex)
	}
	return vol
}

// MaxWeight is the heaviest single set, zero for an empty log.
func MaxWeight(exercises []models.ExerciseRow) float64 {
	var heaviest float64
	for _, ex := range exercises {
		for _, s := range ex.Sets {
			if s.Weight > heaviest {
				heaviest = s.Weight
			}
		}
	}
	return heaviest
}
