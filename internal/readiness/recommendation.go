package readiness

import (
	"fmt"
	"strconv"
)

const readyAcrossAllMessage = "Excellent work! You are ready across all areas. Consider taking on advanced challenges or mentoring others."

const learningJourneyMessage = "You're on your learning journey! Consistent engagement across all areas will help you build momentum."

// Recommend renders the recommendation for the given level and progress.
func Recommend(level Level, p Progress) string {
	scores := make([]categoryScore, 0, len(categoryTable))
	for _, def := range categoryTable {
		score, _ := p.Score(def.name)
		scores = append(scores, categoryScore{name: def.name, score: score, label: def.label})
	}
	return recommend(level, scores)
}

func recommend(level Level, scores []categoryScore) string {
	r := rankCategories(scores)

	switch level {
	case LevelReady:
		if r.allStrong {
			return readyAcrossAllMessage
		}
		return fmt.Sprintf("You are ready overall! To reach excellence, consider strengthening your %s (currently at %s).",
			r.weakest.label, formatScore(r.weakest.score))

	case LevelBuilding:
		if r.strongest.score < strongThreshold {
			return fmt.Sprintf("You are building across several areas. Keep engaging with %s modules to strengthen your foundation.",
				r.weakest.label)
		}
		if r.weakCount >= 2 {
			return fmt.Sprintf("You are strong in %s. Focus on %s and %s to build a more balanced foundation.",
				r.strongest.label, r.weakestTwo[0].label, r.weakestTwo[1].label)
		}
		return fmt.Sprintf("You are strong in %s. Your next focus could be %s to build a more balanced foundation.",
			r.strongest.label, r.weakest.label)

	default:
		if r.weakCount >= 2 {
			return fmt.Sprintf("You're just getting started! Focus on building foundational skills in %s and %s to accelerate your progress.",
				r.weakestTwo[0].label, r.weakestTwo[1].label)
		}
		return learningJourneyMessage
	}
}

// formatScore prints whole numbers without a decimal point.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
