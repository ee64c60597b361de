// Package readiness scores learner progress across seven weighted categories
// and turns the result into a readiness level and a recommendation.
package readiness

import (
	"math"
	"sort"
)

const (
	readyThreshold    = 75
	buildingThreshold = 50

	strongThreshold = 75
	weakThreshold   = 60
)

// Compute scores p. It is pure and safe for concurrent use. Scores are
// expected to be in [0,100]; range checks belong to the caller.
func Compute(p Progress) Result {
	breakdown := make(map[Category]CategoryBreakdown, len(categoryTable))
	scores := make([]categoryScore, 0, len(categoryTable))

	// Accumulate in weight units so the sum of integer scores stays exact.
	var total float64
	for _, def := range categoryTable {
		score, _ := p.Score(def.name)
		weighted := score * float64(def.weight)
		total += weighted
		breakdown[def.name] = CategoryBreakdown{
			Score:         score,
			Weight:        float64(def.weight) / weightScale,
			WeightedScore: weighted / weightScale,
		}
		scores = append(scores, categoryScore{name: def.name, score: score, label: def.label})
	}

	overall := int(math.Round(total / weightScale))
	level := LevelFor(overall)

	return Result{
		Score:          overall,
		Level:          level,
		Recommendation: recommend(level, scores),
		Breakdown:      breakdown,
	}
}

// LevelFor maps an overall score to its readiness level.
func LevelFor(score int) Level {
	switch {
	case score >= readyThreshold:
		return LevelReady
	case score >= buildingThreshold:
		return LevelBuilding
	default:
		return LevelBeginner
	}
}

type ranking struct {
	strongest  categoryScore
	weakest    categoryScore
	weakestTwo [2]categoryScore
	weakCount  int
	allStrong  bool
}

// rankCategories expects scores in the fixed category order. Ties resolve to
// the earlier category.
func rankCategories(scores []categoryScore) ranking {
	r := ranking{
		strongest: scores[0],
		weakest:   scores[0],
		allStrong: true,
	}
	for _, cs := range scores {
		if cs.score > r.strongest.score {
			r.strongest = cs
		}
		if cs.score < r.weakest.score {
			r.weakest = cs
		}
		if cs.score < weakThreshold {
			r.weakCount++
		}
		if cs.score < strongThreshold {
			r.allStrong = false
		}
	}

	sorted := append([]categoryScore(nil), scores...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].score < sorted[j].score
	})
	r.weakestTwo = [2]categoryScore{sorted[0], sorted[1]}
	return r
}
