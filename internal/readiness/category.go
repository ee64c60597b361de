package readiness

import (
	"errors"
	"fmt"
)

// Category is one of the seven learner-progress dimensions.
type Category string

const (
	Academics        Category = "academics"
	CareerSkills     Category = "career_skills"
	LifeSkills       Category = "life_skills"
	TechnicalSkills  Category = "technical_skills"
	Communication    Category = "communication"
	Teamwork         Category = "teamwork"
	CriticalThinking Category = "critical_thinking"
)

// ErrWeightTable reports a malformed category weight table.
var ErrWeightTable = errors.New("invalid category weight table")

// Weights are kept in hundredths so the sum check is exact.
const weightScale = 100

type categoryDef struct {
	name   Category
	weight int
	label  string
}

// categoryTable order is significant: it breaks ties for strongest/weakest.
var categoryTable = []categoryDef{
	{name: Academics, weight: 25, label: "academics"},
	{name: CareerSkills, weight: 20, label: "career skills"},
	{name: LifeSkills, weight: 15, label: "life skills"},
	{name: TechnicalSkills, weight: 15, label: "technical skills"},
	{name: Communication, weight: 10, label: "communication"},
	{name: Teamwork, weight: 10, label: "teamwork"},
	{name: CriticalThinking, weight: 5, label: "critical thinking"},
}

// Categories returns the categories in their fixed order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryTable))
	for _, def := range categoryTable {
		out = append(out, def.name)
	}
	return out
}

// Weight returns the category weight in (0,1], or 0 for an unknown category.
func (c Category) Weight() float64 {
	def, ok := lookup(c)
	if !ok {
		return 0
	}
	return float64(def.weight) / weightScale
}

// Label returns the human-readable name used in recommendations.
func (c Category) Label() string {
	def, ok := lookup(c)
	if !ok {
		return string(c)
	}
	return def.label
}

// Valid reports whether c is one of the seven known categories.
func (c Category) Valid() bool {
	_, ok := lookup(c)
	return ok
}

func lookup(c Category) (categoryDef, bool) {
	for _, def := range categoryTable {
		if def.name == c {
			return def, true
		}
	}
	return categoryDef{}, false
}

// ValidateWeights checks the weight table invariants: seven distinct
// categories, every weight in (0,1], and weights summing to exactly 1.
func ValidateWeights() error {
	return validateTable(categoryTable)
}

// MustValidateWeights panics when the weight table is malformed. Call it once
// at process startup.
func MustValidateWeights() {
	if err := ValidateWeights(); err != nil {
		panic(err)
	}
}

func validateTable(table []categoryDef) error {
	if len(table) != 7 {
		return fmt.Errorf("%w: expected 7 categories, got %d", ErrWeightTable, len(table))
	}
	seen := make(map[Category]bool, len(table))
	total := 0
	for _, def := range table {
		if def.name == "" {
			return fmt.Errorf("%w: empty category name", ErrWeightTable)
		}
		if seen[def.name] {
			return fmt.Errorf("%w: duplicate category %q", ErrWeightTable, def.name)
		}
		seen[def.name] = true
		if def.weight <= 0 || def.weight > weightScale {
			return fmt.Errorf("%w: weight for %q out of range (0,1]", ErrWeightTable, def.name)
		}
		if def.label == "" {
			return fmt.Errorf("%w: missing label for %q", ErrWeightTable, def.name)
		}
		total += def.weight
	}
	if total != weightScale {
		return fmt.Errorf("%w: weights sum to %.2f, must sum to 1.0", ErrWeightTable, float64(total)/weightScale)
	}
	return nil
}
