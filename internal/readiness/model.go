package readiness

// Level is the three-tier readiness classification.
type Level string

const (
	LevelBeginner Level = "Beginner"
	LevelBuilding Level = "Building"
	LevelReady    Level = "Ready"
)

// Progress holds the seven category scores, each expected in [0,100].
type Progress struct {
	Academics        float64 `json:"academics"`
	CareerSkills     float64 `json:"career_skills"`
	LifeSkills       float64 `json:"life_skills"`
	TechnicalSkills  float64 `json:"technical_skills"`
	Communication    float64 `json:"communication"`
	Teamwork         float64 `json:"teamwork"`
	CriticalThinking float64 `json:"critical_thinking"`
}

// Score returns the score recorded for c. The second result is false for an
// unknown category.
func (p Progress) Score(c Category) (float64, bool) {
	switch c {
	case Academics:
		return p.Academics, true
	case CareerSkills:
		return p.CareerSkills, true
	case LifeSkills:
		return p.LifeSkills, true
	case TechnicalSkills:
		return p.TechnicalSkills, true
	case Communication:
		return p.Communication, true
	case Teamwork:
		return p.Teamwork, true
	case CriticalThinking:
		return p.CriticalThinking, true
	default:
		return 0, false
	}
}

// CategoryBreakdown is the weighted contribution of a single category.
type CategoryBreakdown struct {
	Score         float64 `json:"score"`
	Weight        float64 `json:"weight"`
	WeightedScore float64 `json:"weighted_score"`
}

// Result is the scored outcome for one Progress record.
type Result struct {
	Score          int                            `json:"score"`
	Level          Level                          `json:"level"`
	Recommendation string                         `json:"recommendation"`
	Breakdown      map[Category]CategoryBreakdown `json:"breakdown"`
}

type categoryScore struct {
	name  Category
	score float64
	label string
}
