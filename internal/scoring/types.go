package scoring

import "github.com/HarshitR2004/GenCoder/internal/types"

// QualityReport is the advisory verdict on a starter-code bundle.
type QualityReport struct {
	Score       float64            `json:"score"`       // 0-100
	Level       string             `json:"level"`       // excellent, good, fair, poor
	Description string             `json:"description"` // canned text for Level
	Suggestions []types.Suggestion `json:"-"`           // reported beside overall_quality
}

// Quality levels.
const (
	LevelExcellent = "excellent"
	LevelGood      = "good"
	LevelFair      = "fair"
	LevelPoor      = "poor"
)

// Score adjustments.
const (
	ErrorPenalty   = 20.0
	WarningPenalty = 10.0
	InfoPenalty    = 5.0
	CoverageBonus  = 10.0

	// CoverageLanguages is how many analyzed languages earn the bonus.
	CoverageLanguages = 3
)

var levelDescriptions = map[string]string{
	LevelExcellent: "Starter code clearly identifies the problem type in every language.",
	LevelGood:      "Starter code is consistent; minor improvements would help.",
	LevelFair:      "Starter code is usable but ambiguous in places.",
	LevelPoor:      "Starter code is inconsistent or too sparse to classify reliably.",
}

// LevelFromScore returns the quality level for a 0-100 score.
func LevelFromScore(score float64) string {
	switch {
	case score >= 90:
		return LevelExcellent
	case score >= 75:
		return LevelGood
	case score >= 60:
		return LevelFair
	default:
		return LevelPoor
	}
}

// DescribeLevel returns the canned description of a level.
func DescribeLevel(level string) string {
	return levelDescriptions[level]
}

// penalty returns the score deduction for one suggestion.
func penalty(severity string) float64 {
	switch severity {
	case types.SeverityError:
		return ErrorPenalty
	case types.SeverityWarning:
		return WarningPenalty
	case types.SeverityInfo:
		return InfoPenalty
	default:
		return 0
	}
}
