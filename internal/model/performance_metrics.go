package model

type MasteryLevel string

const (
	MasteryNovice       MasteryLevel = "novice"
	MasteryBeginner     MasteryLevel = "beginner"
	MasteryIntermediate MasteryLevel = "intermediate"
	MasteryAdvanced     MasteryLevel = "advanced"
	MasteryExpert       MasteryLevel = "expert"
)

// MasteryFromScore buckets an overall score (0-100) into the five-tier
// mastery scale.
func MasteryFromScore(score float64) MasteryLevel {
	switch {
	case score >= 90:
		return MasteryExpert
	case score >= 80:
		return MasteryAdvanced
	case score >= 70:
		return MasteryIntermediate
	case score >= 50:
		return MasteryBeginner
	}
	return MasteryNovice
}

// PerformanceMetrics aggregates a path's observed performance. TimeSpent
// and EngagementScore only ever grow; DifficultyProgression is append-only.
type PerformanceMetrics struct {
	OverallScore          float64      `json:"overallScore"` // 0-100
	TimeSpent             float64      `json:"timeSpent"`    // minutes
	EngagementScore       float64      `json:"engagementScore"`
	CompletionRate        float64      `json:"completionRate"`
	RetentionRate         float64      `json:"retentionRate"`
	DifficultyProgression []float64    `json:"difficultyProgression"`
	LearningVelocity      float64      `json:"learningVelocity"` // modules/week
	MasteryLevel          MasteryLevel `json:"masteryLevel"`
	Strengths             []string     `json:"strengths"`
	Weaknesses            []string     `json:"weaknesses"`
	ImprovementAreas      []string     `json:"improvementAreas"`
	PredictedCompletion   float64      `json:"predictedCompletion"` // days
	SuccessProbability    float64      `json:"successProbability"`
}

// NewPerformanceMetrics returns the all-default metrics a fresh path starts with.
func NewPerformanceMetrics() PerformanceMetrics {
	return PerformanceMetrics{
		DifficultyProgression: []float64{},
		MasteryLevel:          MasteryNovice,
		Strengths:             []string{},
		Weaknesses:            []string{},
		ImprovementAreas:      []string{},
		SuccessProbability:    0.7,
	}
}
