package model

import "time"

type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
	DifficultyExpert       DifficultyLevel = "expert"
)

// Rank orders difficulties for module sequencing.
func (d DifficultyLevel) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	case DifficultyExpert:
		return 3
	}
	return 1
}

type PathStatus string

const (
	PathActive    PathStatus = "active"
	PathPaused    PathStatus = "paused"
	PathCompleted PathStatus = "completed"
	PathAbandoned PathStatus = "abandoned"
)

// LearningPath is one learner-specific curriculum instance. Module order is
// fixed at generation; CurrentProgress is always recomputed from module
// completion, never set directly.
// swagger:model LearningPath
type LearningPath struct {
	ID                 string             `json:"id"`
	LearnerID          string             `json:"learnerId"`
	Title              string             `json:"title"`
	Category           string             `json:"category"`
	Difficulty         DifficultyLevel    `json:"difficulty"`
	EstimatedDuration  float64            `json:"estimatedDuration"` // hours
	CurrentProgress    float64            `json:"currentProgress"`   // 0-100
	Status             PathStatus         `json:"status"`
	CreatedAt          time.Time          `json:"createdAt"`
	LastAccessed       time.Time          `json:"lastAccessed"`
	Modules            []LearningModule   `json:"modules"`
	Prerequisites      []string           `json:"prerequisites"`
	LearningObjectives []string           `json:"learningObjectives"`
	Skills             []string           `json:"skills"`
	Tags               []string           `json:"tags"`
	AIRecommendations  []AIRecommendation `json:"aiRecommendations"`
	AdaptiveSettings   AdaptiveSettings   `json:"adaptiveSettings"`
	PerformanceMetrics PerformanceMetrics `json:"performanceMetrics"`
}

// RecomputeProgress derives CurrentProgress from completed modules.
func (p *LearningPath) RecomputeProgress() {
	if len(p.Modules) == 0 {
		p.CurrentProgress = 0
		return
	}
	completed := 0
	for i := range p.Modules {
		if p.Modules[i].Status == ModuleCompleted {
			completed++
		}
	}
	p.CurrentProgress = 100 * float64(completed) / float64(len(p.Modules))
}

// ModuleByID returns a pointer into the path's module slice, or nil.
func (p *LearningPath) ModuleByID(moduleID string) *LearningModule {
	for i := range p.Modules {
		if p.Modules[i].ID == moduleID {
			return &p.Modules[i]
		}
	}
	return nil
}
