package model

import "time"

type MediumType string

const (
	MediumVideo       MediumType = "video"
	MediumReading     MediumType = "reading"
	MediumInteractive MediumType = "interactive"
	MediumQuiz        MediumType = "quiz"
	MediumProject     MediumType = "project"
	MediumDiscussion  MediumType = "discussion"
)

// StyleFor maps a medium to the learning style it serves best.
// Mediums without a natural modality report mixed and score neutrally.
func (m MediumType) StyleFor() LearningStyleKind {
	switch m {
	case MediumVideo:
		return StyleVisual
	case MediumReading:
		return StyleReading
	case MediumInteractive:
		return StyleKinesthetic
	case MediumDiscussion:
		return StyleAuditory
	}
	return StyleMixed
}

type ModuleStatus string

const (
	ModuleNotStarted ModuleStatus = "not_started"
	ModuleInProgress ModuleStatus = "in_progress"
	ModuleCompleted  ModuleStatus = "completed"
	ModuleSkipped    ModuleStatus = "skipped"
)

// Terminal reports whether the status admits no further transitions.
func (s ModuleStatus) Terminal() bool {
	return s == ModuleCompleted || s == ModuleSkipped
}

// LearningModule is one content-backed unit of study inside a path.
// Order is assigned once at generation and never changes afterwards.
type LearningModule struct {
	ID                 string            `json:"id"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Type               MediumType        `json:"type"`
	Duration           int               `json:"duration"` // minutes
	Difficulty         DifficultyLevel   `json:"difficulty"`
	Order              int               `json:"order"`
	Status             ModuleStatus      `json:"status"`
	ContentID          string            `json:"contentId"`
	Prerequisites      []string          `json:"prerequisites"`
	LearningObjectives []string          `json:"learningObjectives"`
	Assessment         ModuleAssessment  `json:"assessment"`
	AdaptiveContent    []AdaptiveContent `json:"adaptiveContent"`
	CompletionCriteria string            `json:"completionCriteria"`
	EstimatedTime      int               `json:"estimatedTime"` // minutes
	ActualTime         int               `json:"actualTime,omitempty"`
	Score              *float64          `json:"score,omitempty"`
	StartedAt          *time.Time        `json:"startedAt,omitempty"`
	CompletedAt        *time.Time        `json:"completedAt,omitempty"`
	Attempts           int               `json:"attempts"`
	MaxAttempts        int               `json:"maxAttempts"`
}
