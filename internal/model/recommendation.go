package model

import "time"

type RecommendationCategory string

const (
	RecContent    RecommendationCategory = "content"
	RecPath       RecommendationCategory = "path"
	RecDifficulty RecommendationCategory = "difficulty"
	RecPacing     RecommendationCategory = "pacing"
	RecSupport    RecommendationCategory = "support"
	RecNextStep   RecommendationCategory = "next_step"
)

type RecommendationPriority string

const (
	PriorityLow    RecommendationPriority = "low"
	PriorityMedium RecommendationPriority = "medium"
	PriorityHigh   RecommendationPriority = "high"
	PriorityUrgent RecommendationPriority = "urgent"
)

type RecommendationKind string

const (
	DataPacing            RecommendationKind = "pacing"
	DataContentPreference RecommendationKind = "content_preference"
	DataNextStep          RecommendationKind = "next_step"
	DataSupport           RecommendationKind = "support"
	DataEngagement        RecommendationKind = "engagement"
)

// RecommendationData is the typed payload of a recommendation. Kind names
// the variant; only the fields belonging to that variant are populated.
type RecommendationData struct {
	Kind             RecommendationKind `json:"kind"`
	SuggestedPacing  PacingMode         `json:"suggestedPacing,omitempty"`
	PreferredFormat  LearningStyleKind  `json:"preferredFormat,omitempty"`
	ModuleID         string             `json:"moduleId,omitempty"`
	Action           string             `json:"action,omitempty"`
	SuggestedSupport SupportLevel       `json:"suggestedSupport,omitempty"`
}

func PacingData(pacing PacingMode) RecommendationData {
	return RecommendationData{Kind: DataPacing, SuggestedPacing: pacing}
}

func ContentPreferenceData(format LearningStyleKind) RecommendationData {
	return RecommendationData{Kind: DataContentPreference, PreferredFormat: format}
}

func NextStepData(moduleID, action string) RecommendationData {
	return RecommendationData{Kind: DataNextStep, ModuleID: moduleID, Action: action}
}

func SupportData(level SupportLevel) RecommendationData {
	return RecommendationData{Kind: DataSupport, SuggestedSupport: level}
}

func EngagementData(action string) RecommendationData {
	return RecommendationData{Kind: DataEngagement, Action: action}
}

// AIRecommendation is an explainable, confidence-scored suggestion surfaced
// to the learner or operator. Reasoning strings are ordered.
// swagger:model AIRecommendation
type AIRecommendation struct {
	ID            string                 `json:"id"`
	Type          RecommendationCategory `json:"type"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Confidence    float64                `json:"confidence"`
	Reasoning     []string               `json:"reasoning"`
	Data          RecommendationData     `json:"data"`
	Priority      RecommendationPriority `json:"priority"`
	CreatedAt     time.Time              `json:"createdAt"`
	IsApplied     bool                   `json:"isApplied"`
	AppliedAt     *time.Time             `json:"appliedAt,omitempty"`
	Effectiveness *float64               `json:"effectiveness,omitempty"`
}
