package model

// Value objects exchanged between callers and the engine. None of these
// expose internal table references.

// PathConstraints bounds a generation request. Zero values mean unconstrained.
type PathConstraints struct {
	MaxDurationHours float64 `json:"maxDurationHours,omitempty"`
	MaxModules       int     `json:"maxModules,omitempty"`
}

// ModulePerformance is a live performance signal for one module.
type ModulePerformance struct {
	Score         float64 `json:"score"`         // 0-1
	TimeSpent     float64 `json:"timeSpent"`     // minutes
	EstimatedTime float64 `json:"estimatedTime"` // minutes
}

// PerformanceSnapshot feeds the intervention engine.
type PerformanceSnapshot struct {
	Score      float64 `json:"score"`      // 0-1
	Engagement float64 `json:"engagement"` // 0-1
}

// CurrentProgress describes where a learner stands for next-step advice.
type CurrentProgress struct {
	ModuleID  string  `json:"moduleId"`
	LastScore float64 `json:"lastScore"` // 0-1
}

// ModuleProgressEvent is one progress update applied to a module. Score is
// optional because in_progress events carry no grade yet.
type ModuleProgressEvent struct {
	Status    ModuleStatus `json:"status"`
	Score     *float64     `json:"score,omitempty"`     // 0-1
	TimeSpent float64      `json:"timeSpent,omitempty"` // minutes
}

// ProfileUpdate carries a field-wise merge for a learning profile. Nil
// sections and nil fields are left untouched.
type ProfileUpdate struct {
	LearningStyle     *LearningStyleUpdate     `json:"learningStyle,omitempty"`
	CognitiveProfile  *CognitiveProfileUpdate  `json:"cognitiveProfile,omitempty"`
	MotivationProfile *MotivationProfileUpdate `json:"motivationProfile,omitempty"`
	KnowledgeProfile  *KnowledgeProfileUpdate  `json:"knowledgeProfile,omitempty"`
	BehavioralProfile *BehavioralProfileUpdate `json:"behavioralProfile,omitempty"`
}

type LearningStyleUpdate struct {
	Visual      *float64 `json:"visual,omitempty"`
	Auditory    *float64 `json:"auditory,omitempty"`
	Reading     *float64 `json:"reading,omitempty"`
	Kinesthetic *float64 `json:"kinesthetic,omitempty"`
}

type CognitiveProfileUpdate struct {
	AttentionSpan    *int     `json:"attentionSpan,omitempty"`
	MemoryCapacity   *float64 `json:"memoryCapacity,omitempty"`
	ProcessingSpeed  *float64 `json:"processingSpeed,omitempty"`
	LogicalReasoning *float64 `json:"logicalReasoning,omitempty"`
	Creativity       *float64 `json:"creativity,omitempty"`
}

type MotivationProfileUpdate struct {
	IntrinsicMotivation *float64         `json:"intrinsicMotivation,omitempty"`
	ExtrinsicMotivation *float64         `json:"extrinsicMotivation,omitempty"`
	GoalOrientation     *GoalOrientation `json:"goalOrientation,omitempty"`
	SelfEfficacy        *float64         `json:"selfEfficacy,omitempty"`
	Persistence         *float64         `json:"persistence,omitempty"`
}

type KnowledgeProfileUpdate struct {
	CurrentLevel  *float64  `json:"currentLevel,omitempty"`
	KnowledgeGaps *[]string `json:"knowledgeGaps,omitempty"`
	Strengths     *[]string `json:"strengths,omitempty"`
	Interests     *[]string `json:"interests,omitempty"`
	CareerGoals   *[]string `json:"careerGoals,omitempty"`
}

type BehavioralProfileUpdate struct {
	StudyHabits          *[]string `json:"studyHabits,omitempty"`
	PreferredTimes       *[]string `json:"preferredTimes,omitempty"`
	OptimalSessionLength *int      `json:"optimalSessionLength,omitempty"`
	BreakFrequency       *int      `json:"breakFrequency,omitempty"`
	SocialLearning       *bool     `json:"socialLearning,omitempty"`
	IndependentLearning  *bool     `json:"independentLearning,omitempty"`
}
