package model

type SignalType string

const (
	SignalPerformance   SignalType = "performance"
	SignalTime          SignalType = "time"
	SignalEngagement    SignalType = "engagement"
	SignalErrorPattern  SignalType = "error_pattern"
	SignalLearningStyle SignalType = "learning_style"
)

type ComparisonOperator string

const (
	OpLessThan    ComparisonOperator = "less_than"
	OpGreaterThan ComparisonOperator = "greater_than"
	OpEquals      ComparisonOperator = "equals"
)

type FragmentType string

const (
	FragmentExplanation FragmentType = "explanation"
	FragmentExample     FragmentType = "example"
	FragmentHint        FragmentType = "hint"
	FragmentChallenge   FragmentType = "challenge"
	FragmentRemediation FragmentType = "remediation"
)

type DifficultyShift string

const (
	ShiftEasier DifficultyShift = "easier"
	ShiftSame   DifficultyShift = "same"
	ShiftHarder DifficultyShift = "harder"
)

// AdaptiveCondition is the trigger that caused a fragment to be emitted.
type AdaptiveCondition struct {
	Signal    SignalType         `json:"signal"`
	Operator  ComparisonOperator `json:"operator"`
	Threshold float64            `json:"threshold"`
}

// AdaptiveContent is a conditionally-triggered content fragment attached to
// a module by the adaptive engine.
type AdaptiveContent struct {
	ID         string            `json:"id"`
	Condition  AdaptiveCondition `json:"condition"`
	Content    string            `json:"content"`
	Type       FragmentType      `json:"type"`
	Difficulty DifficultyShift   `json:"difficulty"`
	Triggers   []string          `json:"triggers"`
}

type DifficultyAdjustment string

const (
	AdjustAutomatic DifficultyAdjustment = "automatic"
	AdjustManual    DifficultyAdjustment = "manual"
	AdjustHybrid    DifficultyAdjustment = "hybrid"
)

type PacingMode string

const (
	PacingAccelerated PacingMode = "accelerated"
	PacingNormal      PacingMode = "normal"
	PacingRelaxed     PacingMode = "relaxed"
)

type SupportLevel string

const (
	SupportMinimal   SupportLevel = "minimal"
	SupportModerate  SupportLevel = "moderate"
	SupportExtensive SupportLevel = "extensive"
)

type ChallengeLevel string

const (
	ChallengeModerate    ChallengeLevel = "moderate"
	ChallengeChallenging ChallengeLevel = "challenging"
)

type FeedbackFrequency string

const (
	FeedbackImmediate FeedbackFrequency = "immediate"
	FeedbackPeriodic  FeedbackFrequency = "periodic"
)

// AdaptiveSettings is the per-path personalization knob set derived from
// the learner profile at generation time.
type AdaptiveSettings struct {
	DifficultyAdjustment  DifficultyAdjustment `json:"difficultyAdjustment"`
	PacingAdjustment      PacingMode           `json:"pacingAdjustment"`
	ContentPreference     LearningStyleKind    `json:"contentPreference"`
	SupportLevel          SupportLevel         `json:"supportLevel"`
	ChallengeLevel        ChallengeLevel       `json:"challengeLevel"`
	FeedbackFrequency     FeedbackFrequency    `json:"feedbackFrequency"`
	InterventionThreshold float64              `json:"interventionThreshold"`
	MasteryThreshold      float64              `json:"masteryThreshold"`
}
