package model

import "time"

type LearningStyleKind string

const (
	StyleVisual      LearningStyleKind = "visual"
	StyleAuditory    LearningStyleKind = "auditory"
	StyleReading     LearningStyleKind = "reading"
	StyleKinesthetic LearningStyleKind = "kinesthetic"
	StyleMixed       LearningStyleKind = "mixed"
)

type GoalOrientation string

const (
	OrientationMastery     GoalOrientation = "mastery"
	OrientationPerformance GoalOrientation = "performance"
	OrientationAvoidance   GoalOrientation = "avoidance"
)

// LearningStyle holds the per-modality weights plus the derived dominant
// style. Weights stay clamped to [0,1].
type LearningStyle struct {
	Visual      float64           `json:"visual"`
	Auditory    float64           `json:"auditory"`
	Reading     float64           `json:"reading"`
	Kinesthetic float64           `json:"kinesthetic"`
	Dominant    LearningStyleKind `json:"dominant"`
}

// ResolveDominant picks the highest-weighted style. Ties resolve by the
// fixed priority visual > auditory > reading > kinesthetic > mixed.
func (s LearningStyle) ResolveDominant() LearningStyleKind {
	dominant := StyleVisual
	best := s.Visual
	if s.Auditory > best {
		dominant, best = StyleAuditory, s.Auditory
	}
	if s.Reading > best {
		dominant, best = StyleReading, s.Reading
	}
	if s.Kinesthetic > best {
		dominant, best = StyleKinesthetic, s.Kinesthetic
	}
	return dominant
}

// Weight returns the weight for one modality; unknown kinds get a neutral 0.5.
func (s LearningStyle) Weight(kind LearningStyleKind) float64 {
	switch kind {
	case StyleVisual:
		return s.Visual
	case StyleAuditory:
		return s.Auditory
	case StyleReading:
		return s.Reading
	case StyleKinesthetic:
		return s.Kinesthetic
	}
	return 0.5
}

type CognitiveProfile struct {
	AttentionSpan    int     `json:"attentionSpan"` // minutes
	MemoryCapacity   float64 `json:"memoryCapacity"`
	ProcessingSpeed  float64 `json:"processingSpeed"`
	LogicalReasoning float64 `json:"logicalReasoning"`
	Creativity       float64 `json:"creativity"`
}

type MotivationProfile struct {
	IntrinsicMotivation float64         `json:"intrinsicMotivation"`
	ExtrinsicMotivation float64         `json:"extrinsicMotivation"`
	GoalOrientation     GoalOrientation `json:"goalOrientation"`
	SelfEfficacy        float64         `json:"selfEfficacy"`
	Persistence         float64         `json:"persistence"`
}

type KnowledgeProfile struct {
	CurrentLevel  float64  `json:"currentLevel"` // 0-100
	KnowledgeGaps []string `json:"knowledgeGaps"`
	Strengths     []string `json:"strengths"`
	Interests     []string `json:"interests"`
	CareerGoals   []string `json:"careerGoals"`
}

type BehavioralProfile struct {
	StudyHabits          []string `json:"studyHabits"`
	PreferredTimes       []string `json:"preferredTimes"`
	OptimalSessionLength int      `json:"optimalSessionLength"` // minutes
	BreakFrequency       int      `json:"breakFrequency"`       // minutes
	SocialLearning       bool     `json:"socialLearning"`
	IndependentLearning  bool     `json:"independentLearning"`
}

// LearningProfile is the durable per-learner record driving all
// personalization decisions. One per learner id; created lazily with
// defaults, mutated only through merge updates.
// swagger:model LearningProfile
type LearningProfile struct {
	LearnerID         string            `json:"learnerId"`
	LearningStyle     LearningStyle     `json:"learningStyle"`
	CognitiveProfile  CognitiveProfile  `json:"cognitiveProfile"`
	MotivationProfile MotivationProfile `json:"motivationProfile"`
	KnowledgeProfile  KnowledgeProfile  `json:"knowledgeProfile"`
	BehavioralProfile BehavioralProfile `json:"behavioralProfile"`
	LastUpdated       time.Time         `json:"lastUpdated"`
}

// DefaultLearningProfile returns the fixed defaults assigned on first
// reference to an unknown learner.
func DefaultLearningProfile(learnerID string) *LearningProfile {
	return &LearningProfile{
		LearnerID: learnerID,
		LearningStyle: LearningStyle{
			Visual:      0.25,
			Auditory:    0.25,
			Reading:     0.25,
			Kinesthetic: 0.25,
			Dominant:    StyleVisual,
		},
		CognitiveProfile: CognitiveProfile{
			AttentionSpan:    25,
			MemoryCapacity:   0.6,
			ProcessingSpeed:  0.6,
			LogicalReasoning: 0.6,
			Creativity:       0.5,
		},
		MotivationProfile: MotivationProfile{
			IntrinsicMotivation: 0.6,
			ExtrinsicMotivation: 0.5,
			GoalOrientation:     OrientationMastery,
			SelfEfficacy:        0.6,
			Persistence:         0.6,
		},
		KnowledgeProfile: KnowledgeProfile{
			CurrentLevel:  30,
			KnowledgeGaps: []string{},
			Strengths:     []string{},
			Interests:     []string{},
			CareerGoals:   []string{},
		},
		BehavioralProfile: BehavioralProfile{
			StudyHabits:          []string{},
			PreferredTimes:       []string{},
			OptimalSessionLength: 30,
			BreakFrequency:       10,
			SocialLearning:       false,
			IndependentLearning:  true,
		},
		LastUpdated: time.Now(),
	}
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func ClampLevel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Normalize re-clamps every bounded field and re-derives the dominant style.
func (p *LearningProfile) Normalize() {
	p.LearningStyle.Visual = Clamp01(p.LearningStyle.Visual)
	p.LearningStyle.Auditory = Clamp01(p.LearningStyle.Auditory)
	p.LearningStyle.Reading = Clamp01(p.LearningStyle.Reading)
	p.LearningStyle.Kinesthetic = Clamp01(p.LearningStyle.Kinesthetic)
	p.LearningStyle.Dominant = p.LearningStyle.ResolveDominant()

	p.CognitiveProfile.MemoryCapacity = Clamp01(p.CognitiveProfile.MemoryCapacity)
	p.CognitiveProfile.ProcessingSpeed = Clamp01(p.CognitiveProfile.ProcessingSpeed)
	p.CognitiveProfile.LogicalReasoning = Clamp01(p.CognitiveProfile.LogicalReasoning)
	p.CognitiveProfile.Creativity = Clamp01(p.CognitiveProfile.Creativity)

	p.MotivationProfile.IntrinsicMotivation = Clamp01(p.MotivationProfile.IntrinsicMotivation)
	p.MotivationProfile.ExtrinsicMotivation = Clamp01(p.MotivationProfile.ExtrinsicMotivation)
	p.MotivationProfile.SelfEfficacy = Clamp01(p.MotivationProfile.SelfEfficacy)
	p.MotivationProfile.Persistence = Clamp01(p.MotivationProfile.Persistence)

	p.KnowledgeProfile.CurrentLevel = ClampLevel(p.KnowledgeProfile.CurrentLevel)
}
