package service

import (
	"fmt"
	"time"

	"edupath_backend/internal/model"
	"edupath_backend/internal/util"
)

const (
	reviewScoreThreshold       = 0.7
	interventionScoreThreshold = 0.5
	engagementThreshold        = 0.4
)

// RecommendationService emits ranked, explained recommendations and urgent
// interventions, and hosts the deterministic scoring heuristics.
type RecommendationService struct {
	tables *EngineStore
}

func NewRecommendationService(tables *EngineStore) *RecommendationService {
	return &RecommendationService{tables: tables}
}

// RecommendNextStep advises review when the current module's last score is
// below 0.7, otherwise advises proceeding. Requires an existing profile.
func (s *RecommendationService) RecommendNextStep(learnerID string, progress model.CurrentProgress) (*model.AIRecommendation, error) {
	s.tables.mu.RLock()
	_, ok := s.tables.profiles[learnerID]
	s.tables.mu.RUnlock()
	if !ok {
		return nil, util.ErrProfileNotFound
	}

	if progress.LastScore < reviewScoreThreshold {
		return &model.AIRecommendation{
			ID:          model.GenerateUUID(),
			Type:        model.RecNextStep,
			Title:       "Review before moving on",
			Description: "Your last score suggests revisiting this module before the next one.",
			Confidence:  0.9,
			Reasoning: []string{
				fmt.Sprintf("Last module score %.2f is below %.2f", progress.LastScore, reviewScoreThreshold),
			},
			Data:      model.NextStepData(progress.ModuleID, "review"),
			Priority:  model.PriorityHigh,
			CreatedAt: time.Now(),
		}, nil
	}

	return &model.AIRecommendation{
		ID:          model.GenerateUUID(),
		Type:        model.RecNextStep,
		Title:       "Proceed to the next module",
		Description: "You are on track; continue with the next module in your path.",
		Confidence:  0.8,
		Reasoning: []string{
			fmt.Sprintf("Last module score %.2f meets the progression bar", progress.LastScore),
		},
		Data:      model.NextStepData(progress.ModuleID, "proceed"),
		Priority:  model.PriorityHigh,
		CreatedAt: time.Now(),
	}, nil
}

// SuggestInterventions fires a support intervention on low score and an
// engagement intervention on low engagement. Zero, one, or both may fire;
// the score intervention always comes first.
func (s *RecommendationService) SuggestInterventions(learnerID string, snapshot model.PerformanceSnapshot) []model.AIRecommendation {
	var out []model.AIRecommendation

	if snapshot.Score < interventionScoreThreshold {
		out = append(out, model.AIRecommendation{
			ID:          model.GenerateUUID(),
			Type:        model.RecSupport,
			Title:       "Additional support recommended",
			Description: "Performance has dropped below the support threshold; extra guidance is advised.",
			Confidence:  0.9,
			Reasoning: []string{
				fmt.Sprintf("Score %.2f is below %.2f", snapshot.Score, interventionScoreThreshold),
			},
			Data:      model.SupportData(model.SupportExtensive),
			Priority:  model.PriorityUrgent,
			CreatedAt: time.Now(),
		})
	}

	if snapshot.Engagement < engagementThreshold {
		out = append(out, model.AIRecommendation{
			ID:          model.GenerateUUID(),
			Type:        model.RecSupport,
			Title:       "Re-engagement suggested",
			Description: "Engagement has fallen; shorter sessions or a format change may help.",
			Confidence:  0.85,
			Reasoning: []string{
				fmt.Sprintf("Engagement %.2f is below %.2f", snapshot.Engagement, engagementThreshold),
			},
			Data:      model.EngagementData("vary_content_format"),
			Priority:  model.PriorityHigh,
			CreatedAt: time.Now(),
		})
	}

	return out
}

// PredictPerformance is a deterministic weighted sum over profile fields.
// moduleID is accepted for interface symmetry but not consulted by the
// default formula.
func (s *RecommendationService) PredictPerformance(learnerID, moduleID string) float64 {
	return s.scoreFromProfile(learnerID, 0.7)
}

// AssessMastery uses the same formula family with a lower base. Kept as a
// separate operation because callers reason about the two independently.
func (s *RecommendationService) AssessMastery(learnerID, moduleID string) float64 {
	return s.scoreFromProfile(learnerID, 0.6)
}

func (s *RecommendationService) scoreFromProfile(learnerID string, base float64) float64 {
	s.tables.mu.RLock()
	profile, ok := s.tables.profiles[learnerID]
	if !ok {
		profile = model.DefaultLearningProfile(learnerID)
	}
	reasoning := profile.CognitiveProfile.LogicalReasoning
	motivation := profile.MotivationProfile.IntrinsicMotivation
	level := profile.KnowledgeProfile.CurrentLevel
	s.tables.mu.RUnlock()

	levelBoost := level / 100
	if levelBoost > 0.2 {
		levelBoost = 0.2
	}

	score := base + 0.2*reasoning + 0.1*motivation + levelBoost
	if score > 1 {
		score = 1
	}
	return score
}

// DetectLearningGaps reports gaps in a fixed order: fundamentals, memory,
// confidence. contentID is accepted for interface symmetry.
func (s *RecommendationService) DetectLearningGaps(learnerID, contentID string) []string {
	s.tables.mu.RLock()
	profile, ok := s.tables.profiles[learnerID]
	if !ok {
		profile = model.DefaultLearningProfile(learnerID)
	}
	level := profile.KnowledgeProfile.CurrentLevel
	memory := profile.CognitiveProfile.MemoryCapacity
	efficacy := profile.MotivationProfile.SelfEfficacy
	s.tables.mu.RUnlock()

	gaps := []string{}
	if level < 50 {
		gaps = append(gaps, "Fundamental concepts")
	}
	if memory < 0.6 {
		gaps = append(gaps, "Memory retention strategies")
	}
	if efficacy < 0.7 {
		gaps = append(gaps, "Confidence building")
	}
	return gaps
}
