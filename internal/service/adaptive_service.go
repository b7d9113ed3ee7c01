package service

import (
	"context"
	"fmt"

	"edupath_backend/internal/model"
	"edupath_backend/internal/util"
)

const (
	remediationScoreThreshold = 0.6
	overtimeFactor            = 1.5
	attentionChunkThreshold   = 30 // minutes
)

// AdaptiveService reacts to live performance signals: content fragments,
// pacing recomputation, and payload personalization.
type AdaptiveService struct {
	tables   *EngineStore
	profiles *ProfileService
}

func NewAdaptiveService(tables *EngineStore, profiles *ProfileService) *AdaptiveService {
	return &AdaptiveService{tables: tables, profiles: profiles}
}

// AdaptContent evaluates the two independent triggers and returns the
// emitted fragments. When the module can be located in one of the
// learner's paths the fragments are also appended to it.
func (s *AdaptiveService) AdaptContent(ctx context.Context, learnerID, moduleID string, perf model.ModulePerformance) []model.AdaptiveContent {
	fragments := []model.AdaptiveContent{}

	if perf.Score < remediationScoreThreshold {
		fragments = append(fragments, model.AdaptiveContent{
			ID: model.GenerateUUID(),
			Condition: model.AdaptiveCondition{
				Signal:    model.SignalPerformance,
				Operator:  model.OpLessThan,
				Threshold: remediationScoreThreshold,
			},
			Content:    "Let's revisit the core ideas with a simpler walkthrough before trying again.",
			Type:       model.FragmentRemediation,
			Difficulty: model.ShiftEasier,
			Triggers:   []string{"low_score"},
		})
	}

	if perf.TimeSpent > overtimeFactor*perf.EstimatedTime {
		fragments = append(fragments, model.AdaptiveContent{
			ID: model.GenerateUUID(),
			Condition: model.AdaptiveCondition{
				Signal:    model.SignalTime,
				Operator:  model.OpGreaterThan,
				Threshold: overtimeFactor,
			},
			Content:    "This section is taking a while. A hint: focus on the worked example first.",
			Type:       model.FragmentHint,
			Difficulty: model.ShiftSame,
			Triggers:   []string{"over_time"},
		})
	}

	if len(fragments) == 0 {
		return fragments
	}

	s.tables.mu.Lock()
	defer s.tables.mu.Unlock()
	for _, path := range s.tables.paths {
		if path.LearnerID != learnerID {
			continue
		}
		if module := path.ModuleByID(moduleID); module != nil {
			module.AdaptiveContent = append(module.AdaptiveContent, fragments...)
			s.tables.persist(ctx)
			break
		}
	}

	return fragments
}

// OptimizePacing recomputes pacing from the path's current metrics and
// returns a new settings value. The caller decides whether to apply it;
// nothing is mutated here.
func (s *AdaptiveService) OptimizePacing(learnerID, pathID string) (model.AdaptiveSettings, error) {
	s.tables.mu.RLock()
	defer s.tables.mu.RUnlock()

	path, ok := s.tables.paths[pathID]
	if !ok || path.LearnerID != learnerID {
		return model.AdaptiveSettings{}, util.ErrPathNotFound
	}

	settings := path.AdaptiveSettings
	engagement := path.PerformanceMetrics.EngagementScore
	completion := path.PerformanceMetrics.CompletionRate

	switch {
	case engagement > 0.8 && completion > 0.9:
		settings.PacingAdjustment = model.PacingAccelerated
	case engagement < 0.5 || completion < 0.7:
		settings.PacingAdjustment = model.PacingRelaxed
	default:
		settings.PacingAdjustment = model.PacingNormal
	}

	return settings, nil
}

// GeneratePersonalizedContent enriches a content payload with rendering
// flags derived from the profile. Purely additive: every key already in
// baseContent survives unchanged.
func (s *AdaptiveService) GeneratePersonalizedContent(ctx context.Context, learnerID string, baseContent map[string]interface{}) map[string]interface{} {
	s.tables.mu.Lock()
	profile := s.profiles.getOrCreateLocked(ctx, learnerID)
	dominant := profile.LearningStyle.Dominant
	attention := profile.CognitiveProfile.AttentionSpan
	orientation := profile.MotivationProfile.GoalOrientation
	s.tables.mu.Unlock()

	enriched := make(map[string]interface{}, len(baseContent)+6)
	for k, v := range baseContent {
		enriched[k] = v
	}

	if dominant == model.StyleVisual {
		enriched["visualElements"] = true
		enriched["diagrams"] = true
	}
	if attention < attentionChunkThreshold {
		enriched["chunkedSections"] = true
		enriched["breakPoints"] = fmt.Sprintf("every %d minutes", attention)
	}
	if orientation == model.OrientationMastery {
		enriched["deepDiveMaterial"] = true
		enriched["practiceExercises"] = true
	}

	return enriched
}
