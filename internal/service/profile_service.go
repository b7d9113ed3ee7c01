package service

import (
	"context"
	"time"

	"edupath_backend/internal/model"
	"edupath_backend/internal/util"
)

// ProfileService is the learning profile store: lazy creation with fixed
// defaults, field-wise merge updates, no deletion.
type ProfileService struct {
	tables *EngineStore
}

func NewProfileService(tables *EngineStore) *ProfileService {
	return &ProfileService{tables: tables}
}

// GetOrCreate returns the learner's profile, creating it with defaults on
// first reference. Idempotent: an existing profile is never reset.
func (s *ProfileService) GetOrCreate(ctx context.Context, learnerID string) *model.LearningProfile {
	s.tables.mu.Lock()
	defer s.tables.mu.Unlock()
	return cloneProfile(s.getOrCreateLocked(ctx, learnerID))
}

// getOrCreateLocked is the shared lookup for services already holding the
// write lock. Returns the live record.
func (s *ProfileService) getOrCreateLocked(ctx context.Context, learnerID string) *model.LearningProfile {
	if profile, ok := s.tables.profiles[learnerID]; ok {
		return profile
	}
	profile := model.DefaultLearningProfile(learnerID)
	s.tables.profiles[learnerID] = profile
	s.tables.persist(ctx)
	return profile
}

// Get returns a snapshot of an existing profile.
func (s *ProfileService) Get(learnerID string) (*model.LearningProfile, error) {
	s.tables.mu.RLock()
	defer s.tables.mu.RUnlock()
	profile, ok := s.tables.profiles[learnerID]
	if !ok {
		return nil, util.ErrProfileNotFound
	}
	return cloneProfile(profile), nil
}

// Update merges the partial update into an existing profile, re-clamps all
// bounded fields, and stamps lastUpdated. Fails with ErrProfileNotFound if
// the learner has never been referenced through GetOrCreate.
func (s *ProfileService) Update(ctx context.Context, learnerID string, update model.ProfileUpdate) (*model.LearningProfile, error) {
	s.tables.mu.Lock()
	defer s.tables.mu.Unlock()

	profile, ok := s.tables.profiles[learnerID]
	if !ok {
		return nil, util.ErrProfileNotFound
	}

	mergeProfile(profile, update)
	profile.Normalize()
	profile.LastUpdated = time.Now()
	s.tables.persist(ctx)

	return cloneProfile(profile), nil
}

func mergeProfile(p *model.LearningProfile, u model.ProfileUpdate) {
	if u.LearningStyle != nil {
		setFloat(&p.LearningStyle.Visual, u.LearningStyle.Visual)
		setFloat(&p.LearningStyle.Auditory, u.LearningStyle.Auditory)
		setFloat(&p.LearningStyle.Reading, u.LearningStyle.Reading)
		setFloat(&p.LearningStyle.Kinesthetic, u.LearningStyle.Kinesthetic)
	}
	if u.CognitiveProfile != nil {
		setInt(&p.CognitiveProfile.AttentionSpan, u.CognitiveProfile.AttentionSpan)
		setFloat(&p.CognitiveProfile.MemoryCapacity, u.CognitiveProfile.MemoryCapacity)
		setFloat(&p.CognitiveProfile.ProcessingSpeed, u.CognitiveProfile.ProcessingSpeed)
		setFloat(&p.CognitiveProfile.LogicalReasoning, u.CognitiveProfile.LogicalReasoning)
		setFloat(&p.CognitiveProfile.Creativity, u.CognitiveProfile.Creativity)
	}
	if u.MotivationProfile != nil {
		setFloat(&p.MotivationProfile.IntrinsicMotivation, u.MotivationProfile.IntrinsicMotivation)
		setFloat(&p.MotivationProfile.ExtrinsicMotivation, u.MotivationProfile.ExtrinsicMotivation)
		if u.MotivationProfile.GoalOrientation != nil {
			p.MotivationProfile.GoalOrientation = *u.MotivationProfile.GoalOrientation
		}
		setFloat(&p.MotivationProfile.SelfEfficacy, u.MotivationProfile.SelfEfficacy)
		setFloat(&p.MotivationProfile.Persistence, u.MotivationProfile.Persistence)
	}
	if u.KnowledgeProfile != nil {
		setFloat(&p.KnowledgeProfile.CurrentLevel, u.KnowledgeProfile.CurrentLevel)
		setStrings(&p.KnowledgeProfile.KnowledgeGaps, u.KnowledgeProfile.KnowledgeGaps)
		setStrings(&p.KnowledgeProfile.Strengths, u.KnowledgeProfile.Strengths)
		setStrings(&p.KnowledgeProfile.Interests, u.KnowledgeProfile.Interests)
		setStrings(&p.KnowledgeProfile.CareerGoals, u.KnowledgeProfile.CareerGoals)
	}
	if u.BehavioralProfile != nil {
		setStrings(&p.BehavioralProfile.StudyHabits, u.BehavioralProfile.StudyHabits)
		setStrings(&p.BehavioralProfile.PreferredTimes, u.BehavioralProfile.PreferredTimes)
		setInt(&p.BehavioralProfile.OptimalSessionLength, u.BehavioralProfile.OptimalSessionLength)
		setInt(&p.BehavioralProfile.BreakFrequency, u.BehavioralProfile.BreakFrequency)
		if u.BehavioralProfile.SocialLearning != nil {
			p.BehavioralProfile.SocialLearning = *u.BehavioralProfile.SocialLearning
		}
		if u.BehavioralProfile.IndependentLearning != nil {
			p.BehavioralProfile.IndependentLearning = *u.BehavioralProfile.IndependentLearning
		}
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setStrings(dst *[]string, src *[]string) {
	if src != nil {
		*dst = append([]string{}, (*src)...)
	}
}
