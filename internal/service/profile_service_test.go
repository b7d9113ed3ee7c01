package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edupath_backend/internal/model"
	"edupath_backend/internal/util"
)

func TestGetOrCreate_Defaults(t *testing.T) {
	env := newTestEnv()

	profile := env.profiles.GetOrCreate(context.Background(), "learner-1")

	assert.Equal(t, "learner-1", profile.LearnerID)
	assert.Equal(t, model.StyleVisual, profile.LearningStyle.Dominant)
	assert.InDelta(t, 0.25, profile.LearningStyle.Visual, 1e-9)
	assert.Equal(t, 25, profile.CognitiveProfile.AttentionSpan)
	assert.InDelta(t, 0.6, profile.MotivationProfile.IntrinsicMotivation, 1e-9)
	assert.Equal(t, model.OrientationMastery, profile.MotivationProfile.GoalOrientation)
	assert.InDelta(t, 30, profile.KnowledgeProfile.CurrentLevel, 1e-9)
	assert.Equal(t, 30, profile.BehavioralProfile.OptimalSessionLength)
	assert.True(t, profile.BehavioralProfile.IndependentLearning)
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.profiles.GetOrCreate(ctx, "learner-1")

	level := 72.0
	_, err := env.profiles.Update(ctx, "learner-1", model.ProfileUpdate{
		KnowledgeProfile: &model.KnowledgeProfileUpdate{CurrentLevel: &level},
	})
	require.NoError(t, err)

	// a second GetOrCreate must not reset the existing record
	again := env.profiles.GetOrCreate(ctx, "learner-1")
	assert.InDelta(t, 72, again.KnowledgeProfile.CurrentLevel, 1e-9)
}

func TestUpdate_UnknownLearner(t *testing.T) {
	env := newTestEnv()

	_, err := env.profiles.Update(context.Background(), "ghost", model.ProfileUpdate{})
	assert.ErrorIs(t, err, util.ErrProfileNotFound)

	_, err = env.profiles.Get("ghost")
	assert.ErrorIs(t, err, util.ErrProfileNotFound)
}

func TestUpdate_MergesAndClamps(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.profiles.GetOrCreate(ctx, "learner-1")

	kinesthetic := 1.5
	memory := -0.2
	level := 140.0
	updated, err := env.profiles.Update(ctx, "learner-1", model.ProfileUpdate{
		LearningStyle:    &model.LearningStyleUpdate{Kinesthetic: &kinesthetic},
		CognitiveProfile: &model.CognitiveProfileUpdate{MemoryCapacity: &memory},
		KnowledgeProfile: &model.KnowledgeProfileUpdate{CurrentLevel: &level},
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, updated.LearningStyle.Kinesthetic, 1e-9)
	assert.Equal(t, model.StyleKinesthetic, updated.LearningStyle.Dominant)
	assert.Zero(t, updated.CognitiveProfile.MemoryCapacity)
	assert.InDelta(t, 100, updated.KnowledgeProfile.CurrentLevel, 1e-9)
	assert.False(t, updated.LastUpdated.IsZero())
}

func TestUpdate_LeavesUnsetFieldsUntouched(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	before := env.profiles.GetOrCreate(ctx, "learner-1")

	persistence := 0.9
	updated, err := env.profiles.Update(ctx, "learner-1", model.ProfileUpdate{
		MotivationProfile: &model.MotivationProfileUpdate{Persistence: &persistence},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.9, updated.MotivationProfile.Persistence, 1e-9)
	assert.Equal(t, before.MotivationProfile.SelfEfficacy, updated.MotivationProfile.SelfEfficacy)
	assert.Equal(t, before.LearningStyle, updated.LearningStyle)
	assert.Equal(t, before.CognitiveProfile, updated.CognitiveProfile)
}

func TestDominantStyle_TieBreaksByPriority(t *testing.T) {
	style := model.LearningStyle{Visual: 0.4, Auditory: 0.4, Reading: 0.2, Kinesthetic: 0.1}
	assert.Equal(t, model.StyleVisual, style.ResolveDominant())

	style = model.LearningStyle{Visual: 0.1, Auditory: 0.5, Reading: 0.5, Kinesthetic: 0.2}
	assert.Equal(t, model.StyleAuditory, style.ResolveDominant())
}
