package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edupath_backend/internal/model"
)

func TestBuild_QuestionCountScalesWithDuration(t *testing.T) {
	builder := NewAssessmentBuilder()

	cases := []struct {
		duration int
		want     int
	}{
		{0, 5},
		{30, 5},
		{50, 5},
		{60, 6},
		{120, 12},
	}
	for _, tc := range cases {
		item := contentItem("c1", "Data Structures", model.MediumReading, model.DifficultyIntermediate, tc.duration)
		got := builder.Build(item)
		assert.Len(t, got.Questions, tc.want, "duration %d", tc.duration)
	}
}

func TestBuild_Defaults(t *testing.T) {
	builder := NewAssessmentBuilder()
	item := contentItem("c1", "Data Structures", model.MediumReading, model.DifficultyIntermediate, 45, "data")

	assessment := builder.Build(item)

	assert.Equal(t, model.AssessmentQuiz, assessment.Type)
	assert.Equal(t, 80, assessment.PassingScore)
	assert.Equal(t, 45, assessment.TimeLimit)
	assert.True(t, assessment.AllowRetakes)
	assert.Equal(t, 2, assessment.MaxRetakes)
	assert.InDelta(t, 0.8, assessment.Weight, 1e-9)

	require.NotEmpty(t, assessment.Questions)
	q := assessment.Questions[0]
	assert.Equal(t, model.QuestionMultipleChoice, q.Type)
	assert.Equal(t, model.QuestionMedium, q.Difficulty)
	assert.Equal(t, 10, q.Points)
	assert.True(t, q.Adaptive)
	assert.Equal(t, []string{"data"}, q.Tags)
	assert.NotEmpty(t, q.ID)
}
