package service

import (
	"fmt"

	"edupath_backend/internal/model"
)

const (
	defaultPassingScore   = 80
	defaultMaxRetakes     = 2
	defaultAssessWeight   = 0.8
	defaultQuestionPoints = 10
	minQuestionCount      = 5
)

// AssessmentBuilder derives a module assessment from a content item. It is
// a template generator: question prompts are placeholders replaced by
// authored content upstream. The contract kept here is the question count
// as a function of duration and the fixed defaults.
type AssessmentBuilder struct{}

func NewAssessmentBuilder() *AssessmentBuilder {
	return &AssessmentBuilder{}
}

func (b *AssessmentBuilder) Build(content model.ContentItem) model.ModuleAssessment {
	count := content.Duration / 10
	if count < minQuestionCount {
		count = minQuestionCount
	}

	questions := make([]model.AssessmentQuestion, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, model.AssessmentQuestion{
			ID:            model.GenerateUUID(),
			Type:          model.QuestionMultipleChoice,
			Question:      fmt.Sprintf("Question %d covering %s", i+1, content.Title),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: "Option A",
			Explanation:   fmt.Sprintf("Refer back to the material in %s.", content.Title),
			Difficulty:    model.QuestionMedium,
			Points:        defaultQuestionPoints,
			Tags:          append([]string{}, content.Tags...),
			Adaptive:      true,
		})
	}

	return model.ModuleAssessment{
		Type:         model.AssessmentQuiz,
		PassingScore: defaultPassingScore,
		Questions:    questions,
		TimeLimit:    content.Duration,
		AllowRetakes: true,
		MaxRetakes:   defaultMaxRetakes,
		Weight:       defaultAssessWeight,
	}
}
