package model

type AssessmentType string

const (
	AssessmentQuiz           AssessmentType = "quiz"
	AssessmentProject        AssessmentType = "project"
	AssessmentDiscussion     AssessmentType = "discussion"
	AssessmentPeerReview     AssessmentType = "peer_review"
	AssessmentSelfAssessment AssessmentType = "self_assessment"
)

type QuestionDifficulty string

const (
	QuestionEasy   QuestionDifficulty = "easy"
	QuestionMedium QuestionDifficulty = "medium"
	QuestionHard   QuestionDifficulty = "hard"
)

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionShortAnswer    QuestionType = "short_answer"
)

// AssessmentQuestion is one question of a module assessment. Adaptive
// questions are eligible for difficulty retuning by the adaptive engine.
type AssessmentQuestion struct {
	ID            string             `json:"id"`
	Type          QuestionType       `json:"type"`
	Question      string             `json:"question"`
	Options       []string           `json:"options,omitempty"`
	CorrectAnswer string             `json:"correctAnswer"`
	Explanation   string             `json:"explanation"`
	Difficulty    QuestionDifficulty `json:"difficulty"`
	Points        int                `json:"points"`
	Tags          []string           `json:"tags"`
	Adaptive      bool               `json:"adaptive"`
}

// ModuleAssessment is the per-module check derived by the assessment
// builder from content duration and the learner profile.
type ModuleAssessment struct {
	Type         AssessmentType       `json:"type"`
	PassingScore int                  `json:"passingScore"`
	Questions    []AssessmentQuestion `json:"questions"`
	TimeLimit    int                  `json:"timeLimit,omitempty"` // minutes
	AllowRetakes bool                 `json:"allowRetakes"`
	MaxRetakes   int                  `json:"maxRetakes"`
	Weight       float64              `json:"weight"`
}
