package dto

import (
	"time"

	"github.com/ucilnica/quiz-api/internal/content"
	"github.com/ucilnica/quiz-api/internal/schema"
)

// OptionCreateDTO carries one answer option in an authoring request. Either
// the flat language fields or the content union may be used; the validation
// engine accepts both during the storage migration.
type OptionCreateDTO struct {
	Text      string           `json:"text"`
	TextSL    string           `json:"text_sl"`
	TextHR    string           `json:"text_hr"`
	Content   *content.Content `json:"content,omitempty"`
	IsCorrect bool             `json:"is_correct"`
}

// QuestionCreateDTO is used within QuizCreateDTO for quiz authoring.
type QuestionCreateDTO struct {
	Type               schema.QuestionType        `json:"type" binding:"required"`
	Text               string                     `json:"text"`
	TextSL             string                     `json:"text_sl"`
	TextHR             string                     `json:"text_hr"`
	OrderInQuiz        int                        `json:"order_in_quiz"`
	MultipleChoiceData *schema.MultipleChoiceData `json:"multiple_choice_data,omitempty"`
	Options            []OptionCreateDTO          `json:"options"`
}

// QuizCreateDTO is the full authoring payload for creating or replacing a
// quiz with all of its questions.
type QuizCreateDTO struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	TeacherID   *uint               `json:"teacher_id"`
	Questions   []QuestionCreateDTO `json:"questions"`
}

// OptionResponseDTO is an option as shown to admins (correct flag included).
type OptionResponseDTO struct {
	ID        uint             `json:"id"`
	Text      string           `json:"text"`
	TextSL    string           `json:"text_sl,omitempty"`
	TextHR    string           `json:"text_hr,omitempty"`
	Content   *content.Content `json:"content,omitempty"`
	IsCorrect bool             `json:"is_correct"`
}

// QuestionResponseDTO is a question with its options, admin view.
type QuestionResponseDTO struct {
	ID                 uint                       `json:"id"`
	QuizID             uint                       `json:"quiz_id"`
	Type               schema.QuestionType        `json:"type"`
	Text               string                     `json:"text"`
	TextSL             string                     `json:"text_sl,omitempty"`
	TextHR             string                     `json:"text_hr,omitempty"`
	OrderInQuiz        int                        `json:"order_in_quiz"`
	CorrectOptionID    string                     `json:"correct_option_id,omitempty"`
	MultipleChoiceData *schema.MultipleChoiceData `json:"multiple_choice_data,omitempty"`
	Options            []OptionResponseDTO        `json:"options,omitempty"`
}

// QuizResponseDTO is the full quiz, admin view.
type QuizResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	TeacherID   *uint                 `json:"teacher_id,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// QuizSummaryDTO is used for listing quizzes.
type QuizSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// TakingOptionDTO is an option as shown to a student: locale-resolved text,
// no correct flag.
type TakingOptionDTO struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url,omitempty"`
}

// TakingQuestionDTO is a question prepared for quiz taking.
type TakingQuestionDTO struct {
	ID          string              `json:"id"`
	Type        schema.QuestionType `json:"type"`
	Text        string              `json:"text"`
	OrderInQuiz int                 `json:"order_in_quiz"`
	Options     []TakingOptionDTO   `json:"options"`
}

// TakingQuizDTO is the student-facing quiz payload.
type TakingQuizDTO struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Questions   []TakingQuestionDTO `json:"questions"`
}
