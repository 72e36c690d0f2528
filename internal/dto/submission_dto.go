package dto

import "time"

// SubmitQuizDTO is the request body for grading a quiz attempt. Answers maps
// question id to the selected option id (string) for single-answer types, or
// to an array of option ids for multi-select types.
type SubmitQuizDTO struct {
	UserID  *uint          `json:"user_id"`
	Answers map[string]any `json:"answers" binding:"required"`
}

// QuestionResultDTO is one graded question within a submission response.
type QuestionResultDTO struct {
	QuestionID        string   `json:"question_id"`
	SelectedOptionID  string   `json:"selected_option_id,omitempty"`
	SelectedOptionIDs []string `json:"selected_option_ids,omitempty"`
	CorrectOptionID   string   `json:"correct_option_id,omitempty"`
	IsCorrect         bool     `json:"is_correct"`
	Credit            float64  `json:"credit"`
}

// SubmissionResultDTO is the graded outcome returned to the caller. ID is
// zero when the submission record was not persisted (anonymous attempt or
// best-effort write failure).
type SubmissionResultDTO struct {
	ID             uint                `json:"id,omitempty"`
	QuizID         uint                `json:"quiz_id"`
	UserID         *uint               `json:"user_id,omitempty"`
	Score          float64             `json:"score"`
	CorrectAnswers int                 `json:"correct_answers"`
	TotalQuestions int                 `json:"total_questions"`
	Results        []QuestionResultDTO `json:"results"`
	SubmittedAt    time.Time           `json:"submitted_at"`
}

// SubmissionSummaryDTO lists past submissions for a quiz.
type SubmissionSummaryDTO struct {
	ID             uint      `json:"id"`
	QuizID         uint      `json:"quiz_id"`
	UserID         *uint     `json:"user_id,omitempty"`
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
