package dto

import "github.com/ucilnica/quiz-api/internal/validation"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ValidationErrorResponse renders grouped authoring validation errors. The
// client blocks save until it receives none.
type ValidationErrorResponse struct {
	Message        string                     `json:"message"`
	Summary        string                     `json:"summary"`
	QuizErrors     []validation.Issue         `json:"quiz_errors"`
	QuestionErrors map[int][]validation.Issue `json:"question_errors"`
	TotalErrors    int                        `json:"total_errors"`
}

// NewValidationErrorResponse flattens a validation.Errors into the wire
// shape.
func NewValidationErrorResponse(errs *validation.Errors) ValidationErrorResponse {
	return ValidationErrorResponse{
		Message:        "Quiz validation failed",
		Summary:        validation.Summary(errs),
		QuizErrors:     errs.QuizErrors,
		QuestionErrors: errs.QuestionErrors,
		TotalErrors:    errs.TotalErrorCount,
	}
}
