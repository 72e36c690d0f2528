package service

import (
	"fmt"

	"github.com/ucilnica/quiz-api/internal/validation"
)

// ValidationError carries grouped authoring validation errors up to the
// controller, which renders them as a 422.
type ValidationError struct {
	Errors *validation.Errors
}

func (e *ValidationError) Error() string {
	return validation.Summary(e.Errors)
}

// AnswerFormatError reports structurally malformed answers in a submission.
// Each detail names the question and the shape problem.
type AnswerFormatError struct {
	Details []string
}

func (e *AnswerFormatError) Error() string {
	return fmt.Sprintf("%d answers have an invalid format", len(e.Details))
}
