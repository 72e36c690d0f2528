// Package rules produces validation issues for quiz authoring payloads.
// The issues feed the grouping engine in internal/validation, which only
// post-processes; everything that actually checks content lives here.
package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ucilnica/quiz-api/internal/content"
	"github.com/ucilnica/quiz-api/internal/dto"
	"github.com/ucilnica/quiz-api/internal/schema"
	"github.com/ucilnica/quiz-api/internal/validation"
)

const (
	CodeRequired     = "required"
	CodeTooSmall     = "too_small"
	CodeInvalidEnum  = "invalid_enum"
	CodeTypeMismatch = "type_mismatch"
	CodeInvalidRange = "invalid_range"
	CodeIncomplete   = "incomplete_option"
	CodeCorrectCount = "correct_count"
	CodeBinding      = "binding"
)

// ValidateQuiz checks an authoring payload and returns every problem found.
// Nothing is persisted while the returned slice is non-empty.
func ValidateQuiz(req dto.QuizCreateDTO) []validation.Issue {
	var issues []validation.Issue

	if strings.TrimSpace(req.Title) == "" {
		issues = append(issues, validation.Issue{
			Path:    []any{"title"},
			Message: "quiz title is required",
			Code:    CodeRequired,
		})
	}
	if len(req.Questions) == 0 {
		issues = append(issues, validation.Issue{
			Path:    []any{"questions"},
			Message: "a quiz needs at least one question",
			Code:    CodeTooSmall,
		})
	}

	for i, q := range req.Questions {
		issues = append(issues, validateQuestion(i, q)...)
	}
	return issues
}

func validateQuestion(i int, q dto.QuestionCreateDTO) []validation.Issue {
	var issues []validation.Issue
	at := func(segs ...any) []any { return append([]any{"questions", i}, segs...) }

	if !schema.IsKnown(q.Type) {
		issues = append(issues, validation.Issue{
			Path:    at("type"),
			Message: fmt.Sprintf("unknown question type %q", q.Type),
			Code:    CodeInvalidEnum,
		})
		// Without a type the remaining checks cannot be selected.
		return issues
	}

	if strings.TrimSpace(q.Text) == "" {
		issues = append(issues, validation.Issue{
			Path:    at("text"),
			Message: "question text is required",
			Code:    CodeRequired,
		})
	}

	if q.MultipleChoiceData != nil && !schema.IsMultipleChoice(q.Type) {
		issues = append(issues, validation.Issue{
			Path:    at("multiple_choice_data"),
			Message: fmt.Sprintf("multiple_choice_data is not allowed on %s questions", q.Type),
			Code:    CodeTypeMismatch,
		})
	}
	if schema.IsMultipleChoice(q.Type) && q.MultipleChoiceData != nil {
		issues = append(issues, validateMultipleChoiceData(i, q)...)
	}

	if schema.IsSingleChoice(q.Type) || schema.IsMultipleChoice(q.Type) {
		issues = append(issues, validateOptions(i, q)...)
	}
	return issues
}

func validateMultipleChoiceData(i int, q dto.QuestionCreateDTO) []validation.Issue {
	var issues []validation.Issue
	mc := q.MultipleChoiceData
	at := func(segs ...any) []any {
		return append([]any{"questions", i, "multiple_choice_data"}, segs...)
	}

	switch mc.ScoringMethod {
	case schema.AllOrNothing, schema.PartialCredit:
	default:
		issues = append(issues, validation.Issue{
			Path:    at("scoring_method"),
			Message: fmt.Sprintf("unknown scoring method %q", mc.ScoringMethod),
			Code:    CodeInvalidEnum,
		})
	}

	if mc.MinSelections < 1 {
		issues = append(issues, validation.Issue{
			Path:    at("min_selections"),
			Message: "min_selections must be at least 1",
			Code:    CodeInvalidRange,
		})
	}
	if mc.MaxSelections != nil && *mc.MaxSelections < mc.MinSelections {
		issues = append(issues, validation.Issue{
			Path:    at("max_selections"),
			Message: "max_selections cannot be smaller than min_selections",
			Code:    CodeInvalidRange,
		})
	}
	if mc.PartialCreditRules != nil && mc.ScoringMethod != schema.PartialCredit {
		issues = append(issues, validation.Issue{
			Path:    at("partial_credit_rules"),
			Message: "partial_credit_rules require the PARTIAL_CREDIT scoring method",
			Code:    CodeTypeMismatch,
		})
	}
	return issues
}

func validateOptions(i int, q dto.QuestionCreateDTO) []validation.Issue {
	var issues []validation.Issue

	if len(q.Options) < 2 {
		issues = append(issues, validation.Issue{
			Path:    []any{"questions", i, "options"},
			Message: "choice questions need at least two options",
			Code:    CodeTooSmall,
		})
	}

	correct := 0
	for j, o := range q.Options {
		if o.IsCorrect {
			correct++
		}
		if !content.IsValid(toContentOption(o)) {
			issues = append(issues, validation.Issue{
				Path:    []any{"questions", i, "options", j},
				Message: "option needs text in at least one language or an image",
				Code:    CodeIncomplete,
			})
		}
	}

	if len(q.Options) >= 2 {
		switch {
		case schema.IsSingleChoice(q.Type) && correct != 1:
			issues = append(issues, validation.Issue{
				Path:    []any{"questions", i, "options"},
				Message: fmt.Sprintf("single-choice questions need exactly one correct option, found %d", correct),
				Code:    CodeCorrectCount,
			})
		case schema.IsMultipleChoice(q.Type) && correct == 0:
			issues = append(issues, validation.Issue{
				Path:    []any{"questions", i, "options"},
				Message: "multiple-choice questions need at least one correct option",
				Code:    CodeCorrectCount,
			})
		}
	}
	return issues
}

func toContentOption(o dto.OptionCreateDTO) content.Option {
	return content.Option{
		Text:    o.Text,
		TextSL:  o.TextSL,
		TextHR:  o.TextHR,
		Content: o.Content,
		Correct: o.IsCorrect,
	}
}

// IssuesFromBinding converts request-binding failures from gin (backed by
// go-playground/validator) into issues so transport-level errors render the
// same way as authoring ones. Non-validator errors become a single
// quiz-level issue.
func IssuesFromBinding(err error) []validation.Issue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []validation.Issue{{
			Path:    []any{},
			Message: err.Error(),
			Code:    CodeBinding,
		}}
	}
	issues := make([]validation.Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, validation.Issue{
			Path:    namespaceToPath(fe.Namespace()),
			Message: fmt.Sprintf("field failed on the %q rule", fe.Tag()),
			Code:    fe.Tag(),
		})
	}
	return issues
}

// namespaceToPath turns "QuizCreateDTO.Questions[2].Type" into
// ["questions", 2, "type"].
func namespaceToPath(ns string) []any {
	segs := strings.Split(ns, ".")
	if len(segs) > 1 {
		segs = segs[1:] // drop the root struct name
	}
	var path []any
	for _, seg := range segs {
		name := seg
		var idx *int
		if open := strings.IndexByte(seg, '['); open >= 0 && strings.HasSuffix(seg, "]") {
			name = seg[:open]
			var n int
			if _, err := fmt.Sscanf(seg[open:], "[%d]", &n); err == nil {
				idx = &n
			}
		}
		if name != "" {
			path = append(path, toSnake(name))
		}
		if idx != nil {
			path = append(path, *idx)
		}
	}
	return path
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
