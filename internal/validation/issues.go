package validation

import (
	"fmt"
	"strings"
)

// Issue is one validation finding. Path addresses the offending field the
// way a schema validator reports it: a mix of field names and 0-based
// indices, e.g. ["questions", 2, "options", 1, "content", "image_url"].
type Issue struct {
	Path    []any  `json:"path"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Errors groups a flat issue list so the UI can highlight per question
// without re-deriving indices.
type Errors struct {
	QuizErrors      []Issue         `json:"quiz_errors"`
	QuestionErrors  map[int][]Issue `json:"question_errors"`
	HasErrors       bool            `json:"has_errors"`
	TotalErrorCount int             `json:"total_error_count"`
}

// ParseIssues splits issues into quiz-level and per-question buckets. An
// issue whose path starts with "questions" followed by an index groups under
// that question; everything else is quiz-level. Every issue lands in exactly
// one bucket, so TotalErrorCount always equals len(issues).
func ParseIssues(issues []Issue) *Errors {
	errs := &Errors{
		QuizErrors:     []Issue{},
		QuestionErrors: map[int][]Issue{},
	}
	for _, issue := range issues {
		if idx, ok := questionIndex(issue.Path); ok {
			errs.QuestionErrors[idx] = append(errs.QuestionErrors[idx], issue)
		} else {
			errs.QuizErrors = append(errs.QuizErrors, issue)
		}
		errs.TotalErrorCount++
	}
	errs.HasErrors = errs.TotalErrorCount > 0
	return errs
}

func questionIndex(path []any) (int, bool) {
	if len(path) < 2 {
		return 0, false
	}
	if seg, ok := path[0].(string); !ok || seg != "questions" {
		return 0, false
	}
	return pathIndex(path[1])
}

// pathIndex reads a numeric path segment. JSON-decoded issues carry float64
// indices, in-process producers use int.
func pathIndex(seg any) (int, bool) {
	switch v := seg.(type) {
	case int:
		return v, v >= 0
	case float64:
		return int(v), v >= 0 && v == float64(int(v))
	}
	return 0, false
}

// indexedSegments are the collection fields whose following index renders as
// a 1-based ordinal label.
var indexedSegments = map[string]string{
	"questions":  "Question",
	"options":    "Option",
	"dropdowns":  "Dropdown",
	"items":      "Item",
	"leftItems":  "Left Item",
	"rightItems": "Right Item",
}

var leafLabels = map[string]string{
	"title":                "Title",
	"description":          "Description",
	"text":                 "Text",
	"text_sl":              "Text (Slovenian)",
	"text_hr":              "Text (Croatian)",
	"content":              "Content",
	"image_url":            "Image URL",
	"imageUrl":             "Image URL",
	"alt_text":             "Alt Text",
	"is_correct":           "Correct Answer",
	"isCorrect":            "Correct Answer",
	"correct_option_id":    "Correct Option",
	"type":                 "Question Type",
	"scoring_method":       "Scoring Method",
	"min_selections":       "Minimum Selections",
	"max_selections":       "Maximum Selections",
	"partial_credit_rules": "Partial Credit Rules",
	"order_in_quiz":        "Order",
}

// FormatPath renders a path as a breadcrumb, e.g.
// ["questions", 2, "options", 1, "content", "image_url"] becomes
// "Question 3 - Option 2 - Content - Image URL". Unknown segments fall
// through to generic capitalization; the function never panics on
// unrecognized input.
func FormatPath(path []any) string {
	parts := make([]string, 0, len(path))
	for i := 0; i < len(path); i++ {
		seg, isString := path[i].(string)
		if isString {
			if label, ok := indexedSegments[seg]; ok && i+1 < len(path) {
				if idx, numeric := pathIndex(path[i+1]); numeric {
					parts = append(parts, fmt.Sprintf("%s %d", label, idx+1))
					i++
					continue
				}
			}
			if label, ok := leafLabels[seg]; ok {
				parts = append(parts, label)
				continue
			}
			parts = append(parts, capitalize(seg))
			continue
		}
		if idx, numeric := pathIndex(path[i]); numeric {
			parts = append(parts, fmt.Sprintf("%d", idx+1))
			continue
		}
		parts = append(parts, fmt.Sprintf("%v", path[i]))
	}
	return strings.Join(parts, " - ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Summary renders a one-line overview, omitting zero-count clauses:
// "2 quiz errors, 3 questions with errors".
func Summary(errs *Errors) string {
	if errs == nil || !errs.HasErrors {
		return "No validation errors"
	}
	var parts []string
	if n := len(errs.QuizErrors); n > 0 {
		parts = append(parts, fmt.Sprintf("%d quiz %s", n, plural(n, "error", "errors")))
	}
	if n := len(errs.QuestionErrors); n > 0 {
		parts = append(parts, fmt.Sprintf("%d %s with errors", n, plural(n, "question", "questions")))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// QuestionHasErrors reports whether question idx has any issues. Nil-safe.
func QuestionHasErrors(errs *Errors, idx int) bool {
	return errs != nil && len(errs.QuestionErrors[idx]) > 0
}

// QuestionIssues returns the issues for question idx, or an empty slice.
func QuestionIssues(errs *Errors, idx int) []Issue {
	if errs == nil {
		return []Issue{}
	}
	if issues, ok := errs.QuestionErrors[idx]; ok {
		return issues
	}
	return []Issue{}
}
