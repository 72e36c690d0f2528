package schema

import "fmt"

// QuestionType enumerates the supported question kinds. The set is closed:
// grading and authoring validation both switch on it.
type QuestionType string

const (
	SingleChoice   QuestionType = "SINGLE_CHOICE"
	MultipleChoice QuestionType = "MULTIPLE_CHOICE"
	Ordering       QuestionType = "ORDERING"
	Matching       QuestionType = "MATCHING"
	Dropdown       QuestionType = "DROPDOWN"
)

// ScoringMethod selects how a multi-select question is credited.
type ScoringMethod string

const (
	AllOrNothing  ScoringMethod = "ALL_OR_NOTHING"
	PartialCredit ScoringMethod = "PARTIAL_CREDIT"
)

// AnswerStructure describes the wire shape of an acceptable answer.
type AnswerStructure string

const (
	AnswerString AnswerStructure = "string"
	AnswerArray  AnswerStructure = "array"
)

// PartialCreditRules tunes PARTIAL_CREDIT grading for a multi-select question.
type PartialCreditRules struct {
	PointsPerCorrect    float64 `json:"points_per_correct"`
	PenaltyPerIncorrect float64 `json:"penalty_per_incorrect"`
}

// MultipleChoiceData is the type-specific payload carried by MULTIPLE_CHOICE
// questions. MaxSelections of nil means unlimited.
type MultipleChoiceData struct {
	ScoringMethod      ScoringMethod       `json:"scoring_method"`
	MinSelections      int                 `json:"min_selections"`
	MaxSelections      *int                `json:"max_selections,omitempty"`
	PartialCreditRules *PartialCreditRules `json:"partial_credit_rules,omitempty"`
}

// DefaultMultipleChoiceData returns the authoring default for a new
// multiple-choice question.
func DefaultMultipleChoiceData() MultipleChoiceData {
	return MultipleChoiceData{
		ScoringMethod: AllOrNothing,
		MinSelections: 1,
	}
}

// IsKnown reports whether t is one of the supported question types.
func IsKnown(t QuestionType) bool {
	switch t {
	case SingleChoice, MultipleChoice, Ordering, Matching, Dropdown:
		return true
	}
	return false
}

// IsSingleChoice reports whether t expects exactly one selected option.
func IsSingleChoice(t QuestionType) bool {
	switch t {
	case SingleChoice, Dropdown:
		return true
	}
	return false
}

// IsMultipleChoice reports whether t accepts a set of selected options.
func IsMultipleChoice(t QuestionType) bool {
	return t == MultipleChoice
}

// Structure returns the expected answer shape for t. Single-answer types take
// one option id; collection types take a list.
func Structure(t QuestionType) AnswerStructure {
	if IsMultipleChoice(t) || t == Ordering || t == Matching {
		return AnswerArray
	}
	return AnswerString
}

// FormatResult is the outcome of a structural answer check.
type FormatResult struct {
	Valid bool
	Error string
}

// ValidateAnswerFormat checks that answer has the wire shape required by t.
// It is purely structural: a well-formed wrong answer still passes. The
// answer value comes straight out of decoded JSON, so collections arrive as
// []any as well as []string.
func ValidateAnswerFormat(t QuestionType, answer any) FormatResult {
	switch Structure(t) {
	case AnswerString:
		if _, ok := answer.(string); !ok {
			return FormatResult{Error: fmt.Sprintf("question type %s expects a single option id string, got %T", t, answer)}
		}
		return FormatResult{Valid: true}
	case AnswerArray:
		if _, ok := normalizeStringSlice(answer); !ok {
			return FormatResult{Error: fmt.Sprintf("question type %s expects an array of option id strings, got %T", t, answer)}
		}
		return FormatResult{Valid: true}
	}
	return FormatResult{Error: fmt.Sprintf("unknown question type %s", t)}
}

// NormalizeAnswerList coerces a decoded JSON answer into a []string when the
// shape allows it. Used by grading after ValidateAnswerFormat has passed.
func NormalizeAnswerList(answer any) ([]string, bool) {
	return normalizeStringSlice(answer)
}

func normalizeStringSlice(v any) ([]string, bool) {
	switch vv := v.(type) {
	case []string:
		return vv, true
	case []any:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
