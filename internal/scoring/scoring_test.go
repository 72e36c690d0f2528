package scoring

import (
	"math"
	"testing"

	"github.com/ucilnica/quiz-api/internal/schema"
)

func twoQuestionQuiz() Quiz {
	return Quiz{Questions: []Question{
		{ID: "q1", Type: schema.SingleChoice, CorrectOptionID: "a"},
		{ID: "q2", Type: schema.SingleChoice, CorrectOptionID: "b"},
	}}
}

func TestGradeDeterminism(t *testing.T) {
	res := twoQuestionQuiz().Grade(map[string]any{"q1": "a", "q2": "c"})

	if res.CorrectAnswers != 1 || res.TotalQuestions != 2 {
		t.Fatalf("counts = %d/%d, want 1/2", res.CorrectAnswers, res.TotalQuestions)
	}
	if res.Score != 50 {
		t.Fatalf("score = %v, want 50", res.Score)
	}
	if !res.Results[0].IsCorrect || res.Results[0].SelectedOptionID != "a" {
		t.Errorf("q1 result = %+v", res.Results[0])
	}
	if res.Results[1].IsCorrect || res.Results[1].SelectedOptionID != "c" {
		t.Errorf("q2 result = %+v", res.Results[1])
	}
	if res.Results[1].CorrectOptionID != "b" {
		t.Errorf("q2 must expose the correct option id, got %+v", res.Results[1])
	}
}

func TestGradeMissingAnswer(t *testing.T) {
	res := twoQuestionQuiz().Grade(map[string]any{"q1": "a"})

	if res.CorrectAnswers != 1 || res.Score != 50 {
		t.Fatalf("got %d correct, score %v; want 1, 50", res.CorrectAnswers, res.Score)
	}
	q2 := res.Results[1]
	if q2.IsCorrect || q2.SelectedOptionID != "" {
		t.Errorf("unanswered question must be incorrect with empty selection, got %+v", q2)
	}
}

func TestGradeZeroQuestions(t *testing.T) {
	res := Quiz{}.Grade(map[string]any{})
	if math.IsNaN(res.Score) {
		t.Fatal("score must never be NaN")
	}
	if res.Score != 0 || res.TotalQuestions != 0 || res.CorrectAnswers != 0 {
		t.Fatalf("empty quiz must grade to zero, got %+v", res)
	}
}

func TestGradeUnansweredNeverMatchesEmptyKey(t *testing.T) {
	// A question with no key must not count an unanswered submission as
	// correct just because both sides are empty.
	quiz := Quiz{Questions: []Question{{ID: "q1", Type: schema.SingleChoice}}}
	res := quiz.Grade(map[string]any{})
	if res.Results[0].IsCorrect {
		t.Fatal("empty selection must not equal empty key")
	}
}

func TestGradeKeyFromCorrectFlag(t *testing.T) {
	quiz := Quiz{Questions: []Question{{
		ID:   "q1",
		Type: schema.SingleChoice,
		Options: []Option{
			{ID: "a"},
			{ID: "b", Correct: true},
		},
	}}}
	res := quiz.Grade(map[string]any{"q1": "b"})
	if !res.Results[0].IsCorrect || res.Results[0].CorrectOptionID != "b" {
		t.Fatalf("key must fall back to the flagged option, got %+v", res.Results[0])
	}
}

func mcQuestion(method schema.ScoringMethod, rules *schema.PartialCreditRules) Question {
	return Question{
		ID:   "m1",
		Type: schema.MultipleChoice,
		Options: []Option{
			{ID: "a", Correct: true},
			{ID: "b", Correct: true},
			{ID: "c"},
			{ID: "d"},
		},
		MultipleChoiceData: &schema.MultipleChoiceData{
			ScoringMethod:      method,
			MinSelections:      1,
			PartialCreditRules: rules,
		},
	}
}

func TestGradeAllOrNothing(t *testing.T) {
	q := mcQuestion(schema.AllOrNothing, nil)
	tests := []struct {
		name    string
		answer  any
		correct bool
	}{
		{"exact set", []any{"b", "a"}, true},
		{"missing one", []any{"a"}, false},
		{"extra one", []any{"a", "b", "c"}, false},
		{"empty", []any{}, false},
		{"duplicates collapse", []any{"a", "a", "b"}, true},
		{"wrong shape", "a", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Quiz{Questions: []Question{q}}.Grade(map[string]any{"m1": tc.answer})
			if res.Results[0].IsCorrect != tc.correct {
				t.Fatalf("answer %v graded %+v, want correct=%v", tc.answer, res.Results[0], tc.correct)
			}
		})
	}
}

func TestGradePartialCredit(t *testing.T) {
	tests := []struct {
		name   string
		rules  *schema.PartialCreditRules
		answer any
		credit float64
	}{
		{"half the key", nil, []any{"a"}, 0.5},
		{"full key", nil, []any{"a", "b"}, 1},
		{"hit plus miss cancels", nil, []any{"a", "c"}, 0},
		{"floor at zero", nil, []any{"c", "d"}, 0},
		{
			"soft penalty",
			&schema.PartialCreditRules{PointsPerCorrect: 1, PenaltyPerIncorrect: 0.5},
			[]any{"a", "b", "c"},
			0.75,
		},
		{
			"no penalty",
			&schema.PartialCreditRules{PointsPerCorrect: 2, PenaltyPerIncorrect: 0},
			[]any{"a", "c", "d"},
			0.5,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := mcQuestion(schema.PartialCredit, tc.rules)
			res := Quiz{Questions: []Question{q}}.Grade(map[string]any{"m1": tc.answer})
			got := res.Results[0].Credit
			if math.Abs(got-tc.credit) > 1e-9 {
				t.Fatalf("credit = %v, want %v", got, tc.credit)
			}
			if res.Results[0].IsCorrect != (tc.credit == 1) {
				t.Errorf("IsCorrect = %v with credit %v", res.Results[0].IsCorrect, got)
			}
		})
	}
}

func TestGradePartialCreditAggregates(t *testing.T) {
	quiz := Quiz{Questions: []Question{
		{ID: "q1", Type: schema.SingleChoice, CorrectOptionID: "a"},
		mcQuestion(schema.PartialCredit, nil),
	}}
	res := quiz.Grade(map[string]any{"q1": "a", "m1": []any{"a"}})
	// 1.0 + 0.5 over two questions.
	if math.Abs(res.Score-75) > 1e-9 {
		t.Fatalf("score = %v, want 75", res.Score)
	}
	if res.CorrectAnswers != 1 {
		t.Fatalf("partial credit must not count as a correct answer, got %d", res.CorrectAnswers)
	}
}

func TestGradeSequenceTypes(t *testing.T) {
	q := Question{ID: "o1", Type: schema.Ordering, KeySequence: []string{"s1", "s2", "s3"}}
	tests := []struct {
		name    string
		answer  any
		correct bool
	}{
		{"exact order", []any{"s1", "s2", "s3"}, true},
		{"swapped", []any{"s2", "s1", "s3"}, false},
		{"short", []any{"s1", "s2"}, false},
		{"missing", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Quiz{Questions: []Question{q}}.Grade(map[string]any{"o1": tc.answer})
			if res.Results[0].IsCorrect != tc.correct {
				t.Fatalf("answer %v graded %v, want %v", tc.answer, res.Results[0].IsCorrect, tc.correct)
			}
		})
	}
}
