package schema

import "testing"

func TestStructure(t *testing.T) {
	tests := []struct {
		qt   QuestionType
		want AnswerStructure
	}{
		{SingleChoice, AnswerString},
		{Dropdown, AnswerString},
		{MultipleChoice, AnswerArray},
		{Ordering, AnswerArray},
		{Matching, AnswerArray},
	}
	for _, tc := range tests {
		if got := Structure(tc.qt); got != tc.want {
			t.Errorf("Structure(%s) = %s, want %s", tc.qt, got, tc.want)
		}
	}
}

func TestValidateAnswerFormat(t *testing.T) {
	tests := []struct {
		name   string
		qt     QuestionType
		answer any
		valid  bool
	}{
		{"single choice string", SingleChoice, "opt-1", true},
		{"single choice array", SingleChoice, []string{"opt-1"}, false},
		{"single choice number", SingleChoice, 42, false},
		{"single choice nil", SingleChoice, nil, false},
		{"dropdown string", Dropdown, "opt-2", true},
		{"multiple choice strings", MultipleChoice, []string{"a", "b"}, true},
		{"multiple choice decoded json", MultipleChoice, []any{"a", "b"}, true},
		{"multiple choice empty", MultipleChoice, []string{}, true},
		{"multiple choice bare string", MultipleChoice, "a", false},
		{"multiple choice mixed elements", MultipleChoice, []any{"a", 3}, false},
		{"multiple choice nil", MultipleChoice, nil, false},
		{"ordering decoded json", Ordering, []any{"x", "y", "z"}, true},
		{"matching bare string", Matching, "x", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateAnswerFormat(tc.qt, tc.answer)
			if got.Valid != tc.valid {
				t.Fatalf("ValidateAnswerFormat(%s, %#v) = %+v, want valid=%v", tc.qt, tc.answer, got, tc.valid)
			}
			if !got.Valid && got.Error == "" {
				t.Fatalf("invalid result must carry an error message")
			}
		})
	}
}

func TestDefaultMultipleChoiceData(t *testing.T) {
	d := DefaultMultipleChoiceData()
	if d.ScoringMethod != AllOrNothing {
		t.Errorf("default scoring method = %s, want %s", d.ScoringMethod, AllOrNothing)
	}
	if d.MinSelections != 1 {
		t.Errorf("default min selections = %d, want 1", d.MinSelections)
	}
	if d.MaxSelections != nil || d.PartialCreditRules != nil {
		t.Errorf("max selections and partial credit rules default to unset, got %+v", d)
	}
}

func TestPredicates(t *testing.T) {
	if !IsSingleChoice(SingleChoice) || !IsSingleChoice(Dropdown) {
		t.Error("SINGLE_CHOICE and DROPDOWN are single-choice types")
	}
	if IsSingleChoice(MultipleChoice) || IsMultipleChoice(SingleChoice) {
		t.Error("predicate overlap between single and multiple choice")
	}
	if !IsKnown(Ordering) || IsKnown(QuestionType("ESSAY")) {
		t.Error("IsKnown must accept only the closed enumeration")
	}
}
