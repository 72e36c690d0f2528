// Package scoring grades submitted answers against a quiz's answer key.
// Everything here is a pure computation over its inputs; loading the quiz
// and persisting the submission belong to the caller.
package scoring

import "github.com/ucilnica/quiz-api/internal/schema"

// Option is the minimal option view grading needs.
type Option struct {
	ID      string
	Correct bool
}

// Question carries the authoritative answer key for one question.
// CorrectOptionID is the key for single-answer types; multi-select keys are
// the options flagged Correct; KeySequence is the expected order for
// ORDERING and MATCHING questions.
type Question struct {
	ID                 string
	Type               schema.QuestionType
	CorrectOptionID    string
	KeySequence        []string
	Options            []Option
	MultipleChoiceData *schema.MultipleChoiceData
}

// Quiz is the graded-against view of a quiz.
type Quiz struct {
	Questions []Question
}

// QuestionResult is the outcome for a single question. SelectedOptionID
// stays empty when the question was not answered; an unanswered question is
// incorrect, never an error.
type QuestionResult struct {
	QuestionID        string
	SelectedOptionID  string
	SelectedOptionIDs []string
	CorrectOptionID   string
	IsCorrect         bool
	Credit            float64
}

// Result is the aggregate grading outcome. Score is in [0, 100].
type Result struct {
	Score          float64
	TotalQuestions int
	CorrectAnswers int
	Results        []QuestionResult
}

// Grade computes per-question results and the aggregate score. The answers
// map comes straight from decoded JSON: question id to option id string for
// single-answer types, or to a list of option id strings for collection
// types. Malformed answer values degrade to unanswered.
func (q Quiz) Grade(answers map[string]any) Result {
	res := Result{
		TotalQuestions: len(q.Questions),
		Results:        make([]QuestionResult, 0, len(q.Questions)),
	}

	var totalCredit float64
	for _, question := range q.Questions {
		qr := gradeQuestion(question, answers[question.ID])
		if qr.IsCorrect {
			res.CorrectAnswers++
		}
		totalCredit += qr.Credit
		res.Results = append(res.Results, qr)
	}

	// A quiz without questions grades to zero rather than NaN.
	if res.TotalQuestions > 0 {
		res.Score = totalCredit / float64(res.TotalQuestions) * 100
	}
	return res
}

func gradeQuestion(q Question, answer any) QuestionResult {
	if schema.Structure(q.Type) == schema.AnswerString {
		return gradeSingle(q, answer)
	}
	if schema.IsMultipleChoice(q.Type) {
		return gradeMultiple(q, answer)
	}
	return gradeSequence(q, answer)
}

func gradeSingle(q Question, answer any) QuestionResult {
	qr := QuestionResult{
		QuestionID:      q.ID,
		CorrectOptionID: q.correctOptionID(),
	}
	selected, _ := answer.(string)
	qr.SelectedOptionID = selected
	if selected != "" && qr.CorrectOptionID != "" && selected == qr.CorrectOptionID {
		qr.IsCorrect = true
		qr.Credit = 1
	}
	return qr
}

func gradeMultiple(q Question, answer any) QuestionResult {
	qr := QuestionResult{QuestionID: q.ID}
	selected, ok := schema.NormalizeAnswerList(answer)
	if !ok {
		return qr
	}
	qr.SelectedOptionIDs = selected

	key := map[string]bool{}
	for _, o := range q.Options {
		if o.Correct {
			key[o.ID] = true
		}
	}
	if len(key) == 0 {
		return qr
	}

	hits, misses := 0, 0
	seen := map[string]bool{}
	for _, id := range selected {
		if seen[id] {
			continue
		}
		seen[id] = true
		if key[id] {
			hits++
		} else {
			misses++
		}
	}

	qr.Credit = multiCredit(q.MultipleChoiceData, hits, misses, len(key))
	qr.IsCorrect = qr.Credit == 1
	return qr
}

// multiCredit applies the configured scoring method. The default, and
// everything that is not explicitly PARTIAL_CREDIT, is all-or-nothing on
// exact set equality.
func multiCredit(mc *schema.MultipleChoiceData, hits, misses, keySize int) float64 {
	if mc == nil || mc.ScoringMethod != schema.PartialCredit {
		if hits == keySize && misses == 0 {
			return 1
		}
		return 0
	}

	perCorrect, perIncorrect := 1.0, 1.0
	if r := mc.PartialCreditRules; r != nil {
		if r.PointsPerCorrect > 0 {
			perCorrect = r.PointsPerCorrect
		}
		if r.PenaltyPerIncorrect >= 0 {
			perIncorrect = r.PenaltyPerIncorrect
		}
	}

	earned := float64(hits)*perCorrect - float64(misses)*perIncorrect
	possible := float64(keySize) * perCorrect
	credit := earned / possible
	if credit < 0 {
		return 0
	}
	if credit > 1 {
		return 1
	}
	return credit
}

// gradeSequence handles ORDERING and MATCHING: the submitted list must equal
// the key sequence exactly, position by position.
func gradeSequence(q Question, answer any) QuestionResult {
	qr := QuestionResult{QuestionID: q.ID}
	selected, ok := schema.NormalizeAnswerList(answer)
	if !ok {
		return qr
	}
	qr.SelectedOptionIDs = selected

	if len(q.KeySequence) == 0 || len(selected) != len(q.KeySequence) {
		return qr
	}
	for i, id := range selected {
		if id != q.KeySequence[i] {
			return qr
		}
	}
	qr.IsCorrect = true
	qr.Credit = 1
	return qr
}

// correctOptionID resolves the single-answer key, falling back to the
// option flagged correct when the explicit reference is unset.
func (q Question) correctOptionID() string {
	if q.CorrectOptionID != "" {
		return q.CorrectOptionID
	}
	for _, o := range q.Options {
		if o.Correct {
			return o.ID
		}
	}
	return ""
}
