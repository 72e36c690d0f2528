package service

import (
	"errors"
	"testing"

	"github.com/ucilnica/quiz-api/internal/dto"
	"github.com/ucilnica/quiz-api/internal/model"
	"github.com/ucilnica/quiz-api/internal/repository"
	"github.com/ucilnica/quiz-api/internal/schema"
)

type fakeQuizRepo struct {
	quiz *model.Quiz
	err  error
}

func (f *fakeQuizRepo) Create(*model.Quiz) error                    { return nil }
func (f *fakeQuizRepo) Update(*model.Quiz) error                    { return nil }
func (f *fakeQuizRepo) Delete(uint) error                           { return nil }
func (f *fakeQuizRepo) FindByID(uint) (*model.Quiz, error)          { return f.quiz, f.err }
func (f *fakeQuizRepo) ReplaceQuestions(uint, []model.Question) error { return nil }
func (f *fakeQuizRepo) SaveQuestion(*model.Question) error          { return nil }

func (f *fakeQuizRepo) FindByIDWithQuestions(uint) (*model.Quiz, error) {
	return f.quiz, f.err
}

func (f *fakeQuizRepo) FindAllWithQuestionCount() ([]repository.QuizWithCount, error) {
	return nil, nil
}

type fakeSubmissionRepo struct {
	created []*model.Submission
	err     error
}

func (f *fakeSubmissionRepo) Create(s *model.Submission) error {
	if f.err != nil {
		return f.err
	}
	s.ID = uint(len(f.created) + 1)
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSubmissionRepo) FindByID(uint) (*model.Submission, error) { return nil, nil }

func (f *fakeSubmissionRepo) FindAllByQuizAndUser(uint, *uint) ([]model.Submission, error) {
	return nil, nil
}

func storedQuiz() *model.Quiz {
	return &model.Quiz{
		ID:    9,
		Title: "Pneumatics",
		Questions: []model.Question{
			{
				ID:              1,
				Type:            schema.SingleChoice,
				Text:            "Which valve holds pressure?",
				CorrectOptionID: "11",
				Options: []model.Option{
					{ID: 11, Text: "Check valve", Correct: true},
					{ID: 12, Text: "Relief valve"},
				},
			},
			{
				ID:   2,
				Type: schema.SingleChoice,
				Text: "Which actuator is linear?",
				CorrectOptionID: "21",
				Options: []model.Option{
					{ID: 21, Text: "Cylinder", Correct: true},
					{ID: 22, Text: "Motor"},
				},
			},
		},
	}
}

func TestSubmitQuizGradesAndPersists(t *testing.T) {
	subs := &fakeSubmissionRepo{}
	svc := NewSubmissionService(&fakeQuizRepo{quiz: storedQuiz()}, subs)

	uid := uint(5)
	res, err := svc.SubmitQuiz(9, dto.SubmitQuizDTO{
		UserID:  &uid,
		Answers: map[string]any{"1": "11", "2": "22"},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}
	if res.Score != 50 || res.CorrectAnswers != 1 || res.TotalQuestions != 2 {
		t.Fatalf("unexpected grading outcome: %+v", res)
	}
	if len(subs.created) != 1 {
		t.Fatalf("expected one persisted submission, got %d", len(subs.created))
	}
	if res.ID == 0 {
		t.Error("persisted submission must report its id")
	}
	if subs.created[0].Results[0].SelectedOptionID != "11" {
		t.Errorf("snapshot lost selection: %+v", subs.created[0].Results[0])
	}
}

func TestSubmitQuizAnonymousNotPersisted(t *testing.T) {
	subs := &fakeSubmissionRepo{}
	svc := NewSubmissionService(&fakeQuizRepo{quiz: storedQuiz()}, subs)

	res, err := svc.SubmitQuiz(9, dto.SubmitQuizDTO{Answers: map[string]any{"1": "11"}})
	if err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}
	if len(subs.created) != 0 {
		t.Fatal("anonymous attempts must not be recorded")
	}
	if res.Score != 50 {
		t.Errorf("score = %v, want 50 (q2 unanswered counts wrong)", res.Score)
	}
	if res.ID != 0 {
		t.Error("unpersisted result must not carry an id")
	}
}

func TestSubmitQuizPersistFailureStillReturnsResult(t *testing.T) {
	subs := &fakeSubmissionRepo{err: errors.New("connection refused")}
	svc := NewSubmissionService(&fakeQuizRepo{quiz: storedQuiz()}, subs)

	uid := uint(5)
	res, err := svc.SubmitQuiz(9, dto.SubmitQuizDTO{
		UserID:  &uid,
		Answers: map[string]any{"1": "11", "2": "21"},
	})
	if err != nil {
		t.Fatalf("write failure must not fail grading: %v", err)
	}
	if res.Score != 100 || res.ID != 0 {
		t.Fatalf("expected full score with no record id, got %+v", res)
	}
}

func TestSubmitQuizRejectsMalformedAnswers(t *testing.T) {
	svc := NewSubmissionService(&fakeQuizRepo{quiz: storedQuiz()}, &fakeSubmissionRepo{})

	_, err := svc.SubmitQuiz(9, dto.SubmitQuizDTO{
		Answers: map[string]any{"1": []any{"11"}, "2": 7},
	})
	var formatErr *AnswerFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected AnswerFormatError, got %v", err)
	}
	if len(formatErr.Details) != 2 {
		t.Fatalf("both malformed answers must be reported, got %v", formatErr.Details)
	}
}

func TestSubmitQuizQuizNotFound(t *testing.T) {
	svc := NewSubmissionService(&fakeQuizRepo{err: errors.New("record not found")}, &fakeSubmissionRepo{})
	if _, err := svc.SubmitQuiz(404, dto.SubmitQuizDTO{Answers: map[string]any{}}); err == nil {
		t.Fatal("missing quiz must fail the submission")
	}
}
