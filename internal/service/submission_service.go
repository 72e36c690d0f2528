package service

import (
	"fmt"
	"strconv"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/ucilnica/quiz-api/internal/dto"
	"github.com/ucilnica/quiz-api/internal/model"
	"github.com/ucilnica/quiz-api/internal/repository"
	"github.com/ucilnica/quiz-api/internal/schema"
	"github.com/ucilnica/quiz-api/internal/scoring"
)

// SubmissionService grades quiz attempts and keeps the submission history.
type SubmissionService interface {
	SubmitQuiz(quizID uint, req dto.SubmitQuizDTO) (*dto.SubmissionResultDTO, error)
	GetSubmission(id uint) (*dto.SubmissionResultDTO, error)
	ListQuizSubmissions(quizID uint, userID *uint) ([]dto.SubmissionSummaryDTO, error)
}

type submissionService struct {
	quizRepo       repository.QuizRepository
	submissionRepo repository.SubmissionRepository
}

func NewSubmissionService(quizRepo repository.QuizRepository, submissionRepo repository.SubmissionRepository) SubmissionService {
	return &submissionService{quizRepo: quizRepo, submissionRepo: submissionRepo}
}

// SubmitQuiz loads the authoritative quiz data, grades the answers and
// returns the result. The submission record is written only when the
// attempt carries a user; the write is best-effort and its failure never
// fails the grading response.
func (s *submissionService) SubmitQuiz(quizID uint, req dto.SubmitQuizDTO) (*dto.SubmissionResultDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("SubmitQuiz: quiz not found")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}

	graded := gradingView(quiz)

	if details := checkAnswerFormats(graded, req.Answers); len(details) > 0 {
		return nil, &AnswerFormatError{Details: details}
	}

	result := graded.Grade(req.Answers)

	resp := &dto.SubmissionResultDTO{
		QuizID:         quizID,
		UserID:         req.UserID,
		Score:          result.Score,
		CorrectAnswers: result.CorrectAnswers,
		TotalQuestions: result.TotalQuestions,
		Results:        make([]dto.QuestionResultDTO, len(result.Results)),
	}
	for i, qr := range result.Results {
		resp.Results[i] = dto.QuestionResultDTO{
			QuestionID:        qr.QuestionID,
			SelectedOptionID:  qr.SelectedOptionID,
			SelectedOptionIDs: qr.SelectedOptionIDs,
			CorrectOptionID:   qr.CorrectOptionID,
			IsCorrect:         qr.IsCorrect,
			Credit:            qr.Credit,
		}
	}

	if req.UserID == nil {
		// Anonymous attempts are graded but never recorded.
		return resp, nil
	}

	submission := model.Submission{
		QuizID:         quizID,
		UserID:         req.UserID,
		Answers:        req.Answers,
		Score:          result.Score,
		CorrectAnswers: result.CorrectAnswers,
		TotalQuestions: result.TotalQuestions,
		Results:        resultsSnapshot(result.Results),
	}
	if err := s.submissionRepo.Create(&submission); err != nil {
		// The graded result is still returned; only the history record is
		// lost.
		log.Error().Err(err).Uint("quizID", quizID).Msg("SubmitQuiz: failed to persist submission record")
		return resp, nil
	}
	resp.ID = submission.ID
	resp.SubmittedAt = submission.SubmittedAt
	return resp, nil
}

func (s *submissionService) GetSubmission(id uint) (*dto.SubmissionResultDTO, error) {
	submission, err := s.submissionRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("submission not found with ID %d: %w", id, err)
	}

	resp := &dto.SubmissionResultDTO{
		ID:             submission.ID,
		QuizID:         submission.QuizID,
		UserID:         submission.UserID,
		Score:          submission.Score,
		CorrectAnswers: submission.CorrectAnswers,
		TotalQuestions: submission.TotalQuestions,
		SubmittedAt:    submission.SubmittedAt,
		Results:        make([]dto.QuestionResultDTO, len(submission.Results)),
	}
	for i, qr := range submission.Results {
		resp.Results[i] = dto.QuestionResultDTO{
			QuestionID:        qr.QuestionID,
			SelectedOptionID:  qr.SelectedOptionID,
			SelectedOptionIDs: qr.SelectedOptionIDs,
			CorrectOptionID:   qr.CorrectOptionID,
			IsCorrect:         qr.IsCorrect,
			Credit:            qr.Credit,
		}
	}
	return resp, nil
}

func (s *submissionService) ListQuizSubmissions(quizID uint, userID *uint) ([]dto.SubmissionSummaryDTO, error) {
	submissions, err := s.submissionRepo.FindAllByQuizAndUser(quizID, userID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("ListQuizSubmissions: repository error")
		return nil, fmt.Errorf("error fetching submissions for quiz %d: %w", quizID, err)
	}

	summaries := make([]dto.SubmissionSummaryDTO, 0, len(submissions))
	for _, sub := range submissions {
		var summary dto.SubmissionSummaryDTO
		if err := copier.Copy(&summary, &sub); err != nil {
			log.Error().Err(err).Uint("submissionID", sub.ID).Msg("ListQuizSubmissions: error copying submission to DTO")
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// gradingView projects the stored quiz onto the scoring engine's input.
// Option ids become the strings handed out by GetQuizForTaking.
func gradingView(quiz *model.Quiz) scoring.Quiz {
	graded := scoring.Quiz{Questions: make([]scoring.Question, len(quiz.Questions))}
	for i, q := range quiz.Questions {
		sq := scoring.Question{
			ID:                 strconv.FormatUint(uint64(q.ID), 10),
			Type:               q.Type,
			CorrectOptionID:    q.CorrectOptionID,
			MultipleChoiceData: q.MultipleChoiceData,
			Options:            make([]scoring.Option, len(q.Options)),
		}
		for j, o := range q.Options {
			id := strconv.FormatUint(uint64(o.ID), 10)
			sq.Options[j] = scoring.Option{ID: id, Correct: o.Correct}
			// ORDERING and MATCHING grade against the authored option
			// order.
			if schema.Structure(q.Type) == schema.AnswerArray && !schema.IsMultipleChoice(q.Type) {
				sq.KeySequence = append(sq.KeySequence, id)
			}
		}
		graded.Questions[i] = sq
	}
	return graded
}

// checkAnswerFormats aggregates structural problems across the whole answer
// map instead of failing on the first. Answers for unknown questions are
// ignored, matching the grading behavior.
func checkAnswerFormats(quiz scoring.Quiz, answers map[string]any) []string {
	var details []string
	for _, q := range quiz.Questions {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		if res := schema.ValidateAnswerFormat(q.Type, answer); !res.Valid {
			details = append(details, fmt.Sprintf("question %s: %s", q.ID, res.Error))
		}
	}
	return details
}

func resultsSnapshot(results []scoring.QuestionResult) []model.QuestionResult {
	out := make([]model.QuestionResult, len(results))
	for i, qr := range results {
		out[i] = model.QuestionResult{
			QuestionID:        qr.QuestionID,
			SelectedOptionID:  qr.SelectedOptionID,
			SelectedOptionIDs: qr.SelectedOptionIDs,
			CorrectOptionID:   qr.CorrectOptionID,
			IsCorrect:         qr.IsCorrect,
			Credit:            qr.Credit,
		}
	}
	return out
}
