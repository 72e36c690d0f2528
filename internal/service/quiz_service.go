package service

import (
	"fmt"
	"strconv"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/ucilnica/quiz-api/internal/content"
	"github.com/ucilnica/quiz-api/internal/dto"
	"github.com/ucilnica/quiz-api/internal/repository"
)

// QuizService is the student-facing read side.
type QuizService interface {
	ListQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizForTaking(id uint, lang string) (*dto.TakingQuizDTO, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) ListQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("ListQuizzes: repository error")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	summaries := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		var summary dto.QuizSummaryDTO
		if err := copier.Copy(&summary, &q); err != nil {
			log.Error().Err(err).Uint("quizID", q.ID).Msg("ListQuizzes: error copying quiz to summary DTO")
			continue
		}
		summary.QuestionCount = q.QuestionCount
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetQuizForTaking returns a quiz with locale-resolved text and the answer
// key stripped. Option ids are the strings students echo back in a
// submission.
func (s *quizService) GetQuizForTaking(id uint, lang string) (*dto.TakingQuizDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, fmt.Errorf("quiz not found with ID %d: %w", id, err)
	}

	resp := dto.TakingQuizDTO{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   make([]dto.TakingQuestionDTO, len(quiz.Questions)),
	}
	for i, q := range quiz.Questions {
		tq := dto.TakingQuestionDTO{
			ID:          strconv.FormatUint(uint64(q.ID), 10),
			Type:        q.Type,
			Text:        localizedQuestionText(q.Text, q.TextSL, q.TextHR, lang),
			OrderInQuiz: q.OrderInQuiz,
			Options:     make([]dto.TakingOptionDTO, len(q.Options)),
		}
		for j, rec := range q.Options {
			opt := content.FromRecord(rec, strconv.FormatUint(uint64(rec.ID), 10))
			tq.Options[j] = dto.TakingOptionDTO{
				ID:       opt.ID,
				Text:     content.LocalizedText(opt, lang),
				ImageURL: content.ImageURL(opt),
			}
		}
		resp.Questions[i] = tq
	}
	return &resp, nil
}

func localizedQuestionText(base, sl, hr, lang string) string {
	switch lang {
	case "sl":
		if sl != "" {
			return sl
		}
	case "hr":
		if hr != "" {
			return hr
		}
	}
	return base
}
