package service

import (
	"fmt"
	"strconv"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/ucilnica/quiz-api/internal/content"
	"github.com/ucilnica/quiz-api/internal/dto"
	"github.com/ucilnica/quiz-api/internal/model"
	"github.com/ucilnica/quiz-api/internal/repository"
	"github.com/ucilnica/quiz-api/internal/schema"
	"github.com/ucilnica/quiz-api/internal/validation"
	"github.com/ucilnica/quiz-api/internal/validation/rules"
)

// AuthoringService is the admin/teacher-facing quiz lifecycle. Every write
// runs the full validation pass first; nothing is persisted while issues
// remain.
type AuthoringService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	UpdateQuiz(id uint, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	DeleteQuiz(id uint) error
	GetQuiz(id uint) (*dto.QuizResponseDTO, error)
}

type authoringService struct {
	quizRepo repository.QuizRepository
}

func NewAuthoringService(quizRepo repository.QuizRepository) AuthoringService {
	return &authoringService{quizRepo: quizRepo}
}

func (s *authoringService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	if issues := rules.ValidateQuiz(req); len(issues) > 0 {
		errs := validation.ParseIssues(issues)
		log.Warn().Int("issues", errs.TotalErrorCount).Str("summary", validation.Summary(errs)).Msg("CreateQuiz: validation failed")
		return nil, &ValidationError{Errors: errs}
	}

	quiz := model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		TeacherID:   req.TeacherID,
		Questions:   questionsFromDTO(req.Questions),
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Msg("CreateQuiz: database error")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	if err := s.assignAnswerKeys(quiz.Questions); err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("CreateQuiz: failed to assign answer keys")
		return nil, err
	}

	return s.GetQuiz(quiz.ID)
}

func (s *authoringService) UpdateQuiz(id uint, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	if issues := rules.ValidateQuiz(req); len(issues) > 0 {
		return nil, &ValidationError{Errors: validation.ParseIssues(issues)}
	}

	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("quiz not found with ID %d: %w", id, err)
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.TeacherID = req.TeacherID
	if err := s.quizRepo.Update(quiz); err != nil {
		return nil, fmt.Errorf("database error updating quiz %d: %w", id, err)
	}

	questions := questionsFromDTO(req.Questions)
	if err := s.quizRepo.ReplaceQuestions(id, questions); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("UpdateQuiz: failed to replace questions")
		return nil, fmt.Errorf("database error replacing questions for quiz %d: %w", id, err)
	}
	if err := s.assignAnswerKeys(questions); err != nil {
		return nil, err
	}

	return s.GetQuiz(id)
}

func (s *authoringService) DeleteQuiz(id uint) error {
	if _, err := s.quizRepo.FindByID(id); err != nil {
		return fmt.Errorf("quiz not found with ID %d: %w", id, err)
	}
	return s.quizRepo.Delete(id)
}

func (s *authoringService) GetQuiz(id uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, fmt.Errorf("quiz not found with ID %d: %w", id, err)
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("GetQuiz: failed to copy quiz model to DTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	// copier maps scalar fields; the option content union is rebuilt here so
	// admins see the same representation students are served from.
	for i, q := range quiz.Questions {
		opts := make([]dto.OptionResponseDTO, len(q.Options))
		for j, rec := range q.Options {
			app := content.FromRecord(rec, strconv.FormatUint(uint64(rec.ID), 10))
			opts[j] = dto.OptionResponseDTO{
				ID:        rec.ID,
				Text:      app.Text,
				TextSL:    app.TextSL,
				TextHR:    app.TextHR,
				Content:   app.Content,
				IsCorrect: rec.Correct,
			}
		}
		resp.Questions[i].Options = opts
	}
	return &resp, nil
}

// questionsFromDTO maps the authoring payload onto storage models. The
// multiple-choice payload falls back to the authoring default when omitted.
func questionsFromDTO(questions []dto.QuestionCreateDTO) []model.Question {
	out := make([]model.Question, len(questions))
	for i, q := range questions {
		order := q.OrderInQuiz
		if order == 0 {
			order = i + 1
		}
		mq := model.Question{
			Type:               q.Type,
			Text:               q.Text,
			TextSL:             q.TextSL,
			TextHR:             q.TextHR,
			OrderInQuiz:        order,
			MultipleChoiceData: q.MultipleChoiceData,
		}
		if schema.IsMultipleChoice(q.Type) && mq.MultipleChoiceData == nil {
			d := schema.DefaultMultipleChoiceData()
			mq.MultipleChoiceData = &d
		}
		mq.Options = make([]model.Option, len(q.Options))
		for j, o := range q.Options {
			mq.Options[j] = content.ToRecord(content.Option{
				Text:    o.Text,
				TextSL:  o.TextSL,
				TextHR:  o.TextHR,
				Content: o.Content,
				Correct: o.IsCorrect,
			})
		}
		out[i] = mq
	}
	return out
}

// assignAnswerKeys backfills CorrectOptionID on single-answer questions once
// option IDs exist. Multi-select keys stay on the option rows.
func (s *authoringService) assignAnswerKeys(questions []model.Question) error {
	for i := range questions {
		q := &questions[i]
		if !schema.IsSingleChoice(q.Type) {
			continue
		}
		for _, o := range q.Options {
			if o.Correct {
				q.CorrectOptionID = strconv.FormatUint(uint64(o.ID), 10)
				break
			}
		}
		if q.CorrectOptionID == "" {
			continue
		}
		if err := s.quizRepo.SaveQuestion(q); err != nil {
			return fmt.Errorf("failed to store answer key for question %d: %w", q.ID, err)
		}
	}
	return nil
}
