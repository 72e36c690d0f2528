package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/ucilnica/quiz-api/internal/dto"
	"github.com/ucilnica/quiz-api/internal/locale"
	"github.com/ucilnica/quiz-api/internal/service"
)

type UserQuizController struct {
	quizService       service.QuizService
	submissionService service.SubmissionService
}

func NewUserQuizController(quizService service.QuizService, submissionService service.SubmissionService) *UserQuizController {
	return &UserQuizController{
		quizService:       quizService,
		submissionService: submissionService,
	}
}

// ListQuizzes godoc
// @Summary (User) List available quizzes
// @Tags User - Quizzes & Submissions
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *UserQuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.ListQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("User ListQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary (User) Get a quiz for taking
// @Description Returns the quiz with text resolved for the request language (?lang= or Accept-Language; en, sl, hr). Correct answers are not included.
// @Tags User - Quizzes & Submissions
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param lang query string false "Content language override (en, sl, hr)"
// @Success 200 {object} dto.TakingQuizDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [get]
func (c *UserQuizController) GetQuiz(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}
	quiz, err := c.quizService.GetQuizForTaking(id, locale.FromContext(ctx))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// SubmitQuiz godoc
// @Summary (User) Submit answers for grading
// @Description Grades the submitted answers against the quiz answer key and returns per-question results with the overall score. When a user id is present the submission is recorded; recording failures never fail the grading response.
// @Tags User - Quizzes & Submissions
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param submission body dto.SubmitQuizDTO true "Answers keyed by question id"
// @Success 200 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed body or answer shapes"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id}/submissions [post]
func (c *UserQuizController) SubmitQuiz(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}
	var req dto.SubmitQuizDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("User SubmitQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.submissionService.SubmitQuiz(id, req)
	if err != nil {
		var formatErr *service.AnswerFormatError
		if errors.As(err, &formatErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid answer format", Details: formatErr.Details})
			return
		}
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListSubmissions godoc
// @Summary (User) List submissions for a quiz
// @Tags User - Quizzes & Submissions
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param user_id query int false "Filter by user"
// @Success 200 {array} dto.SubmissionSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{quiz_id}/submissions [get]
func (c *UserQuizController) ListSubmissions(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}
	var userID *uint
	if raw := ctx.Query("user_id"); raw != "" {
		val, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID format in query"})
			return
		}
		uid := uint(val)
		userID = &uid
	}

	submissions, err := c.submissionService.ListQuizSubmissions(id, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve submissions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// GetSubmission godoc
// @Summary (User) Get a recorded submission
// @Tags User - Quizzes & Submissions
// @Produce json
// @Param submission_id path int true "Submission ID"
// @Success 200 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid submission ID format"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /submissions/{submission_id} [get]
func (c *UserQuizController) GetSubmission(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("submission_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid submission ID format"})
		return
	}
	submission, err := c.submissionService.GetSubmission(uint(id))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, submission)
}

func quizID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return 0, false
	}
	return uint(id), true
}
