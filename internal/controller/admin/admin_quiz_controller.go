package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/ucilnica/quiz-api/internal/dto"
	"github.com/ucilnica/quiz-api/internal/service"
	"github.com/ucilnica/quiz-api/internal/validation"
	"github.com/ucilnica/quiz-api/internal/validation/rules"
)

type AdminQuizController struct {
	authoringService service.AuthoringService
}

func NewAdminQuizController(authoringService service.AuthoringService) *AdminQuizController {
	return &AdminQuizController{authoringService: authoringService}
}

// CreateQuiz godoc
// @Summary (Admin) Create a new quiz
// @Description Creates a quiz with all of its questions and options. The payload is fully validated; on failure the response groups errors per question for UI highlighting.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_data body dto.QuizCreateDTO true "Quiz authoring payload"
// @Success 201 {object} dto.QuizResponseDTO "Quiz created"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 422 {object} dto.ValidationErrorResponse "Validation errors"
// @Router /admin/quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuiz: failed to bind JSON")
		renderBindingError(ctx, err)
		return
	}

	resp, err := c.authoringService.CreateQuiz(req)
	if err != nil {
		renderAuthoringError(ctx, err, "Failed to create quiz")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetQuiz godoc
// @Summary (Admin) Get a quiz with its answer key
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{quiz_id} [get]
func (c *AdminQuizController) GetQuiz(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}
	resp, err := c.authoringService.GetQuiz(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateQuiz godoc
// @Summary (Admin) Replace a quiz
// @Description Replaces the quiz metadata and its full question set after validation.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param quiz_data body dto.QuizCreateDTO true "Quiz authoring payload"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 422 {object} dto.ValidationErrorResponse "Validation errors"
// @Router /admin/quizzes/{quiz_id} [put]
func (c *AdminQuizController) UpdateQuiz(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin UpdateQuiz: failed to bind JSON")
		renderBindingError(ctx, err)
		return
	}

	resp, err := c.authoringService.UpdateQuiz(id, req)
	if err != nil {
		renderAuthoringError(ctx, err, "Failed to update quiz")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuiz godoc
// @Summary (Admin) Delete a quiz
// @Description Deletes a quiz with its questions and options. Submission history is kept.
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{quiz_id} [delete]
func (c *AdminQuizController) DeleteQuiz(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}
	if err := c.authoringService.DeleteQuiz(id); err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func quizID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return 0, false
	}
	return uint(id), true
}

func renderBindingError(ctx *gin.Context, err error) {
	errs := validation.ParseIssues(rules.IssuesFromBinding(err))
	ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(errs))
}

func renderAuthoringError(ctx *gin.Context, err error, fallback string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(verr.Errors))
		return
	}
	log.Error().Err(err).Msg("Admin quiz controller: service error")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fallback, Details: []string{err.Error()}})
}
