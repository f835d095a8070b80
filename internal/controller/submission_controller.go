package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/middleware"
	"github.com/htranq/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

type SubmissionController struct {
	submissionService service.SubmissionService
}

func NewSubmissionController(submissionService service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// SubmitQuiz godoc
// @Summary Submit answers for a quiz
// @Description Records an attempt, persists every answer, and returns the percentage score. Answering the same question twice in one submission fails the whole attempt.
// @Tags Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Param submission body dto.QuizSubmitDTO true "Selected choices per question"
// @Success 201 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id}/submit [post]
func (c *SubmissionController) SubmitQuiz(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	var req dto.QuizSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitQuiz: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.submissionService.SubmitQuiz(quizID, userID, req)
	if err != nil {
		log.Error().Err(err).Str("quiz_id", quizID.String()).Msg("SubmitQuiz: Service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}
