package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Paginated list of all quizzes with their questions and choices. Page size is fixed at 6.
// @Tags Quizzes
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} dto.QuizPageDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	quizzes, err := c.quizService.ListQuizzes(page)
	if err != nil {
		log.Error().Err(err).Msg("ListQuizzes: Service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// CreateQuiz godoc
// @Summary Create a quiz with nested questions and choices
// @Description Atomically creates a quiz, its questions in payload order, and each question's choices in payload order.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body dto.QuizCreateDTO true "Nested quiz payload"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Field-level validation errors"
// @Failure 401 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuiz: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.quizService.CreateQuiz(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateQuiz: Service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// GetQuiz godoc
// @Summary Get a quiz
// @Tags Quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	quiz, err := c.quizService.GetQuiz(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// UpdateQuiz godoc
// @Summary Update quiz metadata
// @Description Updates title and description. Questions are managed through their own endpoints.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Param quiz body dto.QuizUpdateDTO true "Quiz metadata"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuizUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	quiz, err := c.quizService.UpdateQuiz(id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Deletes the quiz and cascades to its questions, choices, attempts and answers.
// @Tags Quizzes
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.quizService.DeleteQuiz(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
