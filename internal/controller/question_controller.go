package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// ListQuestions godoc
// @Summary List questions of a quiz
// @Tags Questions
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /quizzes/{id}/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	questions, err := c.questionService.ListByQuiz(quizID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary Add a question to a quiz
// @Description The quiz id comes from the path and is merged with the body server-side.
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Param question body dto.QuestionUpsertDTO true "Question"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id}/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionUpsertDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	question, err := c.questionService.Create(quizID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// GetQuestion godoc
// @Summary Get a question with its choices
// @Tags Questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	question, err := c.questionService.Get(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Param question body dto.QuestionUpsertDTO true "Question"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionUpsertDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	question, err := c.questionService.Update(id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a question and its choices
// @Tags Questions
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.questionService.Delete(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
