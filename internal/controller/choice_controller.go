package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

type ChoiceController struct {
	choiceService service.ChoiceService
}

func NewChoiceController(choiceService service.ChoiceService) *ChoiceController {
	return &ChoiceController{choiceService: choiceService}
}

// ListChoices godoc
// @Summary List choices of a question
// @Tags Choices
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {array} dto.ChoiceResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /quizzes/{id}/choices [get]
func (c *ChoiceController) ListChoices(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	choices, err := c.choiceService.ListByQuestion(questionID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, choices)
}

// CreateChoice godoc
// @Summary Add a choice to a question
// @Description The question id comes from the path and is merged with the body server-side.
// @Tags Choices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Param choice body dto.ChoiceUpsertDTO true "Choice"
// @Success 201 {object} dto.ChoiceResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id}/choices [post]
func (c *ChoiceController) CreateChoice(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ChoiceUpsertDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateChoice: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	choice, err := c.choiceService.Create(questionID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, choice)
}

// GetChoice godoc
// @Summary Get a choice
// @Tags Choices
// @Produce json
// @Param id path string true "Choice ID"
// @Success 200 {object} dto.ChoiceResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /choices/{id} [get]
func (c *ChoiceController) GetChoice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	choice, err := c.choiceService.Get(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, choice)
}

// UpdateChoice godoc
// @Summary Update a choice
// @Tags Choices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Choice ID"
// @Param choice body dto.ChoiceUpsertDTO true "Choice"
// @Success 200 {object} dto.ChoiceResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /choices/{id} [put]
func (c *ChoiceController) UpdateChoice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ChoiceUpsertDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	choice, err := c.choiceService.Update(id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, choice)
}

// DeleteChoice godoc
// @Summary Delete a choice
// @Tags Choices
// @Security BearerAuth
// @Param id path string true "Choice ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /choices/{id} [delete]
func (c *ChoiceController) DeleteChoice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.choiceService.Delete(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
