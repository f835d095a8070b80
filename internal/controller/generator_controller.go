package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

type GeneratorController struct {
	generatorService service.GeneratorService
}

func NewGeneratorController(generatorService service.GeneratorService) *GeneratorController {
	return &GeneratorController{generatorService: generatorService}
}

// GenerateQuiz godoc
// @Summary Generate a quiz from a topic with Gemini
// @Description Prompts Gemini for a quiz on the given topic, repairs the JSON it returns, and persists the result as a regular quiz.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateQuizDTO true "Topic and optional question count"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing topic or Gemini rejected the request"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "API key invalid or quota exceeded"
// @Failure 500 {object} dto.ErrorResponse "Generation or parsing failed"
// @Router /quizzes/generate-quiz [post]
func (c *GeneratorController) GenerateQuiz(ctx *gin.Context) {
	var req dto.GenerateQuizDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateQuiz: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.generatorService.GenerateQuiz(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("GenerateQuiz: Service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}
