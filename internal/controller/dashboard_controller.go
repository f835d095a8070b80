package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/middleware"
	"github.com/htranq/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

type DashboardController struct {
	statsService service.StatsService
}

func NewDashboardController(statsService service.StatsService) *DashboardController {
	return &DashboardController{statsService: statsService}
}

// DashboardStats godoc
// @Summary Dashboard statistics for the authenticated user
// @Description Aggregates attempt counts, average score, the five most recent attempts, correct/wrong answer totals, and per-quiz averages.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardStatsDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /quizzes/dashboard/stats [get]
func (c *DashboardController) DashboardStats(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	stats, err := c.statsService.DashboardStats(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("DashboardStats: Service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
