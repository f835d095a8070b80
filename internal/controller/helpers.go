package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/service"
	"gorm.io/gorm"
)

// parseIDParam reads a UUID path parameter; a malformed id is a 400.
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid ID format", Details: []string{err.Error()}})
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps service-layer errors onto the HTTP taxonomy:
// validation 400, not-found 404, upstream generation errors carry their own
// status, anything else 500.
func respondServiceError(ctx *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Details: verr.Details()})
		return
	}

	var gerr *service.GenerationError
	if errors.As(err, &gerr) {
		resp := dto.ErrorResponse{Message: gerr.Message}
		if gerr.Details != "" {
			resp.Details = []string{gerr.Details}
		}
		ctx.JSON(gerr.Status, resp)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
}
