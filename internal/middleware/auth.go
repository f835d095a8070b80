package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/rs/zerolog/log"
)

const userIDKey = "userID"

// TokenParser is the slice of the auth service the middleware needs.
type TokenParser interface {
	ParseAccessToken(token string) (uuid.UUID, error)
}

// RequireAuth validates the Bearer token and stores the user id in the
// request context. Reads stay public; every mutating route goes through here.
func RequireAuth(parser TokenParser) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication credentials were not provided"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authorization header must be a Bearer token"})
			return
		}

		userID, err := parser.ParseAccessToken(tokenStr)
		if err != nil {
			log.Debug().Err(err).Msg("Rejected access token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// CurrentUserID returns the authenticated user id set by RequireAuth.
func CurrentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	val, exists := ctx.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	return userID, ok
}
