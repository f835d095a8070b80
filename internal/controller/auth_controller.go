package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/middleware"
	"github.com/htranq/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user and an empty profile. Passwords must match and username/email must be unused.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterDTO true "Registration payload"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Field-level validation errors"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Register: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.authService.Register(req); err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("Register: Service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "User registered successfully"})
}

// Login godoc
// @Summary Log in and receive a token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginDTO true "Credentials"
// @Success 200 {object} dto.TokenPairDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	tokens, err := c.authService.Login(req)
	if err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("Login: Rejected")
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid username or password"})
		return
	}
	ctx.JSON(http.StatusOK, tokens)
}

// Profile godoc
// @Summary Profile of the authenticated user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserProfileDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	profile, err := c.authService.Profile(userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
