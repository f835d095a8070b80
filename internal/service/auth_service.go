package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/htranq/quizforge/config"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/model"
	"github.com/htranq/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// TokenClaims are the JWT claims carried by both token kinds.
type TokenClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(req dto.RegisterDTO) error
	Login(req dto.LoginDTO) (*dto.TokenPairDTO, error)
	Profile(userID uuid.UUID) (*dto.UserProfileDTO, error)
	// ParseAccessToken validates a bearer token and returns the user id.
	ParseAccessToken(token string) (uuid.UUID, error)
}

type authService struct {
	userRepo repository.UserRepository
	secret   []byte
	db       *gorm.DB
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, db *gorm.DB) AuthService {
	return &authService{userRepo: userRepo, secret: []byte(cfg.JWTSecret), db: db}
}

func (s *authService) Register(req dto.RegisterDTO) error {
	verr := NewValidationError()
	if req.Password != req.Password2 {
		verr.Add("password", "Passwords do not match")
	}
	if exists, err := s.userRepo.ExistsByUsername(req.Username); err != nil {
		return fmt.Errorf("error checking username: %w", err)
	} else if exists {
		verr.Add("username", "Username already exists")
	}
	if exists, err := s.userRepo.ExistsByEmail(req.Email); err != nil {
		return fmt.Errorf("error checking email: %w", err)
	} else if exists {
		verr.Add("email", "Email already exists")
	}
	if verr.HasErrors() {
		return verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	// Profile is created alongside the user so GET /auth/profile always
	// resolves for a registered account.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&model.UserProfile{UserID: user.ID}).Error
	})
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Failed to register user")
		return fmt.Errorf("error registering user: %w", err)
	}

	log.Info().Str("username", req.Username).Msg("User registered")
	return nil
}

func (s *authService) Login(req dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	access, err := s.issueToken(user.ID, "access", accessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := s.issueToken(user.ID, "refresh", refreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return &dto.TokenPairDTO{
		Refresh:  refresh,
		Access:   access,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *authService) Profile(userID uuid.UUID) (*dto.UserProfileDTO, error) {
	profile, err := s.userRepo.FindProfileByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("profile not found for user %s: %w", userID, err)
	}
	return &dto.UserProfileDTO{
		ID: profile.ID,
		User: dto.UserDTO{
			ID:       profile.User.ID,
			Username: profile.User.Username,
			Email:    profile.User.Email,
		},
		TotalScore: profile.TotalScore,
		Level:      profile.Level,
	}, nil
}

func (s *authService) issueToken(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID:    userID.String(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authService) ParseAccessToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}
	if claims.TokenType != "access" {
		return uuid.Nil, fmt.Errorf("token is not an access token")
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id in token: %w", err)
	}
	return userID, nil
}
