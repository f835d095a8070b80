package service

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	recentAttemptsLimit = 5
	perQuizLimit        = 10
)

type StatsService interface {
	// DashboardStats derives the per-user dashboard from attempt data.
	// Everything is computed at query time; nothing stored is mutated.
	DashboardStats(userID uuid.UUID) (*dto.DashboardStatsDTO, error)
}

type statsService struct {
	attemptRepo repository.AttemptRepository
	answerRepo  repository.UserAnswerRepository
	userRepo    repository.UserRepository
}

func NewStatsService(attemptRepo repository.AttemptRepository, answerRepo repository.UserAnswerRepository, userRepo repository.UserRepository) StatsService {
	return &statsService{attemptRepo: attemptRepo, answerRepo: answerRepo, userRepo: userRepo}
}

func (s *statsService) DashboardStats(userID uuid.UUID) (*dto.DashboardStatsDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found with ID %s: %w", userID, err)
	}

	totalAttempts, err := s.attemptRepo.CountByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error counting attempts: %w", err)
	}

	avgScore, err := s.attemptRepo.AverageScoreByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error averaging scores: %w", err)
	}

	recent, err := s.attemptRepo.FindRecentByUser(userID, recentAttemptsLimit)
	if err != nil {
		return nil, fmt.Errorf("error fetching recent attempts: %w", err)
	}
	recentDTOs := make([]dto.RecentAttemptDTO, 0, len(recent))
	for _, attempt := range recent {
		recentDTOs = append(recentDTOs, dto.RecentAttemptDTO{
			ID:          attempt.ID,
			QuizTitle:   attempt.Quiz.Title,
			Score:       attempt.Score,
			CompletedAt: attempt.CompletedAt,
		})
	}

	// Correctness is judged against the choice's current flag, so editing a
	// choice rewrites history.
	correctAnswers, err := s.answerRepo.CountByUserAndCorrectness(userID, true)
	if err != nil {
		return nil, fmt.Errorf("error counting correct answers: %w", err)
	}
	wrongAnswers, err := s.answerRepo.CountByUserAndCorrectness(userID, false)
	if err != nil {
		return nil, fmt.Errorf("error counting wrong answers: %w", err)
	}

	perQuiz, err := s.attemptRepo.AveragePerQuiz(userID, perQuizLimit)
	if err != nil {
		return nil, fmt.Errorf("error aggregating per-quiz averages: %w", err)
	}
	perQuizDTOs := make([]dto.QuizAverageDTO, 0, len(perQuiz))
	for _, row := range perQuiz {
		perQuizDTOs = append(perQuizDTOs, dto.QuizAverageDTO{
			QuizTitle: row.QuizTitle,
			AvgScore:  math.Round(row.AvgScore*100) / 100,
			Attempts:  row.Attempts,
		})
	}

	log.Debug().Str("userID", userID.String()).Int64("attempts", totalAttempts).Msg("Dashboard stats computed")
	return &dto.DashboardStatsDTO{
		UserName:       user.Username,
		TotalAttempts:  totalAttempts,
		AvgScore:       avgScore,
		RecentAttempts: recentDTOs,
		CorrectAnswers: correctAnswers,
		WrongAnswers:   wrongAnswers,
		PerQuizList:    perQuizDTOs,
	}, nil
}
