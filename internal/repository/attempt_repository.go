package repository

import (
	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/model"
	"gorm.io/gorm"
)

// QuizAverage is one row of the per-quiz mean-score aggregation.
type QuizAverage struct {
	QuizTitle string
	AvgScore  float64
	Attempts  int64
}

type AttemptRepository interface {
	CountByUser(userID uuid.UUID) (int64, error)
	AverageScoreByUser(userID uuid.UUID) (float64, error)
	FindRecentByUser(userID uuid.UUID, limit int) ([]model.QuizAttempt, error)
	AveragePerQuiz(userID uuid.UUID, limit int) ([]QuizAverage, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.QuizAttempt{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *attemptRepository) AverageScoreByUser(userID uuid.UUID) (float64, error) {
	var avg float64
	err := r.db.Model(&model.QuizAttempt{}).
		Where("user_id = ?", userID).
		Select("COALESCE(AVG(score), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *attemptRepository) FindRecentByUser(userID uuid.UUID, limit int) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.
		Preload("Quiz").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) AveragePerQuiz(userID uuid.UUID, limit int) ([]QuizAverage, error) {
	var rows []QuizAverage
	err := r.db.Model(&model.QuizAttempt{}).
		Select("quizzes.title AS quiz_title, AVG(quiz_attempts.score) AS avg_score, COUNT(quiz_attempts.id) AS attempts").
		Joins("JOIN quizzes ON quizzes.id = quiz_attempts.quiz_id").
		Where("quiz_attempts.user_id = ?", userID).
		Group("quizzes.title").
		Order("avg_score DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
