package repository

import (
	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/model"
	"gorm.io/gorm"
)

type UserAnswerRepository interface {
	// CountByUserAndCorrectness tallies a user's answers across all attempts,
	// judged by the selected choice's current is_correct flag.
	CountByUserAndCorrectness(userID uuid.UUID, correct bool) (int64, error)
}

type userAnswerRepository struct {
	db *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) UserAnswerRepository {
	return &userAnswerRepository{db: db}
}

func (r *userAnswerRepository) CountByUserAndCorrectness(userID uuid.UUID, correct bool) (int64, error) {
	var count int64
	err := r.db.Model(&model.UserAnswer{}).
		Joins("JOIN quiz_attempts ON quiz_attempts.id = user_answers.attempt_id").
		Joins("JOIN choices ON choices.id = user_answers.selected_choice_id").
		Where("quiz_attempts.user_id = ? AND choices.is_correct = ?", userID, correct).
		Count(&count).Error
	return count, err
}
