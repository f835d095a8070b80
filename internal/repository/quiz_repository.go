package repository

import (
	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	FindByID(id uuid.UUID) (*model.Quiz, error)
	FindByIDWithQuestions(id uuid.UUID) (*model.Quiz, error)
	FindPage(page, pageSize int) ([]model.Quiz, int64, error)
	CountQuestions(quizID uuid.UUID) (int64, error)
	Update(quiz *model.Quiz) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) FindByID(id uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.created_at ASC")
		}).
		Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.created_at ASC")
		}).
		First(&quiz, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindPage(page, pageSize int) ([]model.Quiz, int64, error) {
	var count int64
	if err := r.db.Model(&model.Quiz{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var quizzes []model.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.created_at ASC")
		}).
		Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.created_at ASC")
		}).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&quizzes).Error
	return quizzes, count, err
}

func (r *quizRepository) CountQuestions(quizID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Where("quiz_id = ?", quizID).Count(&count).Error
	return count, err
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	return r.db.Save(quiz).Error
}
