package repository

import (
	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uuid.UUID) (*model.Question, error)
	FindByIDWithChoices(id uuid.UUID) (*model.Question, error)
	FindByQuizID(quizID uuid.UUID) ([]model.Question, error)
	Update(question *model.Question) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uuid.UUID) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDWithChoices(id uuid.UUID) (*model.Question, error) {
	var question model.Question
	err := r.db.
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.created_at ASC")
		}).
		First(&question, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByQuizID(quizID uuid.UUID) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.created_at ASC")
		}).
		Where("quiz_id = ?", quizID).
		Order("created_at ASC").
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}
