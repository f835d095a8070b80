package repository

import (
	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/model"
	"gorm.io/gorm"
)

type ChoiceRepository interface {
	Create(choice *model.Choice) error
	FindByID(id uuid.UUID) (*model.Choice, error)
	FindByQuestionID(questionID uuid.UUID) ([]model.Choice, error)
	Update(choice *model.Choice) error
	Delete(id uuid.UUID) error
}

type choiceRepository struct {
	db *gorm.DB
}

func NewChoiceRepository(db *gorm.DB) ChoiceRepository {
	return &choiceRepository{db: db}
}

func (r *choiceRepository) Create(choice *model.Choice) error {
	return r.db.Create(choice).Error
}

func (r *choiceRepository) FindByID(id uuid.UUID) (*model.Choice, error) {
	var choice model.Choice
	if err := r.db.First(&choice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &choice, nil
}

func (r *choiceRepository) FindByQuestionID(questionID uuid.UUID) ([]model.Choice, error) {
	var choices []model.Choice
	err := r.db.Where("question_id = ?", questionID).Order("created_at ASC").Find(&choices).Error
	return choices, err
}

func (r *choiceRepository) Update(choice *model.Choice) error {
	return r.db.Save(choice).Error
}

func (r *choiceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Choice{}, "id = ?", id).Error
}
