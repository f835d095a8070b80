package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserAnswer records the choice a user selected for one question of an attempt.
// The composite unique index is the guard against duplicate answers for the
// same question within one attempt.
type UserAnswer struct {
	ID               uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	AttemptID        uuid.UUID `json:"attempt_id" gorm:"type:uuid;not null;uniqueIndex:idx_attempt_question"`
	QuestionID       uuid.UUID `json:"question_id" gorm:"type:uuid;not null;uniqueIndex:idx_attempt_question"`
	Question         Question  `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	SelectedChoiceID uuid.UUID `json:"selected_choice_id" gorm:"type:uuid;not null"`
	SelectedChoice   Choice    `json:"-" gorm:"foreignKey:SelectedChoiceID;constraint:OnDelete:CASCADE"`
}

func (a *UserAnswer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
