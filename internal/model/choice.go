package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Choice struct {
	ID         uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	QuestionID uuid.UUID `json:"question_id" gorm:"type:uuid;not null;index"`
	Text       string    `json:"text" gorm:"size:200;not null"`
	IsCorrect  bool      `json:"is_correct" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *Choice) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
