package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizAttempt struct {
	ID          uuid.UUID    `gorm:"type:uuid;primarykey" json:"id"`
	UserID      uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;index"`
	User        User         `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	QuizID      uuid.UUID    `json:"quiz_id" gorm:"type:uuid;not null;index"`
	Quiz        Quiz         `json:"quiz,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Score       float64      `json:"score" gorm:"not null;default:0"`
	Answers     []UserAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE"`
	CompletedAt time.Time    `json:"completed_at" gorm:"autoCreateTime"`
}

func (a *QuizAttempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
