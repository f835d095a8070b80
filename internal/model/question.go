package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	QuizID    uuid.UUID `json:"quiz_id" gorm:"type:uuid;not null;index"`
	Text      string    `json:"text" gorm:"size:300;not null"`
	Choices   []Choice  `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
