package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfile is created together with its User. TotalScore and Level are
// reserved for a future progression feature; no operation writes them yet.
type UserProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	User       User      `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TotalScore int       `json:"total_score" gorm:"not null;default:0"`
	Level      string    `json:"level" gorm:"size:20;not null;default:'Beginner'"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
