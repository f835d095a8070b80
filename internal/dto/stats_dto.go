package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecentAttemptDTO struct {
	ID          uuid.UUID `json:"id"`
	QuizTitle   string    `json:"quiz_title"`
	Score       float64   `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

type QuizAverageDTO struct {
	QuizTitle string  `json:"quiz_title"`
	AvgScore  float64 `json:"avg_score"`
	Attempts  int64   `json:"attempts"`
}

// DashboardStatsDTO is the per-user dashboard payload.
type DashboardStatsDTO struct {
	UserName       string             `json:"user_name"`
	TotalAttempts  int64              `json:"total_attempts"`
	AvgScore       float64            `json:"avg_score"`
	RecentAttempts []RecentAttemptDTO `json:"recent_attempts"`
	CorrectAnswers int64              `json:"correct_answers"`
	WrongAnswers   int64              `json:"wrong_answers"`
	PerQuizList    []QuizAverageDTO   `json:"per_quiz_list"`
}
