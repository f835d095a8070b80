package dto

import (
	"github.com/google/uuid"
)

// AnswerSubmitDTO is one {question, choice} pair of a submission.
type AnswerSubmitDTO struct {
	Question uuid.UUID `json:"question" binding:"required"`
	Choice   uuid.UUID `json:"choice" binding:"required"`
}

// QuizSubmitDTO is the body of POST /quizzes/:id/submit.
type QuizSubmitDTO struct {
	Answers []AnswerSubmitDTO `json:"answers" binding:"required,dive"`
}

// SubmitResultDTO is returned once the attempt has been recorded and scored.
type SubmitResultDTO struct {
	AttemptID uuid.UUID `json:"attempt_id"`
	Score     float64   `json:"score"`
}
