package dto

import (
	"time"

	"github.com/google/uuid"
)

// ChoiceCreateDTO is one answer option inside a nested quiz create payload.
type ChoiceCreateDTO struct {
	Text      string `json:"text" binding:"required,max=200"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionCreateDTO is one question inside a nested quiz create payload.
type QuestionCreateDTO struct {
	Text    string            `json:"text" binding:"required,max=300"`
	Choices []ChoiceCreateDTO `json:"choices" binding:"omitempty,dive"`
}

// QuizCreateDTO is the full nested payload: a quiz with its questions and each
// question's choices, persisted atomically. The AI generator parses Gemini
// output into this same shape.
type QuizCreateDTO struct {
	Title       string              `json:"title" binding:"required,max=200"`
	Description string              `json:"description,omitempty"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// QuizUpdateDTO updates quiz metadata only, never its questions.
type QuizUpdateDTO struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description,omitempty"`
}

// QuestionUpsertDTO creates or updates a single question. The owning quiz id
// comes from the URL path and is merged in by the controller.
type QuestionUpsertDTO struct {
	Text string `json:"text" binding:"required,max=300"`
}

// ChoiceUpsertDTO creates or updates a single choice. The owning question id
// comes from the URL path and is merged in by the controller.
type ChoiceUpsertDTO struct {
	Text      string `json:"text" binding:"required,max=200"`
	IsCorrect bool   `json:"is_correct"`
}

// GenerateQuizDTO asks the AI generator for a quiz on a topic.
type GenerateQuizDTO struct {
	Topic        string `json:"topic"`
	NumQuestions int    `json:"num_questions"`
}

type ChoiceResponseDTO struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	Text       string    `json:"text"`
	IsCorrect  bool      `json:"is_correct"`
}

type QuestionResponseDTO struct {
	ID      uuid.UUID           `json:"id"`
	QuizID  uuid.UUID           `json:"quiz_id"`
	Text    string              `json:"text"`
	Choices []ChoiceResponseDTO `json:"choices"`
}

type QuizResponseDTO struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	Questions   []QuestionResponseDTO `json:"questions"`
}

// QuizPageDTO is the paginated quiz listing.
type QuizPageDTO struct {
	Count    int64             `json:"count"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Results  []QuizResponseDTO `json:"results"`
}
