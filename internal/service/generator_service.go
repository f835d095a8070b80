package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/htranq/quizforge/internal/dto"
	"github.com/rs/zerolog/log"
)

const defaultNumQuestions = 5

// QuizBuilder is the slice of QuizService the generator needs: the nested
// create with its validation.
type QuizBuilder interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
}

type GeneratorService interface {
	// GenerateQuiz prompts the text-generation service for quiz JSON, repairs
	// and parses the reply, and persists it through the nested builder.
	GenerateQuiz(ctx context.Context, req dto.GenerateQuizDTO) (*dto.QuizResponseDTO, error)
}

type generatorService struct {
	client   GeminiClient
	repairer ResponseRepairer
	builder  QuizBuilder
}

func NewGeneratorService(client GeminiClient, repairer ResponseRepairer, builder QuizBuilder) GeneratorService {
	return &generatorService{client: client, repairer: repairer, builder: builder}
}

func buildQuizPrompt(topic string, numQuestions int) string {
	return fmt.Sprintf(`Generate a quiz on the topic '%s' with %d multiple-choice questions.
Provide JSON in this format:
{
    "title": "%s Quiz",
    "description": "Quiz description",
    "questions": [
        {
            "text": "Question text",
            "choices": [
                {"text": "Choice 1", "is_correct": true},
                {"text": "Choice 2", "is_correct": false}
            ]
        }
    ]
}`, topic, numQuestions, topic)
}

func (s *generatorService) GenerateQuiz(ctx context.Context, req dto.GenerateQuizDTO) (*dto.QuizResponseDTO, error) {
	if req.Topic == "" {
		verr := NewValidationError()
		verr.Add("topic", "Topic is required")
		return nil, verr
	}
	if !s.client.Configured() {
		return nil, &GenerationError{
			Status:  http.StatusInternalServerError,
			Message: "Gemini API key not configured",
		}
	}

	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = defaultNumQuestions
	}

	prompt := buildQuizPrompt(req.Topic, numQuestions)
	content, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	repaired, err := s.repairer.Repair(content)
	if err != nil {
		log.Warn().Err(err).Str("topic", req.Topic).Msg("AI response could not be repaired")
		return nil, err
	}

	var payload dto.QuizCreateDTO
	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		log.Warn().Err(err).Str("topic", req.Topic).Msg("Failed to parse AI response as quiz payload")
		return nil, &GenerationError{
			Status:  http.StatusInternalServerError,
			Message: "Failed to parse AI response",
			Details: fmt.Sprintf("%s. Raw response: %s", err.Error(), content),
		}
	}

	quiz, err := s.builder.CreateQuiz(payload)
	if err != nil {
		return nil, err
	}
	log.Info().Str("topic", req.Topic).Str("quizID", quiz.ID.String()).Int("questions", len(quiz.Questions)).Msg("AI-generated quiz created")
	return quiz, nil
}
