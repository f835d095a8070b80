package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/model"
	"github.com/htranq/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SubmissionService interface {
	// SubmitQuiz records one scored attempt. The whole submission runs in a
	// single transaction; a missing question or choice rolls everything back.
	SubmitQuiz(quizID, userID uuid.UUID, req dto.QuizSubmitDTO) (*dto.SubmitResultDTO, error)
}

type submissionService struct {
	quizRepo repository.QuizRepository
	db       *gorm.DB
}

func NewSubmissionService(quizRepo repository.QuizRepository, db *gorm.DB) SubmissionService {
	return &submissionService{quizRepo: quizRepo, db: db}
}

func (s *submissionService) SubmitQuiz(quizID, userID uuid.UUID, req dto.QuizSubmitDTO) (*dto.SubmitResultDTO, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		return nil, fmt.Errorf("quiz not found with ID %s: %w", quizID, err)
	}

	attempt := model.QuizAttempt{
		UserID: userID,
		QuizID: quiz.ID,
	}
	var score float64

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return fmt.Errorf("failed to create attempt record: %w", err)
		}

		correct := 0
		answers := make([]model.UserAnswer, 0, len(req.Answers))
		for _, ans := range req.Answers {
			var question model.Question
			if err := tx.First(&question, "id = ?", ans.Question).Error; err != nil {
				return fmt.Errorf("question not found with ID %s: %w", ans.Question, err)
			}
			var choice model.Choice
			if err := tx.First(&choice, "id = ?", ans.Choice).Error; err != nil {
				return fmt.Errorf("choice not found with ID %s: %w", ans.Choice, err)
			}

			if choice.IsCorrect {
				correct++
			}
			answers = append(answers, model.UserAnswer{
				AttemptID:        attempt.ID,
				QuestionID:       question.ID,
				SelectedChoiceID: choice.ID,
			})
		}

		if len(answers) > 0 {
			// Duplicate question ids in the input hit the (attempt, question)
			// unique index here; the constraint is the dedup guard.
			if err := tx.Create(&answers).Error; err != nil {
				return fmt.Errorf("failed to record answers: %w", err)
			}
		}

		// Scored against the full quiz, not only the answered questions.
		var totalQuestions int64
		if err := tx.Model(&model.Question{}).Where("quiz_id = ?", quiz.ID).Count(&totalQuestions).Error; err != nil {
			return err
		}
		if totalQuestions > 0 {
			score = float64(correct) / float64(totalQuestions) * 100
		}

		return tx.Model(&attempt).Update("score", score).Error
	})
	if err != nil {
		log.Error().Err(err).Str("quizID", quizID.String()).Str("userID", userID.String()).Msg("Quiz submission failed")
		return nil, err
	}

	log.Info().Str("attemptID", attempt.ID.String()).Float64("score", score).Msg("Quiz attempt recorded")
	return &dto.SubmitResultDTO{AttemptID: attempt.ID, Score: score}, nil
}
