package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/model"
	"github.com/htranq/quizforge/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	maxTitleLen      = 200
	maxQuestionLen   = 300
	maxChoiceLen     = 200
	quizListPageSize = 6
)

type QuizService interface {
	// CreateQuiz persists a quiz with its questions and choices atomically.
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	ListQuizzes(page int) (*dto.QuizPageDTO, error)
	GetQuiz(id uuid.UUID) (*dto.QuizResponseDTO, error)
	UpdateQuiz(id uuid.UUID, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error)
	DeleteQuiz(id uuid.UUID) error
}

type quizService struct {
	quizRepo repository.QuizRepository
	db       *gorm.DB
}

func NewQuizService(quizRepo repository.QuizRepository, db *gorm.DB) QuizService {
	return &quizService{quizRepo: quizRepo, db: db}
}

// validateQuizCreate mirrors the binding tags so payloads arriving outside gin
// binding (the AI generator) get the same field-level errors.
func validateQuizCreate(req dto.QuizCreateDTO) *ValidationError {
	verr := NewValidationError()
	if req.Title == "" {
		verr.Add("title", "This field is required.")
	} else if len(req.Title) > maxTitleLen {
		verr.Add("title", fmt.Sprintf("Ensure this field has no more than %d characters.", maxTitleLen))
	}
	for i, q := range req.Questions {
		field := fmt.Sprintf("questions[%d].text", i)
		if q.Text == "" {
			verr.Add(field, "This field is required.")
		} else if len(q.Text) > maxQuestionLen {
			verr.Add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", maxQuestionLen))
		}
		for j, c := range q.Choices {
			cField := fmt.Sprintf("questions[%d].choices[%d].text", i, j)
			if c.Text == "" {
				verr.Add(cField, "This field is required.")
			} else if len(c.Text) > maxChoiceLen {
				verr.Add(cField, fmt.Sprintf("Ensure this field has no more than %d characters.", maxChoiceLen))
			}
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

func (s *quizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	if verr := validateQuizCreate(req); verr != nil {
		return nil, verr
	}

	quiz := model.Quiz{
		Title:       req.Title,
		Description: req.Description,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return fmt.Errorf("failed to create quiz: %w", err)
		}
		for _, qReq := range req.Questions {
			question := model.Question{
				QuizID: quiz.ID,
				Text:   qReq.Text,
			}
			if err := tx.Create(&question).Error; err != nil {
				return fmt.Errorf("failed to create question for quiz %s: %w", quiz.Title, err)
			}
			for _, cReq := range qReq.Choices {
				choice := model.Choice{
					QuestionID: question.ID,
					Text:       cReq.Text,
					IsCorrect:  cReq.IsCorrect,
				}
				if err := tx.Create(&choice).Error; err != nil {
					return fmt.Errorf("failed to create choice for question %s: %w", question.ID, err)
				}
				question.Choices = append(question.Choices, choice)
			}
			quiz.Questions = append(quiz.Questions, question)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create quiz with questions in transaction")
		return nil, err
	}

	return s.GetQuiz(quiz.ID)
}

func (s *quizService) ListQuizzes(page int) (*dto.QuizPageDTO, error) {
	if page < 1 {
		page = 1
	}
	quizzes, count, err := s.quizRepo.FindPage(page, quizListPageSize)
	if err != nil {
		log.Error().Err(err).Int("page", page).Msg("Failed to list quizzes")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	results := make([]dto.QuizResponseDTO, 0, len(quizzes))
	for _, quiz := range quizzes {
		results = append(results, toQuizResponse(&quiz))
	}
	return &dto.QuizPageDTO{
		Count:    count,
		Page:     page,
		PageSize: quizListPageSize,
		Results:  results,
	}, nil
}

func (s *quizService) GetQuiz(id uuid.UUID) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, fmt.Errorf("quiz not found with ID %s: %w", id, err)
	}
	resp := toQuizResponse(quiz)
	return &resp, nil
}

func (s *quizService) UpdateQuiz(id uuid.UUID, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("quiz not found with ID %s: %w", id, err)
	}
	quiz.Title = req.Title
	quiz.Description = req.Description
	if err := s.quizRepo.Update(quiz); err != nil {
		log.Error().Err(err).Str("quizID", id.String()).Msg("Failed to update quiz")
		return nil, fmt.Errorf("error updating quiz: %w", err)
	}
	return s.GetQuiz(id)
}

// DeleteQuiz removes the quiz and everything hanging off it: questions,
// choices, attempts and their answers.
func (s *quizService) DeleteQuiz(id uuid.UUID) error {
	if _, err := s.quizRepo.FindByID(id); err != nil {
		return fmt.Errorf("quiz not found with ID %s: %w", id, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uuid.UUID
		if err := tx.Model(&model.Question{}).Where("quiz_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		var attemptIDs []uuid.UUID
		if err := tx.Model(&model.QuizAttempt{}).Where("quiz_id = ?", id).Pluck("id", &attemptIDs).Error; err != nil {
			return err
		}
		if len(attemptIDs) > 0 {
			if err := tx.Where("attempt_id IN ?", attemptIDs).Delete(&model.UserAnswer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", attemptIDs).Delete(&model.QuizAttempt{}).Error; err != nil {
				return err
			}
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.Choice{}).Error; err != nil {
				return err
			}
			if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Quiz{}, "id = ?", id).Error
	})
}

func toQuizResponse(quiz *model.Quiz) dto.QuizResponseDTO {
	var resp dto.QuizResponseDTO
	copier.Copy(&resp, quiz)
	if resp.Questions == nil {
		resp.Questions = []dto.QuestionResponseDTO{}
	}
	for i := range resp.Questions {
		if resp.Questions[i].Choices == nil {
			resp.Questions[i].Choices = []dto.ChoiceResponseDTO{}
		}
	}
	return resp
}
