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

type QuestionService interface {
	ListByQuiz(quizID uuid.UUID) ([]dto.QuestionResponseDTO, error)
	Create(quizID uuid.UUID, req dto.QuestionUpsertDTO) (*dto.QuestionResponseDTO, error)
	Get(id uuid.UUID) (*dto.QuestionResponseDTO, error)
	Update(id uuid.UUID, req dto.QuestionUpsertDTO) (*dto.QuestionResponseDTO, error)
	Delete(id uuid.UUID) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
	quizRepo     repository.QuizRepository
	db           *gorm.DB
}

func NewQuestionService(questionRepo repository.QuestionRepository, quizRepo repository.QuizRepository, db *gorm.DB) QuestionService {
	return &questionService{questionRepo: questionRepo, quizRepo: quizRepo, db: db}
}

func (s *questionService) ListByQuiz(quizID uuid.UUID) ([]dto.QuestionResponseDTO, error) {
	questions, err := s.questionRepo.FindByQuizID(quizID)
	if err != nil {
		log.Error().Err(err).Str("quizID", quizID.String()).Msg("Failed to list questions for quiz")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	resp := make([]dto.QuestionResponseDTO, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, toQuestionResponse(&q))
	}
	return resp, nil
}

// Create associates the question with the quiz from the URL path. The quiz id
// is merged here rather than trusted from the body.
func (s *questionService) Create(quizID uuid.UUID, req dto.QuestionUpsertDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		return nil, fmt.Errorf("quiz not found with ID %s: %w", quizID, err)
	}

	question := model.Question{
		QuizID: quizID,
		Text:   req.Text,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Str("quizID", quizID.String()).Msg("Failed to create question")
		return nil, fmt.Errorf("error creating question: %w", err)
	}
	resp := toQuestionResponse(&question)
	return &resp, nil
}

func (s *questionService) Get(id uuid.UUID) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByIDWithChoices(id)
	if err != nil {
		return nil, fmt.Errorf("question not found with ID %s: %w", id, err)
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *questionService) Update(id uuid.UUID, req dto.QuestionUpsertDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("question not found with ID %s: %w", id, err)
	}
	question.Text = req.Text
	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Str("questionID", id.String()).Msg("Failed to update question")
		return nil, fmt.Errorf("error updating question: %w", err)
	}
	return s.Get(id)
}

func (s *questionService) Delete(id uuid.UUID) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		return fmt.Errorf("question not found with ID %s: %w", id, err)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Choice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&model.UserAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, "id = ?", id).Error
	})
}

func toQuestionResponse(question *model.Question) dto.QuestionResponseDTO {
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	if resp.Choices == nil {
		resp.Choices = []dto.ChoiceResponseDTO{}
	}
	return resp
}
