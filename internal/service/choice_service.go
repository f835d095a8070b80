package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/model"
	"github.com/htranq/quizforge/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type ChoiceService interface {
	ListByQuestion(questionID uuid.UUID) ([]dto.ChoiceResponseDTO, error)
	Create(questionID uuid.UUID, req dto.ChoiceUpsertDTO) (*dto.ChoiceResponseDTO, error)
	Get(id uuid.UUID) (*dto.ChoiceResponseDTO, error)
	Update(id uuid.UUID, req dto.ChoiceUpsertDTO) (*dto.ChoiceResponseDTO, error)
	Delete(id uuid.UUID) error
}

type choiceService struct {
	choiceRepo   repository.ChoiceRepository
	questionRepo repository.QuestionRepository
}

func NewChoiceService(choiceRepo repository.ChoiceRepository, questionRepo repository.QuestionRepository) ChoiceService {
	return &choiceService{choiceRepo: choiceRepo, questionRepo: questionRepo}
}

func (s *choiceService) ListByQuestion(questionID uuid.UUID) ([]dto.ChoiceResponseDTO, error) {
	choices, err := s.choiceRepo.FindByQuestionID(questionID)
	if err != nil {
		log.Error().Err(err).Str("questionID", questionID.String()).Msg("Failed to list choices for question")
		return nil, fmt.Errorf("error fetching choices: %w", err)
	}
	resp := make([]dto.ChoiceResponseDTO, 0, len(choices))
	for _, c := range choices {
		var d dto.ChoiceResponseDTO
		copier.Copy(&d, &c)
		resp = append(resp, d)
	}
	return resp, nil
}

// Create associates the choice with the question from the URL path.
func (s *choiceService) Create(questionID uuid.UUID, req dto.ChoiceUpsertDTO) (*dto.ChoiceResponseDTO, error) {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		return nil, fmt.Errorf("question not found with ID %s: %w", questionID, err)
	}

	choice := model.Choice{
		QuestionID: questionID,
		Text:       req.Text,
		IsCorrect:  req.IsCorrect,
	}
	if err := s.choiceRepo.Create(&choice); err != nil {
		log.Error().Err(err).Str("questionID", questionID.String()).Msg("Failed to create choice")
		return nil, fmt.Errorf("error creating choice: %w", err)
	}
	var resp dto.ChoiceResponseDTO
	copier.Copy(&resp, &choice)
	return &resp, nil
}

func (s *choiceService) Get(id uuid.UUID) (*dto.ChoiceResponseDTO, error) {
	choice, err := s.choiceRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("choice not found with ID %s: %w", id, err)
	}
	var resp dto.ChoiceResponseDTO
	copier.Copy(&resp, choice)
	return &resp, nil
}

func (s *choiceService) Update(id uuid.UUID, req dto.ChoiceUpsertDTO) (*dto.ChoiceResponseDTO, error) {
	choice, err := s.choiceRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("choice not found with ID %s: %w", id, err)
	}
	choice.Text = req.Text
	choice.IsCorrect = req.IsCorrect
	if err := s.choiceRepo.Update(choice); err != nil {
		log.Error().Err(err).Str("choiceID", id.String()).Msg("Failed to update choice")
		return nil, fmt.Errorf("error updating choice: %w", err)
	}
	var resp dto.ChoiceResponseDTO
	copier.Copy(&resp, choice)
	return &resp, nil
}

func (s *choiceService) Delete(id uuid.UUID) error {
	if _, err := s.choiceRepo.FindByID(id); err != nil {
		return fmt.Errorf("choice not found with ID %s: %w", id, err)
	}
	return s.choiceRepo.Delete(id)
}
