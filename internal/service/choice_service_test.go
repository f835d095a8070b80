package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newChoiceServiceForTest(t *testing.T) (ChoiceService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewChoiceService(repository.NewChoiceRepository(db), repository.NewQuestionRepository(db))
	return svc, db
}

func TestChoiceService(t *testing.T) {
	t.Run("CreateMergesQuestionFromPath", func(t *testing.T) {
		svc, db := newChoiceServiceForTest(t)
		quiz := seedQuiz(t, db, "Host", "Q1")

		choice, err := svc.Create(quiz.Questions[0].ID, dto.ChoiceUpsertDTO{Text: "Maybe", IsCorrect: true})
		require.NoError(t, err)
		assert.Equal(t, quiz.Questions[0].ID, choice.QuestionID)
		assert.True(t, choice.IsCorrect)
	})

	t.Run("CreateOnMissingQuestion", func(t *testing.T) {
		svc, _ := newChoiceServiceForTest(t)

		_, err := svc.Create(uuid.New(), dto.ChoiceUpsertDTO{Text: "Orphan"})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("ListByQuestion", func(t *testing.T) {
		svc, db := newChoiceServiceForTest(t)
		quiz := seedQuiz(t, db, "Host", "Q1")

		choices, err := svc.ListByQuestion(quiz.Questions[0].ID)
		require.NoError(t, err)
		assert.Len(t, choices, 2)
	})

	t.Run("UpdateFlipsCorrectness", func(t *testing.T) {
		svc, db := newChoiceServiceForTest(t)
		quiz := seedQuiz(t, db, "Host", "Q1")
		wrong := wrongChoice(t, quiz.Questions[0])

		updated, err := svc.Update(wrong.ID, dto.ChoiceUpsertDTO{Text: wrong.Text, IsCorrect: true})
		require.NoError(t, err)
		assert.True(t, updated.IsCorrect)
	})

	t.Run("Delete", func(t *testing.T) {
		svc, db := newChoiceServiceForTest(t)
		quiz := seedQuiz(t, db, "Host", "Q1")

		require.NoError(t, svc.Delete(quiz.Questions[0].Choices[0].ID))

		choices, err := svc.ListByQuestion(quiz.Questions[0].ID)
		require.NoError(t, err)
		assert.Len(t, choices, 1)

		assert.ErrorIs(t, svc.Delete(uuid.New()), gorm.ErrRecordNotFound)
	})
}
