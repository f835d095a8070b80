package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/model"
	"github.com/htranq/quizforge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuestionServiceForTest(t *testing.T) (QuestionService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewQuestionService(repository.NewQuestionRepository(db), repository.NewQuizRepository(db), db)
	return svc, db
}

func TestQuestionService(t *testing.T) {
	t.Run("CreateMergesQuizFromPath", func(t *testing.T) {
		svc, db := newQuestionServiceForTest(t)
		quiz := seedQuiz(t, db, "Host")

		question, err := svc.Create(quiz.ID, dto.QuestionUpsertDTO{Text: "New question?"})
		require.NoError(t, err)
		assert.Equal(t, quiz.ID, question.QuizID)
		assert.Equal(t, "New question?", question.Text)
	})

	t.Run("CreateOnMissingQuiz", func(t *testing.T) {
		svc, _ := newQuestionServiceForTest(t)

		_, err := svc.Create(uuid.New(), dto.QuestionUpsertDTO{Text: "Orphan?"})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("GetIncludesChoices", func(t *testing.T) {
		svc, db := newQuestionServiceForTest(t)
		quiz := seedQuiz(t, db, "Host", "Q1")

		question, err := svc.Get(quiz.Questions[0].ID)
		require.NoError(t, err)
		assert.Len(t, question.Choices, 2)
	})

	t.Run("UpdateKeepsChoices", func(t *testing.T) {
		svc, db := newQuestionServiceForTest(t)
		quiz := seedQuiz(t, db, "Host", "Q1")

		updated, err := svc.Update(quiz.Questions[0].ID, dto.QuestionUpsertDTO{Text: "Rephrased?"})
		require.NoError(t, err)
		assert.Equal(t, "Rephrased?", updated.Text)
		assert.Len(t, updated.Choices, 2)
	})

	t.Run("DeleteRemovesChoicesAndAnswers", func(t *testing.T) {
		svc, db := newQuestionServiceForTest(t)
		quiz := seedQuiz(t, db, "Host", "Q1", "Q2")
		user := seedUser(t, db, "alice")

		attempt := model.QuizAttempt{UserID: user.ID, QuizID: quiz.ID}
		require.NoError(t, db.Create(&attempt).Error)
		require.NoError(t, db.Create(&model.UserAnswer{
			AttemptID:        attempt.ID,
			QuestionID:       quiz.Questions[0].ID,
			SelectedChoiceID: correctChoice(t, quiz.Questions[0]).ID,
		}).Error)

		require.NoError(t, svc.Delete(quiz.Questions[0].ID))

		var questions, choices, answers int64
		require.NoError(t, db.Model(&model.Question{}).Count(&questions).Error)
		require.NoError(t, db.Model(&model.Choice{}).Count(&choices).Error)
		require.NoError(t, db.Model(&model.UserAnswer{}).Count(&answers).Error)
		assert.Equal(t, int64(1), questions)
		assert.Equal(t, int64(2), choices)
		assert.Zero(t, answers)
	})
}
