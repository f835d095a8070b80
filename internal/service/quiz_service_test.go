package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/dto"
	"github.com/htranq/quizforge/internal/model"
	"github.com/htranq/quizforge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuizServiceForTest(t *testing.T) (QuizService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewQuizService(repository.NewQuizRepository(db), db), db
}

func nestedQuizPayload() dto.QuizCreateDTO {
	return dto.QuizCreateDTO{
		Title:       "Go Basics",
		Description: "Syntax and tooling",
		Questions: []dto.QuestionCreateDTO{
			{
				Text: "What does go fmt do?",
				Choices: []dto.ChoiceCreateDTO{
					{Text: "Formats source files", IsCorrect: true},
					{Text: "Runs tests"},
				},
			},
			{
				Text: "Which keyword starts a goroutine?",
				Choices: []dto.ChoiceCreateDTO{
					{Text: "go", IsCorrect: true},
					{Text: "async"},
					{Text: "spawn"},
				},
			},
		},
	}
}

func TestCreateQuiz(t *testing.T) {
	t.Run("NestedCreate", func(t *testing.T) {
		svc, _ := newQuizServiceForTest(t)

		quiz, err := svc.CreateQuiz(nestedQuizPayload())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, quiz.ID)
		assert.Equal(t, "Go Basics", quiz.Title)
		require.Len(t, quiz.Questions, 2)
		assert.Equal(t, "What does go fmt do?", quiz.Questions[0].Text)
		assert.Len(t, quiz.Questions[0].Choices, 2)
		assert.Len(t, quiz.Questions[1].Choices, 3)
		for _, q := range quiz.Questions {
			assert.Equal(t, quiz.ID, q.QuizID)
		}
	})

	t.Run("QuestionsWithoutChoicesAreAllowed", func(t *testing.T) {
		svc, _ := newQuizServiceForTest(t)

		quiz, err := svc.CreateQuiz(dto.QuizCreateDTO{
			Title:     "Sparse",
			Questions: []dto.QuestionCreateDTO{{Text: "Unanswerable?"}},
		})
		require.NoError(t, err)
		require.Len(t, quiz.Questions, 1)
		assert.Empty(t, quiz.Questions[0].Choices)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		svc, db := newQuizServiceForTest(t)

		_, err := svc.CreateQuiz(dto.QuizCreateDTO{})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "title")

		var count int64
		require.NoError(t, db.Model(&model.Quiz{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("OverlongFieldsCollectPerFieldErrors", func(t *testing.T) {
		svc, _ := newQuizServiceForTest(t)

		_, err := svc.CreateQuiz(dto.QuizCreateDTO{
			Title: strings.Repeat("t", 201),
			Questions: []dto.QuestionCreateDTO{
				{Text: strings.Repeat("q", 301), Choices: []dto.ChoiceCreateDTO{{Text: strings.Repeat("c", 201)}}},
			},
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "title")
		assert.Contains(t, verr.Fields, "questions[0].text")
		assert.Contains(t, verr.Fields, "questions[0].choices[0].text")
	})

	t.Run("EmptyQuestionTextRejectsWholePayload", func(t *testing.T) {
		svc, db := newQuizServiceForTest(t)

		_, err := svc.CreateQuiz(dto.QuizCreateDTO{
			Title:     "Partial",
			Questions: []dto.QuestionCreateDTO{{Text: "ok"}, {Text: ""}},
		})
		require.Error(t, err)

		var count int64
		require.NoError(t, db.Model(&model.Question{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestListQuizzes(t *testing.T) {
	svc, db := newQuizServiceForTest(t)
	for i := 0; i < 8; i++ {
		seedQuiz(t, db, fmt.Sprintf("Quiz %d", i))
	}

	page1, err := svc.ListQuizzes(1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), page1.Count)
	assert.Equal(t, 1, page1.Page)
	assert.Equal(t, 6, page1.PageSize)
	assert.Len(t, page1.Results, 6)

	page2, err := svc.ListQuizzes(2)
	require.NoError(t, err)
	assert.Len(t, page2.Results, 2)

	page3, err := svc.ListQuizzes(3)
	require.NoError(t, err)
	assert.Empty(t, page3.Results)
	assert.Equal(t, int64(8), page3.Count)
}

func TestGetQuiz(t *testing.T) {
	svc, db := newQuizServiceForTest(t)
	seeded := seedQuiz(t, db, "Known", "Q1")

	t.Run("Found", func(t *testing.T) {
		quiz, err := svc.GetQuiz(seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "Known", quiz.Title)
		require.Len(t, quiz.Questions, 1)
		assert.Len(t, quiz.Questions[0].Choices, 2)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.GetQuiz(uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestUpdateQuiz(t *testing.T) {
	svc, db := newQuizServiceForTest(t)
	seeded := seedQuiz(t, db, "Before", "Q1")

	updated, err := svc.UpdateQuiz(seeded.ID, dto.QuizUpdateDTO{Title: "After", Description: "New"})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "New", updated.Description)
	// Questions survive metadata updates.
	assert.Len(t, updated.Questions, 1)

	_, err = svc.UpdateQuiz(uuid.New(), dto.QuizUpdateDTO{Title: "X"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteQuiz(t *testing.T) {
	svc, db := newQuizServiceForTest(t)
	quiz := seedQuiz(t, db, "Doomed", "Q1", "Q2")
	user := seedUser(t, db, "alice")

	attempt := model.QuizAttempt{UserID: user.ID, QuizID: quiz.ID, Score: 50}
	require.NoError(t, db.Create(&attempt).Error)
	require.NoError(t, db.Create(&model.UserAnswer{
		AttemptID:        attempt.ID,
		QuestionID:       quiz.Questions[0].ID,
		SelectedChoiceID: correctChoice(t, quiz.Questions[0]).ID,
	}).Error)

	require.NoError(t, svc.DeleteQuiz(quiz.ID))

	for _, probe := range []struct {
		name  string
		model any
	}{
		{"quizzes", &model.Quiz{}},
		{"questions", &model.Question{}},
		{"choices", &model.Choice{}},
		{"attempts", &model.QuizAttempt{}},
		{"answers", &model.UserAnswer{}},
	} {
		var count int64
		require.NoError(t, db.Model(probe.model).Count(&count).Error)
		assert.Zero(t, count, "expected no %s left", probe.name)
	}

	assert.ErrorIs(t, svc.DeleteQuiz(uuid.New()), gorm.ErrRecordNotFound)
}
