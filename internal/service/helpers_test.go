package service

import (
	"fmt"
	"testing"

	"github.com/htranq/quizforge/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database migrated with the full
// schema. Each test gets its own named database so state never bleeds.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.UserProfile{},
		&model.Quiz{},
		&model.Question{},
		&model.Choice{},
		&model.QuizAttempt{},
		&model.UserAnswer{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedQuiz creates a quiz with one question per entry; each question gets one
// correct choice and one wrong choice.
func seedQuiz(t *testing.T, db *gorm.DB, title string, questionTexts ...string) *model.Quiz {
	t.Helper()
	quiz := &model.Quiz{Title: title}
	require.NoError(t, db.Create(quiz).Error)
	for _, text := range questionTexts {
		question := &model.Question{QuizID: quiz.ID, Text: text}
		require.NoError(t, db.Create(question).Error)
		require.NoError(t, db.Create(&model.Choice{QuestionID: question.ID, Text: "right", IsCorrect: true}).Error)
		require.NoError(t, db.Create(&model.Choice{QuestionID: question.ID, Text: "wrong"}).Error)
		question.Choices = nil
		quiz.Questions = append(quiz.Questions, *question)
	}

	if len(quiz.Questions) > 0 {
		var loaded model.Quiz
		require.NoError(t, db.Preload("Questions.Choices").First(&loaded, "id = ?", quiz.ID).Error)
		return &loaded
	}
	return quiz
}

// correctChoice picks the choice flagged correct for a seeded question.
func correctChoice(t *testing.T, question model.Question) model.Choice {
	t.Helper()
	for _, c := range question.Choices {
		if c.IsCorrect {
			return c
		}
	}
	t.Fatalf("question %s has no correct choice", question.ID)
	return model.Choice{}
}

// wrongChoice picks a choice not flagged correct for a seeded question.
func wrongChoice(t *testing.T, question model.Question) model.Choice {
	t.Helper()
	for _, c := range question.Choices {
		if !c.IsCorrect {
			return c
		}
	}
	t.Fatalf("question %s has no wrong choice", question.ID)
	return model.Choice{}
}
