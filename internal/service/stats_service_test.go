package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/htranq/quizforge/internal/model"
	"github.com/htranq/quizforge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStatsServiceForTest(t *testing.T) (StatsService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewStatsService(
		repository.NewAttemptRepository(db),
		repository.NewUserAnswerRepository(db),
		repository.NewUserRepository(db),
	)
	return svc, db
}

func seedAttempt(t *testing.T, db *gorm.DB, userID, quizID uuid.UUID, score float64, at time.Time) *model.QuizAttempt {
	t.Helper()
	attempt := &model.QuizAttempt{UserID: userID, QuizID: quizID, Score: score, CompletedAt: at}
	require.NoError(t, db.Create(attempt).Error)
	return attempt
}

func TestDashboardStats(t *testing.T) {
	t.Run("NewUserHasEmptyDashboard", func(t *testing.T) {
		svc, db := newStatsServiceForTest(t)
		user := seedUser(t, db, "fresh")

		stats, err := svc.DashboardStats(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "fresh", stats.UserName)
		assert.Zero(t, stats.TotalAttempts)
		assert.Zero(t, stats.AvgScore)
		assert.Empty(t, stats.RecentAttempts)
		assert.Zero(t, stats.CorrectAnswers)
		assert.Zero(t, stats.WrongAnswers)
		assert.Empty(t, stats.PerQuizList)
	})

	t.Run("AveragesAndCounts", func(t *testing.T) {
		svc, db := newStatsServiceForTest(t)
		user := seedUser(t, db, "alice")
		quiz := seedQuiz(t, db, "Go Basics", "Q1")

		base := time.Now().Add(-time.Hour)
		seedAttempt(t, db, user.ID, quiz.ID, 50, base)
		seedAttempt(t, db, user.ID, quiz.ID, 75, base.Add(time.Minute))
		seedAttempt(t, db, user.ID, quiz.ID, 100, base.Add(2*time.Minute))

		stats, err := svc.DashboardStats(user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalAttempts)
		assert.Equal(t, 75.0, stats.AvgScore)
	})

	t.Run("RecentAttemptsNewestFirstCappedAtFive", func(t *testing.T) {
		svc, db := newStatsServiceForTest(t)
		user := seedUser(t, db, "bob")
		quiz := seedQuiz(t, db, "History", "Q1")

		base := time.Now().Add(-time.Hour)
		for i := 0; i < 7; i++ {
			seedAttempt(t, db, user.ID, quiz.ID, float64(i*10), base.Add(time.Duration(i)*time.Minute))
		}

		stats, err := svc.DashboardStats(user.ID)
		require.NoError(t, err)
		require.Len(t, stats.RecentAttempts, 5)
		assert.Equal(t, 60.0, stats.RecentAttempts[0].Score)
		assert.Equal(t, 20.0, stats.RecentAttempts[4].Score)
		assert.Equal(t, "History", stats.RecentAttempts[0].QuizTitle)
		for i := 1; i < len(stats.RecentAttempts); i++ {
			assert.True(t, !stats.RecentAttempts[i].CompletedAt.After(stats.RecentAttempts[i-1].CompletedAt))
		}
	})

	t.Run("CorrectAndWrongAnswerTotals", func(t *testing.T) {
		svc, db := newStatsServiceForTest(t)
		user := seedUser(t, db, "carol")
		other := seedUser(t, db, "mallory")
		quiz := seedQuiz(t, db, "Mixed", "Q1", "Q2")

		attempt := seedAttempt(t, db, user.ID, quiz.ID, 50, time.Now())
		require.NoError(t, db.Create(&model.UserAnswer{
			AttemptID:        attempt.ID,
			QuestionID:       quiz.Questions[0].ID,
			SelectedChoiceID: correctChoice(t, quiz.Questions[0]).ID,
		}).Error)
		require.NoError(t, db.Create(&model.UserAnswer{
			AttemptID:        attempt.ID,
			QuestionID:       quiz.Questions[1].ID,
			SelectedChoiceID: wrongChoice(t, quiz.Questions[1]).ID,
		}).Error)

		// Another user's answers must not leak into the totals.
		otherAttempt := seedAttempt(t, db, other.ID, quiz.ID, 100, time.Now())
		require.NoError(t, db.Create(&model.UserAnswer{
			AttemptID:        otherAttempt.ID,
			QuestionID:       quiz.Questions[0].ID,
			SelectedChoiceID: correctChoice(t, quiz.Questions[0]).ID,
		}).Error)

		stats, err := svc.DashboardStats(user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.CorrectAnswers)
		assert.Equal(t, int64(1), stats.WrongAnswers)
	})

	t.Run("PerQuizAveragesRoundedToTwoDecimals", func(t *testing.T) {
		svc, db := newStatsServiceForTest(t)
		user := seedUser(t, db, "dave")
		quizA := seedQuiz(t, db, "Alpha", "Q1")
		quizB := seedQuiz(t, db, "Beta", "Q1")

		now := time.Now()
		// Alpha: (100 + 33.333...) / 2 = 66.666... -> 66.67
		seedAttempt(t, db, user.ID, quizA.ID, 100, now)
		seedAttempt(t, db, user.ID, quizA.ID, 100.0/3.0, now.Add(time.Second))
		seedAttempt(t, db, user.ID, quizB.ID, 40, now.Add(2*time.Second))

		stats, err := svc.DashboardStats(user.ID)
		require.NoError(t, err)
		require.Len(t, stats.PerQuizList, 2)

		// Ordered by average descending.
		assert.Equal(t, "Alpha", stats.PerQuizList[0].QuizTitle)
		assert.Equal(t, 66.67, stats.PerQuizList[0].AvgScore)
		assert.Equal(t, int64(2), stats.PerQuizList[0].Attempts)
		assert.Equal(t, "Beta", stats.PerQuizList[1].QuizTitle)
		assert.Equal(t, 40.0, stats.PerQuizList[1].AvgScore)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc, _ := newStatsServiceForTest(t)

		_, err := svc.DashboardStats(uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
