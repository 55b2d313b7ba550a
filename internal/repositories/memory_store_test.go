package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/inclulearn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Accounts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	assert.Equal(t, StorageMemory, store.Kind)

	account := testAccount()
	require.NoError(t, store.Accounts.Create(ctx, account))

	t.Run("duplicate email is rejected", func(t *testing.T) {
		dup := testAccount()
		dup.ID = "another-id"
		err := store.Accounts.Create(ctx, dup)
		assert.ErrorIs(t, err, ErrDuplicate)

		_, err = store.Accounts.GetByID(ctx, "another-id")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lookup by email and id", func(t *testing.T) {
		byEmail, err := store.Accounts.GetByEmail(ctx, account.Email)
		require.NoError(t, err)
		assert.Equal(t, account.ID, byEmail.ID)

		byID, err := store.Accounts.GetByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, account.Email, byID.Email)

		exists, err := store.Accounts.ExistsByEmail(ctx, account.Email)
		require.NoError(t, err)
		assert.True(t, exists)

		_, err = store.Accounts.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returned accounts are copies", func(t *testing.T) {
		got, err := store.Accounts.GetByID(ctx, account.ID)
		require.NoError(t, err)
		got.Name = "changed"

		again, err := store.Accounts.GetByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana", again.Name)
	})

	t.Run("preferences and counters", func(t *testing.T) {
		prefs := models.Preferences{HighContrast: true, FontSize: 24, VoiceReader: true}
		require.NoError(t, store.Accounts.UpdatePreferences(ctx, account.ID, prefs))
		require.NoError(t, store.Accounts.IncrementProblemsSolved(ctx, account.ID))

		got, err := store.Accounts.GetByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, prefs, got.Preferences)
		assert.Equal(t, 1, got.Progress.ProblemsSolved)

		assert.ErrorIs(t, store.Accounts.UpdatePreferences(ctx, "missing", prefs), ErrNotFound)
		assert.ErrorIs(t, store.Accounts.IncrementProblemsSolved(ctx, "missing"), ErrNotFound)
	})
}

func TestMemoryStore_LessonProgress(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	require.NoError(t, store.LessonProgress.Upsert(ctx, &models.CompletionRecord{UserID: "u", LessonID: "1", Completed: true, CompletedAt: first}))
	require.NoError(t, store.LessonProgress.Upsert(ctx, &models.CompletionRecord{UserID: "u", LessonID: "1", Completed: true, CompletedAt: second}))
	require.NoError(t, store.LessonProgress.Upsert(ctx, &models.CompletionRecord{UserID: "u", LessonID: "2", Completed: true, CompletedAt: first}))
	require.NoError(t, store.LessonProgress.Upsert(ctx, &models.CompletionRecord{UserID: "other", LessonID: "3", Completed: true, CompletedAt: first}))

	record, err := store.LessonProgress.Get(ctx, "u", "1")
	require.NoError(t, err)
	assert.Equal(t, second, record.CompletedAt)

	tests := []struct {
		name      string
		userID    string
		lessonIDs []string
		expected  int
	}{
		{name: "counts only listed lessons", userID: "u", lessonIDs: []string{"1", "2", "3", "4", "5"}, expected: 2},
		{name: "repeated completion counts once", userID: "u", lessonIDs: []string{"1"}, expected: 1},
		{name: "duplicate ids in request count once", userID: "u", lessonIDs: []string{"1", "1"}, expected: 1},
		{name: "other user", userID: "other", lessonIDs: []string{"1", "2", "3"}, expected: 1},
		{name: "no lessons", userID: "u", lessonIDs: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := store.LessonProgress.CountCompleted(ctx, tt.userID, tt.lessonIDs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, count)
		})
	}

	_, err = store.LessonProgress.Get(ctx, "u", "9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ConcurrentUpsertsKeepOneRecordPerPair(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.LessonProgress.Upsert(ctx, &models.CompletionRecord{
				UserID:      "u",
				LessonID:    fmt.Sprintf("%d", i%5),
				Completed:   true,
				CompletedAt: time.Now(),
			})
			_ = store.VideoProgress.Upsert(ctx, &models.VideoProgress{
				UserID:   "u",
				LessonID: "1",
				Position: float64(i),
				Percent:  float64(i),
			})
		}(i)
	}
	wg.Wait()

	count, err := store.LessonProgress.CountCompleted(ctx, "u", []string{"0", "1", "2", "3", "4"})
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	video, err := store.VideoProgress.Get(ctx, "u", "1")
	require.NoError(t, err)
	assert.Equal(t, video.Position, video.Percent)
}

func TestMemoryStore_Submissions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	answers := map[string]string{"0": "4"}
	quiz := &models.QuizSubmission{UserID: "u", LessonID: "3", Answers: answers}
	require.NoError(t, store.Quizzes.Create(ctx, quiz))
	assert.Equal(t, int64(1), quiz.ID)

	second := &models.QuizSubmission{UserID: "u", LessonID: "3"}
	require.NoError(t, store.Quizzes.Create(ctx, second))
	assert.Equal(t, int64(2), second.ID)

	problem := &models.ProblemSubmission{AccountID: "id-1", Statement: "x"}
	require.NoError(t, store.Problems.Create(ctx, problem))
	assert.Equal(t, int64(1), problem.ID)
}
