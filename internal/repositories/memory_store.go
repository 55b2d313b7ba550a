package repositories

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/inclulearn/backend/internal/models"
)

// progressKey identifies one (user, lesson) pair
type progressKey struct {
	userID   string
	lessonID string
}

// memoryStore is the shared state of every in-memory repository.
// A single RWMutex serializes writers so concurrent upserts of the same pair leave one record.
type memoryStore struct {
	mu sync.RWMutex

	accounts       map[string]*models.Account
	accountByEmail map[string]string
	completions    map[progressKey]models.CompletionRecord
	videos         map[progressKey]models.VideoProgress
	quizzes        []models.QuizSubmission
	problems       []models.ProblemSubmission
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts:       make(map[string]*models.Account),
		accountByEmail: make(map[string]string),
		completions:    make(map[progressKey]models.CompletionRecord),
		videos:         make(map[progressKey]models.VideoProgress),
	}
}

type memoryAccounts struct{ s *memoryStore }

func (r *memoryAccounts) Create(_ context.Context, account *models.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.accountByEmail[account.Email]; exists {
		return fmt.Errorf("account with email %s: %w", account.Email, ErrDuplicate)
	}
	if _, exists := r.s.accounts[account.ID]; exists {
		return fmt.Errorf("account with id %s: %w", account.ID, ErrDuplicate)
	}

	stored := *account
	r.s.accounts[account.ID] = &stored
	r.s.accountByEmail[account.Email] = account.ID
	return nil
}

func (r *memoryAccounts) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.accountByEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	account := *r.s.accounts[id]
	return &account, nil
}

func (r *memoryAccounts) GetByID(_ context.Context, id string) (*models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stored, ok := r.s.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	account := *stored
	return &account, nil
}

func (r *memoryAccounts) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.accountByEmail[email]
	return ok, nil
}

func (r *memoryAccounts) UpdatePreferences(_ context.Context, id string, prefs models.Preferences) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	account, ok := r.s.accounts[id]
	if !ok {
		return ErrNotFound
	}
	account.Preferences = prefs
	return nil
}

func (r *memoryAccounts) IncrementProblemsSolved(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	account, ok := r.s.accounts[id]
	if !ok {
		return ErrNotFound
	}
	account.Progress.ProblemsSolved++
	return nil
}

type memoryLessonProgress struct{ s *memoryStore }

func (r *memoryLessonProgress) Upsert(_ context.Context, record *models.CompletionRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.completions[progressKey{record.UserID, record.LessonID}] = *record
	return nil
}

func (r *memoryLessonProgress) Get(_ context.Context, userID, lessonID string) (*models.CompletionRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	record, ok := r.s.completions[progressKey{userID, lessonID}]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (r *memoryLessonProgress) CountCompleted(_ context.Context, userID string, lessonIDs []string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := make(map[string]struct{}, len(lessonIDs))
	count := 0
	for _, id := range lessonIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if record, ok := r.s.completions[progressKey{userID, id}]; ok && record.Completed {
			count++
		}
	}
	return count, nil
}

type memoryVideoProgress struct{ s *memoryStore }

func (r *memoryVideoProgress) Upsert(_ context.Context, progress *models.VideoProgress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.videos[progressKey{progress.UserID, progress.LessonID}] = *progress
	return nil
}

func (r *memoryVideoProgress) Get(_ context.Context, userID, lessonID string) (*models.VideoProgress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	progress, ok := r.s.videos[progressKey{userID, lessonID}]
	if !ok {
		return nil, ErrNotFound
	}
	return &progress, nil
}

type memoryQuizzes struct{ s *memoryStore }

func (r *memoryQuizzes) Create(_ context.Context, submission *models.QuizSubmission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	submission.ID = int64(len(r.s.quizzes) + 1)
	stored := *submission
	stored.Answers = maps.Clone(submission.Answers)
	r.s.quizzes = append(r.s.quizzes, stored)
	return nil
}

type memoryProblems struct{ s *memoryStore }

func (r *memoryProblems) Create(_ context.Context, submission *models.ProblemSubmission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	submission.ID = int64(len(r.s.problems) + 1)
	r.s.problems = append(r.s.problems, *submission)
	return nil
}
