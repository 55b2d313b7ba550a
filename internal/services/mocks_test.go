package services

import (
	"context"
	"errors"
	"sync"

	"github.com/inclulearn/backend/internal/catalog"
	"github.com/inclulearn/backend/internal/models"
	"github.com/inclulearn/backend/internal/repositories"
)

var errDatabase = errors.New("database error")

// mockLessonProgressRepository is a mock implementation of LessonProgressRepository
type mockLessonProgressRepository struct {
	mu        sync.Mutex
	records   map[string]map[string]bool
	upserts   []models.CompletionRecord
	upsertErr error
	getErr    error
	countErr  error
}

func newMockLessonProgressRepository() *mockLessonProgressRepository {
	return &mockLessonProgressRepository{records: make(map[string]map[string]bool)}
}

func (m *mockLessonProgressRepository) Upsert(ctx context.Context, record *models.CompletionRecord) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.records[record.UserID] == nil {
		m.records[record.UserID] = make(map[string]bool)
	}
	m.records[record.UserID][record.LessonID] = record.Completed
	m.upserts = append(m.upserts, *record)
	return nil
}

func (m *mockLessonProgressRepository) Get(ctx context.Context, userID, lessonID string) (*models.CompletionRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	completed, ok := m.records[userID][lessonID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &models.CompletionRecord{UserID: userID, LessonID: lessonID, Completed: completed}, nil
}

func (m *mockLessonProgressRepository) CountCompleted(ctx context.Context, userID string, lessonIDs []string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, id := range lessonIDs {
		if m.records[userID][id] {
			count++
		}
	}
	return count, nil
}

// mockVideoProgressRepository is a mock implementation of VideoProgressRepository
type mockVideoProgressRepository struct {
	saved  []models.VideoProgress
	err    error
	getErr error
}

func (m *mockVideoProgressRepository) Upsert(ctx context.Context, progress *models.VideoProgress) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, *progress)
	return nil
}

func (m *mockVideoProgressRepository) Get(ctx context.Context, userID, lessonID string) (*models.VideoProgress, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for i := len(m.saved) - 1; i >= 0; i-- {
		if m.saved[i].UserID == userID && m.saved[i].LessonID == lessonID {
			progress := m.saved[i]
			return &progress, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// mockQuizRepository is a mock implementation of QuizRepository
type mockQuizRepository struct {
	saved []models.QuizSubmission
	err   error
}

func (m *mockQuizRepository) Create(ctx context.Context, submission *models.QuizSubmission) error {
	if m.err != nil {
		return m.err
	}
	submission.ID = int64(len(m.saved) + 1)
	m.saved = append(m.saved, *submission)
	return nil
}

// mockAccountRepository is a mock implementation of AccountRepository and ProblemAccounts
type mockAccountRepository struct {
	accounts     map[string]*models.Account
	existsErr    error
	createErr    error
	getErr       error
	updateErr    error
	incrementErr error
	increments   int
}

func newMockAccountRepository(accounts ...*models.Account) *mockAccountRepository {
	m := &mockAccountRepository{accounts: make(map[string]*models.Account)}
	for _, a := range accounts {
		m.accounts[a.ID] = a
	}
	return m
}

func (m *mockAccountRepository) Create(ctx context.Context, account *models.Account) error {
	if m.createErr != nil {
		return m.createErr
	}
	stored := *account
	m.accounts[account.ID] = &stored
	return nil
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, a := range m.accounts {
		if a.Email == email {
			account := *a
			return &account, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	a, ok := m.accounts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	account := *a
	return &account, nil
}

func (m *mockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	for _, a := range m.accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAccountRepository) UpdatePreferences(ctx context.Context, id string, prefs models.Preferences) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	a, ok := m.accounts[id]
	if !ok {
		return repositories.ErrNotFound
	}
	a.Preferences = prefs
	return nil
}

func (m *mockAccountRepository) IncrementProblemsSolved(ctx context.Context, id string) error {
	if m.incrementErr != nil {
		return m.incrementErr
	}
	a, ok := m.accounts[id]
	if !ok {
		return repositories.ErrNotFound
	}
	a.Progress.ProblemsSolved++
	m.increments++
	return nil
}

// mockProblemRepository is a mock implementation of ProblemRepository
type mockProblemRepository struct {
	saved []models.ProblemSubmission
	err   error
}

func (m *mockProblemRepository) Create(ctx context.Context, submission *models.ProblemSubmission) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, *submission)
	return nil
}

// testCatalog builds a small catalog: course "c5" has five lessons, "c3" has three
// and "q" has one exercises lesson with two questions.
func testCatalog() *catalog.Catalog {
	video := func(id string) models.Lesson {
		return models.Lesson{ID: id, Title: "L" + id, Duration: 5, Kind: models.KindVideo, Video: &models.VideoContent{URL: "https://v/" + id}}
	}
	c, err := catalog.New([]models.Course{
		{ID: "c5", Title: "Five", Level: models.LevelBeginner, Lessons: []models.Lesson{video("1"), video("2"), video("3"), video("4"), video("5")}},
		{ID: "c3", Title: "Three", Level: models.LevelIntermediate, Lessons: []models.Lesson{video("1"), video("2"), video("3")}},
		{ID: "q", Title: "Quiz", Level: models.LevelAdvanced, Lessons: []models.Lesson{
			video("v"),
			{
				ID: "e", Title: "Ejercicios", Duration: 10, Kind: models.KindExercises,
				Quiz: &models.QuizContent{Title: "E", Questions: []models.Question{
					{Prompt: "2+2", Options: []string{"3", "4"}, Correct: "4"},
					{Prompt: "3+3", Options: []string{"6", "9"}, Correct: "6"},
				}},
			},
		}},
	})
	if err != nil {
		panic(err)
	}
	return c
}
