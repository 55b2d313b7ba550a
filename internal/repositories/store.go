package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/inclulearn/backend/internal/models"
	"go.uber.org/zap"
)

// Errors returned by every Store implementation
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// StorageKind names the backend behind a Store
type StorageKind string

// StorageKind constants
const (
	StorageMySQL  StorageKind = "mysql"
	StorageMemory StorageKind = "memory"
)

// AccountStore is the interface that wraps methods for account data access
type AccountStore interface {
	// Method Create inserts a new account. The account ID must already be set.
	//
	// If an account with the same email exists, ErrDuplicate is returned.
	Create(ctx context.Context, account *models.Account) error
	// Method GetByEmail retrieves an account by its normalized email.
	//
	// If no account matches, ErrNotFound is returned.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	// Method GetByID retrieves an account by its ID.
	//
	// If no account matches, ErrNotFound is returned.
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// Method ExistsByEmail checks if an account with such email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Method UpdatePreferences replaces the accessibility preferences of an account.
	UpdatePreferences(ctx context.Context, id string, prefs models.Preferences) error
	// Method IncrementProblemsSolved adds one to the solved problems counter of an account.
	//
	// If no account matches, ErrNotFound is returned.
	IncrementProblemsSolved(ctx context.Context, id string) error
}

// LessonProgressStore is the interface that wraps methods for lesson completion data access
type LessonProgressStore interface {
	// Method Upsert inserts the completion record or overwrites the existing one for the same user and lesson.
	Upsert(ctx context.Context, record *models.CompletionRecord) error
	// Method Get retrieves the completion record of a user for a lesson.
	//
	// If there is no record, ErrNotFound is returned.
	Get(ctx context.Context, userID, lessonID string) (*models.CompletionRecord, error)
	// Method CountCompleted counts how many of lessonIDs the user has completed.
	CountCompleted(ctx context.Context, userID string, lessonIDs []string) (int, error)
}

// VideoProgressStore is the interface that wraps methods for video progress data access
type VideoProgressStore interface {
	// Method Upsert inserts the playback state or overwrites the existing one for the same user and lesson.
	Upsert(ctx context.Context, progress *models.VideoProgress) error
	// Method Get retrieves the playback state of a user for a lesson.
	//
	// If there is no record, ErrNotFound is returned.
	Get(ctx context.Context, userID, lessonID string) (*models.VideoProgress, error)
}

// QuizStore is the interface that wraps methods for quiz submission data access
type QuizStore interface {
	// Method Create inserts a quiz submission and sets its ID.
	Create(ctx context.Context, submission *models.QuizSubmission) error
}

// ProblemStore is the interface that wraps methods for problem submission data access
type ProblemStore interface {
	// Method Create inserts a problem submission and sets its ID.
	Create(ctx context.Context, submission *models.ProblemSubmission) error
}

// Store groups the data access of the application behind one backend.
// It is selected once at startup and injected into services.
type Store struct {
	Kind           StorageKind
	Accounts       AccountStore
	LessonProgress LessonProgressStore
	VideoProgress  VideoProgressStore
	Quizzes        QuizStore
	Problems       ProblemStore
}

// NewMySQLStore creates a Store backed by a MySQL database.
//
// Every query runs with the caller context bounded by queryTimeout.
func NewMySQLStore(db *sql.DB, logger *zap.Logger, queryTimeout time.Duration) *Store {
	return &Store{
		Kind:           StorageMySQL,
		Accounts:       NewAccountRepository(db, logger, queryTimeout),
		LessonProgress: NewLessonProgressRepository(db, logger, queryTimeout),
		VideoProgress:  NewVideoProgressRepository(db, logger, queryTimeout),
		Quizzes:        NewQuizRepository(db, logger, queryTimeout),
		Problems:       NewProblemRepository(db, logger, queryTimeout),
	}
}

// NewMemoryStore creates a Store that keeps everything in process memory.
//
// Data lives as long as the process and is never copied to a persistent backend.
func NewMemoryStore() *Store {
	m := newMemoryStore()
	return &Store{
		Kind:           StorageMemory,
		Accounts:       &memoryAccounts{m},
		LessonProgress: &memoryLessonProgress{m},
		VideoProgress:  &memoryVideoProgress{m},
		Quizzes:        &memoryQuizzes{m},
		Problems:       &memoryProblems{m},
	}
}

// sqlRepository holds what every MySQL repository shares
type sqlRepository struct {
	db      *sql.DB
	logger  *zap.Logger
	timeout time.Duration
}

// withTimeout bounds ctx by the configured query timeout
func (r sqlRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}
