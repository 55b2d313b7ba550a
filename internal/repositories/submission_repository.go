package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/inclulearn/backend/internal/models"
	"go.uber.org/zap"
)

// quizRepository implements QuizStore on MySQL
type quizRepository struct {
	sqlRepository
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(db *sql.DB, logger *zap.Logger, queryTimeout time.Duration) *quizRepository {
	return &quizRepository{sqlRepository: sqlRepository{db: db, logger: logger, timeout: queryTimeout}}
}

// Create inserts a quiz submission. Answers are stored as a JSON document.
func (r *quizRepository) Create(ctx context.Context, submission *models.QuizSubmission) error {
	answers, err := json.Marshal(submission.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO quizzes (user_id, lesson_id, answers, score, submitted_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		submission.UserID,
		submission.LessonID,
		string(answers),
		submission.Score,
		submission.SubmittedAt,
	)
	if err != nil {
		r.logger.Error("failed to create quiz submission", zap.Error(err), zap.String("lesson_id", submission.LessonID))
		return fmt.Errorf("failed to create quiz submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	submission.ID = id
	return nil
}

// problemRepository implements ProblemStore on MySQL
type problemRepository struct {
	sqlRepository
}

// NewProblemRepository creates a new problem repository
func NewProblemRepository(db *sql.DB, logger *zap.Logger, queryTimeout time.Duration) *problemRepository {
	return &problemRepository{sqlRepository: sqlRepository{db: db, logger: logger, timeout: queryTimeout}}
}

// Create inserts a problem submission
func (r *problemRepository) Create(ctx context.Context, submission *models.ProblemSubmission) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO problemas (account_id, statement, solved, submitted_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		submission.AccountID,
		submission.Statement,
		submission.Solved,
		submission.SubmittedAt,
	)
	if err != nil {
		r.logger.Error("failed to create problem submission", zap.Error(err), zap.String("account_id", submission.AccountID))
		return fmt.Errorf("failed to create problem submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	submission.ID = id
	return nil
}
