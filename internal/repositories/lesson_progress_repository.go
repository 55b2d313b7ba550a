package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inclulearn/backend/internal/models"
	"go.uber.org/zap"
)

// lessonProgressRepository implements LessonProgressStore on MySQL
type lessonProgressRepository struct {
	sqlRepository
}

// NewLessonProgressRepository creates a new lesson progress repository
func NewLessonProgressRepository(db *sql.DB, logger *zap.Logger, queryTimeout time.Duration) *lessonProgressRepository {
	return &lessonProgressRepository{sqlRepository: sqlRepository{db: db, logger: logger, timeout: queryTimeout}}
}

// Upsert inserts a completion record or updates the existing one.
// The unique key on (user_id, lesson_id) keeps one record per pair.
func (r *lessonProgressRepository) Upsert(ctx context.Context, record *models.CompletionRecord) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO progreso_lecciones (user_id, lesson_id, completed, completed_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			completed = VALUES(completed),
			completed_at = VALUES(completed_at)
	`

	_, err := r.db.ExecContext(ctx, query, record.UserID, record.LessonID, record.Completed, record.CompletedAt)
	if err != nil {
		r.logger.Error("failed to upsert lesson completion",
			zap.Error(err),
			zap.String("user_id", record.UserID),
			zap.String("lesson_id", record.LessonID),
		)
		return fmt.Errorf("failed to upsert lesson completion: %w", err)
	}

	return nil
}

// Get retrieves the completion record of a user for a lesson
func (r *lessonProgressRepository) Get(ctx context.Context, userID, lessonID string) (*models.CompletionRecord, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT user_id, lesson_id, completed, completed_at
		FROM progreso_lecciones
		WHERE user_id = ? AND lesson_id = ?
	`

	record := &models.CompletionRecord{}
	err := r.db.QueryRowContext(ctx, query, userID, lessonID).Scan(
		&record.UserID,
		&record.LessonID,
		&record.Completed,
		&record.CompletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get lesson completion", zap.Error(err))
		return nil, fmt.Errorf("failed to get lesson completion: %w", err)
	}

	return record, nil
}

// CountCompleted counts completed lessons of a user among lessonIDs
func (r *lessonProgressRepository) CountCompleted(ctx context.Context, userID string, lessonIDs []string) (int, error) {
	if len(lessonIDs) == 0 {
		return 0, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(lessonIDs)), ", ")
	query := fmt.Sprintf(`
		SELECT COUNT(DISTINCT lesson_id)
		FROM progreso_lecciones
		WHERE user_id = ? AND completed = TRUE AND lesson_id IN (%s)
	`, placeholders)

	args := make([]any, 0, len(lessonIDs)+1)
	args = append(args, userID)
	for _, id := range lessonIDs {
		args = append(args, id)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		r.logger.Error("failed to count completed lessons", zap.Error(err), zap.String("user_id", userID))
		return 0, fmt.Errorf("failed to count completed lessons: %w", err)
	}

	return count, nil
}
