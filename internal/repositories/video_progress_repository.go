package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/inclulearn/backend/internal/models"
	"go.uber.org/zap"
)

// videoProgressRepository implements VideoProgressStore on MySQL
type videoProgressRepository struct {
	sqlRepository
}

// NewVideoProgressRepository creates a new video progress repository
func NewVideoProgressRepository(db *sql.DB, logger *zap.Logger, queryTimeout time.Duration) *videoProgressRepository {
	return &videoProgressRepository{sqlRepository: sqlRepository{db: db, logger: logger, timeout: queryTimeout}}
}

// Upsert inserts or overwrites the playback state of a user for a lesson
func (r *videoProgressRepository) Upsert(ctx context.Context, progress *models.VideoProgress) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO progreso_videos (user_id, lesson_id, position_seconds, percent, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			position_seconds = VALUES(position_seconds),
			percent = VALUES(percent),
			updated_at = VALUES(updated_at)
	`

	_, err := r.db.ExecContext(ctx, query,
		progress.UserID,
		progress.LessonID,
		progress.Position,
		progress.Percent,
		progress.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to upsert video progress",
			zap.Error(err),
			zap.String("user_id", progress.UserID),
			zap.String("lesson_id", progress.LessonID),
		)
		return fmt.Errorf("failed to upsert video progress: %w", err)
	}

	return nil
}

// Get retrieves the playback state of a user for a lesson
func (r *videoProgressRepository) Get(ctx context.Context, userID, lessonID string) (*models.VideoProgress, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT user_id, lesson_id, position_seconds, percent, updated_at
		FROM progreso_videos
		WHERE user_id = ? AND lesson_id = ?
	`

	progress := &models.VideoProgress{}
	err := r.db.QueryRowContext(ctx, query, userID, lessonID).Scan(
		&progress.UserID,
		&progress.LessonID,
		&progress.Position,
		&progress.Percent,
		&progress.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get video progress", zap.Error(err))
		return nil, fmt.Errorf("failed to get video progress: %w", err)
	}

	return progress, nil
}
