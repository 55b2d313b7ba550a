package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/inclulearn/backend/internal/models"
	"go.uber.org/zap"
)

// mysqlDuplicateEntry is the server error number for unique key violations
const mysqlDuplicateEntry = 1062

// accountRepository implements AccountStore on MySQL
type accountRepository struct {
	sqlRepository
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *sql.DB, logger *zap.Logger, queryTimeout time.Duration) *accountRepository {
	return &accountRepository{sqlRepository: sqlRepository{db: db, logger: logger, timeout: queryTimeout}}
}

const accountColumns = `id, name, email, password_hash, high_contrast, font_size, voice_reader,
		courses_completed, problems_solved, level, registered_at`

// Create inserts a new account into the database
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO usuarios (` + accountColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.Name,
		account.Email,
		account.PasswordHash,
		account.Preferences.HighContrast,
		account.Preferences.FontSize,
		account.Preferences.VoiceReader,
		account.Progress.CoursesCompleted,
		account.Progress.ProblemsSolved,
		account.Progress.Level,
		account.RegisteredAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return fmt.Errorf("account with email %s: %w", account.Email, ErrDuplicate)
		}
		r.logger.Error("failed to create account", zap.Error(err))
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByEmail retrieves an account by email
func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + accountColumns + ` FROM usuarios WHERE email = ? LIMIT 1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get account by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

// GetByID retrieves an account by id
func (r *accountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + accountColumns + ` FROM usuarios WHERE id = ? LIMIT 1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get account by id", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.Preferences.HighContrast,
		&account.Preferences.FontSize,
		&account.Preferences.VoiceReader,
		&account.Progress.CoursesCompleted,
		&account.Progress.ProblemsSolved,
		&account.Progress.Level,
		&account.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// ExistsByEmail checks if an account exists with the given email
func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT EXISTS(SELECT 1 FROM usuarios WHERE email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check email existence", zap.Error(err), zap.String("email", email))
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// UpdatePreferences replaces the accessibility preferences of an account
func (r *accountRepository) UpdatePreferences(ctx context.Context, id string, prefs models.Preferences) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		UPDATE usuarios
		SET high_contrast = ?, font_size = ?, voice_reader = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query, prefs.HighContrast, prefs.FontSize, prefs.VoiceReader, id)
	if err != nil {
		r.logger.Error("failed to update preferences", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to update preferences: %w", err)
	}

	return nil
}

// IncrementProblemsSolved adds one to the solved problems counter
func (r *accountRepository) IncrementProblemsSolved(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `UPDATE usuarios SET problems_solved = problems_solved + 1 WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to increment problems solved", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to increment problems solved: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
