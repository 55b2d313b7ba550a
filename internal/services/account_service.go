package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inclulearn/backend/internal/models"
	"github.com/inclulearn/backend/internal/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Font size bounds accepted in accessibility preferences
const (
	MinFontSize = 10
	MaxFontSize = 48
)

// AccountRepository is the interface that wraps methods for account data access
type AccountRepository interface {
	// Method Create inserts a new account.
	//
	// If an account with the same email exists, repositories.ErrDuplicate is returned.
	Create(ctx context.Context, account *models.Account) error
	// Method GetByEmail retrieves an account by normalized email.
	//
	// If no account matches, repositories.ErrNotFound is returned.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	// Method GetByID retrieves an account by ID.
	//
	// If no account matches, repositories.ErrNotFound is returned.
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// Method ExistsByEmail checks if an account with such email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Method UpdatePreferences replaces the accessibility preferences of an account.
	UpdatePreferences(ctx context.Context, id string, prefs models.Preferences) error
}

// AccountService manages registration, credentials and account preferences
type AccountService struct {
	repo       AccountRepository
	logger     *zap.Logger
	bcryptCost int
	now        func() time.Time
}

// NewAccountService creates a new account service
func NewAccountService(repo AccountRepository, logger *zap.Logger) *AccountService {
	return &AccountService{
		repo:       repo,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account with default preferences and counters
func (s *AccountService) Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error) {
	name := strings.TrimSpace(req.Name)
	email := NormalizeEmail(req.Email)

	switch {
	case name == "":
		return nil, validationError("El campo nombre es requerido")
	case email == "":
		return nil, validationError("El campo email es requerido")
	case req.Password == "":
		return nil, validationError("El campo password es requerido")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, validationError("El email no es válido")
	}
	if len(req.Password) > 72 {
		return nil, validationError("La contraseña no puede superar 72 caracteres")
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to check email existence", zap.Error(err))
		return nil, storageError(err)
	}
	if exists {
		return nil, validationError("El usuario ya existe")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Preferences:  models.DefaultPreferences(),
		Progress:     models.ProgressCounters{Level: models.DefaultLevelLabel},
		RegisteredAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, validationError("El usuario ya existe")
		}
		s.logger.Error("failed to create account", zap.Error(err))
		return nil, storageError(err)
	}

	s.logger.Info("account registered", zap.String("user_id", account.ID))
	return account, nil
}

// Login verifies the credentials and returns the matching account
func (s *AccountService) Login(ctx context.Context, req models.LoginRequest) (*models.Account, error) {
	email := NormalizeEmail(req.Email)
	switch {
	case email == "":
		return nil, validationError("El campo email es requerido")
	case req.Password == "":
		return nil, validationError("El campo password es requerido")
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, unauthorizedError("Credenciales incorrectas")
	}
	if err != nil {
		s.logger.Error("failed to get account", zap.Error(err))
		return nil, storageError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, unauthorizedError("Credenciales incorrectas")
	}

	return account, nil
}

// Profile returns the account of a session.
// A session pointing to an account that no longer exists is unauthorized.
func (s *AccountService) Profile(ctx context.Context, id string) (*models.Account, error) {
	account, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, unauthorizedError("No autorizado")
	}
	if err != nil {
		s.logger.Error("failed to get account", zap.Error(err), zap.String("user_id", id))
		return nil, storageError(err)
	}
	return account, nil
}

// UpdatePreferences applies the fields present in req to the account preferences
func (s *AccountService) UpdatePreferences(ctx context.Context, id string, req models.UpdatePreferencesRequest) (*models.Preferences, error) {
	if req.FontSize != nil && (*req.FontSize < MinFontSize || *req.FontSize > MaxFontSize) {
		return nil, validationError("tamano_fuente fuera de rango")
	}

	account, err := s.Profile(ctx, id)
	if err != nil {
		return nil, err
	}

	prefs := account.Preferences
	if req.HighContrast != nil {
		prefs.HighContrast = *req.HighContrast
	}
	if req.FontSize != nil {
		prefs.FontSize = *req.FontSize
	}
	if req.VoiceReader != nil {
		prefs.VoiceReader = *req.VoiceReader
	}

	if err := s.repo.UpdatePreferences(ctx, id, prefs); err != nil {
		s.logger.Error("failed to update preferences", zap.Error(err), zap.String("user_id", id))
		return nil, storageError(err)
	}

	return &prefs, nil
}

// staticRecommendations is the fixed recommendation list served to every learner
var staticRecommendations = []models.Recommendation{
	{
		Kind:        "curso",
		Title:       "Matemáticas Intermedias",
		Description: "Basado en tu progreso en Matemáticas Básicas",
		Priority:    "alta",
	},
	{
		Kind:        "ejercicio",
		Title:       "Problemas de práctica",
		Description: "Ejercicios para reforzar tus conocimientos",
		Priority:    "media",
	},
}

// Recommendations returns the recommendation list with the progress counters of the account
func (s *AccountService) Recommendations(ctx context.Context, id string) (*models.RecommendationsResponse, error) {
	account, err := s.Profile(ctx, id)
	if err != nil {
		return nil, err
	}

	recommendations := make([]models.Recommendation, len(staticRecommendations))
	copy(recommendations, staticRecommendations)

	return &models.RecommendationsResponse{
		Recommendations: recommendations,
		Progress:        &account.Progress,
	}, nil
}
