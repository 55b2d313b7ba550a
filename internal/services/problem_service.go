package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inclulearn/backend/internal/models"
	"github.com/inclulearn/backend/internal/repositories"
	"go.uber.org/zap"
)

// ProblemRepository is the interface that wraps methods for problem submission data access
type ProblemRepository interface {
	// Method Create appends a problem submission and sets its ID.
	Create(ctx context.Context, submission *models.ProblemSubmission) error
}

// ProblemAccounts is the interface that wraps the account access of the problem solver
type ProblemAccounts interface {
	// Method GetByID retrieves the account of the caller.
	//
	// If no account matches, repositories.ErrNotFound is returned.
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// Method IncrementProblemsSolved adds one to the counter of the account.
	IncrementProblemsSolved(ctx context.Context, id string) error
}

// ProblemService answers problem statements with a fixed step-by-step template.
// It does not solve anything.
type ProblemService struct {
	problems ProblemRepository
	accounts ProblemAccounts
	logger   *zap.Logger
	now      func() time.Time
}

// NewProblemService creates a new problem service
func NewProblemService(problems ProblemRepository, accounts ProblemAccounts, logger *zap.Logger) *ProblemService {
	return &ProblemService{
		problems: problems,
		accounts: accounts,
		logger:   logger,
		now:      time.Now,
	}
}

const solutionTemplate = `
🧮 **PROBLEMA RESUELTO**

**Problema:** %s

**Solución paso a paso:**
1. Analizar el problema planteado
2. Identificar los datos conocidos
3. Aplicar el método adecuado
4. Verificar el resultado obtenido

✅ **Solución correcta:** El problema ha sido resuelto satisfactoriamente

💡 **Consejo:** Practica problemas similares para mejorar tu comprensión.
`

const savedNotice = "\n📊 **Este problema ha sido guardado en tu historial.**\n"

// Solve returns the templated explanation for statement.
// When accountID is not empty the submission is stored and the account counter incremented.
// A session whose account no longer exists is unauthorized and nothing is stored.
func (s *ProblemService) Solve(ctx context.Context, accountID, statement string) (string, error) {
	statement = strings.TrimSpace(statement)
	if statement == "" {
		return "", validationError("El campo problema es requerido")
	}

	solution := fmt.Sprintf(solutionTemplate, statement)
	if accountID == "" {
		return solution, nil
	}

	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", unauthorizedError("No autorizado")
		}
		s.logger.Error("failed to get account", zap.Error(err), zap.String("user_id", accountID))
		return "", storageError(err)
	}

	submission := &models.ProblemSubmission{
		AccountID:   accountID,
		Statement:   statement,
		SubmittedAt: s.now().UTC(),
		Solved:      true,
	}
	if err := s.problems.Create(ctx, submission); err != nil {
		s.logger.Error("failed to store problem", zap.Error(err), zap.String("user_id", accountID))
		return "", storageError(err)
	}
	if err := s.accounts.IncrementProblemsSolved(ctx, accountID); err != nil {
		s.logger.Error("failed to increment problems solved", zap.Error(err), zap.String("user_id", accountID))
		return "", storageError(err)
	}

	return solution + savedNotice, nil
}
