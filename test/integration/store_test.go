package integration

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/inclulearn/backend/internal/catalog"
	"github.com/inclulearn/backend/internal/config"
	"github.com/inclulearn/backend/internal/handlers"
	"github.com/inclulearn/backend/internal/models"
	"github.com/inclulearn/backend/internal/repositories"
	"github.com/inclulearn/backend/internal/services"
	"github.com/inclulearn/backend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testDB     *sql.DB
	testStore  *repositories.Store
	testLogger *zap.Logger
)

func TestMain(m *testing.M) {
	flag.Parse()

	var err error
	testLogger, err = zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	cfg, err := config.LoadTestConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load test config: %v", err))
	}

	// Without TEST_DB_* variables every test skips
	if !testing.Short() && cfg.Database.Configured() {
		testDB, err = sql.Open("mysql", cfg.DSN())
		if err != nil {
			panic(fmt.Sprintf("Failed to connect to test database: %v", err))
		}
		if err = testDB.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to ping test database: %v", err))
		}
		if err = migrateTestSchema(testDB); err != nil {
			panic(fmt.Sprintf("Failed to migrate test database: %v", err))
		}
		testStore = repositories.NewMySQLStore(testDB, testLogger, 5*time.Second)
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func migrateTestSchema(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "inclulearn_schema_migrations",
	})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://../../migrations", "mysql", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	if testDB == nil {
		t.Skip("Skipping integration tests: TEST_DB_* is not configured")
	}
	cleanupTestData(t, testDB)
}

// cleanupTestData empties every table, children first
func cleanupTestData(t *testing.T, db *sql.DB) {
	t.Helper()
	for _, table := range []string{"problemas", "quizzes", "progreso_videos", "progreso_lecciones", "usuarios"} {
		_, err := db.Exec("DELETE FROM " + table)
		require.NoError(t, err, "Failed to clear %s", table)
	}
}

func TestIntegration_AccountRepository(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	account := &models.Account{
		ID:           "acc-1",
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "hash",
		Preferences:  models.DefaultPreferences(),
		Progress:     models.ProgressCounters{Level: models.DefaultLevelLabel},
		RegisteredAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, testStore.Accounts.Create(ctx, account))

	dup := *account
	dup.ID = "acc-2"
	assert.ErrorIs(t, testStore.Accounts.Create(ctx, &dup), repositories.ErrDuplicate)

	got, err := testStore.Accounts.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, account.Preferences, got.Preferences)

	prefs := models.Preferences{HighContrast: true, FontSize: 22, VoiceReader: true}
	require.NoError(t, testStore.Accounts.UpdatePreferences(ctx, account.ID, prefs))
	require.NoError(t, testStore.Accounts.IncrementProblemsSolved(ctx, account.ID))

	got, err = testStore.Accounts.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, prefs, got.Preferences)
	assert.Equal(t, 1, got.Progress.ProblemsSolved)

	assert.ErrorIs(t, testStore.Accounts.IncrementProblemsSolved(ctx, "missing"), repositories.ErrNotFound)
}

func TestIntegration_LessonProgressUpsert(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, testStore.LessonProgress.Upsert(ctx, &models.CompletionRecord{
			UserID:      models.AnonymousUserID,
			LessonID:    "1",
			Completed:   true,
			CompletedAt: time.Now().UTC(),
		}))
	}

	var rows int
	require.NoError(t, testDB.QueryRow("SELECT COUNT(*) FROM progreso_lecciones WHERE user_id = ?", models.AnonymousUserID).Scan(&rows))
	assert.Equal(t, 1, rows)

	count, err := testStore.LessonProgress.CountCompleted(ctx, models.AnonymousUserID, []string{"1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIntegration_ProgressOverHTTP(t *testing.T) {
	requireDB(t)

	courses, err := catalog.Default()
	require.NoError(t, err)
	summaries := courses.List()
	require.NotEmpty(t, summaries)
	courseID := summaries[0].ID
	lessonIDs := courses.LessonIDs(courseID)
	require.GreaterOrEqual(t, len(lessonIDs), 2)

	sessions := session.NewManager(session.NewTokenGenerator("integration", time.Hour), session.NewMemoryRevoker(), false, testLogger)
	progress := services.NewProgressService(courses, testStore.LessonProgress, testStore.VideoProgress, testStore.Quizzes, testLogger)

	r := chi.NewRouter()
	r.Use(sessions.Middleware)
	r.Route("/api", func(r chi.Router) {
		handlers.NewProgressHandler(progress, testLogger).RegisterRoutes(r)
	})

	for _, lessonID := range []string{lessonIDs[0], lessonIDs[1], lessonIDs[0]} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/completar_leccion/"+lessonID, nil))
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/progreso_curso/"+courseID, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"lecciones_completadas":2`)

	body := `{"leccion_id":"` + lessonIDs[0] + `","tiempo_actual":30,"porcentaje_completado":42.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/guardar_progreso_video", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	video, err := testStore.VideoProgress.Get(context.Background(), models.AnonymousUserID, lessonIDs[0])
	require.NoError(t, err)
	assert.Equal(t, 42.5, video.Percent)
}

func TestIntegration_Submissions(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	quiz := &models.QuizSubmission{
		UserID:      models.AnonymousUserID,
		LessonID:    "3",
		Answers:     map[string]string{"0": "4"},
		Score:       1,
		SubmittedAt: time.Now().UTC(),
	}
	require.NoError(t, testStore.Quizzes.Create(ctx, quiz))
	assert.NotZero(t, quiz.ID)

	account := &models.Account{
		ID:           "acc-p",
		Name:         "Luis",
		Email:        "luis@example.com",
		PasswordHash: "hash",
		Preferences:  models.DefaultPreferences(),
		Progress:     models.ProgressCounters{Level: models.DefaultLevelLabel},
		RegisteredAt: time.Now().UTC(),
	}
	require.NoError(t, testStore.Accounts.Create(ctx, account))

	solver := services.NewProblemService(testStore.Problems, testStore.Accounts, testLogger)
	solution, err := solver.Solve(ctx, account.ID, "x + 2 = 5")
	require.NoError(t, err)
	assert.Contains(t, solution, "x + 2 = 5")

	var stored int
	require.NoError(t, testDB.QueryRow("SELECT COUNT(*) FROM problemas WHERE account_id = ?", account.ID).Scan(&stored))
	assert.Equal(t, 1, stored)
}
