package services

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/inclulearn/backend/internal/models"
	"github.com/inclulearn/backend/internal/repositories"
	"go.uber.org/zap"
)

// LessonProgressRepository is the interface that wraps methods for lesson completion data access
type LessonProgressRepository interface {
	// Method Upsert stores the completion record, overwriting the previous one for the same user and lesson.
	Upsert(ctx context.Context, record *models.CompletionRecord) error
	// Method Get returns the completion record, or repositories.ErrNotFound when there is none.
	Get(ctx context.Context, userID, lessonID string) (*models.CompletionRecord, error)
	// Method CountCompleted counts how many of lessonIDs the user has completed.
	CountCompleted(ctx context.Context, userID string, lessonIDs []string) (int, error)
}

// VideoProgressRepository is the interface that wraps methods for video progress data access
type VideoProgressRepository interface {
	// Method Upsert stores the playback state, overwriting the previous one for the same user and lesson.
	Upsert(ctx context.Context, progress *models.VideoProgress) error
	// Method Get returns the playback state, or repositories.ErrNotFound when there is none.
	Get(ctx context.Context, userID, lessonID string) (*models.VideoProgress, error)
}

// QuizRepository is the interface that wraps methods for quiz submission data access
type QuizRepository interface {
	// Method Create appends a quiz submission and sets its ID.
	Create(ctx context.Context, submission *models.QuizSubmission) error
}

// ProgressService tracks lesson completion, video playback and quiz results.
// Callers without a session are recorded under models.AnonymousUserID.
type ProgressService struct {
	catalog CourseCatalog
	lessons LessonProgressRepository
	videos  VideoProgressRepository
	quizzes QuizRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(
	catalog CourseCatalog,
	lessons LessonProgressRepository,
	videos VideoProgressRepository,
	quizzes QuizRepository,
	logger *zap.Logger,
) *ProgressService {
	return &ProgressService{
		catalog: catalog,
		lessons: lessons,
		videos:  videos,
		quizzes: quizzes,
		logger:  logger,
		now:     time.Now,
	}
}

// RecordLessonCompletion marks a lesson as completed for the user
func (s *ProgressService) RecordLessonCompletion(ctx context.Context, userID, lessonID string) error {
	if strings.TrimSpace(lessonID) == "" {
		return validationError("El campo leccion_id es requerido")
	}

	record := &models.CompletionRecord{
		UserID:      userID,
		LessonID:    lessonID,
		Completed:   true,
		CompletedAt: s.now().UTC(),
	}
	if err := s.lessons.Upsert(ctx, record); err != nil {
		s.logger.Error("failed to record lesson completion",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("lesson_id", lessonID),
		)
		return storageError(err)
	}

	return nil
}

// RecordLessonCompletionAt marks the lesson at the zero-based position index of a course as completed
func (s *ProgressService) RecordLessonCompletionAt(ctx context.Context, userID, courseID string, index *int) (*models.Lesson, error) {
	if index == nil {
		return nil, validationError("El campo leccion_index es requerido")
	}
	if _, ok := s.catalog.Get(courseID); !ok {
		return nil, notFoundError("Curso no encontrado")
	}

	lesson, ok := s.catalog.LessonAt(courseID, *index)
	if !ok {
		return nil, notFoundError("Lección no encontrada")
	}

	if err := s.RecordLessonCompletion(ctx, userID, lesson.ID); err != nil {
		return nil, err
	}

	return lesson, nil
}

// RecordVideoProgress stores the playback position of a video lesson.
// The position must be a finite non-negative number; the percentage is clamped to [0, 100].
func (s *ProgressService) RecordVideoProgress(ctx context.Context, userID string, req models.SaveVideoProgressRequest) error {
	if strings.TrimSpace(req.LessonID) == "" {
		return validationError("El campo leccion_id es requerido")
	}
	if math.IsNaN(req.Position) || math.IsInf(req.Position, 0) || req.Position < 0 {
		return validationError("tiempo_actual debe ser un número no negativo")
	}
	if math.IsNaN(req.Percent) {
		return validationError("porcentaje_completado no es un número válido")
	}

	progress := &models.VideoProgress{
		UserID:    userID,
		LessonID:  req.LessonID,
		Position:  req.Position,
		Percent:   clampPercent(req.Percent),
		UpdatedAt: s.now().UTC(),
	}
	if err := s.videos.Upsert(ctx, progress); err != nil {
		s.logger.Error("failed to record video progress",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("lesson_id", req.LessonID),
		)
		return storageError(err)
	}

	return nil
}

// ComputeCourseProgress counts the lessons of a course the user has completed.
// An unknown course has no lessons and yields all zeros.
func (s *ProgressService) ComputeCourseProgress(ctx context.Context, userID, courseID string) (*models.CourseProgress, error) {
	lessonIDs := s.catalog.LessonIDs(courseID)
	total := len(lessonIDs)
	if total == 0 {
		return &models.CourseProgress{}, nil
	}

	completed, err := s.lessons.CountCompleted(ctx, userID, lessonIDs)
	if err != nil {
		s.logger.Error("failed to count completed lessons",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("course_id", courseID),
		)
		return nil, storageError(err)
	}

	return &models.CourseProgress{
		Completed: completed,
		Total:     total,
		Percent:   completionPercent(completed, total),
	}, nil
}

// LessonStatus returns the completion flag and the last playback state of a lesson for the user.
// A lesson never touched by the user reports zero values.
func (s *ProgressService) LessonStatus(ctx context.Context, userID, lessonID string) (*models.LessonStatus, error) {
	if strings.TrimSpace(lessonID) == "" {
		return nil, validationError("El campo leccion_id es requerido")
	}

	status := &models.LessonStatus{LessonID: lessonID}

	record, err := s.lessons.Get(ctx, userID, lessonID)
	switch {
	case err == nil:
		status.Completed = record.Completed
	case !errors.Is(err, repositories.ErrNotFound):
		s.logger.Error("failed to get lesson completion",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("lesson_id", lessonID),
		)
		return nil, storageError(err)
	}

	video, err := s.videos.Get(ctx, userID, lessonID)
	switch {
	case err == nil:
		status.Position = video.Position
		status.Percent = video.Percent
	case !errors.Is(err, repositories.ErrNotFound):
		s.logger.Error("failed to get video progress",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("lesson_id", lessonID),
		)
		return nil, storageError(err)
	}

	return status, nil
}

// SubmitQuiz stores the answers of a user to a lesson.
// When the course is known the score is graded against the catalog, otherwise
// the score reported by the client is kept.
func (s *ProgressService) SubmitQuiz(ctx context.Context, userID, lessonID string, req models.SubmitQuizRequest) (*models.QuizSubmission, error) {
	if strings.TrimSpace(lessonID) == "" {
		return nil, validationError("El campo leccion_id es requerido")
	}

	score := req.ClientScore
	if req.CourseID != "" {
		lesson, ok := s.catalog.Lesson(req.CourseID, lessonID)
		if !ok {
			return nil, notFoundError("Lección no encontrada")
		}
		questions := lesson.Questions()
		if len(questions) == 0 {
			return nil, validationError("La lección no tiene preguntas")
		}
		score = gradeAnswers(questions, req.Answers)
	} else if score < 0 {
		return nil, validationError("puntaje no puede ser negativo")
	}

	answers := req.Answers
	if answers == nil {
		answers = map[string]string{}
	}

	submission := &models.QuizSubmission{
		UserID:      userID,
		LessonID:    lessonID,
		Answers:     answers,
		Score:       score,
		SubmittedAt: s.now().UTC(),
	}
	if err := s.quizzes.Create(ctx, submission); err != nil {
		s.logger.Error("failed to store quiz submission",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("lesson_id", lessonID),
		)
		return nil, storageError(err)
	}

	return submission, nil
}

// gradeAnswers counts answers equal to the correct option. Answers are keyed by question index.
func gradeAnswers(questions []models.Question, answers map[string]string) int {
	score := 0
	for i := range questions {
		if answer, ok := answers[strconv.Itoa(i)]; ok && questions[i].IsCorrect(answer) {
			score++
		}
	}
	return score
}

// completionPercent returns 100*completed/total rounded half away from zero to two decimals
func completionPercent(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)*100/float64(total)*100) / 100
}

func clampPercent(p float64) float64 {
	return math.Max(0, math.Min(100, p))
}
