package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/inclulearn/backend/internal/models"
	"github.com/inclulearn/backend/internal/session"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for learner progress tracking.
//
// "userID" is the session account id, or models.AnonymousUserID for callers without a session.
type ProgressService interface {
	// Method RecordLessonCompletion marks the lesson as completed for the user. Repeated calls keep a single record.
	RecordLessonCompletion(ctx context.Context, userID, lessonID string) error
	// Method RecordVideoProgress stores the last playback position and percent of a video lesson.
	//
	// A negative or non-finite position is a validation error. The percent is clamped to [0, 100].
	RecordVideoProgress(ctx context.Context, userID string, req models.SaveVideoProgressRequest) error
	// Method ComputeCourseProgress returns how many lessons of the course the user completed.
	//
	// An unknown course yields zero lessons and zero percent, not an error.
	ComputeCourseProgress(ctx context.Context, userID, courseID string) (*models.CourseProgress, error)
	// Method LessonStatus returns whether the user completed the lesson and the last saved playback position.
	//
	// A lesson the user never touched reports zero values, not an error.
	LessonStatus(ctx context.Context, userID, lessonID string) (*models.LessonStatus, error)
	// Method SubmitQuiz stores a quiz submission and returns it with its final score.
	//
	// When req.CourseID is set the answers are graded against the catalog, otherwise the client score is kept.
	SubmitQuiz(ctx context.Context, userID, lessonID string, req models.SubmitQuizRequest) (*models.QuizSubmission, error)
}

// ProgressHandler handles HTTP requests for learner progress
type ProgressHandler struct {
	BaseHandler
	progress ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progress ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler: BaseHandler{Logger: logger},
		progress:    progress,
	}
}

// RegisterRoutes registers all progress handler routes
// Note: This assumes the router is already scoped to /api
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Post("/completar_leccion/{lid}", h.CompleteLesson)
	r.Get("/progreso_curso/{id}", h.GetCourseProgress)
	r.Get("/progreso_leccion/{lid}", h.GetLessonStatus)
	r.Post("/guardar_progreso_video", h.SaveVideoProgress)
	r.Post("/quiz/{lid}/enviar", h.SubmitQuiz)
}

type quizResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Score   int    `json:"puntaje"`
}

// CompleteLesson handles POST /completar_leccion/{lid}
// @Summary Complete lesson
// @Description Mark a lesson as completed for the caller. Callers without a session share the anonymous identity.
// @Tags progress
// @Produce json
// @Param lid path string true "Lesson ID"
// @Success 200 {object} map[string]string "Lesson completed"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /completar_leccion/{lid} [post]
func (h *ProgressHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDOrAnonymous(r.Context())
	if err := h.progress.RecordLessonCompletion(r.Context(), userID, chi.URLParam(r, "lid")); err != nil {
		h.respondStatusError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, statusResponse{Status: "success", Message: "Lección completada"})
}

// GetCourseProgress handles GET /progreso_curso/{id}
// @Summary Get course progress
// @Description Get completed lessons, total lessons and completion percent of a course for the caller
// @Tags progress
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.CourseProgress
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /progreso_curso/{id} [get]
func (h *ProgressHandler) GetCourseProgress(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDOrAnonymous(r.Context())
	progress, err := h.progress.ComputeCourseProgress(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, progress)
}

// GetLessonStatus handles GET /progreso_leccion/{lid}
// @Summary Get lesson status
// @Description Get the completion flag and the last saved playback position of a lesson for the caller, so a player can resume
// @Tags progress
// @Produce json
// @Param lid path string true "Lesson ID"
// @Success 200 {object} models.LessonStatus
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /progreso_leccion/{lid} [get]
func (h *ProgressHandler) GetLessonStatus(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDOrAnonymous(r.Context())
	status, err := h.progress.LessonStatus(r.Context(), userID, chi.URLParam(r, "lid"))
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, status)
}

// SaveVideoProgress handles POST /guardar_progreso_video
// @Summary Save video progress
// @Description Store the playback position and percent of a video lesson for the caller
// @Tags progress
// @Accept json
// @Produce json
// @Param request body models.SaveVideoProgressRequest true "Video progress"
// @Success 200 {object} map[string]string "Progress saved"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /guardar_progreso_video [post]
func (h *ProgressHandler) SaveVideoProgress(w http.ResponseWriter, r *http.Request) {
	var req models.SaveVideoProgressRequest
	if err := decodeJSON(r, &req); err != nil {
		h.RespondJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Cuerpo de solicitud inválido"})
		return
	}

	userID := session.UserIDOrAnonymous(r.Context())
	if err := h.progress.RecordVideoProgress(r.Context(), userID, req); err != nil {
		h.respondStatusError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, statusResponse{Status: "success"})
}

// SubmitQuiz handles POST /quiz/{lid}/enviar
// @Summary Submit quiz
// @Description Store the answers to the questions of a lesson. Answers are graded on the server when curso_id is given.
// @Tags progress
// @Accept json
// @Produce json
// @Param lid path string true "Lesson ID"
// @Param request body models.SubmitQuizRequest true "Quiz answers"
// @Success 200 {object} map[string]any "Quiz submitted"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Course or lesson not found"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /quiz/{lid}/enviar [post]
func (h *ProgressHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitQuizRequest
	if err := decodeJSON(r, &req); err != nil {
		h.RespondJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Cuerpo de solicitud inválido"})
		return
	}

	userID := session.UserIDOrAnonymous(r.Context())
	submission, err := h.progress.SubmitQuiz(r.Context(), userID, chi.URLParam(r, "lid"), req)
	if err != nil {
		h.respondStatusError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, quizResponse{
		Status:  "success",
		Message: "Quiz enviado correctamente",
		Score:   submission.Score,
	})
}
