package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/inclulearn/backend/internal/models"
	"github.com/inclulearn/backend/internal/services"
	"github.com/inclulearn/backend/internal/session"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for catalog browsing.
type CourseService interface {
	// Method List returns the summary of every course in catalog order.
	List() []models.CourseSummary
	// Method Get returns the full course with its lessons.
	//
	// If the course does not exist, a not found error is returned together with "nil" value.
	Get(id string) (*models.Course, error)
	// Method GetLesson returns a lesson together with the course it belongs to.
	//
	// Lookup is scoped to the course: a lesson id from another course is reported as not found.
	GetLesson(courseID, lessonID string) (*services.LessonDetail, error)
}

// LessonCompleter records a completion for the lesson at a position of a course.
type LessonCompleter interface {
	// Method RecordLessonCompletionAt resolves the lesson at "index" (zero-based) in the course and marks it completed for "userID".
	//
	// A missing index is a validation error. An unknown course or an out-of-range index is a not found error.
	RecordLessonCompletionAt(ctx context.Context, userID, courseID string, index *int) (*models.Lesson, error)
}

// CourseHandler handles HTTP requests for the course catalog
type CourseHandler struct {
	BaseHandler
	courses   CourseService
	completer LessonCompleter
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courses CourseService, completer LessonCompleter, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler: BaseHandler{Logger: logger},
		courses:     courses,
		completer:   completer,
	}
}

// RegisterRoutes registers all course handler routes
// Note: This assumes the router is already scoped to /api
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/cursos", h.ListCourses)
	r.Route("/curso/{id}", func(r chi.Router) {
		r.Get("/", h.GetCourse)
		r.Get("/leccion/{lid}", h.GetLesson)
		r.Post("/completar-leccion", h.CompleteLessonAt)
	})
}

// ListCourses handles GET /cursos
// @Summary List courses
// @Description Get the summary of every course in the catalog
// @Tags courses
// @Produce json
// @Success 200 {array} models.CourseSummary
// @Router /cursos [get]
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.courses.List())
}

// GetCourse handles GET /curso/{id}
// @Summary Get course
// @Description Get a course with all its lessons
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} map[string]string "Course not found"
// @Router /curso/{id} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.courses.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}

// GetLesson handles GET /curso/{id}/leccion/{lid}
// @Summary Get lesson
// @Description Get a lesson of a course together with the course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Param lid path string true "Lesson ID"
// @Success 200 {object} services.LessonDetail
// @Failure 404 {object} map[string]string "Course or lesson not found"
// @Router /curso/{id}/leccion/{lid} [get]
func (h *CourseHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	detail, err := h.courses.GetLesson(chi.URLParam(r, "id"), chi.URLParam(r, "lid"))
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, detail)
}

// CompleteLessonAt handles POST /curso/{id}/completar-leccion
// @Summary Complete lesson by position
// @Description Mark the lesson at the given zero-based position of the course as completed for the caller
// @Tags progress
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body models.CompleteLessonAtRequest true "Lesson position"
// @Success 200 {object} map[string]string "Lesson completed"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Course or lesson not found"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /curso/{id}/completar-leccion [post]
func (h *CourseHandler) CompleteLessonAt(w http.ResponseWriter, r *http.Request) {
	var req models.CompleteLessonAtRequest
	if err := decodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
		return
	}

	userID := session.UserIDOrAnonymous(r.Context())
	if _, err := h.completer.RecordLessonCompletionAt(r.Context(), userID, chi.URLParam(r, "id"), req.LessonIndex); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, messageResponse{Message: "Lección marcada como completada"})
}
