package services

import (
	"github.com/inclulearn/backend/internal/models"
)

// CourseCatalog is the interface that wraps read access to the static course catalog
type CourseCatalog interface {
	// Method List returns the summaries of all courses in catalog order.
	List() []models.CourseSummary
	// Method Get returns the course with the given id, or false if there is none.
	Get(id string) (*models.Course, bool)
	// Method Lesson returns the lesson of a course by lesson id, or false if either is unknown.
	Lesson(courseID, lessonID string) (*models.Lesson, bool)
	// Method LessonAt returns the lesson of a course by zero-based position, or false if out of range.
	LessonAt(courseID string, index int) (*models.Lesson, bool)
	// Method LessonIDs returns the lesson ids of a course in order, or nil for an unknown course.
	LessonIDs(courseID string) []string
}

// LessonDetail is a lesson together with the course it belongs to
type LessonDetail struct {
	Lesson *models.Lesson `json:"leccion"`
	Course *models.Course `json:"curso"`
}

// CourseService provides read access to courses and lessons
type CourseService struct {
	catalog CourseCatalog
}

// NewCourseService creates a new course service
func NewCourseService(catalog CourseCatalog) *CourseService {
	return &CourseService{catalog: catalog}
}

// List returns every course summary
func (s *CourseService) List() []models.CourseSummary {
	return s.catalog.List()
}

// Get returns a course by id
func (s *CourseService) Get(id string) (*models.Course, error) {
	course, ok := s.catalog.Get(id)
	if !ok {
		return nil, notFoundError("Curso no encontrado")
	}
	return course, nil
}

// GetLesson returns a lesson and its course
func (s *CourseService) GetLesson(courseID, lessonID string) (*LessonDetail, error) {
	course, ok := s.catalog.Get(courseID)
	if !ok {
		return nil, notFoundError("Curso no encontrado")
	}
	lesson, ok := s.catalog.Lesson(courseID, lessonID)
	if !ok {
		return nil, notFoundError("Lección no encontrada")
	}
	return &LessonDetail{Lesson: lesson, Course: course}, nil
}
