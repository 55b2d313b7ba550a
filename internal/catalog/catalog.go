// Package catalog provides the static course and lesson catalog bundled with the application
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/inclulearn/backend/internal/models"
)

//go:embed data/courses.json
var bundled embed.FS

// DefaultPath is the location of the bundled catalog inside the embedded filesystem
const DefaultPath = "data/courses.json"

// Catalog holds the immutable course definitions.
// It is built once at startup and is safe for concurrent readers.
type Catalog struct {
	courses []models.Course
	byID    map[string]int
}

// Default loads the catalog bundled with the binary
func Default() (*Catalog, error) {
	return Load(bundled, DefaultPath)
}

// Load reads and validates a catalog JSON file from fsys
func Load(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var courses []models.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return New(courses)
}

// New validates courses and builds a catalog preserving their order
func New(courses []models.Course) (*Catalog, error) {
	if len(courses) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	c := &Catalog{
		courses: courses,
		byID:    make(map[string]int, len(courses)),
	}

	for i := range courses {
		course := &courses[i]
		if err := validateCourse(course); err != nil {
			return nil, err
		}
		if _, exists := c.byID[course.ID]; exists {
			return nil, fmt.Errorf("duplicate course id %s", course.ID)
		}
		c.byID[course.ID] = i
	}

	return c, nil
}

// validateCourse checks course attributes and every lesson of the course
func validateCourse(course *models.Course) error {
	if course.ID == "" {
		return fmt.Errorf("course id is empty")
	}
	if course.Title == "" {
		return fmt.Errorf("course %s: title is empty", course.ID)
	}
	if !course.Level.Valid() {
		return fmt.Errorf("course %s: invalid level %q", course.ID, course.Level)
	}
	if len(course.Lessons) == 0 {
		return fmt.Errorf("course %s: no lessons", course.ID)
	}

	seen := make(map[string]struct{}, len(course.Lessons))
	for i := range course.Lessons {
		lesson := &course.Lessons[i]
		if err := lesson.Validate(); err != nil {
			return fmt.Errorf("course %s: %w", course.ID, err)
		}
		if _, exists := seen[lesson.ID]; exists {
			return fmt.Errorf("course %s: duplicate lesson id %s", course.ID, lesson.ID)
		}
		seen[lesson.ID] = struct{}{}
	}

	return nil
}

// List returns the summaries of all courses in declaration order
func (c *Catalog) List() []models.CourseSummary {
	summaries := make([]models.CourseSummary, 0, len(c.courses))
	for i := range c.courses {
		summaries = append(summaries, c.courses[i].ToSummary())
	}
	return summaries
}

// Get returns the course with the given id.
// The returned pointer refers to catalog memory and must not be modified.
func (c *Catalog) Get(id string) (*models.Course, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.courses[i], true
}

// Lesson returns the first lesson of the course whose id equals lessonID
func (c *Catalog) Lesson(courseID, lessonID string) (*models.Lesson, bool) {
	course, ok := c.Get(courseID)
	if !ok {
		return nil, false
	}
	for i := range course.Lessons {
		if course.Lessons[i].ID == lessonID {
			return &course.Lessons[i], true
		}
	}
	return nil, false
}

// LessonAt returns the lesson at the zero-based position index of the course
func (c *Catalog) LessonAt(courseID string, index int) (*models.Lesson, bool) {
	course, ok := c.Get(courseID)
	if !ok {
		return nil, false
	}
	if index < 0 || index >= len(course.Lessons) {
		return nil, false
	}
	return &course.Lessons[index], true
}

// LessonIDs returns the ids of the course lessons in curriculum order
func (c *Catalog) LessonIDs(courseID string) []string {
	course, ok := c.Get(courseID)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(course.Lessons))
	for i := range course.Lessons {
		ids = append(ids, course.Lessons[i].ID)
	}
	return ids
}
