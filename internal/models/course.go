package models

// Level represents the difficulty level of a course
type Level string

// Level constants
const (
	LevelBeginner     Level = "Principiante"
	LevelIntermediate Level = "Intermedio"
	LevelAdvanced     Level = "Avanzado"
)

// Valid reports whether the level is one of the known levels
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Course represents a course of the static catalog
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"titulo"`
	Summary     string   `json:"resumen,omitempty"`
	Description string   `json:"descripcion"`
	Category    string   `json:"categoria"`
	Level       Level    `json:"nivel"`
	Duration    string   `json:"duracion"`
	Image       string   `json:"imagen,omitempty"`
	Instructor  string   `json:"instructor"`
	Rating      string   `json:"rating"`
	Students    string   `json:"estudiantes"`
	Objectives  []string `json:"objetivos"`
	Lessons     []Lesson `json:"lecciones"`
}

// CourseSummary represents a course in list responses
type CourseSummary struct {
	ID          string `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	Category    string `json:"categoria"`
	Level       Level  `json:"nivel"`
	Duration    string `json:"duracion"`
	Image       string `json:"imagen,omitempty"`
}

// ToSummary builds the list representation of the course.
// The short summary is preferred over the full description when present.
func (c *Course) ToSummary() CourseSummary {
	description := c.Summary
	if description == "" {
		description = c.Description
	}
	return CourseSummary{
		ID:          c.ID,
		Title:       c.Title,
		Description: description,
		Category:    c.Category,
		Level:       c.Level,
		Duration:    c.Duration,
		Image:       c.Image,
	}
}
