package models

import "time"

// AnonymousUserID is the identity shared by every caller without a session
const AnonymousUserID = "anonimo"

// CompletionRecord represents a user's completion of a lesson
type CompletionRecord struct {
	UserID      string    `json:"userId"`
	LessonID    string    `json:"leccion_id"`
	Completed   bool      `json:"completado"`
	CompletedAt time.Time `json:"fecha_completado"`
}

// VideoProgress represents the last known playback state of a video lesson for a user
type VideoProgress struct {
	UserID    string    `json:"userId"`
	LessonID  string    `json:"leccion_id"`
	Position  float64   `json:"tiempo_actual"`
	Percent   float64   `json:"porcentaje_completado"`
	UpdatedAt time.Time `json:"ultima_actualizacion"`
}

// CourseProgress represents the completion statistics of a course for a user
type CourseProgress struct {
	Completed int     `json:"lecciones_completadas"`
	Total     int     `json:"total_lecciones"`
	Percent   float64 `json:"porcentaje"`
}

// LessonStatus represents what a user has done on a single lesson
type LessonStatus struct {
	LessonID  string  `json:"leccion_id"`
	Completed bool    `json:"completado"`
	Position  float64 `json:"tiempo_actual"`
	Percent   float64 `json:"porcentaje_completado"`
}

// SaveVideoProgressRequest represents a request to store video playback progress
type SaveVideoProgressRequest struct {
	LessonID string  `json:"leccion_id"`
	Position float64 `json:"tiempo_actual"`
	Percent  float64 `json:"porcentaje_completado"`
}

// CompleteLessonAtRequest represents a request to complete a lesson by its position in the course
type CompleteLessonAtRequest struct {
	LessonIndex *int `json:"leccion_index"`
}
