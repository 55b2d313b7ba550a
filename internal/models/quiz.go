package models

import "time"

// QuizSubmission represents a user's answers to the questions of a lesson
type QuizSubmission struct {
	ID          int64             `json:"id"`
	UserID      string            `json:"userId"`
	LessonID    string            `json:"leccion_id"`
	Answers     map[string]string `json:"respuestas"`
	Score       int               `json:"puntaje"`
	SubmittedAt time.Time         `json:"fecha_completado"`
}

// SubmitQuizRequest represents a quiz submission.
//
// Answers are keyed by the zero-based question index. When CourseID is set
// the score is computed from the catalog and ClientScore is ignored.
type SubmitQuizRequest struct {
	CourseID    string            `json:"curso_id,omitempty"`
	Answers     map[string]string `json:"respuestas"`
	ClientScore int               `json:"puntaje"`
}
