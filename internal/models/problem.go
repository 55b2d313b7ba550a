package models

import "time"

// ProblemSubmission represents a problem statement sent to the solver by a user
type ProblemSubmission struct {
	ID          int64     `json:"id"`
	AccountID   string    `json:"usuario_id"`
	Statement   string    `json:"problema"`
	SubmittedAt time.Time `json:"fecha"`
	Solved      bool      `json:"resuelto"`
}

// SolveProblemRequest represents a request to the problem solver
type SolveProblemRequest struct {
	Problem string `json:"problema"`
}
