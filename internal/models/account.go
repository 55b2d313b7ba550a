package models

import "time"

// DefaultFontSize is the font size assigned to new accounts
const DefaultFontSize = 16

// DefaultLevelLabel is the level label assigned to new accounts
const DefaultLevelLabel = "principiante"

// Preferences represents the accessibility preferences of an account
type Preferences struct {
	HighContrast bool `json:"alto_contraste"`
	FontSize     int  `json:"tamano_fuente"`
	VoiceReader  bool `json:"lector_voz"`
}

// DefaultPreferences returns the preferences of a newly registered account
func DefaultPreferences() Preferences {
	return Preferences{FontSize: DefaultFontSize}
}

// ProgressCounters represents the aggregate progress of an account
type ProgressCounters struct {
	CoursesCompleted int    `json:"cursos_completados"`
	ProblemsSolved   int    `json:"problemas_resueltos"`
	Level            string `json:"nivel"`
}

// Account represents a registered user
type Account struct {
	ID           string           `json:"id"`
	Name         string           `json:"nombre"`
	Email        string           `json:"email"`
	PasswordHash string           `json:"-"` // Never serialize password hash
	Preferences  Preferences      `json:"preferencias_accesibilidad"`
	Progress     ProgressCounters `json:"progreso"`
	RegisteredAt time.Time        `json:"fecha_registro"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePreferencesRequest represents a request to update preferences (partial update)
type UpdatePreferencesRequest struct {
	HighContrast *bool `json:"alto_contraste,omitempty"`
	FontSize     *int  `json:"tamano_fuente,omitempty"`
	VoiceReader  *bool `json:"lector_voz,omitempty"`
}

// AuthResponse is returned after a successful registration or login
type AuthResponse struct {
	Message string `json:"mensaje"`
	UserID  string `json:"user_id"`
	Name    string `json:"nombre"`
}

// UserDataResponse describes the identity attached to the current session
type UserDataResponse struct {
	LoggedIn    bool         `json:"logged_in"`
	Name        string       `json:"nombre,omitempty"`
	Email       string       `json:"email,omitempty"`
	Preferences *Preferences `json:"preferencias,omitempty"`
}

// Recommendation is a single suggested next step for a learner
type Recommendation struct {
	Kind        string `json:"tipo"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	Priority    string `json:"prioridad"`
}

// RecommendationsResponse represents the recommendations of an account together with its progress
type RecommendationsResponse struct {
	Recommendations []Recommendation  `json:"recomendaciones"`
	Progress        *ProgressCounters `json:"progreso"`
}
