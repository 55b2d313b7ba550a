package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// LessonKind represents the activity type of a lesson
type LessonKind string

// LessonKind constants
const (
	KindVideo       LessonKind = "video"
	KindExercises   LessonKind = "ejercicios"
	KindEvaluation  LessonKind = "evaluacion"
	KindPractice    LessonKind = "practica"
	KindInteractive LessonKind = "interactivo"
)

// Question is a multiple choice question with exactly one correct option
type Question struct {
	Prompt  string   `json:"pregunta"`
	Options []string `json:"opciones"`
	Correct string   `json:"respuesta_correcta"`
}

// Validate checks that the question has a prompt, at least two options
// and that the correct option is one of them
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return errors.New("question prompt is empty")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %q has less than two options", q.Prompt)
	}
	if !slices.Contains(q.Options, q.Correct) {
		return fmt.Errorf("question %q: correct option %q is not among the options", q.Prompt, q.Correct)
	}
	return nil
}

// IsCorrect reports whether answer matches the correct option
func (q *Question) IsCorrect(answer string) bool {
	return answer == q.Correct
}

// VideoContent is the payload of a video lesson
type VideoContent struct {
	URL      string
	External bool
}

// QuizContent is the payload of exercises and evaluation lessons
type QuizContent struct {
	Title        string
	Description  string
	Instructions string
	Questions    []Question
}

// Activity is a single free-form practice activity
type Activity struct {
	Title       string   `json:"titulo"`
	Description string   `json:"descripcion"`
	Dialogue    string   `json:"dialogo,omitempty"`
	Topics      []string `json:"temas,omitempty"`
}

// PracticeContent is the payload of a practice lesson
type PracticeContent struct {
	Title       string     `json:"titulo"`
	Description string     `json:"descripcion"`
	Activities  []Activity `json:"actividades"`
}

// ListeningExercise is an audio reference with its comprehension questions
type ListeningExercise struct {
	AudioURL  string     `json:"audio_url"`
	Questions []Question `json:"preguntas"`
}

// ListeningContent is the payload of an interactive lesson
type ListeningContent struct {
	Title       string              `json:"titulo"`
	Description string              `json:"descripcion"`
	Exercises   []ListeningExercise `json:"ejercicios"`
}

// Lesson is a single step of a course curriculum.
//
// Exactly one payload field is set and it always matches Kind:
// Video for KindVideo, Quiz for KindExercises and KindEvaluation,
// Practice for KindPractice and Listening for KindInteractive.
type Lesson struct {
	ID        string
	Title     string
	Duration  int // minutes
	Kind      LessonKind
	Video     *VideoContent
	Quiz      *QuizContent
	Practice  *PracticeContent
	Listening *ListeningContent
}

// Questions returns every gradable question of the lesson in order
func (l *Lesson) Questions() []Question {
	switch {
	case l.Quiz != nil:
		return l.Quiz.Questions
	case l.Listening != nil:
		var questions []Question
		for _, exercise := range l.Listening.Exercises {
			questions = append(questions, exercise.Questions...)
		}
		return questions
	}
	return nil
}

// Validate checks the lesson identity and that its payload matches its kind
func (l *Lesson) Validate() error {
	if l.ID == "" {
		return errors.New("lesson id is empty")
	}
	if l.Title == "" {
		return fmt.Errorf("lesson %s: title is empty", l.ID)
	}
	if l.Duration <= 0 {
		return fmt.Errorf("lesson %s: duration must be positive", l.ID)
	}

	payloads := 0
	for _, set := range []bool{l.Video != nil, l.Quiz != nil, l.Practice != nil, l.Listening != nil} {
		if set {
			payloads++
		}
	}
	if payloads != 1 {
		return fmt.Errorf("lesson %s: expected exactly one payload, got %d", l.ID, payloads)
	}

	switch l.Kind {
	case KindVideo:
		if l.Video == nil || l.Video.URL == "" {
			return fmt.Errorf("lesson %s: video lesson requires a media url", l.ID)
		}
	case KindExercises, KindEvaluation:
		if l.Quiz == nil || len(l.Quiz.Questions) == 0 {
			return fmt.Errorf("lesson %s: %s lesson requires questions", l.ID, l.Kind)
		}
		if err := validateQuestions(l.Quiz.Questions); err != nil {
			return fmt.Errorf("lesson %s: %w", l.ID, err)
		}
	case KindPractice:
		if l.Practice == nil || len(l.Practice.Activities) == 0 {
			return fmt.Errorf("lesson %s: practice lesson requires activities", l.ID)
		}
	case KindInteractive:
		if l.Listening == nil || len(l.Listening.Exercises) == 0 {
			return fmt.Errorf("lesson %s: interactive lesson requires exercises", l.ID)
		}
		for _, exercise := range l.Listening.Exercises {
			if exercise.AudioURL == "" {
				return fmt.Errorf("lesson %s: listening exercise without audio url", l.ID)
			}
			if err := validateQuestions(exercise.Questions); err != nil {
				return fmt.Errorf("lesson %s: %w", l.ID, err)
			}
		}
	default:
		return fmt.Errorf("lesson %s: unknown kind %q", l.ID, l.Kind)
	}

	return nil
}

func validateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return errors.New("question set is empty")
	}
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// lessonWire is the JSON shape of a lesson shared by the catalog file and the API
type lessonWire struct {
	ID        string          `json:"id"`
	Title     string          `json:"titulo"`
	Duration  int             `json:"duracion"`
	Kind      LessonKind      `json:"tipo"`
	Completed bool            `json:"completado"`
	Media     string          `json:"archivo,omitempty"`
	External  bool            `json:"es_youtube,omitempty"`
	Content   json.RawMessage `json:"contenido,omitempty"`
}

// quizWire stores questions under "ejercicios" for exercises and "preguntas" for evaluations
type quizWire struct {
	Title        string     `json:"titulo"`
	Description  string     `json:"descripcion"`
	Instructions string     `json:"instrucciones,omitempty"`
	Exercises    []Question `json:"ejercicios,omitempty"`
	Questions    []Question `json:"preguntas,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (l Lesson) MarshalJSON() ([]byte, error) {
	w := lessonWire{
		ID:       l.ID,
		Title:    l.Title,
		Duration: l.Duration,
		Kind:     l.Kind,
	}

	var content any
	switch {
	case l.Video != nil:
		w.Media = l.Video.URL
		w.External = l.Video.External
	case l.Quiz != nil:
		q := quizWire{
			Title:        l.Quiz.Title,
			Description:  l.Quiz.Description,
			Instructions: l.Quiz.Instructions,
		}
		if l.Kind == KindExercises {
			q.Exercises = l.Quiz.Questions
		} else {
			q.Questions = l.Quiz.Questions
		}
		content = q
	case l.Practice != nil:
		content = l.Practice
	case l.Listening != nil:
		content = l.Listening
	}

	if content != nil {
		raw, err := json.Marshal(content)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal lesson %s content: %w", l.ID, err)
		}
		w.Content = raw
	}

	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
// The payload is decoded according to "tipo"; unknown kinds are rejected.
func (l *Lesson) UnmarshalJSON(data []byte) error {
	var w lessonWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*l = Lesson{
		ID:       w.ID,
		Title:    w.Title,
		Duration: w.Duration,
		Kind:     w.Kind,
	}

	if w.Kind != KindVideo && (w.Media != "" || w.External) {
		return fmt.Errorf("lesson %s: media reference on %s lesson", w.ID, w.Kind)
	}

	switch w.Kind {
	case KindVideo:
		if len(w.Content) > 0 {
			return fmt.Errorf("lesson %s: content on video lesson", w.ID)
		}
		l.Video = &VideoContent{URL: w.Media, External: w.External}
	case KindExercises, KindEvaluation:
		if len(w.Content) == 0 {
			return nil
		}
		var q quizWire
		if err := json.Unmarshal(w.Content, &q); err != nil {
			return fmt.Errorf("lesson %s: invalid content: %w", w.ID, err)
		}
		questions := q.Questions
		if w.Kind == KindExercises {
			questions = q.Exercises
		}
		l.Quiz = &QuizContent{
			Title:        q.Title,
			Description:  q.Description,
			Instructions: q.Instructions,
			Questions:    questions,
		}
	case KindPractice:
		if len(w.Content) == 0 {
			return nil
		}
		l.Practice = &PracticeContent{}
		if err := json.Unmarshal(w.Content, l.Practice); err != nil {
			return fmt.Errorf("lesson %s: invalid content: %w", w.ID, err)
		}
	case KindInteractive:
		if len(w.Content) == 0 {
			return nil
		}
		l.Listening = &ListeningContent{}
		if err := json.Unmarshal(w.Content, l.Listening); err != nil {
			return fmt.Errorf("lesson %s: invalid content: %w", w.ID, err)
		}
	default:
		return fmt.Errorf("lesson %s: unknown kind %q", w.ID, w.Kind)
	}

	return nil
}
