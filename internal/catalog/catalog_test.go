package catalog

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/inclulearn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	summaries := c.List()
	require.Len(t, summaries, 6)

	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids)

	// listing uses the short summary, the detail keeps the full description
	assert.Equal(t, "Curso introductorio de matemáticas con enfoque accesible", summaries[0].Description)
	course, ok := c.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Curso completo de matemáticas básicas con enfoque accesible", course.Description)
}

func TestCatalog_EveryCourseAndLessonIsReachable(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, summary := range c.List() {
		course, ok := c.Get(summary.ID)
		require.True(t, ok, "course %s", summary.ID)
		assert.Equal(t, summary.ID, course.ID)

		for _, lesson := range course.Lessons {
			found, ok := c.Lesson(course.ID, lesson.ID)
			require.True(t, ok, "course %s lesson %s", course.ID, lesson.ID)
			assert.Equal(t, lesson.ID, found.ID)
		}
	}
}

func TestCatalog_Get(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name     string
		id       string
		expected bool
	}{
		{name: "existing course", id: "3", expected: true},
		{name: "unknown course", id: "99", expected: false},
		{name: "empty id", id: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course, ok := c.Get(tt.id)
			assert.Equal(t, tt.expected, ok)
			if tt.expected {
				assert.Equal(t, tt.id, course.ID)
			} else {
				assert.Nil(t, course)
			}
		})
	}
}

func TestCatalog_Lesson(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name         string
		courseID     string
		lessonID     string
		expectedOK   bool
		expectedKind models.LessonKind
	}{
		{name: "video lesson", courseID: "1", lessonID: "1", expectedOK: true, expectedKind: models.KindVideo},
		{name: "exercises lesson", courseID: "1", lessonID: "3", expectedOK: true, expectedKind: models.KindExercises},
		{name: "evaluation lesson", courseID: "2", lessonID: "5", expectedOK: true, expectedKind: models.KindEvaluation},
		{name: "practice lesson", courseID: "3", lessonID: "3", expectedOK: true, expectedKind: models.KindPractice},
		{name: "interactive lesson", courseID: "3", lessonID: "4", expectedOK: true, expectedKind: models.KindInteractive},
		{name: "unknown lesson in valid course", courseID: "1", lessonID: "42", expectedOK: false},
		{name: "unknown course", courseID: "42", lessonID: "1", expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lesson, ok := c.Lesson(tt.courseID, tt.lessonID)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.lessonID, lesson.ID)
				assert.Equal(t, tt.expectedKind, lesson.Kind)
			}
		})
	}
}

func TestCatalog_LessonAt(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	lesson, ok := c.LessonAt("1", 0)
	require.True(t, ok)
	assert.Equal(t, "1", lesson.ID)

	lesson, ok = c.LessonAt("1", 4)
	require.True(t, ok)
	assert.Equal(t, "5", lesson.ID)

	_, ok = c.LessonAt("1", 5)
	assert.False(t, ok)
	_, ok = c.LessonAt("1", -1)
	assert.False(t, ok)
	_, ok = c.LessonAt("unknown", 0)
	assert.False(t, ok)
}

func TestCatalog_LessonIDs(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, c.LessonIDs("4"))
	assert.Nil(t, c.LessonIDs("unknown"))
}

func TestLesson_Questions(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	exercises, _ := c.Lesson("1", "3")
	assert.Len(t, exercises.Questions(), 4)

	listening, _ := c.Lesson("3", "4")
	assert.Len(t, listening.Questions(), 3)

	video, _ := c.Lesson("1", "1")
	assert.Nil(t, video.Questions())
}

func TestLesson_JSONKeepsKindSpecificKeys(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name        string
		courseID    string
		lessonID    string
		checkFields func(t *testing.T, raw map[string]any)
	}{
		{
			name:     "video",
			courseID: "1",
			lessonID: "1",
			checkFields: func(t *testing.T, raw map[string]any) {
				assert.Equal(t, "https://www.youtube.com/embed/i2pazVdFxVQ", raw["archivo"])
				assert.Equal(t, true, raw["es_youtube"])
				assert.NotContains(t, raw, "contenido")
			},
		},
		{
			name:     "exercises use ejercicios",
			courseID: "1",
			lessonID: "3",
			checkFields: func(t *testing.T, raw map[string]any) {
				content := raw["contenido"].(map[string]any)
				assert.Contains(t, content, "ejercicios")
				assert.NotContains(t, content, "preguntas")
			},
		},
		{
			name:     "evaluation uses preguntas",
			courseID: "1",
			lessonID: "5",
			checkFields: func(t *testing.T, raw map[string]any) {
				content := raw["contenido"].(map[string]any)
				assert.Contains(t, content, "preguntas")
				assert.Contains(t, content, "instrucciones")
				assert.NotContains(t, content, "ejercicios")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lesson, ok := c.Lesson(tt.courseID, tt.lessonID)
			require.True(t, ok)

			data, err := json.Marshal(lesson)
			require.NoError(t, err)

			var raw map[string]any
			require.NoError(t, json.Unmarshal(data, &raw))
			assert.Equal(t, false, raw["completado"])
			tt.checkFields(t, raw)
		})
	}
}

func TestLoad_InvalidCatalog(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "empty catalog",
			data: `[]`,
		},
		{
			name: "malformed json",
			data: `[{"id": "1",`,
		},
		{
			name: "unknown lesson kind",
			data: `[{"id":"1","titulo":"C","nivel":"Principiante","lecciones":[
				{"id":"1","titulo":"L","duracion":5,"tipo":"podcast"}]}]`,
		},
		{
			name: "invalid level",
			data: `[{"id":"1","titulo":"C","nivel":"Experto","lecciones":[
				{"id":"1","titulo":"L","duracion":5,"tipo":"video","archivo":"https://v"}]}]`,
		},
		{
			name: "correct option not among options",
			data: `[{"id":"1","titulo":"C","nivel":"Principiante","lecciones":[
				{"id":"1","titulo":"L","duracion":5,"tipo":"ejercicios","contenido":{"titulo":"E","descripcion":"D",
				"ejercicios":[{"pregunta":"2+2","opciones":["3","5"],"respuesta_correcta":"4"}]}}]}]`,
		},
		{
			name: "evaluation without questions",
			data: `[{"id":"1","titulo":"C","nivel":"Principiante","lecciones":[
				{"id":"1","titulo":"L","duracion":5,"tipo":"evaluacion","contenido":{"titulo":"E","descripcion":"D",
				"ejercicios":[{"pregunta":"2+2","opciones":["4","5"],"respuesta_correcta":"4"}]}}]}]`,
		},
		{
			name: "video without media",
			data: `[{"id":"1","titulo":"C","nivel":"Principiante","lecciones":[
				{"id":"1","titulo":"L","duracion":5,"tipo":"video"}]}]`,
		},
		{
			name: "video with content",
			data: `[{"id":"1","titulo":"C","nivel":"Principiante","lecciones":[
				{"id":"1","titulo":"L","duracion":5,"tipo":"video","archivo":"https://v","contenido":{"titulo":"x"}}]}]`,
		},
		{
			name: "practice without content",
			data: `[{"id":"1","titulo":"C","nivel":"Principiante","lecciones":[
				{"id":"1","titulo":"L","duracion":5,"tipo":"practica"}]}]`,
		},
		{
			name: "duplicate lesson id",
			data: `[{"id":"1","titulo":"C","nivel":"Principiante","lecciones":[
				{"id":"1","titulo":"L","duracion":5,"tipo":"video","archivo":"https://v"},
				{"id":"1","titulo":"L2","duracion":5,"tipo":"video","archivo":"https://w"}]}]`,
		},
		{
			name: "duplicate course id",
			data: `[{"id":"1","titulo":"C","nivel":"Principiante","lecciones":[
				{"id":"1","titulo":"L","duracion":5,"tipo":"video","archivo":"https://v"}]},
				{"id":"1","titulo":"C2","nivel":"Avanzado","lecciones":[
				{"id":"1","titulo":"L","duracion":5,"tipo":"video","archivo":"https://v"}]}]`,
		},
		{
			name: "course without lessons",
			data: `[{"id":"1","titulo":"C","nivel":"Principiante","lecciones":[]}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"catalog.json": &fstest.MapFile{Data: []byte(tt.data)}}

			c, err := Load(fsys, "catalog.json")

			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	c, err := Load(fstest.MapFS{}, "missing.json")
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestLoad_MinimalCatalog(t *testing.T) {
	data := `[{"id":"a","titulo":"C","nivel":"Intermedio","lecciones":[
		{"id":"x","titulo":"L","duracion":5,"tipo":"interactivo","contenido":{"titulo":"I","descripcion":"D",
		"ejercicios":[{"audio_url":"/a.mp3","preguntas":[{"pregunta":"Q","opciones":["y","n"],"respuesta_correcta":"y"}]}]}}]}]`
	fsys := fstest.MapFS{"catalog.json": &fstest.MapFile{Data: []byte(data)}}

	c, err := Load(fsys, "catalog.json")
	require.NoError(t, err)

	lesson, ok := c.Lesson("a", "x")
	require.True(t, ok)
	require.NotNil(t, lesson.Listening)
	assert.Equal(t, "/a.mp3", lesson.Listening.Exercises[0].AudioURL)
}
