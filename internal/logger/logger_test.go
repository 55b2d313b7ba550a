package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init("info", "") })

	tests := []struct {
		name          string
		level         string
		expectedError bool
	}{
		{name: "debug", level: "debug"},
		{name: "info", level: "info"},
		{name: "uppercase warn", level: "WARN"},
		{name: "invalid level", level: "verbose", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.level, "")
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, Logger)
		})
	}
}

func TestInit_WritesJSONToFile(t *testing.T) {
	t.Cleanup(func() { Init("info", "") })

	file := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Init("info", file))

	Logger.Info("file entry")
	Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"file entry"`)
}
