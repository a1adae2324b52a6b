package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.log")

	l := Module(New(path, true), "test")
	l.Info("hello")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"module":"test"`)
}

func TestModuleNilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		Module(nil, "x").Info("dropped")
	})
}
