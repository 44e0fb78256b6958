package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutputWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(Close)

	L().Info().Str("pane", "left").Msg("relisted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "relisted", entry["message"])
	assert.Equal(t, "left", entry["pane"])
	assert.Contains(t, entry, "time")
}

func TestConfigureCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "zeta.log")
	require.NoError(t, Configure(path, false))
	t.Cleanup(Close)

	L().Warn().Msg("hello")
	L().Debug().Msg("hidden at info level")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "zeta.log", filepath.Base(DefaultPath()))
	assert.Equal(t, "zeta", filepath.Base(filepath.Dir(DefaultPath())))
}
