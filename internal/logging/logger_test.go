package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSONCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", "json", "mazegen")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("maze ready", "rows", 5)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "maze ready", rec["msg"])
	assert.Equal(t, "mazegen", rec["component"])
	assert.EqualValues(t, 5, rec["rows"])
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "info", "xml", "game")
	assert.Error(t, err)
}
