package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/football-academy/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_RejectsUnknownLevel(t *testing.T) {
	_, err := Setup(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
}

func TestSetup_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "academy.log")
	closer, err := Setup(config.LogConfig{Level: "info", File: path, MaxBackups: 1})
	require.NoError(t, err)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFormatter(log.TextFormatter)
	})

	log.Info("Player added", "name", "Jamie Doyle")
	log.Debug("hidden at info level")
	require.NoError(t, closer())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Player added"`)
	assert.Contains(t, string(data), `"name":"Jamie Doyle"`)
	assert.NotContains(t, string(data), "hidden at info level")
}
