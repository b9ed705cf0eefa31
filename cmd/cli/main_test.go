package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mauv0809/football-academy/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterFile = `PLAYER NAME TYPE AGE GROUP
John Smith FT B 11 & 12 1 2 2013 10 YES NO YES NO YES YES
Jane Doe SC G 10 & 11 15/06/2014 4 G 12 & 13 NO YES NO YES NO NO
`

// execute runs the root command with args against a fresh output buffer.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	closeEnv()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "academy.db")
	roster := filepath.Join(dir, "roster.txt")
	require.NoError(t, os.WriteFile(roster, []byte(rosterFile), 0o600))

	out, err := execute(t, "import", "--db", dbPath, "--file", roster)
	require.NoError(t, err)
	assert.Contains(t, out, "Import summary")

	out, err = execute(t, "stats", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "B 11 & 12")

	out, err = execute(t, "players", "--db", dbPath, "--type", "Scholarship")
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Doe")
	assert.NotContains(t, out, "John Smith")

	out, err = execute(t, "secondary", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "G 12 & 13")

	out, err = execute(t, "idp", "--db", dbPath, "sep")
	require.NoError(t, err)
	assert.Contains(t, out, "John Smith")

	out, err = execute(t, "search", "--db", dbPath, "nobody")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")

	out, err = execute(t, "recalc", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "G 10 & 11")

	t.Run("export", func(t *testing.T) {
		path := filepath.Join(dir, "snapshot.json")
		_, err := execute(t, "export", "--db", dbPath, "--format", "json", "--out", path)
		require.NoError(t, err)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		snap, err := snapshot.Decode(f, snapshot.FormatJSON)
		require.NoError(t, err)
		assert.Len(t, snap.Players, 2)
		assert.Len(t, snap.ImportRuns, 1)
	})

	t.Run("metrics", func(t *testing.T) {
		out, err := execute(t, "metrics", "--db", dbPath)
		require.NoError(t, err)
		assert.Contains(t, out, "players_imported")
		assert.Contains(t, out, "cli_import")
	})

	t.Run("errors", func(t *testing.T) {
		_, err := execute(t, "player", "--db", dbPath, "abc")
		assert.ErrorContains(t, err, "invalid id")

		_, err = execute(t, "idp", "--db", dbPath, "dec")
		assert.Error(t, err)
	})
}

func TestBuiltinCommandsSkipDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "untouched.db")

	out, err := execute(t, "completion", "bash", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "bash completion")
	assert.NoFileExists(t, path)

	out, err = execute(t, "help", "players", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "List players")
	assert.NoFileExists(t, path)

	cmd, _, err := rootCmd.Find([]string{"stats"})
	require.NoError(t, err)
	assert.True(t, needsDatabase(cmd))
}
