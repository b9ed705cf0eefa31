package console_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mauv0809/football-academy/internal/academy"
	"github.com/mauv0809/football-academy/internal/console"
	"github.com/mauv0809/football-academy/internal/importer"
	"github.com/mauv0809/football-academy/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := console.New(&buf)

	require.NoError(t, p.Players(nil))
	require.NoError(t, p.Statistics(nil))
	require.NoError(t, p.Counters(map[string]int{}))

	assert.Equal(t, strings.Repeat(console.NoResults+"\n", 3), buf.String())
}

func TestPlayers(t *testing.T) {
	var buf bytes.Buffer
	day, month, year := 4, 5, 2012

	err := console.New(&buf).Players([]academy.PlayerRow{
		{ID: 7, FullName: "John Smith", PlayerType: "Full Time", AgeGroup: "B 11 & 12",
			BirthDay: &day, BirthMonth: &month, BirthYear: &year, JerseyNumber: "10"},
		{ID: 8, FullName: "Lost Boy"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "John Smith")
	assert.Contains(t, out, "B 11 & 12")
	assert.Contains(t, out, "4/5/2012")
	assert.Contains(t, out, "Lost Boy")
	assert.Contains(t, out, "-")
	assert.NotContains(t, out, console.NoResults)
}

func TestPlayer(t *testing.T) {
	var buf bytes.Buffer
	group := int64(3)

	err := console.New(&buf).Player(&academy.Player{
		ID: 1, FullName: "Amy Lee", TypeCode: "SC", PrimaryAgeGroupID: &group,
		Flags: roster.Flags{Chat: true},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Amy Lee")
	assert.Contains(t, out, "SC")
	assert.Contains(t, out, "Yes")
}

func TestStatistics(t *testing.T) {
	var buf bytes.Buffer
	err := console.New(&buf).Statistics([]academy.AgeGroupStatistic{
		{AgeGroup: "G 10 & 11", Total: 3, Budget: 18, Net: 15, FullTime: 2, Trial: 1},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "G 10 & 11")
	assert.Contains(t, buf.String(), "15")
}

func TestCounters_Sorted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, console.New(&buf).Counters(map[string]int{"zeta": 1, "alpha": 2}))

	out := buf.String()
	assert.Less(t, strings.Index(out, "alpha"), strings.Index(out, "zeta"))
}

func TestImportReport(t *testing.T) {
	var buf bytes.Buffer
	err := console.New(&buf).ImportReport(&importer.Report{
		RunID:           "run-1",
		Source:          "roster.txt",
		LinesRead:       5,
		PlayersImported: 3,
		Skipped:         []roster.SkippedLine{{Line: 2, Reason: roster.SkipTooShort, Text: "a b"}},
		Duration:        1500 * time.Millisecond,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Import summary")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "Skipped lines")
	assert.Contains(t, out, string(roster.SkipTooShort))
}

func TestReferenceTables(t *testing.T) {
	var buf bytes.Buffer
	p := console.New(&buf)

	require.NoError(t, p.AgeGroups([]academy.AgeGroup{{ID: 1, Name: "B 11 & 12"}}))
	require.NoError(t, p.LeagueTeams([]academy.LeagueTeam{{ID: 2, Name: "League Team 1"}}))
	require.NoError(t, p.PlayerTypes([]academy.PlayerType{{Code: "T", Name: "Trial"}}))
	require.NoError(t, p.ImportRuns([]academy.ImportRun{{ID: "abc", Source: "f.txt", StartedAt: time.Now(), FinishedAt: time.Now()}}))

	out := buf.String()
	for _, want := range []string{"B 11 & 12", "League Team 1", "Trial", "abc", "f.txt"} {
		assert.Contains(t, out, want)
	}
}
