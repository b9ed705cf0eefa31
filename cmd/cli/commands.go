package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mauv0809/football-academy/internal/academy"
	"github.com/mauv0809/football-academy/internal/config"
	"github.com/mauv0809/football-academy/internal/importer"
	"github.com/mauv0809/football-academy/internal/snapshot"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(addPlayerCmd)
	rootCmd.AddCommand(deletePlayerCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(recalcCmd)
	rootCmd.AddCommand(ageGroupsCmd)
	rootCmd.AddCommand(leagueTeamsCmd)
	rootCmd.AddCommand(playerTypesCmd)
	rootCmd.AddCommand(birthdaysCmd)
	rootCmd.AddCommand(idpCmd)
	rootCmd.AddCommand(secondaryCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(metricsCmd)

	playersCmd.Flags().String("age-group", "", "Only players whose primary age group has this name")
	playersCmd.Flags().String("type", "", "Only players of this type, e.g. \"Full Time\"")

	addPlayerCmd.Flags().String("name", "", "Full name")
	addPlayerCmd.Flags().String("type", academy.TypeFullTime, "Player type code (FT, PT, SC, T)")
	addPlayerCmd.Flags().String("age-group", "", "Age group name, e.g. \"B 11 & 12\"")
	addPlayerCmd.Flags().Int("day", 1, "Birth day")
	addPlayerCmd.Flags().Int("month", 1, "Birth month")
	addPlayerCmd.Flags().Int("year", 2012, "Birth year")
	addPlayerCmd.Flags().String("jersey", "", "Jersey number")
	_ = addPlayerCmd.MarkFlagRequired("name")
	_ = addPlayerCmd.MarkFlagRequired("age-group")

	recalcCmd.Flags().Int64("group-id", 0, "Only recalculate this age group")
	birthdaysCmd.Flags().Int("month", 0, "Month number (defaults to the current month)")

	importCmd.Flags().String("file", config.DefaultImportFile, "Roster text file to import")
	importCmd.Flags().Bool("replace", false, "Remove all existing players before importing")

	exportCmd.Flags().String("format", string(snapshot.FormatMsgpack), "Snapshot format: msgpack or json")
	exportCmd.Flags().StringP("out", "o", "", "Write the snapshot to this file instead of stdout")
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List players, optionally filtered by age group or type",
	RunE: func(cmd *cobra.Command, args []string) error {
		group, _ := cmd.Flags().GetString("age-group")
		typeName, _ := cmd.Flags().GetString("type")

		var rows []academy.PlayerRow
		var err error
		switch {
		case group != "":
			rows, err = app.store.PlayersByAgeGroup(group)
		case typeName != "":
			rows, err = app.store.PlayersByType(typeName)
		default:
			rows, err = app.store.ListPlayers()
		}
		if err != nil {
			return err
		}
		return app.out.Players(rows)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search players by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := app.store.SearchPlayers(args[0])
		if err != nil {
			return err
		}
		return app.out.Players(rows)
	},
}

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Show every stored field of one player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, err := app.store.GetPlayer(id)
		if err != nil {
			return err
		}
		return app.out.Player(p)
	},
}

var addPlayerCmd = &cobra.Command{
	Use:   "add-player",
	Short: "Add a player to an age group",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		np := academy.NewPlayer{}
		np.FullName, _ = f.GetString("name")
		np.TypeCode, _ = f.GetString("type")
		np.AgeGroup, _ = f.GetString("age-group")
		np.BirthDay, _ = f.GetInt("day")
		np.BirthMonth, _ = f.GetInt("month")
		np.BirthYear, _ = f.GetInt("year")
		np.JerseyNumber, _ = f.GetString("jersey")

		id, err := app.store.AddPlayer(np)
		if err != nil {
			return err
		}
		app.out.Success("Player '%s' added with id %d.", np.FullName, id)
		return nil
	},
}

var deletePlayerCmd = &cobra.Command{
	Use:   "delete-player <id>",
	Short: "Delete a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := app.store.DeletePlayer(id); err != nil {
			return err
		}
		app.out.Success("Player %d deleted.", id)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the academy statistics per age group",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := app.store.Statistics()
		if err != nil {
			return err
		}
		return app.out.Statistics(stats)
	},
}

var recalcCmd = &cobra.Command{
	Use:   "recalc",
	Short: "Rebuild the statistics from the current roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, _ := cmd.Flags().GetInt64("group-id")
		if groupID != 0 {
			if err := app.store.RecalculateStatistics(groupID); err != nil {
				return err
			}
		} else if err := app.store.RecalculateAllStatistics(); err != nil {
			return err
		}
		stats, err := app.store.Statistics()
		if err != nil {
			return err
		}
		return app.out.Statistics(stats)
	},
}

var ageGroupsCmd = &cobra.Command{
	Use:   "age-groups",
	Short: "List the age groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := app.store.ListAgeGroups()
		if err != nil {
			return err
		}
		return app.out.AgeGroups(groups)
	},
}

var leagueTeamsCmd = &cobra.Command{
	Use:   "league-teams",
	Short: "List the league teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		teams, err := app.store.ListLeagueTeams()
		if err != nil {
			return err
		}
		return app.out.LeagueTeams(teams)
	},
}

var playerTypesCmd = &cobra.Command{
	Use:   "player-types",
	Short: "List the player types",
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := app.store.ListPlayerTypes()
		if err != nil {
			return err
		}
		return app.out.PlayerTypes(types)
	},
}

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "List players with a birthday in a month",
	RunE: func(cmd *cobra.Command, args []string) error {
		month, _ := cmd.Flags().GetInt("month")
		if month == 0 {
			month = int(time.Now().Month())
		}
		rows, err := app.store.BirthdaysInMonth(month)
		if err != nil {
			return err
		}
		app.out.Title(fmt.Sprintf("Birthdays in %s", time.Month(month)))
		return app.out.Players(rows)
	},
}

var idpCmd = &cobra.Command{
	Use:       "idp <sep|apr>",
	Short:     "List players with an IDP meeting in September or April",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(academy.IDPSeptember), string(academy.IDPApril)},
	RunE: func(cmd *cobra.Command, args []string) error {
		month, err := academy.ParseIDPMonth(args[0])
		if err != nil {
			return err
		}
		rows, err := app.store.IDPMeetings(month)
		if err != nil {
			return err
		}
		return app.out.Players(rows)
	},
}

var secondaryCmd = &cobra.Command{
	Use:   "secondary",
	Short: "List players assigned to a secondary age group",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := app.store.SecondaryAgeGroupPlayers()
		if err != nil {
			return err
		}
		return app.out.Players(rows)
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Seed reference data and import a roster file",
	RunE: func(cmd *cobra.Command, args []string) error {
		replace, _ := cmd.Flags().GetBool("replace")
		report, err := importer.New(app.store, app.metrics, app.counters).Run(cmd.Context(), importer.Options{
			File:    app.cfg.ImportFile,
			Replace: replace,
		})
		if err != nil {
			return err
		}
		return app.out.ImportReport(report)
	},
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the import audit trail",
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, err := app.store.ImportRuns()
		if err != nil {
			return err
		}
		return app.out.ImportRuns(runs)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a snapshot of the whole database",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		format, err := snapshot.ParseFormat(formatName)
		if err != nil {
			return err
		}
		snap, err := snapshot.Take(app.store)
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("out")
		if path == "" {
			return snapshot.Encode(cmd.OutOrStdout(), snap, format)
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := snapshot.Encode(f, snap, format); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s snapshot to %s\n", format, path)
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show the persisted usage counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := app.counters.GetAll()
		if err != nil {
			return err
		}
		return app.out.Counters(values)
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
