// Package menu implements the interactive academy manager.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/football-academy/internal/academy"
	"github.com/mauv0809/football-academy/internal/console"
)

const (
	appTitle = "Football Academy Database Manager"
	farewell = "Thank you for using the Football Academy Database Manager!"
)

// Menu drives the numbered main menu and its sub-menus.
type Menu struct {
	store academy.AcademyStore
	in    *Prompter
	out   *console.Printer
	now   func() time.Time
}

type option struct {
	key    string
	label  string
	action func() error
}

// New creates a Menu reading answers from r and writing to w.
func New(store academy.AcademyStore, r io.Reader, w io.Writer) *Menu {
	return &Menu{
		store: store,
		in:    NewPrompter(r, w),
		out:   console.New(w),
		now:   time.Now,
	}
}

// WithClock overrides the clock used for the birthdays report.
func (m *Menu) WithClock(now func() time.Time) *Menu {
	m.now = now
	return m
}

// Run shows the main menu until the user exits, the input ends or ctx is
// cancelled.
func (m *Menu) Run(ctx context.Context) error {
	m.in.WithContext(ctx)
	options := []option{
		{"1", "View all players", m.listPlayers},
		{"2", "Search for players", m.searchPlayers},
		{"3", "View players by age group", m.playersByAgeGroup},
		{"4", "View players by type", m.playersByType},
		{"5", "Add a new player", m.addPlayer},
		{"6", "Update player information", m.updatePlayer},
		{"7", "Delete a player", m.deletePlayer},
		{"8", "View academy statistics", m.statistics},
		{"9", "View players with birthdays this month", m.birthdays},
		{"10", "View players with IDP meetings", m.idpMeetings},
		{"11", "View players with secondary age group assignments", m.secondaryAgeGroups},
		{"12", "Manage age groups", func() error { return m.ageGroupMenu(ctx) }},
		{"13", "Manage league teams", func() error { return m.leagueTeamMenu(ctx) }},
	}

	err := m.loop(ctx, appTitle, "Exit", options)
	if errors.Is(err, ErrInputClosed) {
		err = nil
	}
	fmt.Fprintln(m.out.Writer(), farewell)
	return err
}

// loop renders options until 0 is chosen. Action errors other than closed
// input are reported and the loop continues.
func (m *Menu) loop(ctx context.Context, title, back string, options []option) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.out.Title(title)
		for _, o := range options {
			fmt.Fprintf(m.out.Writer(), "%s. %s\n", o.key, o.label)
		}
		fmt.Fprintf(m.out.Writer(), "0. %s\n", back)

		choice, err := m.in.Input("Enter your choice: ", true)
		if err != nil {
			return err
		}
		if choice == "0" {
			return nil
		}

		var action func() error
		for _, o := range options {
			if o.key == choice {
				action = o.action
				break
			}
		}
		if action == nil {
			fmt.Fprintln(m.out.Writer(), "Invalid choice. Please try again.")
			continue
		}

		if err := action(); err != nil {
			if errors.Is(err, ErrInputClosed) || ctx.Err() != nil {
				return err
			}
			log.Debug("Menu action failed", "choice", choice, "error", err)
			m.out.Failure("Error: %v", err)
		}
	}
}

func (m *Menu) showPlayers(title string, rows []academy.PlayerRow, err error) error {
	if err != nil {
		return err
	}
	m.out.Title(title)
	return m.out.Players(rows)
}

func (m *Menu) listPlayers() error {
	rows, err := m.store.ListPlayers()
	return m.showPlayers("=== All Players ===", rows, err)
}

func (m *Menu) searchPlayers() error {
	term, err := m.in.Input("Enter player name to search: ", true)
	if err != nil {
		return err
	}
	rows, err := m.store.SearchPlayers(term)
	return m.showPlayers(fmt.Sprintf("=== Search Results for '%s' ===", term), rows, err)
}

func (m *Menu) playersByAgeGroup() error {
	group, ok, err := m.selectAgeGroup("Select an age group:")
	if err != nil || !ok {
		return err
	}
	rows, err := m.store.PlayersByAgeGroup(group.Name)
	return m.showPlayers(fmt.Sprintf("=== Players in %s ===", group.Name), rows, err)
}

func (m *Menu) playersByType() error {
	pt, ok, err := m.selectPlayerType("Select a player type:")
	if err != nil || !ok {
		return err
	}
	rows, err := m.store.PlayersByType(pt.Name)
	return m.showPlayers(fmt.Sprintf("=== %s Players ===", pt.Name), rows, err)
}

func (m *Menu) statistics() error {
	stats, err := m.store.Statistics()
	if err != nil {
		return err
	}
	m.out.Title("=== Academy Statistics ===")
	return m.out.Statistics(stats)
}

func (m *Menu) birthdays() error {
	month := m.now().Month()
	rows, err := m.store.BirthdaysInMonth(int(month))
	return m.showPlayers(fmt.Sprintf("=== Players with Birthdays in %s ===", month), rows, err)
}

func (m *Menu) idpMeetings() error {
	value, err := m.in.Input("Enter month (sep/apr): ", true)
	if err != nil {
		return err
	}
	month, err := academy.ParseIDPMonth(value)
	if err != nil {
		m.out.Failure("Invalid month. Please enter 'sep' or 'apr'.")
		return nil
	}
	rows, err := m.store.IDPMeetings(month)
	return m.showPlayers(fmt.Sprintf("=== Players with IDP Meetings in %s ===", month), rows, err)
}

func (m *Menu) secondaryAgeGroups() error {
	rows, err := m.store.SecondaryAgeGroupPlayers()
	return m.showPlayers("=== Players with Secondary Age Group Assignments ===", rows, err)
}

func (m *Menu) selectAgeGroup(prompt string) (academy.AgeGroup, bool, error) {
	groups, err := m.store.ListAgeGroups()
	if err != nil {
		return academy.AgeGroup{}, false, err
	}
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	idx, err := m.in.Select(prompt, names)
	if err != nil || idx < 0 {
		return academy.AgeGroup{}, false, err
	}
	return groups[idx], true, nil
}

func (m *Menu) selectPlayerType(prompt string) (academy.PlayerType, bool, error) {
	types, err := m.store.ListPlayerTypes()
	if err != nil {
		return academy.PlayerType{}, false, err
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}
	idx, err := m.in.Select(prompt, names)
	if err != nil || idx < 0 {
		return academy.PlayerType{}, false, err
	}
	return types[idx], true, nil
}

func (m *Menu) selectLeagueTeam(prompt string) (academy.LeagueTeam, bool, error) {
	teams, err := m.store.ListLeagueTeams()
	if err != nil {
		return academy.LeagueTeam{}, false, err
	}
	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Name
	}
	idx, err := m.in.Select(prompt, names)
	if err != nil || idx < 0 {
		return academy.LeagueTeam{}, false, err
	}
	return teams[idx], true, nil
}

// findPlayer searches by name and lets the user pick one of the matches.
func (m *Menu) findPlayer(action string) (academy.PlayerRow, bool, error) {
	term, err := m.in.Input(fmt.Sprintf("Enter player name to %s: ", action), true)
	if err != nil {
		return academy.PlayerRow{}, false, err
	}
	players, err := m.store.SearchPlayers(term)
	if err != nil {
		return academy.PlayerRow{}, false, err
	}
	if len(players) == 0 {
		fmt.Fprintf(m.out.Writer(), "No players found matching '%s'.\n", term)
		return academy.PlayerRow{}, false, nil
	}
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = fmt.Sprintf("%s (%s)", p.FullName, orNone(p.AgeGroup))
	}
	idx, err := m.in.Select(fmt.Sprintf("Select player to %s:", action), names)
	if err != nil || idx < 0 {
		return academy.PlayerRow{}, false, err
	}
	return players[idx], true, nil
}

func orNone(s string) string {
	if s == "" {
		return "no age group"
	}
	return s
}
