package menu

import (
	"errors"
	"fmt"

	"github.com/mauv0809/football-academy/internal/academy"
	"github.com/mauv0809/football-academy/internal/roster"
)

const minBirthYear = 1990

func (m *Menu) addPlayer() error {
	m.out.Title("=== Add New Player ===")
	name, err := m.in.Input("Enter player name: ", true)
	if err != nil {
		return err
	}
	pt, ok, err := m.selectPlayerType("Select player type:")
	if err != nil || !ok {
		return err
	}
	group, ok, err := m.selectAgeGroup("Select age group:")
	if err != nil || !ok {
		return err
	}
	day, err := m.in.IntInput("Enter birth day (1-31): ", 1, 31)
	if err != nil {
		return err
	}
	month, err := m.in.IntInput("Enter birth month (1-12): ", 1, 12)
	if err != nil {
		return err
	}
	year, err := m.in.IntInput(fmt.Sprintf("Enter birth year (e.g., %d): ", m.now().Year()-12), minBirthYear, m.now().Year())
	if err != nil {
		return err
	}
	jersey, err := m.in.Input("Enter jersey number: ", true)
	if err != nil {
		return err
	}

	_, err = m.store.AddPlayer(academy.NewPlayer{
		FullName:     name,
		TypeCode:     pt.Code,
		AgeGroup:     group.Name,
		BirthDay:     day,
		BirthMonth:   month,
		BirthYear:    year,
		JerseyNumber: jersey,
	})
	if err != nil {
		return fmt.Errorf("failed to add player: %w", err)
	}
	m.out.Success("Player '%s' added successfully.", name)
	return nil
}

func (m *Menu) updatePlayer() error {
	player, ok, err := m.findPlayer("update")
	if err != nil || !ok {
		return err
	}

	m.out.Title("=== Update Player Information ===")
	fmt.Fprintln(m.out.Writer(), "Leave fields blank to keep current values.")

	var u academy.PlayerUpdate

	name, err := m.in.Input("Enter new name (or leave blank): ", false)
	if err != nil {
		return err
	}
	if name != "" {
		u.FullName = &name
	}

	pt, ok, err := m.selectPlayerType("Select new player type (or cancel to keep current):")
	if err != nil {
		return err
	}
	if ok {
		u.TypeCode = &pt.Code
	}

	group, ok, err := m.selectAgeGroup("Select new age group (or cancel to keep current):")
	if err != nil {
		return err
	}
	if ok {
		u.PrimaryAgeGroupID = &group.ID
	}

	if err := m.secondaryGroupUpdate(&u); err != nil {
		return err
	}
	if err := m.leagueTeamUpdate(&u); err != nil {
		return err
	}

	jersey, err := m.in.Input("Enter new jersey number (or leave blank): ", false)
	if err != nil {
		return err
	}
	if jersey != "" {
		u.JerseyNumber = &jersey
	}

	updateFlags, err := m.in.BoolInput("Update status flags (VEO, photos, etc.)?")
	if err != nil {
		return err
	}
	if updateFlags {
		flags, err := m.askFlags()
		if err != nil {
			return err
		}
		u.Flags = &flags
	}

	err = m.store.UpdatePlayer(player.ID, u)
	if errors.Is(err, academy.ErrNoChanges) {
		fmt.Fprintln(m.out.Writer(), "No changes made.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	m.out.Success("Player updated successfully.")
	return nil
}

// secondaryGroupUpdate offers the age groups plus an entry that removes the
// secondary assignment. Cancelling keeps the current value.
func (m *Menu) secondaryGroupUpdate(u *academy.PlayerUpdate) error {
	groups, err := m.store.ListAgeGroups()
	if err != nil {
		return err
	}
	names := []string{"No secondary age group"}
	for _, g := range groups {
		names = append(names, g.Name)
	}
	idx, err := m.in.Select("Select secondary age group (or cancel to keep current):", names)
	switch {
	case err != nil:
		return err
	case idx == 0:
		u.ClearSecondaryAgeGroup = true
	case idx > 0:
		u.SecondaryAgeGroupID = &groups[idx-1].ID
	}
	return nil
}

func (m *Menu) leagueTeamUpdate(u *academy.PlayerUpdate) error {
	teams, err := m.store.ListLeagueTeams()
	if err != nil {
		return err
	}
	names := []string{"No league team"}
	for _, t := range teams {
		names = append(names, t.Name)
	}
	idx, err := m.in.Select("Select league team (or cancel to keep current):", names)
	switch {
	case err != nil:
		return err
	case idx == 0:
		u.ClearLeagueTeam = true
	case idx > 0:
		u.LeagueTeamID = &teams[idx-1].ID
	}
	return nil
}

func (m *Menu) askFlags() (roster.Flags, error) {
	var f roster.Flags
	questions := []struct {
		prompt string
		dst    *bool
	}{
		{"VEO member?", &f.VeoMember},
		{"Has photos?", &f.Photos},
		{"Has September IDP meeting?", &f.IDPMeetingSep},
		{"Has April IDP meeting?", &f.IDPMeetingApr},
		{"Has chat access?", &f.Chat},
		{"Has files?", &f.Files},
	}
	for _, q := range questions {
		v, err := m.in.BoolInput(q.prompt)
		if err != nil {
			return f, err
		}
		*q.dst = v
	}
	return f, nil
}

func (m *Menu) deletePlayer() error {
	player, ok, err := m.findPlayer("delete")
	if err != nil || !ok {
		return err
	}
	confirm, err := m.in.BoolInput("Are you sure you want to delete this player?")
	if err != nil {
		return err
	}
	if !confirm {
		fmt.Fprintln(m.out.Writer(), "Player deletion cancelled.")
		return nil
	}
	if err := m.store.DeletePlayer(player.ID); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	m.out.Success("Player deleted successfully.")
	return nil
}
