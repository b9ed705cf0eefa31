package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/mauv0809/football-academy/internal/academy"
)

func (m *Menu) ageGroupMenu(ctx context.Context) error {
	return m.loop(ctx, "=== Age Group Management ===", "Back to main menu", []option{
		{"1", "View all age groups", m.listAgeGroups},
		{"2", "Add a new age group", m.addAgeGroup},
		{"3", "Update an age group", m.updateAgeGroup},
		{"4", "Delete an age group", m.deleteAgeGroup},
	})
}

func (m *Menu) leagueTeamMenu(ctx context.Context) error {
	return m.loop(ctx, "=== League Team Management ===", "Back to main menu", []option{
		{"1", "View all league teams", m.listLeagueTeams},
		{"2", "Add a new league team", m.addLeagueTeam},
		{"3", "Update a league team", m.updateLeagueTeam},
		{"4", "Delete a league team", m.deleteLeagueTeam},
	})
}

func (m *Menu) listAgeGroups() error {
	groups, err := m.store.ListAgeGroups()
	if err != nil {
		return err
	}
	m.out.Title("=== All Age Groups ===")
	return m.out.AgeGroups(groups)
}

func (m *Menu) addAgeGroup() error {
	name, err := m.in.Input("Enter new age group name (e.g., 'B 18 & 19'): ", true)
	if err != nil {
		return err
	}
	budget, err := m.in.IntInput("Enter player budget for this age group: ", 0, NoMax)
	if err != nil {
		return err
	}
	if _, err := m.store.AddAgeGroup(name, budget); err != nil {
		return fmt.Errorf("failed to add age group: %w", err)
	}
	m.out.Success("Age group '%s' added successfully.", name)
	return nil
}

func (m *Menu) updateAgeGroup() error {
	group, ok, err := m.selectAgeGroup("Select age group to update:")
	if err != nil || !ok {
		return err
	}
	name, err := m.in.Input("Enter new name (or leave blank): ", false)
	if err != nil {
		return err
	}
	budget, err := m.in.OptionalIntInput("Enter new budget (or leave blank): ", 0, NoMax)
	if err != nil {
		return err
	}

	var newName *string
	if name != "" {
		newName = &name
	}
	err = m.store.UpdateAgeGroup(group.ID, newName, budget)
	if errors.Is(err, academy.ErrNoChanges) {
		fmt.Fprintln(m.out.Writer(), "No changes made.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to update age group: %w", err)
	}
	m.out.Success("Age group updated successfully.")
	return nil
}

func (m *Menu) deleteAgeGroup() error {
	group, ok, err := m.selectAgeGroup("Select age group to delete:")
	if err != nil || !ok {
		return err
	}
	confirm, err := m.in.BoolInput("Are you sure you want to delete this age group?")
	if err != nil {
		return err
	}
	if !confirm {
		fmt.Fprintln(m.out.Writer(), "Age group deletion cancelled.")
		return nil
	}
	if err := m.store.DeleteAgeGroup(group.ID); err != nil {
		return fmt.Errorf("failed to delete age group: %w", err)
	}
	m.out.Success("Age group deleted successfully.")
	return nil
}

func (m *Menu) listLeagueTeams() error {
	teams, err := m.store.ListLeagueTeams()
	if err != nil {
		return err
	}
	m.out.Title("=== All League Teams ===")
	return m.out.LeagueTeams(teams)
}

func (m *Menu) addLeagueTeam() error {
	name, err := m.in.Input("Enter new league team name: ", true)
	if err != nil {
		return err
	}
	if _, err := m.store.AddLeagueTeam(name); err != nil {
		return fmt.Errorf("failed to add league team: %w", err)
	}
	m.out.Success("League team '%s' added successfully.", name)
	return nil
}

func (m *Menu) updateLeagueTeam() error {
	team, ok, err := m.selectLeagueTeam("Select league team to update:")
	if err != nil || !ok {
		return err
	}
	name, err := m.in.Input("Enter new name: ", true)
	if err != nil {
		return err
	}
	if err := m.store.UpdateLeagueTeam(team.ID, name); err != nil {
		return fmt.Errorf("failed to update league team: %w", err)
	}
	m.out.Success("League team updated successfully.")
	return nil
}

func (m *Menu) deleteLeagueTeam() error {
	team, ok, err := m.selectLeagueTeam("Select league team to delete:")
	if err != nil || !ok {
		return err
	}
	confirm, err := m.in.BoolInput("Are you sure you want to delete this league team?")
	if err != nil {
		return err
	}
	if !confirm {
		fmt.Fprintln(m.out.Writer(), "League team deletion cancelled.")
		return nil
	}
	if err := m.store.DeleteLeagueTeam(team.ID); err != nil {
		return fmt.Errorf("failed to delete league team: %w", err)
	}
	m.out.Success("League team deleted successfully.")
	return nil
}
