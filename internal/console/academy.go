package console

import (
	"strconv"
	"time"

	"github.com/mauv0809/football-academy/internal/academy"
	"github.com/mauv0809/football-academy/internal/importer"
)

// Players renders joined player rows.
func (p *Printer) Players(rows []academy.PlayerRow) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.FormatInt(r.ID, 10),
			r.FullName,
			orDash(r.PlayerType),
			orDash(r.AgeGroup),
			orDash(r.SecondaryAgeGroup),
			orDash(r.BirthDate()),
			orDash(r.JerseyNumber),
			orDash(r.LeagueTeam),
		})
	}
	return p.Table([]string{"ID", "Name", "Type", "Age Group", "Secondary", "Birth Date", "Jersey", "League Team"}, out)
}

// Player renders the stored fields of a single player, including its flags.
func (p *Printer) Player(pl *academy.Player) error {
	id := func(v *int64) string {
		if v == nil {
			return "-"
		}
		return strconv.FormatInt(*v, 10)
	}
	num := func(v *int) string {
		if v == nil {
			return "-"
		}
		return strconv.Itoa(*v)
	}
	rows := [][]string{
		{"ID", strconv.FormatInt(pl.ID, 10)},
		{"Name", pl.FullName},
		{"Type", orDash(pl.TypeCode)},
		{"Age Group ID", id(pl.PrimaryAgeGroupID)},
		{"Secondary Age Group ID", id(pl.SecondaryAgeGroupID)},
		{"Birth Day", num(pl.BirthDay)},
		{"Birth Month", num(pl.BirthMonth)},
		{"Birth Year", num(pl.BirthYear)},
		{"Jersey", orDash(pl.JerseyNumber)},
		{"League Team ID", id(pl.LeagueTeamID)},
		{"VEO Member", yesNo(pl.Flags.VeoMember)},
		{"Photos", yesNo(pl.Flags.Photos)},
		{"IDP September", yesNo(pl.Flags.IDPMeetingSep)},
		{"IDP April", yesNo(pl.Flags.IDPMeetingApr)},
		{"Chat", yesNo(pl.Flags.Chat)},
		{"Files", yesNo(pl.Flags.Files)},
	}
	return p.Table([]string{"Field", "Value"}, rows)
}

// Statistics renders the per age group headcounts and budgets.
func (p *Printer) Statistics(stats []academy.AgeGroupStatistic) error {
	rows := make([][]string, 0, len(stats))
	for _, st := range stats {
		rows = append(rows, []string{
			st.AgeGroup,
			strconv.Itoa(st.Total),
			strconv.Itoa(st.Budget),
			strconv.Itoa(st.Net),
			strconv.Itoa(st.FullTime),
			strconv.Itoa(st.PartTime),
			strconv.Itoa(st.Scholarship),
			strconv.Itoa(st.Trial),
		})
	}
	return p.Table([]string{"Age Group", "Total", "Budget", "Net", "FT", "PT", "SC", "Trial"}, rows)
}

func (p *Printer) AgeGroups(groups []academy.AgeGroup) error {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{strconv.FormatInt(g.ID, 10), g.Name})
	}
	return p.Table([]string{"ID", "Age Group"}, rows)
}

func (p *Printer) LeagueTeams(teams []academy.LeagueTeam) error {
	rows := make([][]string, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, []string{strconv.FormatInt(t.ID, 10), t.Name})
	}
	return p.Table([]string{"ID", "League Team"}, rows)
}

func (p *Printer) PlayerTypes(types []academy.PlayerType) error {
	rows := make([][]string, 0, len(types))
	for _, t := range types {
		rows = append(rows, []string{t.Code, t.Name})
	}
	return p.Table([]string{"Code", "Type"}, rows)
}

// ImportRuns renders the import audit trail.
func (p *Printer) ImportRuns(runs []academy.ImportRun) error {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID,
			r.Source,
			r.StartedAt.Local().Format(time.DateTime),
			r.FinishedAt.Sub(r.StartedAt).String(),
			strconv.Itoa(r.LinesRead),
			strconv.Itoa(r.PlayersImported),
			strconv.Itoa(r.LinesSkipped),
			yesNo(r.Replaced),
		})
	}
	return p.Table([]string{"Run", "Source", "Started", "Duration", "Lines", "Imported", "Skipped", "Replaced"}, rows)
}

// ImportReport summarises an importer run followed by its skipped lines.
func (p *Printer) ImportReport(r *importer.Report) error {
	p.Title("Import summary")
	err := p.Table([]string{"Run", "Source", "Lines", "Imported", "Skipped", "Duration"}, [][]string{{
		r.RunID,
		r.Source,
		strconv.Itoa(r.LinesRead),
		strconv.Itoa(r.PlayersImported),
		strconv.Itoa(len(r.Skipped)),
		r.Duration.Round(time.Millisecond).String(),
	}})
	if err != nil || len(r.Skipped) == 0 {
		return err
	}

	p.Title("Skipped lines")
	rows := make([][]string, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		rows = append(rows, []string{strconv.Itoa(s.Line), string(s.Reason), s.Text})
	}
	return p.Table([]string{"Line", "Reason", "Text"}, rows)
}
