package academy

import "fmt"

// BirthdaysInMonth lists players born in month (1-12) ordered by day.
func (s *store) BirthdaysInMonth(month int) ([]PlayerRow, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}
	return s.queryPlayerRows("WHERE p.birth_month = ? ORDER BY p.birth_day, p.full_name", month)
}

// IDPMeetings lists players whose IDP meeting flag for month is set.
func (s *store) IDPMeetings(month IDPMonth) ([]PlayerRow, error) {
	column := "p.idp_meeting_sep"
	switch month {
	case IDPSeptember:
	case IDPApril:
		column = "p.idp_meeting_apr"
	default:
		return nil, fmt.Errorf("invalid IDP month %q", string(month))
	}
	return s.queryPlayerRows("WHERE " + column + " = 1 ORDER BY ag.group_name, p.full_name")
}

// SecondaryAgeGroupPlayers lists players that also train with a second group.
func (s *store) SecondaryAgeGroupPlayers() ([]PlayerRow, error) {
	return s.queryPlayerRows("WHERE ag2.group_id IS NOT NULL ORDER BY ag2.group_name, p.full_name")
}
