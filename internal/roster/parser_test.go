package roster_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mauv0809/football-academy/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownGroups = []string{"B 11 & 12", "B 12 & 13", "B 13 & 14", "G 10 & 11"}

func intp(v int) *int { return &v }

func TestParseLine(t *testing.T) {
	p := roster.NewParser(nil, knownGroups)

	tests := []struct {
		name   string
		line   string
		want   roster.Record
		reason roster.SkipReason
	}{
		{
			name: "full line with spaced age group",
			line: "Jamie Doyle FT B 11 & 12 14 03 2013 7 YES NO YES NO YES YES",
			want: roster.Record{
				FullName: "Jamie Doyle", TypeCode: "FT", PrimaryAgeGroup: "B 11 & 12",
				BirthDay: intp(14), BirthMonth: intp(3), BirthYear: intp(2013), JerseyNumber: "7",
				Flags: roster.Flags{VeoMember: true, IDPMeetingSep: true, Chat: true, Files: true},
			},
		},
		{
			name: "compact age group and secondary group",
			line: "Aoife Ni Bhriain SC G10&11 01 12 2014 22 B12&13 NO YES",
			want: roster.Record{
				FullName: "Aoife Ni Bhriain", TypeCode: "SC", PrimaryAgeGroup: "G 10 & 11",
				BirthDay: intp(1), BirthMonth: intp(12), BirthYear: intp(2014), JerseyNumber: "22",
				SecondaryAgeGroup: "B 12 & 13",
				Flags:             roster.Flags{Photos: true},
			},
		},
		{
			name: "slash date and lower case flags",
			line: "Sean Walsh PT B 13 & 14 05/09/2012 11 yes yes",
			want: roster.Record{
				FullName: "Sean Walsh", TypeCode: "PT", PrimaryAgeGroup: "B 13 & 14",
				BirthDay: intp(5), BirthMonth: intp(9), BirthYear: intp(2012), JerseyNumber: "11",
				Flags: roster.Flags{VeoMember: true, Photos: true},
			},
		},
		{
			name: "two digit year",
			line: "Luke Byrne T B 11 & 12 30 6 13 4",
			want: roster.Record{
				FullName: "Luke Byrne", TypeCode: "T", PrimaryAgeGroup: "B 11 & 12",
				BirthDay: intp(30), BirthMonth: intp(6), BirthYear: intp(2013), JerseyNumber: "4",
			},
		},
		{
			name: "unknown age group kept by shape",
			line: "Conor Ryan FT B 18 & 19 02 02 2007 9 NO",
			want: roster.Record{
				FullName: "Conor Ryan", TypeCode: "FT", PrimaryAgeGroup: "B 18 & 19",
				BirthDay: intp(2), BirthMonth: intp(2), BirthYear: intp(2007), JerseyNumber: "9",
			},
		},
		{
			name: "invalid date leaves birth date unknown",
			line: "Eoin Kelly FT B 11 & 12 45 13 2013 8 YES",
			want: roster.Record{
				FullName: "Eoin Kelly", TypeCode: "FT", PrimaryAgeGroup: "B 11 & 12",
				JerseyNumber: "45",
				Flags:        roster.Flags{VeoMember: true},
			},
		},
		{
			name: "missing jersey does not swallow a flag",
			line: "Niamh Burke SC G 10 & 11 09 10 2014 NO YES",
			want: roster.Record{
				FullName: "Niamh Burke", TypeCode: "SC", PrimaryAgeGroup: "G 10 & 11",
				BirthDay: intp(9), BirthMonth: intp(10), BirthYear: intp(2014),
				Flags: roster.Flags{Photos: true},
			},
		},
		{
			name: "no age group",
			line: "Paddy Moore FT 12 12 2012 5 YES YES YES YES YES YES YES",
			want: roster.Record{
				FullName: "Paddy Moore", TypeCode: "FT",
				BirthDay: intp(12), BirthMonth: intp(12), BirthYear: intp(2012), JerseyNumber: "5",
				Flags: roster.Flags{VeoMember: true, Photos: true, IDPMeetingSep: true, IDPMeetingApr: true, Chat: true, Files: true},
			},
		},
		{
			name: "unshaped B token is the age group and the date still parses",
			line: "Kid One FT Boys 1 2 2013 10 YES",
			want: roster.Record{
				FullName: "Kid One", TypeCode: "FT", PrimaryAgeGroup: "Boys",
				BirthDay: intp(1), BirthMonth: intp(2), BirthYear: intp(2013), JerseyNumber: "10",
				Flags: roster.Flags{VeoMember: true},
			},
		},
		{
			name: "bare G token is kept verbatim",
			line: "Kid Two PT G 1 2 2013 3 NO",
			want: roster.Record{
				FullName: "Kid Two", TypeCode: "PT", PrimaryAgeGroup: "G",
				BirthDay: intp(1), BirthMonth: intp(2), BirthYear: intp(2013), JerseyNumber: "3",
			},
		},
		{
			name: "unshaped secondary group",
			line: "Kid Three SC B 11 & 12 3 3 2013 5 Girls YES",
			want: roster.Record{
				FullName: "Kid Three", TypeCode: "SC", PrimaryAgeGroup: "B 11 & 12",
				BirthDay: intp(3), BirthMonth: intp(3), BirthYear: intp(2013), JerseyNumber: "5",
				SecondaryAgeGroup: "Girls",
				Flags:             roster.Flags{VeoMember: true},
			},
		},
		{name: "blank", line: "   \t ", reason: roster.SkipBlank},
		{name: "header", line: "PLAYER TYPE AGE GROUP DOB NO", reason: roster.SkipHeader},
		{name: "totals", line: "TOTAL FT 12 PT 2", reason: roster.SkipHeader},
		{name: "too short", line: "Jamie Doyle FT B11&12", reason: roster.SkipTooShort},
		{name: "no type code", line: "Jamie Doyle Full Time B11&12 7 YES", reason: roster.SkipNoType},
		{name: "type code first", line: "FT Jamie Doyle B11&12 7 YES", reason: roster.SkipNoName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := p.ParseLine(tt.line)
			require.Equal(t, tt.reason, reason)
			if tt.reason != roster.SkipNone {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseLine() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_CollectsRecordsAndSkips(t *testing.T) {
	input := strings.Join([]string{
		"PLAYER TYPE AGE GROUP",
		"",
		"Jamie Doyle FT B 11 & 12 14 03 2013 7 YES NO",
		"garbage",
		"Sean Walsh PT B 13 & 14 05/09/2012 11 NO",
		"TOT 2",
	}, "\n")

	res, err := roster.NewParser(nil, knownGroups).Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 6, res.LinesRead)
	require.Len(t, res.Records, 2)
	assert.Equal(t, 3, res.Records[0].Line)
	assert.Equal(t, "Jamie Doyle", res.Records[0].FullName)
	assert.Equal(t, 5, res.Records[1].Line)

	require.Len(t, res.Skipped, 3, "blank lines are not reported")
	assert.Equal(t, roster.SkipHeader, res.Skipped[0].Reason)
	assert.Equal(t, roster.SkipTooShort, res.Skipped[1].Reason)
	assert.Equal(t, 4, res.Skipped[1].Line)
	assert.Equal(t, roster.SkipHeader, res.Skipped[2].Reason)
}

func TestNewParser_CustomTypeCodes(t *testing.T) {
	p := roster.NewParser([]string{"GK"}, nil)

	rec, reason := p.ParseLine("Dara Quinn GK B12&13 1 YES")
	require.Equal(t, roster.SkipNone, reason)
	assert.Equal(t, "GK", rec.TypeCode)
	assert.Equal(t, "B12&13", rec.PrimaryAgeGroup, "unknown compact group is kept verbatim")

	_, reason = p.ParseLine("Jamie Doyle FT B11&12 7 YES")
	assert.Equal(t, roster.SkipNoType, reason)
}

func TestParse_LongLines(t *testing.T) {
	p := roster.NewParser(nil, knownGroups)

	t.Run("lines beyond 64KiB are parsed", func(t *testing.T) {
		long := "Jamie Doyle FT B 11 & 12 14 03 2013 7" + strings.Repeat(" YES", 20000)
		input := long + "\nSean Walsh PT B 13 & 14 05/09/2012 11 NO\n"

		res, err := p.Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, res.Records, 2)
		assert.True(t, res.Records[0].Flags.Files)
		assert.Equal(t, 2, res.LinesRead)
	})

	t.Run("oversized line is skipped", func(t *testing.T) {
		huge := strings.Repeat("x", roster.MaxLineBytes+1)
		input := "Jamie Doyle FT B 11 & 12 14 03 2013 7 YES\n" + huge + "\nSean Walsh PT B 13 & 14 05/09/2012 11 NO"

		res, err := p.Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, 3, res.LinesRead)
		require.Len(t, res.Records, 2)
		assert.Equal(t, 3, res.Records[1].Line)
		require.Len(t, res.Skipped, 1)
		assert.Equal(t, roster.SkipTooLong, res.Skipped[0].Reason)
		assert.Equal(t, 2, res.Skipped[0].Line)
		assert.Less(t, len(res.Skipped[0].Text), 300)
	})
}
