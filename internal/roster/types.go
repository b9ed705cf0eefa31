package roster

// Record is a single player parsed from a roster line. Age groups are kept
// by name; resolving them to database ids is the caller's job.
type Record struct {
	Line              int
	FullName          string
	TypeCode          string
	PrimaryAgeGroup   string
	SecondaryAgeGroup string
	BirthDay          *int
	BirthMonth        *int
	BirthYear         *int
	JerseyNumber      string
	Flags             Flags
}

// Flags are the six YES/NO columns of a roster line, in column order.
type Flags struct {
	VeoMember     bool
	Photos        bool
	IDPMeetingSep bool
	IDPMeetingApr bool
	Chat          bool
	Files         bool
}

// SkipReason explains why a line did not produce a Record.
type SkipReason string

const (
	SkipNone     SkipReason = ""
	SkipBlank    SkipReason = "blank"
	SkipHeader   SkipReason = "header or totals"
	SkipTooShort SkipReason = "too few fields"
	SkipNoType   SkipReason = "no player type"
	SkipNoName   SkipReason = "no player name"
	SkipTooLong  SkipReason = "line too long"
)

// SkippedLine is a non-blank line that was dropped.
type SkippedLine struct {
	Line   int
	Reason SkipReason
	Text   string
}

// Result is the outcome of parsing a whole roster file.
type Result struct {
	Records   []Record
	Skipped   []SkippedLine
	LinesRead int
}
