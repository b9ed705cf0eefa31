package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultTypeCodes are the player type codes a roster line may carry.
var DefaultTypeCodes = []string{"FT", "SC", "PT", "T"}

// MaxLineBytes is the longest roster line that is parsed.
const MaxLineBytes = 1 << 20

const (
	minFields      = 5
	maxGroupTokens = 5
	minBirthYear   = 1900
	maxBirthYear   = 2100
)

// Parser turns free-form roster lines into Records using positional rules:
// name tokens up to the type code, then age group, birth date, jersey number,
// an optional secondary age group and finally the YES/NO flag columns.
type Parser struct {
	typeCodes map[string]bool
	groups    map[string]string // normalized name -> canonical name
}

// NewParser creates a Parser recognising the given type codes and age group
// names. Nil typeCodes falls back to DefaultTypeCodes.
func NewParser(typeCodes, ageGroups []string) *Parser {
	if typeCodes == nil {
		typeCodes = DefaultTypeCodes
	}
	p := &Parser{
		typeCodes: make(map[string]bool, len(typeCodes)),
		groups:    make(map[string]string, len(ageGroups)),
	}
	for _, code := range typeCodes {
		p.typeCodes[code] = true
	}
	for _, name := range ageGroups {
		p.groups[normalizeGroup(name)] = name
	}
	return p
}

// Parse reads r line by line. Lines that cannot be parsed, including lines
// longer than MaxLineBytes, are recorded in Result.Skipped; only read errors
// are returned.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	res := &Result{}
	reader := bufio.NewReader(r)
	for {
		text, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return res, fmt.Errorf("failed to read roster: %w", err)
		}
		if text == "" && err != nil {
			return res, nil
		}
		res.LinesRead++
		text = strings.TrimRight(text, "\r\n")

		var rec Record
		reason := SkipTooLong
		if len(text) <= MaxLineBytes {
			rec, reason = p.ParseLine(text)
		}
		switch reason {
		case SkipNone:
			rec.Line = res.LinesRead
			res.Records = append(res.Records, rec)
		case SkipBlank:
		default:
			log.Debug("Skipping roster line", "line", res.LinesRead, "reason", reason)
			res.Skipped = append(res.Skipped, SkippedLine{Line: res.LinesRead, Reason: reason, Text: excerpt(text)})
		}
		if err != nil {
			return res, nil
		}
	}
}

// excerpt shortens text for skip reports.
func excerpt(text string) string {
	const max = 200
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}

// ParseLine parses a single roster line.
func (p *Parser) ParseLine(text string) (Record, SkipReason) {
	line := strings.TrimSpace(text)
	if line == "" {
		return Record{}, SkipBlank
	}
	if strings.Contains(line, "PLAYER") || strings.Contains(line, "TOT") {
		return Record{}, SkipHeader
	}

	fields := strings.Fields(line)
	if len(fields) < minFields {
		return Record{}, SkipTooShort
	}

	i := 0
	for i < len(fields) && !p.typeCodes[fields[i]] {
		i++
	}
	if i == len(fields) {
		return Record{}, SkipNoType
	}
	if i == 0 {
		return Record{}, SkipNoName
	}

	rec := Record{
		FullName: strings.Join(fields[:i], " "),
		TypeCode: fields[i],
	}
	i++

	if name, n := p.matchAgeGroup(fields[i:]); n > 0 {
		rec.PrimaryAgeGroup = name
		i += n
	}

	if day, month, year, n := matchBirthDate(fields[i:]); n > 0 {
		rec.BirthDay, rec.BirthMonth, rec.BirthYear = &day, &month, &year
		i += n
	}

	if i < len(fields) && !isFlag(fields[i]) {
		if _, n := p.matchAgeGroup(fields[i:]); n == 0 {
			rec.JerseyNumber = fields[i]
			i++
		}
	}

	if name, n := p.matchAgeGroup(fields[i:]); n > 0 {
		rec.SecondaryAgeGroup = name
		i += n
	}

	var flags []bool
	for _, tok := range fields[i:] {
		if isFlag(tok) {
			flags = append(flags, strings.EqualFold(tok, "YES"))
		}
	}
	rec.Flags = flagsFrom(flags)

	return rec, SkipNone
}

// matchAgeGroup returns the age group starting at tokens[0] and how many
// tokens it spans. Known names win, longest match first. An unknown group is
// taken from the spaced "B 18 & 19" shape, or else from a single token
// starting with B or G, kept verbatim.
func (p *Parser) matchAgeGroup(tokens []string) (string, int) {
	best, bestN := "", 0
	for n := 1; n <= maxGroupTokens && n <= len(tokens); n++ {
		if name, ok := p.groups[normalizeGroup(strings.Join(tokens[:n], ""))]; ok {
			best, bestN = name, n
		}
	}
	if bestN > 0 {
		return best, bestN
	}
	if len(tokens) == 0 || !hasGroupPrefix(tokens[0]) {
		return "", 0
	}
	if len(tokens[0]) == 1 && len(tokens) >= 4 && isInt(tokens[1]) && tokens[2] == "&" && isInt(tokens[3]) {
		return strings.Join(tokens[:4], " "), 4
	}
	return tokens[0], 1
}

// matchBirthDate accepts three integer tokens or one d/m/y style token.
func matchBirthDate(tokens []string) (day, month, year, n int) {
	if len(tokens) >= 3 {
		if d, m, y, ok := dateParts(tokens[0], tokens[1], tokens[2]); ok {
			return d, m, y, 3
		}
	}
	if len(tokens) >= 1 {
		parts := strings.FieldsFunc(tokens[0], func(r rune) bool {
			return r == '/' || r == '-' || r == '.'
		})
		if len(parts) == 3 {
			if d, m, y, ok := dateParts(parts[0], parts[1], parts[2]); ok {
				return d, m, y, 1
			}
		}
	}
	return 0, 0, 0, 0
}

func dateParts(ds, ms, ys string) (int, int, int, bool) {
	d, err := strconv.Atoi(ds)
	if err != nil {
		return 0, 0, 0, false
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		return 0, 0, 0, false
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, 0, false
	}
	if len(ys) <= 2 {
		y += 2000
	}
	if d < 1 || d > 31 || m < 1 || m > 12 || y < minBirthYear || y > maxBirthYear {
		return 0, 0, 0, false
	}
	return d, m, y, true
}

func flagsFrom(v []bool) Flags {
	at := func(i int) bool { return i < len(v) && v[i] }
	return Flags{
		VeoMember:     at(0),
		Photos:        at(1),
		IDPMeetingSep: at(2),
		IDPMeetingApr: at(3),
		Chat:          at(4),
		Files:         at(5),
	}
}

func normalizeGroup(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), ""))
}

func hasGroupPrefix(tok string) bool {
	return strings.HasPrefix(tok, "B") || strings.HasPrefix(tok, "G")
}

func isFlag(tok string) bool {
	return strings.EqualFold(tok, "YES") || strings.EqualFold(tok, "NO")
}

func isInt(tok string) bool {
	_, err := strconv.Atoi(tok)
	return err == nil
}
