// Package console renders academy data as text tables.
package console

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// NoResults is printed instead of an empty table.
const NoResults = "No results found."

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Printer writes titles, messages and tables to w.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Title prints a section heading.
func (p *Printer) Title(title string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, titleStyle.Render(title))
}

// Success prints a confirmation line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Failure prints an error line.
func (p *Printer) Failure(format string, args ...any) {
	fmt.Fprintln(p.w, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Table renders rows under headers, or NoResults when rows is empty.
func (p *Printer) Table(headers []string, rows [][]string) error {
	if len(rows) == 0 {
		fmt.Fprintln(p.w, NoResults)
		return nil
	}

	table := tablewriter.NewWriter(p.w)
	table.Options(
		tablewriter.WithHeader(headers),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(len(headers), tw.AlignLeft)),
	)

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// Counters renders a key/value table sorted by key.
func (p *Printer) Counters(values map[string]int) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, strconv.Itoa(values[k])})
	}
	return p.Table([]string{"Counter", "Value"}, rows)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
