package reconcile

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Format selects a report rendering.
type Format string

const (
	// FormatConsole renders human-readable tables for the terminal.
	FormatConsole Format = "console"
	// FormatJSON renders the full report as indented JSON.
	FormatJSON Format = "json"
	// FormatMarkdown renders Markdown suitable for pasting into an issue.
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatConsole:
		return FormatConsole, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown report format %q (expected console, json, or markdown)", s)
	}
}

// Summarize aggregates match entries into counts for reporting. Matched
// rider counts are derived from the source rider rows of matched events
// minus their missing_in_db discrepancies.
func Summarize(matches []EventMatch) Summary {
	var s Summary
	s.EventsCompared = len(matches)

	for _, m := range matches {
		if m.DBEvent != nil && (m.SourceEvent.Date != "" || m.SourceEvent.Name != "") {
			s.EventsMatched++
			s.RidersCompared += len(m.SourceEvent.Riders)
		}

		for _, d := range m.Discrepancies {
			switch d.Severity {
			case SeverityError:
				s.Errors++
			case SeverityWarning:
				s.Warnings++
			case SeverityInfo:
				s.Infos++
			}
			if d.Type == TypeMissingInDB {
				s.RidersMatched--
			}
		}
	}
	s.RidersMatched += s.RidersCompared

	return s
}

// Render writes the report to w in the requested format.
func Render(w io.Writer, report *Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatMarkdown:
		renderTables(w, report, true)
		return nil
	case FormatConsole:
		renderTables(w, report, false)
		return nil
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func renderTables(w io.Writer, report *Report, markdown bool) {
	title := fmt.Sprintf("Validation report: chapter %s, %d", report.Chapter, report.Year)
	if markdown {
		fmt.Fprintf(w, "# %s\n\n", title)
	} else {
		fmt.Fprintln(w, title)
		fmt.Fprintln(w)
	}

	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.AppendHeader(table.Row{"Metric", "Count"})
	s := report.Summary
	summary.AppendRows([]table.Row{
		{"Events compared", s.EventsCompared},
		{"Events matched", s.EventsMatched},
		{"Riders compared", s.RidersCompared},
		{"Riders matched", s.RidersMatched},
		{"Errors", s.Errors},
		{"Warnings", s.Warnings},
		{"Info findings", s.Infos},
	})
	renderTable(summary, markdown)
	fmt.Fprintln(w)

	discrepancies := table.NewWriter()
	discrepancies.SetOutputMirror(w)
	discrepancies.AppendHeader(table.Row{"Date", "Event", "Severity", "Type", "Description", "Source", "DB"})
	rows := 0
	for _, m := range report.Matches {
		date := matchDate(m)
		name := m.SourceEvent.Name
		if name == "" && m.DBEvent != nil {
			name = m.DBEvent.Name
		}
		for _, d := range m.Discrepancies {
			discrepancies.AppendRow(table.Row{date, name, d.Severity, d.Type, d.Description, d.SourceValue, d.DBValue})
			rows++
		}
	}
	if rows == 0 {
		fmt.Fprintln(w, "No discrepancies found.")
		return
	}
	renderTable(discrepancies, markdown)
}

func renderTable(t table.Writer, markdown bool) {
	if markdown {
		t.RenderMarkdown()
		return
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
