// Package report renders compatibility results as a colorized text table or
// as JSON. It is a presentation layer only; resolution happens in match.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/laobamac/SimpleToolkit/internal/constants"
	"github.com/laobamac/SimpleToolkit/internal/hwenum"
	"github.com/laobamac/SimpleToolkit/internal/match"
)

// Row is one resolved device.
type Row struct {
	Class constants.HardwareClass
	Name  string
	// Query is the identifier or model string the resolver was asked
	// about; empty when the device had nothing to look up.
	Query  string
	Result match.Result
}

// Report is a full compatibility report: optional system information plus
// the resolved device rows.
type Report struct {
	System *hwenum.SystemInfo
	Rows   []Row
}

// statusLabel renders the tri-state status as a word.
func statusLabel(r match.Result) string {
	switch {
	case r.Unknown():
		return "unknown"
	case r.Supported():
		return "supported"
	default:
		return "unsupported"
	}
}

// styleFor picks the status style: green for supported, orange when support
// rests on a vendor wildcard only, red for unsupported, gray for unknown.
func styleFor(r match.Result, s Styles) lipgloss.Style {
	switch {
	case r.Unknown():
		return s.Unknown
	case !r.Supported():
		return s.Unsupported
	case r.Kind == match.KindWildcard:
		return s.Wildcard
	default:
		return s.Supported
	}
}

var tableHeader = []string{"CLASS", "DEVICE", "QUERY", "STATUS", "DETAIL", "DRIVER"}

// Render produces the text report. Column widths adapt to the content;
// status cells are colorized unless noColor is set.
func Render(rep Report, noColor bool) string {
	styles := NewStyles(noColor)
	var b strings.Builder

	if rep.System != nil {
		renderSystem(&b, *rep.System, styles)
	}

	cells := make([][]string, 0, len(rep.Rows))
	for _, row := range rep.Rows {
		cells = append(cells, []string{
			string(row.Class),
			row.Name,
			row.Query,
			statusLabel(row.Result),
			row.Result.Detail,
			row.Result.Driver,
		})
	}

	widths := make([]int, len(tableHeader))
	for i, h := range tableHeader {
		widths[i] = len(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cols []string, style func(i int) lipgloss.Style) {
		parts := make([]string, len(cols))
		for i, cell := range cols {
			padded := cell + strings.Repeat(" ", widths[i]-len(cell))
			parts[i] = style(i).Render(padded)
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteString("\n")
	}

	writeRow(tableHeader, func(int) lipgloss.Style { return styles.Header })
	for i, row := range cells {
		rowStyle := styleFor(rep.Rows[i].Result, styles)
		writeRow(row, func(col int) lipgloss.Style {
			if col >= 3 {
				return rowStyle
			}
			return lipgloss.NewStyle()
		})
	}
	return b.String()
}

func renderSystem(b *strings.Builder, sys hwenum.SystemInfo, styles Styles) {
	line := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(b, "%s %s\n", styles.Muted.Render(label+":"), value)
	}
	line("host", sys.Hostname)
	line("platform", sys.Platform)
	if sys.CPUModel != "" {
		cpu := sys.CPUModel
		if sys.CPUCores > 0 {
			cpu = fmt.Sprintf("%s (%d threads)", cpu, sys.CPUCores)
		}
		line("cpu", cpu)
	}
	if sys.MemoryGB > 0 {
		line("memory", fmt.Sprintf("%.1f GB", sys.MemoryGB))
	}
	for _, p := range sys.Partitions {
		line("disk", fmt.Sprintf("%s on %s (%s, %.1f GB)", p.Device, p.Mountpoint, p.Fstype, p.TotalGB))
	}
	b.WriteString("\n")
}

// jsonRow is the JSON shape of one device row.
type jsonRow struct {
	Class      string `json:"class,omitempty"`
	Name       string `json:"name"`
	Query      string `json:"query,omitempty"`
	Status     string `json:"status"`
	RawStatus  string `json:"rawStatus,omitempty"`
	MatchKind  string `json:"matchKind"`
	MatchedKey string `json:"matchedKey,omitempty"`
	Detail     string `json:"detail"`
	Driver     string `json:"driver"`
}

type jsonReport struct {
	System  *hwenum.SystemInfo `json:"system,omitempty"`
	Devices []jsonRow          `json:"devices"`
}

// RenderJSON produces the report as indented JSON.
func RenderJSON(rep Report) (string, error) {
	out := jsonReport{System: rep.System, Devices: make([]jsonRow, 0, len(rep.Rows))}
	for _, row := range rep.Rows {
		out.Devices = append(out.Devices, jsonRow{
			Class:      string(row.Class),
			Name:       row.Name,
			Query:      row.Query,
			Status:     statusLabel(row.Result),
			RawStatus:  row.Result.Status,
			MatchKind:  row.Result.Kind.String(),
			MatchedKey: row.Result.MatchedKey,
			Detail:     row.Result.Detail,
			Driver:     row.Result.Driver,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
