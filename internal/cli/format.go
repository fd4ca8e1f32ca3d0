package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatTSV   OutputFormat = "tsv"
	FormatCSV   OutputFormat = "csv"
)

func parseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "tsv":
		return FormatTSV, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: table, json, tsv, csv)", s)
	}
}

// presetRecord is the serialised form of a preset.
type presetRecord struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

func toPresetRecord(p datemath.Preset) presetRecord {
	return presetRecord{
		Key:   p.Key,
		Label: p.Label,
		Start: datemath.FormatISO(p.Start),
		End:   datemath.FormatISO(p.End),
		Days:  spanDays(p.Start, p.End),
	}
}

// spanDays counts the days of a closed range, both ends included.
func spanDays(start, end datemath.Date) int {
	n := 1
	for d := start; d.Before(end); d = datemath.AddDays(d, 1) {
		n++
	}
	return n
}

func writePresets(w io.Writer, format OutputFormat, presets []datemath.Preset) error {
	switch format {
	case FormatJSON:
		return formatPresetsJSON(w, presets)
	case FormatTSV:
		return formatPresetsTSV(w, presets)
	case FormatCSV:
		return formatPresetsCSV(w, presets)
	default:
		return formatPresetsTable(w, presets)
	}
}

func formatPresetsTable(w io.Writer, presets []datemath.Preset) error {
	bold := color.New(color.Bold).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("KEY"), bold("LABEL"), bold("RANGE"), bold("DAYS"))
	for _, p := range presets {
		tbl.AddRow(p.Key, p.Label, datemath.FormatRange(p.Start, p.End), spanDays(p.Start, p.End))
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}

func formatPresetsJSON(w io.Writer, presets []datemath.Preset) error {
	records := make([]presetRecord, 0, len(presets))
	for _, p := range presets {
		records = append(records, toPresetRecord(p))
	}
	return json.NewEncoder(w).Encode(records)
}

func formatPresetsTSV(w io.Writer, presets []datemath.Preset) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintln(tw, "KEY\tLABEL\tSTART\tEND\tDAYS")
	for _, p := range presets {
		r := toPresetRecord(p)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", r.Key, r.Label, r.Start, r.End, r.Days)
	}
	return tw.Flush()
}

func formatPresetsCSV(w io.Writer, presets []datemath.Preset) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"KEY", "LABEL", "START", "END", "DAYS"})
	for _, p := range presets {
		r := toPresetRecord(p)
		record := []string{r.Key, r.Label, r.Start, r.End, fmt.Sprintf("%d", r.Days)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
