package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/selection"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs dk with args against a scratch data directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATEKIT_DATA_DIR", t.TempDir())
	return executeIn(t, args...)
}

// executeIn runs dk with args using the current DATEKIT_DATA_DIR.
func executeIn(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPresetsJSON(t *testing.T) {
	out, err := execute(t, "presets", "--now", "2024-06-15", "--format", "json")
	require.NoError(t, err)

	var records []presetRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 6)

	byKey := map[string]presetRecord{}
	for _, r := range records {
		byKey[r.Key] = r
	}

	assert.Equal(t, presetRecord{Key: "today", Label: "Today", Start: "2024-06-15", End: "2024-06-15", Days: 1}, byKey["today"])
	assert.Equal(t, "2024-06-09", byKey["this-week"].Start)
	assert.Equal(t, "2024-06-15", byKey["this-week"].End)
	assert.Equal(t, 7, byKey["last-7-days"].Days)
	assert.Equal(t, presetRecord{Key: "last-month", Label: "Last Month", Start: "2024-05-01", End: "2024-05-31", Days: 31}, byKey["last-month"])
}

func TestPresetsTable(t *testing.T) {
	out, err := execute(t, "presets", "--now", "2024-06-15")
	require.NoError(t, err)

	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "last-month")
	assert.Contains(t, out, "May 1, 2024 - May 31, 2024")
}

func TestPresetsCSVAndTSV(t *testing.T) {
	out, err := execute(t, "presets", "--now", "2024-01-10", "-f", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "KEY,LABEL,START,END,DAYS", lines[0])
	assert.Equal(t, "last-month,Last Month,2023-12-01,2023-12-31,31", lines[6])

	out, err = execute(t, "presets", "--now", "2024-01-10", "-f", "tsv")
	require.NoError(t, err)
	assert.Contains(t, out, "this-month")
	assert.Contains(t, out, "2024-01-31")
}

func TestPresetsErrors(t *testing.T) {
	_, err := execute(t, "presets", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported format")

	_, err = execute(t, "presets", "--now", "not a date")
	assert.ErrorIs(t, err, datemath.ErrInvalidDate)
}

func TestGridDaysWithRange(t *testing.T) {
	out, err := execute(t, "grid", "2024-06", "--start", "2024-06-10", "--end", "2024-06-12")
	require.NoError(t, err)

	assert.Contains(t, out, "June 2024")
	assert.Contains(t, out, " Su ")
	assert.Contains(t, out, "[10]")
	assert.Contains(t, out, "=11=")
	assert.Contains(t, out, "[12]")
	assert.Contains(t, out, " 13 ")
	assert.Contains(t, out, gridLegend)
}

func TestGridHoverPreview(t *testing.T) {
	out, err := execute(t, "grid", "2024-06", "--start", "2024-06-10", "--hover", "2024-06-13")
	require.NoError(t, err)

	assert.Contains(t, out, "[10]")
	assert.Contains(t, out, "~11~")
	assert.Contains(t, out, "~12~")
	assert.Contains(t, out, "[13]")
}

func TestGridMonthsAndYears(t *testing.T) {
	out, err := execute(t, "grid", "2024-06", "--view", "months")
	require.NoError(t, err)
	assert.Contains(t, out, "2024")
	assert.Contains(t, out, "[Jun]")
	assert.Contains(t, out, " Jan ")
	assert.NotContains(t, out, gridLegend)

	out, err = execute(t, "grid", "2024-06", "--view", "months", "--short=false")
	require.NoError(t, err)
	assert.Contains(t, out, "[June]")
	assert.Contains(t, out, " September ")

	out, err = execute(t, "grid", "2024-06", "--view", "years")
	require.NoError(t, err)
	assert.Contains(t, out, "2016 - 2027")
	assert.Contains(t, out, "[2024]")
}

func TestGridErrors(t *testing.T) {
	_, err := execute(t, "grid", "June")
	assert.ErrorIs(t, err, datemath.ErrInvalidDate)

	_, err = execute(t, "grid", "--view", "weeks")
	assert.ErrorContains(t, err, "unknown view mode")

	_, err = execute(t, "grid", "--start", "2024-06-31")
	assert.ErrorContains(t, err, "--start")
}

func TestGridInvertedRange(t *testing.T) {
	out, err := execute(t, "grid", "2024-06", "--start", "2024-06-12", "--end", "2024-06-10")
	require.NoError(t, err)

	assert.Contains(t, out, "[10]")
	assert.Contains(t, out, "=11=")
	assert.Contains(t, out, "[12]")
	assert.Contains(t, out, " 13 ")
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATEKIT_DATA_DIR", dir)
	path := filepath.Join(dir, "config.yaml")

	out, err := executeIn(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	out, err = executeIn(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "default_mode: showcase")

	out, err = executeIn(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, err = executeIn(t, "config", "init")
	assert.ErrorContains(t, err, "config already exists")

	_, err = executeIn(t, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestInvalidConfigFailsCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATEKIT_DATA_DIR", dir)
	require.NoError(t, writeFile(filepath.Join(dir, "config.yaml"), "theme:\n  accent: nope\n"))

	_, err := executeIn(t, "presets")
	assert.ErrorContains(t, err, "failed validation")
}

func TestInteractiveCommandsNeedTerminal(t *testing.T) {
	for _, args := range [][]string{{"pick"}, {"range"}, {}} {
		_, err := execute(t, args...)
		assert.ErrorIs(t, err, ErrNotTerminal, "args %v", args)
	}
}

func TestInitialRange(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	r, err := initialRange(rangeOptions{preset: "last-month"}, now)
	require.NoError(t, err)
	assert.Equal(t, selection.Range{
		Start: datemath.MustValid(2024, time.May, 1),
		End:   datemath.MustValid(2024, time.May, 31),
	}, r)

	r, err = initialRange(rangeOptions{end: "2024-06-20"}, now)
	require.NoError(t, err)
	assert.Equal(t, selection.Range{Start: datemath.MustValid(2024, time.June, 20)}, r, "a lone end is promoted to the start")

	r, err = initialRange(rangeOptions{}, now)
	require.NoError(t, err)
	assert.True(t, r.IsEmpty())

	_, err = initialRange(rangeOptions{preset: "fortnight"}, now)
	assert.ErrorContains(t, err, "unknown preset")

	_, err = initialRange(rangeOptions{start: "2024-13-01"}, now)
	assert.ErrorContains(t, err, "--start")

	_, err = initialRange(rangeOptions{start: "2024-06-12", end: "2024-06-10"}, now)
	assert.ErrorContains(t, err, "is before --start")
}

func TestGridSelectionKeepsInvertedPair(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	r, hover, err := gridSelection(gridOptions{start: "2024-06-12", end: "2024-06-10"}, now)
	require.NoError(t, err)
	assert.True(t, hover.IsZero())
	assert.Equal(t, selection.Range{
		Start: datemath.MustValid(2024, time.June, 12),
		End:   datemath.MustValid(2024, time.June, 10),
	}, r)
}
