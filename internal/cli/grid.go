package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/grid"
	"github.com/MikeBiancalana/datekit/internal/selection"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

const gridLegend = "[d] selected  =d= in range  ~d~ preview  *d* today"

type gridOptions struct {
	view  string
	start string
	end   string
	hover string
	short bool
}

// GetGridCommand returns the grid command
func GetGridCommand() *cobra.Command {
	var opts gridOptions

	cmd := &cobra.Command{
		Use:   "grid [YYYY-MM]",
		Short: "Print a calendar grid",
		Long: `Print the calendar grid for a month without opening a picker.

With --start and --end the days are marked the way the range picker draws
them. --hover previews an open range (only --start) ending at that date.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			anchor := grid.AnchorOf(datemath.Today(now))
			if len(args) == 1 {
				year, month, err := datemath.ParseMonth(args[0])
				if err != nil {
					return err
				}
				anchor = grid.Anchor{Year: year, Month: month}
			}

			mode, err := grid.ParseViewMode(opts.view)
			if err != nil {
				return err
			}

			r, hover, err := gridSelection(opts, now)
			if err != nil {
				return err
			}

			short := settings.ShortMonths
			if cmd.Flags().Changed("short") {
				short = opts.short
			}

			g := grid.Layout(anchor, mode, grid.Options{ShortMonths: short})
			return writeGrid(cmd.OutOrStdout(), g, r, hover, datemath.Today(now))
		},
	}

	cmd.Flags().StringVar(&opts.view, "view", "days", "view mode: days, months, years")
	cmd.Flags().StringVar(&opts.start, "start", "", "range start to mark")
	cmd.Flags().StringVar(&opts.end, "end", "", "range end to mark")
	cmd.Flags().StringVar(&opts.hover, "hover", "", "hovered date for an open range")
	cmd.Flags().BoolVar(&opts.short, "short", true, "3-letter month names in the months view")
	return cmd
}

// gridSelection parses the marks. An inverted pair is kept as given, since
// classification orders it.
func gridSelection(opts gridOptions, now time.Time) (selection.Range, datemath.Date, error) {
	start, err := parseOptionalDate(opts.start, now)
	if err != nil {
		return selection.Range{}, datemath.Date{}, fmt.Errorf("--start: %w", err)
	}
	end, err := parseOptionalDate(opts.end, now)
	if err != nil {
		return selection.Range{}, datemath.Date{}, fmt.Errorf("--end: %w", err)
	}
	r := selection.Range{Start: start, End: end}.Normalize()

	hover, err := parseOptionalDate(opts.hover, now)
	if err != nil {
		return selection.Range{}, datemath.Date{}, fmt.Errorf("--hover: %w", err)
	}
	return r, hover, nil
}

// writeGrid renders g. Day cells carry classification markers; month and
// year cells mark the anchor.
func writeGrid(w io.Writer, g grid.Grid, r selection.Range, hover, today datemath.Date) error {
	title := color.New(color.Bold).SprintFunc()
	if _, err := fmt.Fprintln(w, title(g.Title)); err != nil {
		return err
	}

	tbl := uitable.New()
	tbl.Separator = ""

	if g.Mode == grid.Days {
		header := make([]interface{}, 0, 7)
		for _, wd := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
			header = append(header, " "+wd+" ")
		}
		tbl.AddRow(header...)
	}

	for _, row := range g.Rows() {
		cells := make([]interface{}, 0, len(row))
		for _, c := range row {
			cells = append(cells, renderGridCell(c, r, hover, today))
		}
		tbl.AddRow(cells...)
	}

	if _, err := fmt.Fprintln(w, tbl); err != nil {
		return err
	}
	if g.Mode == grid.Days {
		_, err := fmt.Fprintln(w, color.New(color.Faint).Sprint(gridLegend))
		return err
	}
	return nil
}

func renderGridCell(c grid.Cell, r selection.Range, hover, today datemath.Date) string {
	switch c.Kind {
	case grid.CellPadding:
		return "    "
	case grid.CellMonth, grid.CellYear:
		if c.Current {
			return color.New(color.Bold).Sprint(fmt.Sprintf("%-11s", "["+c.Label+"]"))
		}
		return fmt.Sprintf("%-11s", " "+c.Label+" ")
	}

	st := selection.Classify(r, hover, c.Date)
	label := fmt.Sprintf("%2s", c.Label)
	switch {
	case st.Selected:
		return color.New(color.Bold, color.FgMagenta).Sprint("[" + label + "]")
	case st.Fill && st.Preview:
		return color.New(color.FgYellow).Sprint("~" + label + "~")
	case st.Fill:
		return color.New(color.FgCyan).Sprint("=" + label + "=")
	case datemath.IsSameDay(c.Date, today):
		return color.New(color.Underline).Sprint("*" + label + "*")
	}
	return " " + label + " "
}
