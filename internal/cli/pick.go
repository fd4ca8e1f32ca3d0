package cli

import (
	"fmt"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/picker"
	"github.com/MikeBiancalana/datekit/internal/selection"
	"github.com/MikeBiancalana/datekit/internal/tui"
	"github.com/spf13/cobra"
)

type pickOptions struct {
	value string
	label string
	id    string
}

type rangeOptions struct {
	start  string
	end    string
	preset string
	label  string
	id     string
}

// GetPickCommand returns the pick command
func GetPickCommand() *cobra.Command {
	var opts pickOptions

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a single date interactively",
		Long: `Open a date picker and print the chosen date as YYYY-MM-DD.

--value accepts the same forms as typed entry: YYYY-MM-DD, today,
tomorrow, yesterday, +3d, -1w, or a weekday name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTerminal(cmd); err != nil {
				return err
			}
			return runPick(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.value, "value", "", "initial date")
	cmd.Flags().StringVar(&opts.label, "label", "", "label shown above the picker")
	cmd.Flags().StringVar(&opts.id, "id", "", "picker ID (generated when empty)")
	return cmd
}

// GetRangeCommand returns the range command
func GetRangeCommand() *cobra.Command {
	var opts rangeOptions

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Pick a date range interactively",
		Long: `Open a date range picker and print the chosen start and end dates,
tab separated.

--preset seeds the range with one of: today, yesterday, this-week,
last-7-days, this-month, last-month.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTerminal(cmd); err != nil {
				return err
			}
			return runRange(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "initial start date")
	cmd.Flags().StringVar(&opts.end, "end", "", "initial end date")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "initial preset range")
	cmd.Flags().StringVar(&opts.label, "label", "", "label shown above the picker")
	cmd.Flags().StringVar(&opts.id, "id", "", "picker ID (generated when empty)")
	cmd.MarkFlagsMutuallyExclusive("preset", "start")
	cmd.MarkFlagsMutuallyExclusive("preset", "end")
	return cmd
}

// parseOptionalDate parses s relative to now; empty input is the zero date.
func parseOptionalDate(s string, now time.Time) (datemath.Date, error) {
	if s == "" {
		return datemath.Date{}, nil
	}
	return datemath.ParseDate(s, now)
}

// initialRange builds the starting value of the range command.
func initialRange(opts rangeOptions, now time.Time) (selection.Range, error) {
	if opts.preset != "" {
		p, err := datemath.PresetByKey(now, opts.preset)
		if err != nil {
			return selection.Range{}, err
		}
		return selection.Range{Start: p.Start, End: p.End}, nil
	}

	start, err := parseOptionalDate(opts.start, now)
	if err != nil {
		return selection.Range{}, fmt.Errorf("--start: %w", err)
	}
	end, err := parseOptionalDate(opts.end, now)
	if err != nil {
		return selection.Range{}, fmt.Errorf("--end: %w", err)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return selection.Range{}, fmt.Errorf("--end %s is before --start %s", datemath.FormatISO(end), datemath.FormatISO(start))
	}
	return selection.Range{Start: start, End: end}.Normalize(), nil
}

func runPick(cmd *cobra.Command, opts pickOptions) error {
	value, err := parseOptionalDate(opts.value, time.Now())
	if err != nil {
		return fmt.Errorf("--value: %w", err)
	}

	enterTUIMode()
	d, ok, err := tui.RunSingle(picker.Props{ID: opts.id, Label: opts.label}, value, settings)
	if err != nil {
		return err
	}
	if !ok || d.IsZero() {
		return ErrCancelled
	}

	fmt.Fprintln(cmd.OutOrStdout(), datemath.FormatISO(d))
	return nil
}

func runRange(cmd *cobra.Command, opts rangeOptions) error {
	value, err := initialRange(opts, time.Now())
	if err != nil {
		return err
	}

	enterTUIMode()
	r, ok, err := tui.RunRange(picker.Props{ID: opts.id, Label: opts.label}, value, settings)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", datemath.FormatISO(r.Start), datemath.FormatISO(r.End))
	return nil
}
