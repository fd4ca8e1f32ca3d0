package cli

import (
	"fmt"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/spf13/cobra"
)

// GetPresetsCommand returns the presets command
func GetPresetsCommand() *cobra.Command {
	var (
		nowFlag    string
		formatFlag string
	)

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the preset date ranges",
		Long:  "Print the quick-pick ranges offered by the range picker, computed relative to today or --now.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(formatFlag)
			if err != nil {
				return err
			}

			now := time.Now()
			if nowFlag != "" {
				d, err := datemath.ParseDate(nowFlag, now)
				if err != nil {
					return fmt.Errorf("--now: %w", err)
				}
				now = d.Time(time.Local)
			}

			return writePresets(cmd.OutOrStdout(), format, datemath.ComputePresetRanges(now).All())
		},
	}

	cmd.Flags().StringVar(&nowFlag, "now", "", "reference date (default today)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "output format: table, json, tsv, csv")
	return cmd
}
