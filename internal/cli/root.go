package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MikeBiancalana/datekit/internal/config"
	"github.com/MikeBiancalana/datekit/internal/logger"
	"github.com/MikeBiancalana/datekit/internal/sync"
	"github.com/MikeBiancalana/datekit/internal/tui"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user leaves a picker without committing.
var ErrCancelled = errors.New("cancelled")

// ErrNotTerminal is returned by interactive commands when stdout is not a
// terminal.
var ErrNotTerminal = errors.New("interactive command needs a terminal")

// Demo names accepted by the chooser and the default_mode setting.
const (
	demoShowcase = "showcase"
	demoSingle   = "single"
	demoRange    = "range"
)

// settings holds the configuration loaded before any command runs.
var settings = config.Default()

// RootCmd is the root command for the CLI
var RootCmd = NewRootCommand()

// NewRootCommand builds the dk command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dk",
		Short: "datekit - terminal date and date range pickers",
		Long: `Calendar date and date range pickers for the terminal.

Run without a subcommand to choose an interactive demo.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadSettings,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTerminal(cmd); err != nil {
				return err
			}

			choice, err := chooseDemo(settings.DefaultMode)
			if err != nil {
				return err
			}
			return runDemo(cmd, choice)
		},
	}

	root.AddCommand(GetPickCommand())
	root.AddCommand(GetRangeCommand())
	root.AddCommand(GetPresetsCommand())
	root.AddCommand(GetGridCommand())
	root.AddCommand(GetConfigCommand())
	return root
}

// loadSettings reads the config file. A missing file yields the defaults.
func loadSettings(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	settings = loaded
	logger.Debug("cli: settings loaded", "command", cmd.Name(), "default_mode", settings.DefaultMode)
	return nil
}

// requireTerminal fails when stdout is not a terminal.
func requireTerminal(cmd *cobra.Command) error {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("dk %s: %w", cmd.Name(), ErrNotTerminal)
	}
	return nil
}

// enterTUIMode moves logging to the log file so it never draws over the
// interface. LOG_LEVEL and DATEKIT_DEBUG win over the configured level.
func enterTUIMode() {
	cfg := logger.ConfigFromEnv()
	if os.Getenv("LOG_LEVEL") == "" && os.Getenv("DATEKIT_DEBUG") == "" && settings.LogLevel != "" {
		cfg.Level = settings.LogLevel
	}
	cfg.TUIMode = true
	if err := logger.InitializeWithConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// chooseDemo asks which demo to run, preselecting current.
func chooseDemo(current string) (string, error) {
	choice := current
	if choice == "" {
		choice = demoShowcase
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose a demo").
				Options(
					huh.NewOption("Showcase (all examples)", demoShowcase),
					huh.NewOption("Single date picker", demoSingle),
					huh.NewOption("Date range picker", demoRange),
				).
				Value(&choice),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("demo chooser: %w", err)
	}
	return choice, nil
}

func runDemo(cmd *cobra.Command, choice string) error {
	switch choice {
	case demoSingle:
		return runPick(cmd, pickOptions{label: "Date"})
	case demoRange:
		return runRange(cmd, rangeOptions{label: "Date range"})
	default:
		return runShowcase()
	}
}

func runShowcase() error {
	enterTUIMode()

	var watcher *sync.Watcher
	if path, err := config.ConfigPath(); err == nil {
		watcher, err = sync.NewWatcher(path)
		if err != nil {
			logger.Warn("cli: config watcher unavailable", "error", err)
			watcher = nil
		}
	}
	if watcher != nil {
		defer watcher.Stop()
	}

	return tui.RunShowcase(settings, watcher)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
