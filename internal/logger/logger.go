package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Config controls logger initialization.
type Config struct {
	Level  string
	Format string
	// File is an explicit log file. Empty means stderr, or the default log
	// file when TUIMode is set.
	File string
	// TUIMode routes logs away from the terminal so they never draw over the
	// alt screen.
	TUIMode bool
}

var (
	logger    *slog.Logger
	logLevel  slog.Level
	logFormat string
	logFile   string
	tuiMode   bool
	closer    io.Closer
	once      sync.Once
	mu        sync.Mutex
)

func init() {
	Initialize()
}

// Initialize configures the logger from the environment, once.
//
// LOG_LEVEL sets the level (DEBUG, INFO, WARN, ERROR); DATEKIT_DEBUG=1 is a
// shortcut for DEBUG. LOG_FORMAT selects text or json.
func Initialize() {
	once.Do(func() {
		_ = InitializeWithConfig(ConfigFromEnv())
	})
}

// ConfigFromEnv reads the logger configuration from environment variables.
func ConfigFromEnv() Config {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		debug := os.Getenv("DATEKIT_DEBUG")
		if debug == "1" || debug == "true" {
			levelStr = "DEBUG"
		} else {
			levelStr = "INFO"
		}
	}

	return Config{
		Level:  levelStr,
		Format: os.Getenv("LOG_FORMAT"),
		File:   os.Getenv("DATEKIT_LOG_FILE"),
	}
}

// InitializeWithConfig (re)configures the logger. It may be called again,
// e.g. when the TUI starts and logs must move to a file. In TUI mode a log
// file that cannot be opened is an error; otherwise logs fall back to stderr.
func InitializeWithConfig(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	logLevel = parseLevel(cfg.Level)
	logFormat = strings.ToLower(cfg.Format)
	if logFormat != "json" {
		logFormat = "text"
	}
	tuiMode = cfg.TUIMode

	logFile = cfg.File
	if logFile == "" && cfg.TUIMode {
		logFile = defaultLogFile()
	}

	if closer != nil {
		closer.Close()
		closer = nil
	}

	var out io.Writer = os.Stderr
	var initErr error
	if logFile != "" {
		f, err := openLogFile(logFile)
		switch {
		case err == nil:
			out = f
			closer = f
		case cfg.TUIMode:
			out = io.Discard
			initErr = fmt.Errorf("TUI mode requires file-based logging: %w", err)
		default:
			initErr = fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	var handler slog.Handler
	if logFormat == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger = slog.New(handler)
	return initErr
}

// Close releases the log file, if any. Logging afterwards goes to stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	return err
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// defaultLogFile returns ~/.datekit/logs/datekit.log. The config package
// cannot be imported here (it logs), so the layout is repeated.
func defaultLogFile() string {
	base := os.Getenv("DATEKIT_DATA_DIR")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".datekit")
	}
	return filepath.Join(base, "logs", "datekit.log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

func GetLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func GetLevel() slog.Level {
	mu.Lock()
	defer mu.Unlock()
	return logLevel
}

func GetFormat() string {
	mu.Lock()
	defer mu.Unlock()
	return logFormat
}

func GetLogFile() string {
	mu.Lock()
	defer mu.Unlock()
	return logFile
}

func IsTUIMode() bool {
	mu.Lock()
	defer mu.Unlock()
	return tuiMode
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}
