package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every parse or validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Theme holds the colours used by the terminal components. Each value is a
// hex colour (#rgb or #rrggbb) or an ANSI 256 index.
type Theme struct {
	Primary  string `yaml:"primary" validate:"required,color"`
	Accent   string `yaml:"accent" validate:"required,color"`
	Muted    string `yaml:"muted" validate:"required,color"`
	Text     string `yaml:"text" validate:"required,color"`
	RangeBg  string `yaml:"range_bg" validate:"required,color"`
	Selected string `yaml:"selected" validate:"required,color"`
	Error    string `yaml:"error" validate:"required,color"`
}

// Settings is the contents of config.yaml.
type Settings struct {
	Theme Theme `yaml:"theme"`
	// ShortMonths renders 3-letter month names in the months view.
	ShortMonths bool `yaml:"short_months"`
	// DefaultMode is the demo opened by a bare `dk`.
	DefaultMode string `yaml:"default_mode" validate:"omitempty,oneof=showcase single range"`
	LogLevel    string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// Default returns the settings used when no config file exists.
func Default() Settings {
	return Settings{
		Theme: Theme{
			Primary:  "#7D56F4",
			Accent:   "#F25D94",
			Muted:    "241",
			Text:     "252",
			RangeBg:  "#3C3C5A",
			Selected: "#FFFFFF",
			Error:    "#FF5F87",
		},
		ShortMonths: true,
		DefaultMode: "showcase",
		LogLevel:    "info",
	}
}

var (
	hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return IsColor(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// IsColor reports whether s is a hex colour or an ANSI 256 index.
func IsColor(s string) bool {
	if hexColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// Validate checks s against its struct tags.
func (s Settings) Validate() error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return fmt.Errorf("%w: %s failed validation for tag '%s'", ErrInvalidConfig, fieldName(fe), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}

// fieldName turns Settings.Theme.RangeBg into settings.theme.rangebg.
func fieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.StructNamespace())
}

// Parse decodes YAML on top of the defaults, so a file only needs the keys
// it changes.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadFile reads settings from path. A missing file yields the defaults.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Load reads settings from ConfigPath.
func Load() (Settings, error) {
	path, err := ConfigPath()
	if err != nil {
		return Settings{}, fmt.Errorf("failed to resolve config path: %w", err)
	}
	return LoadFile(path)
}

// Marshal renders s as YAML.
func (s Settings) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the default settings to path. An existing file is
// left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}

	data, err := Default().Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
