package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/navigation"
)

// Environment overrides, usually supplied through a .env file
const (
	EnvContactEndpoint = "FOLIO_CONTACT_ENDPOINT"
	EnvContentDir      = "FOLIO_CONTENT_DIR"
)

const currentVersion = 1

// Config represents the application configuration
type Config struct {
	Version    int                `toml:"version" validate:"eq=1"`
	ContentDir string             `toml:"content_dir,omitempty"`
	Navigation NavigationSettings `toml:"navigation"`
	Display    DisplaySettings    `toml:"display"`
	Contact    ContactSettings    `toml:"contact"`
}

// NavigationSettings tunes paging. Distances are pixels.
type NavigationSettings struct {
	CooldownMS         int     `toml:"cooldown_ms" validate:"gt=0"`
	DebounceMS         int     `toml:"debounce_ms" validate:"gt=0"`
	MobileBreakpoint   int     `toml:"mobile_breakpoint" validate:"gt=0"`
	SlackPX            int     `toml:"slack_px" validate:"gte=0"`
	TolerancePX        int     `toml:"tolerance_px" validate:"gte=0"`
	AdvancePolicy      string  `toml:"advance_policy" validate:"oneof=strict lenient"`
	LenientThreshold   float64 `toml:"lenient_threshold" validate:"gt=0,lte=1"`
	SwipeMinPX         float64 `toml:"swipe_min_px" validate:"gt=0"`
	VerticalSwipeMinPX float64 `toml:"vertical_swipe_min_px" validate:"gt=0"`
	SwipeMaxMS         int     `toml:"swipe_max_ms" validate:"gt=0"`
}

// DisplaySettings maps terminal cells to pixels and picks the markdown style
type DisplaySettings struct {
	CellWidthPX  int    `toml:"cell_width_px" validate:"gt=0"`
	CellHeightPX int    `toml:"cell_height_px" validate:"gt=0"`
	WheelLines   int    `toml:"wheel_lines" validate:"gt=0"`
	GlamourStyle string `toml:"glamour_style" validate:"oneof=auto dark light notty"`
}

// ContactSettings configures the contact form endpoint
type ContactSettings struct {
	Endpoint  string `toml:"endpoint" validate:"omitempty,url"`
	TimeoutMS int    `toml:"timeout_ms" validate:"gt=0"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "folio", "config.toml")
}

// NewConfigService creates a config service for path. An empty path selects
// DefaultPath. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

func (cs *configService) Path() string { return cs.filePath }

// Load reads the config file, writing the defaults there first if it does
// not exist yet. Environment overrides are applied to the result.
func (cs *configService) Load() (*Config, error) {
	exists := true
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		exists = false
		cfg = DefaultConfig()
		if err := cs.SaveToPath(cfg, cs.filePath); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{Path: cs.filePath, Exists: exists})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides file values with FOLIO_* environment variables
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvContactEndpoint); v != "" {
		c.Contact.Endpoint = v
	}
	if v := os.Getenv(EnvContentDir); v != "" {
		c.ContentDir = v
	}
}

var validate = validator.New()

// Validate rejects settings the UI cannot work with
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NavigationOptions converts the navigation section for the controller
func (c *Config) NavigationOptions(initialWidth int) navigation.Options {
	n := c.Navigation
	return navigation.Options{
		Cooldown:         time.Duration(n.CooldownMS) * time.Millisecond,
		Debounce:         time.Duration(n.DebounceMS) * time.Millisecond,
		MobileBreakpoint: n.MobileBreakpoint,
		Slack:            n.SlackPX,
		Tolerance:        n.TolerancePX,
		Policy:           navigation.Policy(n.AdvancePolicy),
		LenientThreshold: n.LenientThreshold,
		SwipeMin:         n.SwipeMinPX,
		VerticalSwipeMin: n.VerticalSwipeMinPX,
		SwipeMaxDuration: time.Duration(n.SwipeMaxMS) * time.Millisecond,
		InitialWidth:     initialWidth,
	}
}

// ContactTimeout returns the contact request timeout
func (c *Config) ContactTimeout() time.Duration {
	return time.Duration(c.Contact.TimeoutMS) * time.Millisecond
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	d := navigation.DefaultOptions()
	return &Config{
		Version: currentVersion,
		Navigation: NavigationSettings{
			CooldownMS:         int(d.Cooldown / time.Millisecond),
			DebounceMS:         int(d.Debounce / time.Millisecond),
			MobileBreakpoint:   d.MobileBreakpoint,
			SlackPX:            d.Slack,
			TolerancePX:        d.Tolerance,
			AdvancePolicy:      string(d.Policy),
			LenientThreshold:   d.LenientThreshold,
			SwipeMinPX:         d.SwipeMin,
			VerticalSwipeMinPX: d.VerticalSwipeMin,
			SwipeMaxMS:         int(d.SwipeMaxDuration / time.Millisecond),
		},
		Display: DisplaySettings{
			CellWidthPX:  8,
			CellHeightPX: 16,
			WheelLines:   3,
			GlamourStyle: "auto",
		},
		Contact: ContactSettings{
			Endpoint:  "https://formbold.com/s/3dpnb",
			TimeoutMS: 10000,
		},
	}
}
