package game

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by ConfigFromEnv
const (
	EnvConfigPath = "BOXSHOOTER_CONFIG"
	EnvLogLevel   = "BOXSHOOTER_LOG_LEVEL"
	EnvSeed       = "BOXSHOOTER_SEED"
)

// Config holds game configuration
type Config struct {
	// Field is the initial play-field size in pixels. Hosts resize it to the viewport.
	Field FieldConfig `yaml:"field"`

	// Player is the player craft template
	Player CraftConfig `yaml:"player"`

	// Projectile is the projectile template
	Projectile ProjectileConfig `yaml:"projectile"`

	// Enemy is the enemy craft template
	Enemy CraftConfig `yaml:"enemy"`

	// Spawn controls enemy creation
	Spawn SpawnConfig `yaml:"spawn"`

	// FireInterval is the cadence of the automatic fire timer
	FireInterval time.Duration `yaml:"fire_interval"`

	// Keys maps movement directions to lowercase key names
	Keys KeyBindings `yaml:"keys"`

	Sound   SoundConfig   `yaml:"sound"`
	Log     LogConfig     `yaml:"log"`
	Profile ProfileConfig `yaml:"profile"`
}

// FieldConfig is the play-field size in pixels
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CraftConfig describes a rectangular craft
type CraftConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Color  string  `yaml:"color"`
}

// ProjectileConfig describes the square projectile fired by the player
type ProjectileConfig struct {
	Speed float64 `yaml:"speed"`

	// SizeRatio is the projectile side as a fraction of the player width
	SizeRatio float64 `yaml:"size_ratio"`

	Color string `yaml:"color"`
}

// SpawnConfig controls the enemy spawner
type SpawnConfig struct {
	// Chance is the per-frame spawn probability
	Chance float64 `yaml:"chance"`

	// MaxEnemies caps live enemies; 0 means unlimited
	MaxEnemies int `yaml:"max_enemies"`

	// Script is an optional path to a JavaScript spawn policy
	Script string `yaml:"script"`

	// Seed seeds the spawner's random source; 0 picks one from the clock
	Seed int64 `yaml:"seed"`
}

// SoundConfig controls sound effects
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	Fire    bool    `yaml:"fire"`
}

// LogConfig controls the logger
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// ProfileConfig controls the frame monitor
type ProfileConfig struct {
	// Dir receives CPU profiles captured on FPS drops; empty disables capture
	Dir string `yaml:"dir"`

	FPSThreshold float64 `yaml:"fps_threshold"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{Width: 1024, Height: 768},
		Player: CraftConfig{
			Width:  50,
			Height: 50,
			Speed:  5,
			Color:  "#ffffff",
		},
		Projectile: ProjectileConfig{
			Speed:     7,
			SizeRatio: 0.05,
			Color:     "#ffffff",
		},
		Enemy: CraftConfig{
			Width:  50,
			Height: 50,
			Speed:  2,
			Color:  "#008000",
		},
		Spawn:        SpawnConfig{Chance: 0.02},
		FireInterval: 200 * time.Millisecond,
		Keys:         DefaultKeyBindings(),
		Sound:        SoundConfig{Enabled: true, Volume: -1.5},
		Log:          LogConfig{Level: "info"},
		Profile:      ProfileConfig{FPSThreshold: 45},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv loads a .env file if one exists, picks the config file from
// path or BOXSHOOTER_CONFIG, and applies environment overrides.
func ConfigFromEnv(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
	if seed := os.Getenv(EnvSeed); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		cfg.Spawn.Seed = v
	}

	return cfg, cfg.Validate()
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("field: width and height must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	}
	if err := c.Player.validate("player"); err != nil {
		return err
	}
	if err := c.Enemy.validate("enemy"); err != nil {
		return err
	}
	if c.Projectile.Speed <= 0 {
		return fmt.Errorf("projectile.speed must be positive, got %v", c.Projectile.Speed)
	}
	if c.ProjectileSize() <= 0 {
		return fmt.Errorf("projectile.size_ratio %v gives an empty projectile", c.Projectile.SizeRatio)
	}
	if c.Spawn.Chance < 0 || c.Spawn.Chance > 1 {
		return fmt.Errorf("spawn.chance must be within [0, 1], got %v", c.Spawn.Chance)
	}
	if c.Spawn.MaxEnemies < 0 {
		return fmt.Errorf("spawn.max_enemies must not be negative, got %d", c.Spawn.MaxEnemies)
	}
	if c.FireInterval <= 0 {
		return fmt.Errorf("fire_interval must be positive, got %v", c.FireInterval)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

func (c CraftConfig) validate(name string) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%s: width and height must be positive, got %vx%v", name, c.Width, c.Height)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%s.speed must be positive, got %v", name, c.Speed)
	}
	return nil
}

// ProjectileSize returns the projectile side, rounded to the nearest pixel
func (c Config) ProjectileSize() float64 {
	return roundHalfUp(c.Player.Width * c.Projectile.SizeRatio)
}

// Palette holds the parsed entity colors
type Palette struct {
	Player     color.RGBA
	Projectile color.RGBA
	Enemy      color.RGBA
}

// Palette parses the configured hex colors
func (c Config) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Player, err = ParseColor(c.Player.Color); err != nil {
		return p, fmt.Errorf("player.color: %w", err)
	}
	if p.Projectile, err = ParseColor(c.Projectile.Color); err != nil {
		return p, fmt.Errorf("projectile.color: %w", err)
	}
	if p.Enemy, err = ParseColor(c.Enemy.Color); err != nil {
		return p, fmt.Errorf("enemy.color: %w", err)
	}
	return p, nil
}

// ParseColor parses a "#rrggbb" or "#rgb" string into an opaque color
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Overrides are command-line settings applied on top of the loaded config
type Overrides struct {
	LogLevel string
	Seed     int64
	Mute     bool
}

// Apply copies the non-zero overrides into c
func (c *Config) Apply(o Overrides) {
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.Seed != 0 {
		c.Spawn.Seed = o.Seed
	}
	if o.Mute {
		c.Sound.Enabled = false
	}
}
