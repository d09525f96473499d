package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/papercraft/components"
	"github.com/lixenwraith/papercraft/core"
)

// FileName is the config file base name searched in the config directory
const FileName = "papercraft"

// ScreenConfig is the console size in cells
type ScreenConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// AreaConfig is a rectangular screen region
type AreaConfig struct {
	X      int `mapstructure:"x"`
	Y      int `mapstructure:"y"`
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Area converts to core.Area
func (a AreaConfig) Area() core.Area {
	return core.Area{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}
}

// RulesConfig holds rule switches
type RulesConfig struct {
	AttackRequiresTurn bool    `mapstructure:"attackRequiresTurn"`
	HoverBrighten      float64 `mapstructure:"hoverBrighten"`
}

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// LogConfig controls the debug file logger
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

// RosterEntry places one unit from the archetype catalog.
// Glyph, Color ("#rrggbb") and Faction override the archetype when set.
type RosterEntry struct {
	Archetype string `mapstructure:"archetype"`
	X         int    `mapstructure:"x"`
	Y         int    `mapstructure:"y"`
	Glyph     string `mapstructure:"glyph"`
	Color     string `mapstructure:"color"`
	Faction   string `mapstructure:"faction"`
}

// Config is the full game configuration
type Config struct {
	Screen    ScreenConfig  `mapstructure:"screen"`
	EndTurn   AreaConfig    `mapstructure:"endTurn"`
	Rules     RulesConfig   `mapstructure:"rules"`
	Audio     AudioConfig   `mapstructure:"audio"`
	Log       LogConfig     `mapstructure:"log"`
	FrameRate int           `mapstructure:"frameRate"`
	Roster    []RosterEntry `mapstructure:"roster"`
}

// DefaultRoster is the opening position: three bugs, one human, three bionics
func DefaultRoster() []RosterEntry {
	return []RosterEntry{
		{Archetype: "spider", X: 10, Y: 10},
		{Archetype: "spider", X: 11, Y: 10},
		{Archetype: "queen", X: 8, Y: 9},
		{Archetype: "soldier", X: 14, Y: 13},
		{Archetype: "reaper", X: 20, Y: 20},
		{Archetype: "sentinel", X: 15, Y: 20},
		{Archetype: "carrier", X: 18, Y: 23},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("screen.width", 160)
	v.SetDefault("screen.height", 80)

	v.SetDefault("endTurn.x", 150)
	v.SetDefault("endTurn.y", 0)
	v.SetDefault("endTurn.width", 10)
	v.SetDefault("endTurn.height", 2)

	v.SetDefault("rules.attackRequiresTurn", false)
	v.SetDefault("rules.hoverBrighten", 0.2)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)

	v.SetDefault("log.debug", false)
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.dir", "logs")

	v.SetDefault("frameRate", 30)
}

// RegisterFlags declares the command-line flags that override config keys
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config-dir", ".", "directory searched for papercraft.toml")
	fs.Bool("debug", false, "write a debug log to the log directory")
	fs.String("log-level", "debug", "log level: trace, debug, info, warn, error")
	fs.Bool("mute", false, "disable sound cues")
}

// Load reads configuration from papercraft.toml in configDir (optional) and
// applies defaults and flag overrides. A missing file is not an error.
func Load(configDir string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	v.SetConfigName(FileName)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	// Mute is a one-way override
	if fs != nil {
		if mute, err := fs.GetBool("mute"); err == nil && mute {
			cfg.Audio.Enabled = false
		}
	}

	if len(cfg.Roster) == 0 {
		cfg.Roster = DefaultRoster()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"log.debug": "debug",
		"log.level": "log-level",
	}
	for key, flag := range bindings {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}
	return nil
}

// Validate checks screen geometry and roster references
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("invalid frame rate %d", c.FrameRate)
	}

	seen := make(map[core.Point]int, len(c.Roster))
	for i, entry := range c.Roster {
		if _, _, _, err := entry.Unit(); err != nil {
			return fmt.Errorf("roster[%d]: %w", i, err)
		}
		p := core.Point{X: entry.X, Y: entry.Y}
		if j, dup := seen[p]; dup {
			return fmt.Errorf("roster[%d]: position (%d,%d) already used by roster[%d]", i, p.X, p.Y, j)
		}
		seen[p] = i
	}
	return nil
}

// Unit resolves a roster entry to its position, cell and unit
func (e RosterEntry) Unit() (components.PositionComponent, components.CellComponent, components.UnitComponent, error) {
	arch, err := components.LookupArchetype(e.Archetype)
	if err != nil {
		return components.PositionComponent{}, components.CellComponent{}, components.UnitComponent{}, err
	}

	glyph := arch.Glyph
	if r := []rune(e.Glyph); len(r) > 0 {
		glyph = r[0]
	}

	color := arch.Color
	if e.Color != "" {
		if color, err = core.ParseHex(e.Color); err != nil {
			return components.PositionComponent{}, components.CellComponent{}, components.UnitComponent{},
				fmt.Errorf("invalid color %q: %w", e.Color, err)
		}
	}

	unitCfg := arch.Unit
	if e.Faction != "" {
		if unitCfg.Faction, err = core.ParseFaction(e.Faction); err != nil {
			return components.PositionComponent{}, components.CellComponent{}, components.UnitComponent{}, err
		}
	}

	pos := components.PositionComponent{X: e.X, Y: e.Y}
	cell := components.CellComponent{Glyph: glyph, Color: color}
	return pos, cell, components.NewUnit(unitCfg), nil
}
