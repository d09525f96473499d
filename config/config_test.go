package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/papercraft/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".toml"), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, 160, cfg.Screen.Width)
	assert.Equal(t, 80, cfg.Screen.Height)
	assert.Equal(t, core.Area{X: 150, Y: 0, Width: 10, Height: 2}, cfg.EndTurn.Area())
	assert.False(t, cfg.Rules.AttackRequiresTurn)
	assert.InDelta(t, 0.2, cfg.Rules.HoverBrighten, 1e-9)
	assert.True(t, cfg.Audio.Enabled)
	assert.False(t, cfg.Log.Debug)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, DefaultRoster(), cfg.Roster)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := writeConfig(t, `
frameRate = 60

[screen]
width = 100
height = 40

[endTurn]
x = 90
y = 1

[rules]
attackRequiresTurn = true

[[roster]]
archetype = "spider"
x = 1
y = 2

[[roster]]
archetype = "soldier"
x = 5
y = 5
glyph = "S"
color = "#0050af"
faction = "bionic"
`)

	cfg, err := Load(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Screen.Width)
	assert.Equal(t, 40, cfg.Screen.Height)
	assert.Equal(t, 90, cfg.EndTurn.X)
	assert.Equal(t, 1, cfg.EndTurn.Y)
	assert.Equal(t, 10, cfg.EndTurn.Width, "unset keys keep defaults")
	assert.True(t, cfg.Rules.AttackRequiresTurn)
	assert.Equal(t, 60, cfg.FrameRate)

	require.Len(t, cfg.Roster, 2)
	assert.Equal(t, RosterEntry{Archetype: "spider", X: 1, Y: 2}, cfg.Roster[0])

	_, cell, unit, err := cfg.Roster[1].Unit()
	require.NoError(t, err)
	assert.Equal(t, 'S', cell.Glyph)
	assert.Equal(t, core.RGB{R: 0, G: 80, B: 175}, cell.Color)
	assert.Equal(t, core.FactionBionic, unit.Faction)
	assert.Equal(t, 1, unit.MoveDistance, "stats still come from the archetype")

	_, cell, unit, err = cfg.Roster[0].Unit()
	require.NoError(t, err)
	assert.Equal(t, '*', cell.Glyph)
	assert.Equal(t, core.RGB{R: 170, G: 20, B: 0}, cell.Color)
	assert.Equal(t, core.FactionBug, unit.Faction)
}

func TestLoad_InvalidRosterOverrides(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		want  string
	}{
		{name: "color", entry: `color = "teal"`, want: "invalid color"},
		{name: "faction", entry: `faction = "zerg"`, want: "unknown faction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, `
[[roster]]
archetype = "spider"
x = 1
y = 1
`+tt.entry+"\n")

			_, err := Load(dir, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "roster[0]")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_FlagOverrides(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--debug", "--log-level", "warn", "--mute"}))

	cfg, err := Load(t.TempDir(), fs)
	require.NoError(t, err)

	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := writeConfig(t, "screen = [[[")

	_, err := Load(dir, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_UnknownArchetype(t *testing.T) {
	dir := writeConfig(t, `
[[roster]]
archetype = "dragon"
x = 1
y = 1
`)

	_, err := Load(dir, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roster[0]")
}

func TestValidate_DuplicatePosition(t *testing.T) {
	cfg := &Config{
		Screen:    ScreenConfig{Width: 10, Height: 10},
		FrameRate: 30,
		Roster: []RosterEntry{
			{Archetype: "spider", X: 1, Y: 1},
			{Archetype: "queen", X: 1, Y: 1},
		},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already used")
}
