package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Laser.Max)
	assert.Equal(t, 32, cfg.Effect.DebrisPerBurst())
}

func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
laser:
  max: 4
  strictCap: true
card:
  spawnInterval: 1.5
  trophyOrigin: [-10, -12, -30]
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				assert.Equal(t, 4, cfg.Laser.Max)
				assert.True(t, cfg.Laser.StrictCap)
				assert.Equal(t, 48.0, cfg.Laser.Speed, "unset keys keep their default")
				assert.Equal(t, 1.5, cfg.Card.SpawnInterval)
				assert.Equal(t, mgl64.Vec3{-10, -12, -30}, cfg.Card.TrophyOrigin)
			},
		},
		{
			name:        "empty grid axis",
			yamlContent: "effect:\n  gridMin: [0, 0, 0]\n  gridMax: [2, 0, 2]\n",
			wantErr:     true,
			errContains: "effect grid axis 1",
		},
		{
			name:        "zero laser cap",
			yamlContent: "laser:\n  max: 0\n",
			wantErr:     true,
			errContains: "laser.max",
		},
		{
			name:        "floor above drop point",
			yamlContent: "card:\n  floorY: 50\n",
			wantErr:     true,
			errContains: "card.floorY",
		},
		{
			name:        "malformed yaml",
			yamlContent: "laser: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yamlContent), 0o644))

			cfg, err := LoadGameConfig(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read game config")
}

func TestLaserAdmits(t *testing.T) {
	tests := []struct {
		name   string
		strict bool
		count  int
		want   bool
	}{
		{"inclusive below cap", false, 9, true},
		{"inclusive at cap admits one more", false, 10, true},
		{"inclusive above cap", false, 11, false},
		{"strict below cap", true, 9, true},
		{"strict at cap", true, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := LaserConfig{Max: 10, StrictCap: tt.strict}
			assert.Equal(t, tt.want, c.Admits(tt.count))
		})
	}
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadGameConfig(filepath.Join("..", "..", DefaultConfigPath))
	require.NoError(t, err)
	assert.Equal(t, DefaultGameConfig(), cfg)
}
