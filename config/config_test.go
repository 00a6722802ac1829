package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pallanguzhi/game"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	t.Run("is valid", func(t *testing.T) {
		require.NoError(t, Default().Validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults with file values", func(t *testing.T) {
		path := writeConfig(t, `
name: southern_mirror
games: 4
seeds_per_pit: 6
ruleset: southern
first_player: B
alternate_first: true
timeout: 90s
agents:
  - id: 1
    kind: heuristic
  - id: 2
    kind: random
    seed: 99
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "southern_mirror", cfg.Name)
		require.Equal(t, 4, cfg.Games)
		require.Equal(t, 6, cfg.SeedsPerPit)
		require.True(t, cfg.AlternateFirst)
		require.Equal(t, DefaultMaxTurns, cfg.MaxTurns, "Unset keys should keep defaults")
		require.Equal(t, 90*time.Second, cfg.Timeout)
		require.Equal(t, uint64(99), cfg.Agents[1].Seed)

		rs, first, err := cfg.Rules()
		require.NoError(t, err)
		require.Equal(t, game.Southern, rs)
		require.Equal(t, game.PlayerB, first)
	})

	t.Run("reports all validation errors", func(t *testing.T) {
		path := writeConfig(t, `
games: 0
ruleset: northern
agents:
  - kind: minimax
`)

		_, err := Load(path)

		require.Error(t, err)
		require.Contains(t, err.Error(), "games must be positive")
		require.Contains(t, err.Error(), "unknown ruleset")
		require.Contains(t, err.Error(), "exactly 2 agents")
		require.Contains(t, err.Error(), "unknown agent kind")
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "games: [1, 2"))
		require.Error(t, err)
	})
}
