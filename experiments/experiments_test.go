package experiments

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pallanguzhi/agent"
	"pallanguzhi/config"
	"pallanguzhi/experiments/metrics"
	"pallanguzhi/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newMatch(a, b agent.Agent, maxTurns int) *Match {
	m := NewMatch(a, b, maxTurns)
	m.Logger = zerolog.Nop()
	return m
}

func heuristicMirror(games int) config.Config {
	cfg := config.Default()
	cfg.Name = "heuristic_mirror"
	cfg.Games = games
	cfg.Agents = []config.AgentConfig{
		{ID: 1, Kind: agent.KindHeuristic},
		{ID: 2, Kind: agent.KindHeuristic},
	}
	return cfg
}

func countRows(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows)
}

func TestMatchPlay(t *testing.T) {
	t.Run("heuristic mirror is deterministic", func(t *testing.T) {
		m := newMatch(agent.NewHeuristic(), agent.NewHeuristic(), config.DefaultMaxTurns)
		m.Collector = metrics.NewCollector()

		res, err := m.Play(context.Background(), game.DefaultSeedsPerPit, game.PlayerA, game.Classic)

		require.NoError(t, err)
		require.False(t, res.Aborted)
		require.True(t, res.Final.Over)
		require.Equal(t, game.Score{26, 44}, res.Final.Captured)
		require.Equal(t, game.OutcomeB, res.Game.Winner)
		require.Equal(t, 31, res.Game.TotalMoves)
		require.Len(t, res.Moves, 31)
		require.Equal(t, game.PlayerA, res.Moves[0].Player, "A moves first")
		require.Equal(t, 1, res.Moves[0].Pit, "Opening heuristic choice for A")
		require.True(t, res.Final.Conserved())
	})

	t.Run("turn limit aborts the game", func(t *testing.T) {
		m := newMatch(agent.NewHeuristic(), agent.NewRandom(3), 4)
		m.Collector = metrics.NewCollector()

		res, err := m.Play(context.Background(), game.DefaultSeedsPerPit, game.PlayerB, game.Classic)

		require.NoError(t, err)
		require.True(t, res.Aborted)
		require.False(t, res.Final.Over)
		require.Len(t, res.Moves, 4)
		require.Equal(t, game.PlayerB, res.Game.StartingPlayer)
	})

	t.Run("logs one new game per match", func(t *testing.T) {
		var buf bytes.Buffer
		m := NewMatch(agent.NewHeuristic(), agent.NewHeuristic(), config.DefaultMaxTurns)
		m.Logger = zerolog.New(&buf)
		m.Collector = metrics.NewCollector()

		res, err := m.Play(context.Background(), 2, game.PlayerA, game.Classic)

		require.NoError(t, err)
		require.Equal(t, 1, strings.Count(buf.String(), `"message":"new game"`))
		require.Contains(t, buf.String(), res.Game.ID.String())
	})

	t.Run("cancelled context stops the game", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		m := newMatch(agent.NewHeuristic(), agent.NewHeuristic(), config.DefaultMaxTurns)

		_, err := m.Play(ctx, game.DefaultSeedsPerPit, game.PlayerA, game.Classic)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid seeds are rejected", func(t *testing.T) {
		m := newMatch(agent.NewHeuristic(), agent.NewHeuristic(), config.DefaultMaxTurns)

		_, err := m.Play(context.Background(), 0, game.PlayerA, game.Classic)

		require.ErrorIs(t, err, game.ErrInvalidSeeds)
	})
}

func TestHeuristicMirrorAcrossSeeds(t *testing.T) {
	// Captured totals with A moving first; with B first the totals swap sides.
	tests := []struct {
		seeds int
		a, b  int
		moves int
	}{
		{1, 9, 5, 9},
		{2, 17, 11, 19},
		{3, 29, 13, 14},
		{4, 37, 19, 22},
		{5, 26, 44, 31},
		{6, 28, 56, 29},
		{7, 56, 42, 28},
		{8, 44, 68, 30},
	}

	for _, tt := range tests {
		for _, first := range []game.Player{game.PlayerA, game.PlayerB} {
			t.Run(fmt.Sprintf("%d seeds %s first", tt.seeds, first), func(t *testing.T) {
				m := newMatch(agent.NewHeuristic(), agent.NewHeuristic(), config.DefaultMaxTurns)
				m.Collector = metrics.NewCollector()

				res, err := m.Play(context.Background(), tt.seeds, first, game.Classic)

				require.NoError(t, err)
				require.False(t, res.Aborted)
				require.True(t, res.Final.Over)
				require.True(t, res.Final.Conserved())
				require.Equal(t, tt.moves, res.Game.TotalMoves)
				want := game.Score{tt.a, tt.b}
				if first == game.PlayerB {
					want = game.Score{tt.b, tt.a}
				}
				require.Equal(t, want, res.Final.Captured)
			})
		}
	}
}

func TestRun(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("summarizes outcomes", func(t *testing.T) {
		summary, err := Run(heuristicMirror(3), nil)

		require.NoError(t, err)
		require.Equal(t, Summary{Games: 3, WinsB: 3}, summary)
	})

	t.Run("counts aborted games", func(t *testing.T) {
		cfg := heuristicMirror(2)
		cfg.MaxTurns = 5

		summary, err := Run(cfg, nil)

		require.NoError(t, err)
		require.Equal(t, Summary{Games: 2, Aborted: 2}, summary)
	})

	t.Run("every game is accounted for", func(t *testing.T) {
		cfg := config.Default()
		cfg.Games = 10
		cfg.AlternateFirst = true
		cfg.Ruleset = game.Southern.String()

		summary, err := Run(cfg, nil)

		require.NoError(t, err)
		require.Equal(t, 10, summary.Games)
		require.Equal(t, summary.Games, summary.WinsA+summary.WinsB+summary.Draws+summary.Aborted)
	})

	t.Run("writes records", func(t *testing.T) {
		writer, err := metrics.NewWriter(t.TempDir(), "records")
		require.NoError(t, err)

		_, err = Run(heuristicMirror(2), writer)

		require.NoError(t, err)
		require.Equal(t, 3, countRows(t, filepath.Join(writer.Dir(), "agent_configs.csv")))
		require.Equal(t, 3, countRows(t, filepath.Join(writer.Dir(), "game_records.csv")))
		require.Equal(t, 2*31+1, countRows(t, filepath.Join(writer.Dir(), "move_records.csv")))
	})

	t.Run("rejects an invalid config", func(t *testing.T) {
		cfg := heuristicMirror(0)

		_, err := Run(cfg, nil)

		require.Error(t, err)
	})

	t.Run("stops at the timeout", func(t *testing.T) {
		cfg := heuristicMirror(1_000_000)
		cfg.Timeout = time.Millisecond

		_, err := Run(cfg, nil)

		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
