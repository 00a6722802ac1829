package experiments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pallanguzhi/agent"
	"pallanguzhi/engine"
	"pallanguzhi/experiments/metrics"
	"pallanguzhi/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// errNoMove ends a match whose active agent found nothing playable.
var errNoMove = errors.New("agent has no playable move")

// Result is the end of one match. Game and Moves are empty with the dummy collector.
type Result struct {
	Final   game.GameState
	Aborted bool
	Game    metrics.GameMetric
	Moves   []metrics.MoveMetric
}

// Match plays one game between two agents, indexed by the side they play.
type Match struct {
	Agents    [2]agent.Agent
	MaxTurns  int
	Collector metrics.Collector
	Logger    zerolog.Logger
}

func NewMatch(a, b agent.Agent, maxTurns int) *Match {
	return &Match{
		Agents:    [2]agent.Agent{a, b},
		MaxTurns:  maxTurns,
		Collector: metrics.NewDummyCollector(),
		Logger:    log.Logger,
	}
}

// Play runs the game to completion, the turn limit, or an agent without a move.
// The latter two mark the game as aborted. Cancelling ctx stops the game between
// moves and returns the context's error.
func (m *Match) Play(ctx context.Context, seedsPerPit int, first game.Player, ruleset game.Ruleset) (Result, error) {
	e, err := engine.Start(seedsPerPit, first, ruleset, engine.WithLogger(m.Logger))
	if err != nil {
		return Result{}, err
	}
	m.Collector.Start(e.GameID(), first)

	aborted := false
	turn := 1
	for !e.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return Result{Final: e.State()}, err
		}
		if turn > m.MaxTurns {
			m.Logger.Warn().Int("max_turns", m.MaxTurns).Msg("turn limit reached")
			aborted = true
			break
		}

		state := e.State()
		start := time.Now()
		pit, ok := m.Agents[state.Active].FindMove(state)
		elapsed := time.Since(start)
		if !ok {
			m.Logger.Warn().Err(errNoMove).Stringer("player", state.Active).Msg("aborting game")
			aborted = true
			break
		}

		outcome := e.PlayMove(pit)
		if outcome.Status == engine.Rejected {
			// Agents only pick playable moves, so this is a bug in the agent.
			return Result{Final: e.State()}, fmt.Errorf("agent for %s chose pit %d: %w", state.Active, pit, outcome.Reason)
		}

		res := outcome.Result
		mm := metrics.MoveMetric{
			Step:     turn,
			Player:   res.Player,
			Pit:      res.Pit,
			Landing:  res.Landing,
			Hash:     e.State().Hash(),
			Duration: elapsed,
		}
		if res.Captured {
			mm.Captured = res.Capture.Seeds
		}
		if res.Swept {
			mm.Swept = res.Sweep.Seeds
		}
		m.Collector.AddMove(mm)
		turn++
	}

	final := e.State()
	gm, moves := m.Collector.Complete(final, aborted)
	return Result{Final: final, Aborted: aborted, Game: gm, Moves: moves}, nil
}
