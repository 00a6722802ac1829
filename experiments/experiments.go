package experiments

import (
	"context"
	"fmt"

	"pallanguzhi/agent"
	"pallanguzhi/config"
	"pallanguzhi/experiments/metrics"
	"pallanguzhi/game"

	"github.com/rs/zerolog/log"
)

type Summary struct {
	Games   int
	WinsA   int
	WinsB   int
	Draws   int
	Aborted int
}

func (s *Summary) add(res Result) {
	s.Games++
	if res.Aborted {
		s.Aborted++
		return
	}
	switch res.Final.Winner() {
	case game.OutcomeA:
		s.WinsA++
	case game.OutcomeB:
		s.WinsB++
	case game.OutcomeDraw:
		s.Draws++
	}
}

// Run plays cfg.Games games with the first agent on side A and the second on
// side B. With a non-nil writer the agent configs, game records and move
// records are stored as CSV once all games are done.
func Run(cfg config.Config, writer *metrics.Writer) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	ruleset, first, err := cfg.Rules()
	if err != nil {
		return Summary{}, err
	}

	agents := [2]agent.Agent{}
	configs := make([]metrics.AgentConfig, 0, len(cfg.Agents))
	for i, ac := range cfg.Agents {
		a, err := agent.New(ac.Kind, ac.Seed)
		if err != nil {
			return Summary{}, fmt.Errorf("agent %d: %w", ac.ID, err)
		}
		agents[i] = a
		configs = append(configs, metrics.AgentConfig{ID: ac.ID, Kind: ac.Kind, Seed: ac.Seed})
	}

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	match := NewMatch(agents[game.PlayerA], agents[game.PlayerB], cfg.MaxTurns)
	if writer != nil {
		match.Collector = metrics.NewCollector()
	}

	summary := Summary{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for i := 0; i < cfg.Games; i++ {
		starting := first
		if cfg.AlternateFirst && i%2 == 1 {
			starting = first.Other()
		}
		log.Info().Msgf("starting game %d of %d with %s to move...", i+1, cfg.Games, starting)

		res, err := match.Play(ctx, cfg.SeedsPerPit, starting, ruleset)
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}
		summary.add(res)

		if writer != nil {
			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     cfg.Agents[game.PlayerA].ID,
				Agent2:     cfg.Agents[game.PlayerB].ID,
				GameMetric: res.Game,
			})
			for _, mm := range res.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       res.Game.ID.String(),
					MoveMetric: mm,
				})
			}
		}

		if res.Aborted {
			log.Info().Msgf("game %d of %d aborted", i+1, cfg.Games)
		} else {
			log.Info().Msgf("completed game %d of %d with winner: %s (%d-%d)", i+1, cfg.Games,
				res.Final.Winner(), res.Final.Captured[game.PlayerA], res.Final.Captured[game.PlayerB])
		}
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	if writer == nil {
		return summary, nil
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return summary, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summary, nil
}
