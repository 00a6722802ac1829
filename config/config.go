package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"pallanguzhi/agent"
	"pallanguzhi/game"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGames    = 30 // Per experiment
	DefaultMaxTurns = 300
)

// AgentConfig describes one side of a self-play experiment.
type AgentConfig struct {
	ID   int    `yaml:"id"`
	Kind string `yaml:"kind"`
	Seed uint64 `yaml:"seed"`
}

type Config struct {
	Name           string        `yaml:"name"`
	Games          int           `yaml:"games"`
	SeedsPerPit    int           `yaml:"seeds_per_pit"`
	Ruleset        string        `yaml:"ruleset"`
	FirstPlayer    string        `yaml:"first_player"`
	AlternateFirst bool          `yaml:"alternate_first"`
	MaxTurns       int           `yaml:"max_turns"`
	Agents         []AgentConfig `yaml:"agents"`
	OutputDir      string        `yaml:"output_dir"` // Empty disables CSV records
	LogLevel       string        `yaml:"log_level"`
	Timeout        time.Duration `yaml:"timeout"` // Wall clock limit for the whole experiment, 0 for none
}

func Default() Config {
	return Config{
		Name:        "heuristic_vs_random",
		Games:       DefaultGames,
		SeedsPerPit: game.DefaultSeedsPerPit,
		Ruleset:     game.Classic.String(),
		FirstPlayer: game.PlayerA.String(),
		MaxTurns:    DefaultMaxTurns,
		Agents: []AgentConfig{
			{ID: 1, Kind: agent.KindHeuristic},
			{ID: 2, Kind: agent.KindRandom, Seed: 1},
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
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

// Validate reports every problem found in the configuration.
func (c Config) Validate() error {
	var errs []error
	if c.Games <= 0 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.SeedsPerPit <= 0 {
		errs = append(errs, fmt.Errorf("seeds_per_pit must be positive, got %d", c.SeedsPerPit))
	}
	if c.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if _, err := game.ParseRuleset(c.Ruleset); err != nil {
		errs = append(errs, err)
	}
	if _, err := game.ParsePlayer(c.FirstPlayer); err != nil {
		errs = append(errs, err)
	}
	if len(c.Agents) != 2 {
		errs = append(errs, fmt.Errorf("exactly 2 agents required, got %d", len(c.Agents)))
	}
	for i, a := range c.Agents {
		if _, err := agent.New(a.Kind, a.Seed); err != nil {
			errs = append(errs, fmt.Errorf("agent %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

// Rules returns the parsed ruleset and first player.
func (c Config) Rules() (game.Ruleset, game.Player, error) {
	rs, err := game.ParseRuleset(c.Ruleset)
	if err != nil {
		return rs, game.PlayerA, err
	}
	first, err := game.ParsePlayer(c.FirstPlayer)
	return rs, first, err
}
