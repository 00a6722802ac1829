package main

import (
	"flag"
	"os"
	"time"

	"pallanguzhi/config"
	"pallanguzhi/experiments"
	"pallanguzhi/experiments/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML experiment config")
	games := flag.Int("games", 0, "Number of games, overrides the config")
	outputDir := flag.String("out", "", "Directory for CSV records, overrides the config")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	var writer *metrics.Writer
	if cfg.OutputDir != "" {
		writer, err = metrics.NewWriter(cfg.OutputDir, cfg.Name)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create experiment writer")
		}
	}

	summary, err := experiments.Run(cfg, writer)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().
		Int("games", summary.Games).
		Int("wins_a", summary.WinsA).
		Int("wins_b", summary.WinsB).
		Int("draws", summary.Draws).
		Int("aborted", summary.Aborted).
		Msg("experiment summary")
}
