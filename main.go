package main

import (
	"context"
	"flag"
	"isolation/experiments"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Tournament YAML file; the built-in tournament is played when empty")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	config := experiments.DefaultConfig()
	if *configPath != "" {
		config, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := experiments.Run(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
	log.Info().Msgf("played %d games (%d forfeits), results in %s", results.Games, results.Forfeits, results.Dir)
}
