package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"isolation/config"
	"isolation/engine"
	"isolation/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML game configuration (defaults when empty)")
	out := flag.String("out", "", "Directory to write the game record to")
	logLevel := flag.String("log-level", "info", "debug, info or disabled")
	flag.Parse()

	switch *logLevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("loading config")
		}
	}

	var writer *experiments.Writer
	if *out != "" {
		var err error
		writer, err = experiments.NewWriter(*out)
		if err != nil {
			log.Fatal().Err(err).Msg("creating game record writer")
		}
	}

	outcome, err := play(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("setting up game")
	}
	fmt.Printf("Game over! Winner: %s (%s)\n%s", outcome.Winner, outcome.Reason, outcome.Board)

	if writer != nil {
		if err := writer.WriteGame(1, outcome, cfg.MoveTime()); err != nil {
			log.Fatal().Err(err).Msg("writing game record")
		}
		log.Info().Str("dir", writer.Dir()).Msg("game-record-written")
	}
}

// play sets up the board and agents from cfg and runs one game.
func play(cfg *config.Config) (engine.Outcome, error) {
	board, err := cfg.Board()
	if err != nil {
		return engine.Outcome{}, err
	}
	agents, err := cfg.Agents()
	if err != nil {
		return engine.Outcome{}, err
	}
	return engine.LocalEngine(agents, board, cfg.MoveTime()).Run(), nil
}
