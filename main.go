package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"dama/config"
	"dama/engine"
	"dama/experiments"
	"dama/gamemaster"
	"dama/searcher"
	"dama/searcher/agent"
	"dama/server"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	mode := flag.String("mode", "serve", "serve, selfplay, experiment or throughput")
	addr := flag.String("addr", "", "listen address, overrides the config")
	logLevel := flag.String("log", "", "log level, overrides the config")
	blue := flag.String("blue", string(config.Medium), "difficulty of blue in selfplay")
	yellow := flag.String("yellow", string(config.Easy), "difficulty of yellow in selfplay")
	positions := flag.Int("positions", 20, "sampled positions in the throughput experiment")
	maxDepth := flag.Int("max-depth", 5, "deepest search in the throughput experiment")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	switch *mode {
	case "serve":
		serve(cfg)
	case "selfplay":
		selfPlay(cfg, config.Difficulty(*blue), config.Difficulty(*yellow))
	case "experiment":
		if _, err := experiments.New(cfg).RunDifficultyExperiment(); err != nil {
			log.Fatal().Err(err).Msg("difficulty experiment failed")
		}
	case "throughput":
		if _, err := experiments.New(cfg).RunThroughputExperiment(*positions, *maxDepth); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func serve(cfg config.Config) {
	s := server.New(cfg, gamemaster.NewRegistry())

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Info().Msg("shutting down")
		if err := s.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	if err := s.Listen(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// selfPlay runs a single computer-vs-computer game between two difficulties.
func selfPlay(cfg config.Config, blue, yellow config.Difficulty) {
	createAgent := func(d config.Difficulty) agent.Agent {
		depth, err := cfg.Depth(d)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid difficulty")
		}
		return agent.NewEvaluationAgent(searcher.NewMinimax(searcher.WithDepth(depth), searcher.WithMetrics()))
	}

	log.Info().Msgf("%s (blue) vs %s (yellow)", blue, yellow)
	e := engine.LocalEngine(createAgent(blue), createAgent(yellow),
		engine.WithMaxTurns(cfg.Game.MaxTurns),
		engine.WithRepetitionLimit(cfg.Game.RepetitionLimit),
	)

	winner, gameMetric, moveMetrics := e.Run()
	if winner == "" {
		winner = "none"
	}

	nodes := 0
	for _, m := range moveMetrics {
		nodes += m.Nodes + m.QuiescenceNodes
	}
	log.Info().
		Str("winner", winner).
		Int("moves", gameMetric.TotalMoves).
		Int("nodes", nodes).
		Dur("duration", gameMetric.Duration).
		Msg("game over")
}
