package experiments

import (
	"fmt"

	"dama/config"
	"dama/engine"
	"dama/experiments/metrics"
	"dama/game"
	"dama/searcher"
	"dama/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Experiment runs games between computer players and stores the records as CSV files.
type Experiment struct {
	cfg config.Config
	rng *rand.Rand
}

func New(cfg config.Config) *Experiment {
	return &Experiment{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Experiment.Seed)),
	}
}

// RunDifficultyExperiment pairs every configured difficulty against a random baseline and
// against every other difficulty. It returns the folder holding the records.
func (x *Experiment) RunDifficultyExperiment() (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Random: true}
	configs := []metrics.AgentConfig{baseline}
	for i, d := range x.cfg.Experiment.Difficulties {
		depth, err := x.cfg.Depth(d)
		if err != nil {
			return "", err
		}
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Depth: depth})
	}

	matchUps := [][]metrics.AgentConfig{}
	for i := 1; i < len(configs); i++ {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, configs[i]})
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
		}
	}

	return x.runExperiment("difficulty", configs, matchUps)
}

func (x *Experiment) runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	games := x.cfg.Experiment.Games
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < games; i++ {
			// Alternate colours so neither agent always moves first
			blue, yellow := matchup[0], matchup[1]
			if i%2 == 1 {
				blue, yellow = yellow, blue
			}

			winner, gameMetric, moveMetrics := x.runGame(blue, yellow)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Blue:       blue.ID,
				Yellow:     yellow.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %q", mi+1, len(matchUps), i+1, games, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(x.cfg.Experiment.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays a single game from a randomized opening. The search is deterministic, so
// without the opening every game of a matchup would be identical.
func (x *Experiment) runGame(blue, yellow metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(x.createAgent(blue), x.createAgent(yellow),
		engine.WithPosition(randomOpening(x.rng, x.cfg.Experiment.OpeningPlies)),
		engine.WithMaxTurns(x.cfg.Game.MaxTurns),
		engine.WithRepetitionLimit(x.cfg.Game.RepetitionLimit),
	)
	return e.Run()
}

func (x *Experiment) createAgent(config metrics.AgentConfig) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(x.rng.Uint64())
	}
	return agent.NewEvaluationAgent(searcher.NewMinimax(searcher.WithDepth(config.Depth), searcher.WithMetrics()))
}

// randomOpening plays up to plies random legal moves from the initial position, stopping early
// if a side runs out of moves.
func randomOpening(rng *rand.Rand, plies int) game.Position {
	position := game.NewPosition()
	for i := 0; i < plies; i++ {
		moves := position.LegalMoves()
		if len(moves) == 0 {
			break
		}
		position = position.Play(moves[rng.Intn(len(moves))])
	}
	return position
}
