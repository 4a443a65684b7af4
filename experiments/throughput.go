package experiments

import (
	"fmt"

	"dama/experiments/metrics"
	"dama/game"
	"dama/searcher"

	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment searches the same sample of positions at every depth up to maxDepth
// and records the work each search did. It returns the folder holding the records.
func (x *Experiment) RunThroughputExperiment(positions, maxDepth int) (string, error) {
	samples := make([]game.Position, 0, positions)
	for len(samples) < positions {
		// Openings of varied length cover early and middle game positions
		position := randomOpening(x.rng, x.cfg.Experiment.OpeningPlies+x.rng.Intn(40))
		if len(position.LegalMoves()) > 0 {
			samples = append(samples, position)
		}
	}

	configs := []metrics.AgentConfig{}
	records := []metrics.SearchRecord{}

	log.Info().Msg("starting throughput experiment...")

	for depth := searcher.MinDepth; depth <= maxDepth; depth++ {
		configs = append(configs, metrics.AgentConfig{ID: depth, Depth: depth})
		minimax := searcher.NewMinimax(searcher.WithDepth(depth), searcher.WithMetrics())

		nodes := 0
		for i, position := range samples {
			_, _, metric := minimax.FindMove(position.Board, position.ToMove)
			nodes += metric.Nodes + metric.QuiescenceNodes
			records = append(records, metrics.SearchRecord{Position: i, SearchMetric: metric})
		}

		log.Info().Msgf("completed depth %d: %d nodes over %d positions", depth, nodes, len(samples))
	}

	log.Info().Msg("completed throughput experiment")

	writer, err := metrics.NewWriter(x.cfg.Experiment.OutputDir, "throughput")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteSearchRecords(records); err != nil {
		return "", fmt.Errorf("failed to store search records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}
