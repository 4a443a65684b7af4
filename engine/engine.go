package engine

import "dama/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner, a draw by repetition, or the turn limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
