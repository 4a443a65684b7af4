package engine

import (
	"time"

	"dama/experiments/metrics"
	"dama/game"
	"dama/meta"
	"dama/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

// WithPosition starts the game from the given position instead of the initial one.
func WithPosition(position game.Position) Option {
	return func(e *localEngine) {
		e.position = position
	}
}

func WithMaxTurns(maxTurns int) Option {
	return func(e *localEngine) {
		if maxTurns > 0 {
			e.maxTurns = maxTurns
		}
	}
}

// WithRepetitionLimit sets how often a position may occur before the game is drawn. Zero
// disables repetition draws.
func WithRepetitionLimit(limit int) Option {
	return func(e *localEngine) {
		if limit >= 0 {
			e.repetitionLimit = limit
		}
	}
}

type localEngine struct {
	position        game.Position
	agents          map[game.Side]agent.Agent
	maxTurns        int
	repetitionLimit int
}

// LocalEngine plays blue against yellow in process.
func LocalEngine(blue, yellow agent.Agent, options ...Option) Engine {
	e := &localEngine{ // Default values
		position:        game.NewPosition(),
		agents:          map[game.Side]agent.Agent{game.Blue: blue, game.Yellow: yellow},
		maxTurns:        meta.MAX_TURNS,
		repetitionLimit: meta.REPETITION_LIMIT,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game is decided or the turn limit is reached.
func (e *localEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.position.ToMove,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting", e.position.ToMove)

	// Only positions reached by a move count towards repetition
	history := game.NewHistory()
	outcome := game.Adjudicate(e.position, 0, e.repetitionLimit)

	turn := 1
	for ; outcome == game.NoOutcome && turn <= e.maxTurns; turn++ {
		side := e.position.ToMove

		move, ok, searchMetric := e.agents[side].FindMove(e.position)
		if !ok {
			// The agent found nothing although the position was not decided
			outcome = game.WinFor(side.Opponent())
			break
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       side,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("turn", turn).Str("side", side.String()).Msgf("plays %s", move)

		e.position = e.position.Play(move)
		outcome = game.Adjudicate(e.position, history.Record(e.position), e.repetitionLimit)
	}

	if outcome == game.NoOutcome {
		log.Debug().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	} else {
		log.Debug().Msgf("game ended after %d turns: %s", len(moveMetrics), outcome)
	}
	log.Debug().Msgf("final board:\n%s", e.position.Board)

	gameMetric.Winner = string(outcome)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	return gameMetric.Winner, gameMetric, moveMetrics
}
