package gamemaster

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"dama/config"
	"dama/game"
	"dama/searcher"
	"dama/utils"

	"github.com/rs/zerolog/log"
)

const (
	HumanSide    = game.Blue
	ComputerSide = game.Yellow
)

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrGameOver        = errors.New("game is over")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrSessionNotFound = errors.New("session not found")
	// ErrPositionChanged is returned when the position moved on while the computer was searching.
	ErrPositionChanged = errors.New("position changed during search")
)

const updateBuffer = 64

type Settings struct {
	Name            string
	Difficulty      config.Difficulty
	Depth           int
	TimeLimit       time.Duration
	RepetitionLimit int
}

// NewSettings resolves a difficulty against the configuration. An empty difficulty means medium.
func NewSettings(cfg config.Config, name string, difficulty config.Difficulty) (Settings, error) {
	if difficulty == "" {
		difficulty = config.Medium
	}
	depth, err := cfg.Depth(difficulty)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Name:            name,
		Difficulty:      difficulty,
		Depth:           depth,
		TimeLimit:       cfg.Game.TimeLimit,
		RepetitionLimit: cfg.Game.RepetitionLimit,
	}, nil
}

type UpdateType string

const (
	// JumpUpdate carries a single jump of a capture chain and the board right after it.
	JumpUpdate UpdateType = "jump"
	// TurnUpdate follows every completed move and every restart.
	TurnUpdate UpdateType = "turn"
	// OutcomeUpdate announces a game decided without a move, by timeout or a computer without moves.
	OutcomeUpdate UpdateType = "outcome"
)

type Update struct {
	Type    UpdateType   `json:"type"`
	Side    game.Side    `json:"side"`
	Move    game.Move    `json:"move"`
	Board   game.Board   `json:"board"`
	ToMove  game.Side    `json:"toMove"`
	Outcome game.Outcome `json:"winner"`
}

type Snapshot struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Difficulty config.Difficulty `json:"difficulty"`
	Depth      int               `json:"depth"`
	Human      game.Side         `json:"human"`
	Board      game.Board        `json:"board"`
	ToMove     game.Side         `json:"toMove"`
	LegalMoves []game.Move       `json:"legalMoves"`
	Outcome    game.Outcome      `json:"winner"`
	TimeLeft   float64           `json:"timeLeft"` // seconds
	LastMove   *game.Move        `json:"lastMove,omitempty"`
	Moves      int               `json:"moves"`
}

// Session is a game between a human playing blue and the computer playing yellow. It owns the
// turn order, the human clock and the position history; the rules and the search stay stateless.
type Session struct {
	mu          sync.Mutex
	id          string
	settings    Settings
	position    game.Position
	history     *game.History
	outcome     game.Outcome
	lastMove    *game.Move
	moves       int
	generation  int // bumped on every change of position
	clock       *Clock
	subscribers map[int]chan Update
	nextID      int
}

func NewSession(id string, settings Settings) *Session {
	s := &Session{
		id:          id,
		settings:    settings,
		clock:       NewClock(settings.TimeLimit),
		subscribers: make(map[int]chan Update),
	}
	s.reset()
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Play applies a move of the human player.
func (s *Session) Play(move game.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome != game.NoOutcome {
		return ErrGameOver
	}
	if s.position.ToMove != HumanSide {
		return ErrNotYourTurn
	}
	if s.checkClock() {
		return ErrGameOver
	}

	legal := s.position.LegalMoves()
	i := utils.FindIndex(legal, move.Equal)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrIllegalMove, move)
	}

	s.clock.Stop()
	s.apply(legal[i])
	return nil
}

// PlayComputer searches and applies the computer's reply. The search runs without holding the
// session lock so snapshots stay available while the computer thinks.
func (s *Session) PlayComputer() (game.Move, error) {
	s.mu.Lock()
	if s.outcome != game.NoOutcome {
		s.mu.Unlock()
		return game.Move{}, ErrGameOver
	}
	if s.position.ToMove != ComputerSide {
		s.mu.Unlock()
		return game.Move{}, ErrNotYourTurn
	}
	position, generation := s.position, s.generation
	s.mu.Unlock()

	minimax := searcher.NewMinimax(searcher.WithDepth(s.settings.Depth), searcher.WithMetrics())
	move, ok, metric := minimax.FindMove(position.Board, position.ToMove)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		return game.Move{}, ErrPositionChanged
	}
	if !ok {
		log.Info().Str("session", s.id).Msg("computer has no move")
		s.finish(game.WinFor(HumanSide))
		return game.Move{}, ErrGameOver
	}

	log.Debug().
		Str("session", s.id).
		Int("depth", metric.Depth).
		Int("nodes", metric.Nodes).
		Int("quiescence_nodes", metric.QuiescenceNodes).
		Int("score", metric.Score).
		Dur("duration", metric.Duration).
		Msgf("computer plays %s", move)

	s.apply(move)
	return move, nil
}

// CheckClock ends the game in the computer's favour once the human's time has run out, and
// returns the current outcome.
func (s *Session) CheckClock() game.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkClock()
	return s.outcome
}

// Restart starts a new game with the same settings.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	log.Info().Str("session", s.id).Msg("session restarted")
	s.publish(s.turnUpdate(HumanSide, game.Move{}))
}

func (s *Session) Outcome() game.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.outcome
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	legal := []game.Move{}
	if s.outcome == game.NoOutcome {
		legal = s.position.LegalMoves()
	}

	var lastMove *game.Move
	if s.lastMove != nil {
		m := *s.lastMove
		lastMove = &m
	}

	return Snapshot{
		ID:         s.id,
		Name:       s.settings.Name,
		Difficulty: s.settings.Difficulty,
		Depth:      s.settings.Depth,
		Human:      HumanSide,
		Board:      s.position.Board,
		ToMove:     s.position.ToMove,
		LegalMoves: legal,
		Outcome:    s.outcome,
		TimeLeft:   s.clock.TimeLeft().Seconds(),
		LastMove:   lastMove,
		Moves:      s.moves,
	}
}

// Subscribe returns a stream of updates and a function that ends it. Updates are dropped for a
// subscriber that falls more than a buffer behind.
func (s *Session) Subscribe() (<-chan Update, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan Update, updateBuffer)
	s.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers, id)
			close(ch)
		})
	}
}

func (s *Session) reset() {
	s.position = game.NewPosition()
	s.history = game.NewHistory()
	s.outcome = game.NoOutcome
	s.lastMove = nil
	s.moves = 0
	s.generation++
	s.clock.Reset()
	s.clock.Start()
}

// apply plays a legal move of the side to move, publishing each jump, and decides the game.
func (s *Session) apply(move game.Move) {
	side := s.position.ToMove

	if move.IsCapture() {
		board := s.position.Board
		for _, jump := range move.Jumps() {
			board = game.ApplyMove(board, jump)
			s.publish(Update{
				Type:   JumpUpdate,
				Side:   side,
				Move:   jump,
				Board:  board,
				ToMove: side,
			})
		}
	}

	s.position = s.position.Play(move)
	s.generation++
	s.moves++
	s.lastMove = &move

	occurrences := s.history.Record(s.position)
	s.outcome = game.Adjudicate(s.position, occurrences, s.settings.RepetitionLimit)

	if s.outcome == game.NoOutcome && s.position.ToMove == HumanSide {
		s.clock.Reset()
		s.clock.Start()
	}

	log.Info().
		Str("session", s.id).
		Str("side", side.String()).
		Int("occurrences", occurrences).
		Msgf("move %d: %s", s.moves, move)
	if s.outcome != game.NoOutcome {
		log.Info().Str("session", s.id).Str("winner", string(s.outcome)).Msg("game over")
	}

	s.publish(s.turnUpdate(side, move))
}

// checkClock reports whether the human has just lost on time.
func (s *Session) checkClock() bool {
	if s.outcome != game.NoOutcome || s.position.ToMove != HumanSide || !s.clock.Expired() {
		return false
	}
	log.Info().Str("session", s.id).Msg("human ran out of time")
	s.finish(game.WinFor(ComputerSide))
	return true
}

func (s *Session) finish(outcome game.Outcome) {
	s.outcome = outcome
	s.generation++
	s.clock.Stop()
	s.publish(Update{
		Type:    OutcomeUpdate,
		Board:   s.position.Board,
		ToMove:  s.position.ToMove,
		Outcome: outcome,
	})
}

func (s *Session) turnUpdate(side game.Side, move game.Move) Update {
	return Update{
		Type:    TurnUpdate,
		Side:    side,
		Move:    move,
		Board:   s.position.Board,
		ToMove:  s.position.ToMove,
		Outcome: s.outcome,
	}
}

func (s *Session) publish(u Update) {
	for id, ch := range s.subscribers {
		select {
		case ch <- u:
		default:
			log.Warn().Str("session", s.id).Int("subscriber", id).Msg("dropping update for slow subscriber")
		}
	}
}
