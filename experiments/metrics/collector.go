package metrics

import (
	"time"

	"dama/game"
)

type SearchMetric struct {
	Depth           int
	Duration        time.Duration
	Nodes           int
	QuiescenceNodes int
	Cutoffs         int
	StandPatCutoffs int
	Score           int
}

type MoveMetric struct {
	Step   int
	Player game.Side
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Side
	Winner         string // "blue", "yellow", "draw" or "" when the turn limit was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// AgentConfig describes a computer player taking part in an experiment.
type AgentConfig struct {
	ID     int
	Depth  int
	Random bool // plays uniformly random legal moves instead of searching
}

// Collector counts the work done by a single search. Searches run on one goroutine, so
// implementations are not safe for concurrent use.
type Collector interface {
	Start(depth int)
	AddNode()
	AddQuiescenceNode()
	AddCutoff()
	AddStandPatCutoff()
	Complete(score int) SearchMetric
}

type collector struct {
	depth           int
	startTime       time.Time
	nodes           int
	quiescenceNodes int
	cutoffs         int
	standPatCutoffs int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	*m = collector{depth: depth, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddQuiescenceNode() {
	m.quiescenceNodes++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) AddStandPatCutoff() {
	m.standPatCutoffs++
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Depth:           m.depth,
		Duration:        time.Since(m.startTime),
		Nodes:           m.nodes,
		QuiescenceNodes: m.quiescenceNodes,
		Cutoffs:         m.cutoffs,
		StandPatCutoffs: m.standPatCutoffs,
		Score:           score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                 {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddQuiescenceNode()              {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) AddStandPatCutoff()              {}
func (m *dummyCollector) Complete(score int) SearchMetric { return SearchMetric{} }
