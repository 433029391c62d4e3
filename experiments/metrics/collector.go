package metrics

import (
	"time"
)

type SearchMetric struct {
	Algorithm string
	Heuristic string
	Iterative bool
	Duration  time.Duration
	Depth     int // Deepest fully completed depth
	Nodes     int
	Prunes    int
	TimedOut  bool
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID
	Forfeit        string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers statistics for a single turn's search. Searches are
// single-threaded, so implementations need no synchronization.
type Collector interface {
	Start(algorithm, heuristic string, iterative bool)
	AddNode()
	AddPrune()
	Complete(depth int, timedOut bool) SearchMetric
}

type collector struct {
	algorithm string
	heuristic string
	iterative bool
	startTime time.Time
	nodes     int
	prunes    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm, heuristic string, iterative bool) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.heuristic = heuristic
	m.iterative = iterative
	m.nodes = 0
	m.prunes = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddPrune() {
	m.prunes++
}

func (m *collector) Complete(depth int, timedOut bool) SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Heuristic: m.heuristic,
		Iterative: m.iterative,
		Duration:  time.Since(m.startTime),
		Depth:     depth,
		Nodes:     m.nodes,
		Prunes:    m.prunes,
		TimedOut:  timedOut,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm, heuristic string, iterative bool) {}
func (m *dummyCollector) AddNode()                                         {}
func (m *dummyCollector) AddPrune()                                        {}
func (m *dummyCollector) Complete(depth int, timedOut bool) SearchMetric {
	return SearchMetric{Depth: depth, TimedOut: timedOut}
}
