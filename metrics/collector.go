package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Workers      int
	Rollouts     int // Rollouts per simulated leaf
	Cutoff       int
	Duration     time.Duration
	Iterations   int
	Expansions   int
	TerminalHits int
	Playouts     int
	FullPlayouts int // Playouts decided before the cutoff
	TreeReused   bool
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(workers, rollouts, cutoff int)
	SetTreeReused(value bool)
	AddIteration()
	AddExpansion()
	AddTerminalHit()
	AddPlayouts(total, full int)
	Complete() SearchMetric
}

type collector struct {
	workers      int
	rollouts     int
	cutoff       int
	startTime    time.Time
	iterations   atomic.Int32
	expansions   atomic.Int32
	terminalHits atomic.Int32
	playouts     atomic.Int64
	fullPlayouts atomic.Int64
	treeReused   atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters and begins timing a search.
func (m *collector) Start(workers, rollouts, cutoff int) {
	m.startTime = time.Now()
	m.workers = workers
	m.rollouts = rollouts
	m.cutoff = cutoff
	m.iterations.Store(0)
	m.expansions.Store(0)
	m.terminalHits.Store(0)
	m.playouts.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) SetTreeReused(value bool) {
	m.treeReused.Store(value)
}

func (m *collector) AddIteration() {
	m.iterations.Add(1)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddTerminalHit() {
	m.terminalHits.Add(1)
}

func (m *collector) AddPlayouts(total, full int) {
	m.playouts.Add(int64(total))
	m.fullPlayouts.Add(int64(full))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Workers:      m.workers,
		Rollouts:     m.rollouts,
		Cutoff:       m.cutoff,
		Duration:     time.Since(m.startTime),
		Iterations:   int(m.iterations.Load()),
		Expansions:   int(m.expansions.Load()),
		TerminalHits: int(m.terminalHits.Load()),
		Playouts:     int(m.playouts.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		TreeReused:   m.treeReused.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(workers, rollouts, cutoff int) {}
func (m *dummyCollector) SetTreeReused(value bool)          {}
func (m *dummyCollector) AddIteration()                     {}
func (m *dummyCollector) AddExpansion()                     {}
func (m *dummyCollector) AddTerminalHit()                   {}
func (m *dummyCollector) AddPlayouts(total, full int)       {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
