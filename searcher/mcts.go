package searcher

import (
	"math"
	"time"

	"gomoku/game"
	"gomoku/meta"
	"gomoku/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Option func(m *MCTS)

// MCTS grows a Tree by repeated selection, expansion, parallel rollouts and
// backpropagation. It is driven from a single goroutine; only the rollouts
// fan out to the Pool.
type MCTS struct {
	tree        *Tree
	pool        *Pool
	ownsPool    bool
	workers     int
	rollouts    int
	exploration float64
	maxDepth    int
	margin      int
	seed        uint64
	seeded      bool
	playout     Playout
	rng         *rand.Rand
	metrics     metrics.Collector
	last        metrics.SearchMetric
}

func WithRollouts(rollouts int) Option {
	return func(m *MCTS) {
		if rollouts > 0 {
			m.rollouts = rollouts
		}
	}
}

// WithWorkers sets the size of the pool the search creates for itself.
// Ignored when WithPool is given.
func WithWorkers(workers int) Option {
	return func(m *MCTS) {
		if workers > 0 {
			m.workers = workers
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

// WithMargin sets how far beyond the stones' bounding box moves are
// considered. A margin below 1 is ignored: the box would hold only stones.
func WithMargin(margin int) Option {
	return func(m *MCTS) {
		if margin > 0 {
			m.margin = margin
		}
	}
}

// WithSeed fixes the seed of the expansion and rollout random sources.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
		m.seeded = true
	}
}

// WithPool shares an existing pool. The caller keeps ownership and closes it.
func WithPool(pool *Pool) Option {
	return func(m *MCTS) {
		if pool != nil {
			m.pool = pool
		}
	}
}

func WithPlayout(playout Playout) Option {
	return func(m *MCTS) {
		if playout != nil {
			m.playout = playout
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(tree *Tree, options ...Option) *MCTS {
	if tree == nil {
		panic("Must specify a search tree")
	}
	m := &MCTS{ // Default values
		tree:        tree,
		workers:     meta.WORKERS,
		rollouts:    meta.ROLLOUTS,
		exploration: meta.EXPLORATION,
		maxDepth:    meta.MAX_DEPTH,
		margin:      meta.MARGIN,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if !m.seeded {
		m.seed = frand.Uint64n(math.MaxUint64)
	}
	m.rng = rand.New(rand.NewSource(m.seed))
	if m.pool == nil {
		m.pool = NewPool(m.workers, m.seed+1)
		m.ownsPool = true
	}
	if m.playout == nil {
		m.playout = RandomPlayout(m.margin, m.maxDepth)
	}
	return m
}

func (m *MCTS) Tree() *Tree {
	return m.tree
}

// Metrics returns the metrics of the last Run. They are zero unless the
// search was built WithMetrics.
func (m *MCTS) Metrics() metrics.SearchMetric {
	return m.last
}

// Close stops the pool if the search created it.
func (m *MCTS) Close() error {
	if m.ownsPool {
		return m.pool.Close()
	}
	return nil
}

// Run performs iterations of MCTS below root and returns the time spent.
func (m *MCTS) Run(root NodeID, iterations int) time.Duration {
	start := time.Now()
	m.metrics.Start(m.pool.Size(), m.rollouts, m.maxDepth)
	m.metrics.SetTreeReused(m.tree.Visits(root) > 0)

	for i := 0; i < iterations; i++ {
		m.iterate(root)
		m.metrics.AddIteration()
	}

	m.last = m.metrics.Complete()
	elapsed := time.Since(start)
	log.Debug().
		Int("iterations", iterations).
		Int("visits", m.tree.Visits(root)).
		Int("nodes", m.tree.Len()).
		Dur("elapsed", elapsed).
		Msg("search complete")
	return elapsed
}

func (m *MCTS) iterate(root NodeID) {
	node := m.selection(root)
	if !m.tree.Terminal(node) && (m.tree.Visits(node) == 0 || len(m.tree.Children(node)) == 0) {
		node = m.Expand(node)
	}

	// A decided position needs no rollouts: its mover has won
	if m.tree.Terminal(node) {
		m.metrics.AddTerminalHit()
		m.backup(root, node, m.tree.Mover(node), Win)
		return
	}

	outcome, full := m.pool.Dispatch(m.tree.Board(node), m.tree.ToMove(node), m.rollouts, m.playout)
	m.metrics.AddPlayouts(m.rollouts, full)
	m.backup(root, node, m.tree.Mover(node), outcome)
}

// selection descends from root while the current node has children.
func (m *MCTS) selection(root NodeID) NodeID {
	node := root
	for {
		children := m.tree.Children(node)
		if len(children) == 0 {
			return node
		}
		node = m.selectChild(node, children)
	}
}

// selectChild returns the first unvisited child, or else the child with the
// highest UCB1 value, keeping the earliest on ties.
func (m *MCTS) selectChild(parent NodeID, children []NodeID) NodeID {
	for _, c := range children {
		if m.tree.Visits(c) == 0 {
			return c
		}
	}

	policy := newUCB1(m.exploration, m.tree.Visits(parent))
	best, bestValue := children[0], math.Inf(-1)
	for _, c := range children {
		if value := policy.evaluate(m.tree.Score(c), m.tree.Visits(c)); value > bestValue {
			best, bestValue = c, value
		}
	}
	return best
}

// Expand adds one child per candidate move of a childless, non-terminal node
// and returns a random child to continue the iteration from. A node that
// already has children is not expanded again. When there is nothing to
// expand, id itself is returned.
func (m *MCTS) Expand(id NodeID) NodeID {
	if m.tree.Terminal(id) {
		return id
	}
	if len(m.tree.Children(id)) == 0 {
		for _, move := range candidates(m.tree.Board(id), m.margin) {
			m.tree.AddChild(id, move)
		}
		if len(m.tree.Children(id)) > 0 {
			m.metrics.AddExpansion()
		}
	}

	children := m.tree.Children(id)
	if len(children) == 0 {
		return id
	}
	return children[m.rng.Intn(len(children))]
}

// backup walks from node up to and including root. Nodes whose mover is
// perspective gain outcome; the others lose it.
func (m *MCTS) backup(root, node NodeID, perspective game.Player, outcome float64) {
	for {
		if m.tree.Mover(node) == perspective {
			m.tree.update(node, outcome)
		} else {
			m.tree.update(node, -outcome)
		}
		if node == root {
			return
		}
		node = m.tree.Parent(node)
	}
}
