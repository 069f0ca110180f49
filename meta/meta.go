// meta/meta.go
package meta

// WORKERS defines the number of rollout goroutines per search.
const WORKERS = 6

// ROLLOUTS defines the number of random playouts per simulated leaf.
const ROLLOUTS = 100

// ITERATIONS defines the number of MCTS iterations per move.
const ITERATIONS = 1000

// MAX_DEPTH defines the number of stones a playout may place before it is
// scored as a draw.
const MAX_DEPTH = 50

// MARGIN defines how far beyond the stones' bounding box moves are considered.
const MARGIN = 2

// EXPLORATION defines the UCB1 exploration constant.
const EXPLORATION = 1.414
