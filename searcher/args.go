package searcher

// Rollout outcomes, seen from the perspective of the player who moved into
// the simulated node.
const (
	Win  = 1
	Loss = -Win
	Draw = 0
)

// MaxWorkers bounds the size of a rollout Pool.
const MaxWorkers = 8
