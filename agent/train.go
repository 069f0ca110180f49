package agent

import (
	"math"

	"gomoku/game"
	"gomoku/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play during training. It
// samples children with probability proportional to visits^(1/temperature).
func NewTrainingAgent(temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &trainingAgent{
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(tree *searcher.Tree, node searcher.NodeID) (game.Position, error) {
	children := tree.Children(node)
	if len(children) == 0 {
		return game.NoMove, ErrNoMoves
	}

	visits := make([]float64, len(children))
	for i, c := range children {
		visits[i] = float64(tree.Visits(c))
	}
	policy := adjustTemperature(visits, a.temperature)
	return tree.Move(children[sample(policy, a.rng.Float64())]), nil
}

// adjustTemperature returns visit^(1/temperature) normalised to sum to 1. An
// all-zero input becomes the uniform distribution.
func adjustTemperature(visits []float64, temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]float64, len(visits))
	for i, visit := range visits {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted[i] = prob
	}
	for i := range adjusted {
		if sum == 0 {
			adjusted[i] = 1 / float64(len(adjusted))
		} else {
			adjusted[i] /= sum
		}
	}
	return adjusted
}

// sample returns the index whose cumulative probability first exceeds
// sampled. Rounding can leave the total just short of 1, so the last index
// is the fallback.
func sample(policy []float64, sampled float64) int {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(policy) - 1
}
