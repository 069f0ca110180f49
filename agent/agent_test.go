package agent

import (
	"testing"

	"gomoku/game"
	"gomoku/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func drawPlayout(game.Board, game.Player, *rand.Rand) int {
	return searcher.Draw
}

// winningTree builds a game where Black holds four in a row on row 7,
// blocked at (7,2), so (7,7) is the only immediate win, and searches it.
func winningTree(t *testing.T, iterations int) (*searcher.Tree, searcher.NodeID) {
	tree := searcher.NewTree(game.Black)
	node := tree.Root()
	moves := []game.Position{
		{X: 7, Y: 3}, {X: 0, Y: 0},
		{X: 7, Y: 4}, {X: 0, Y: 2},
		{X: 7, Y: 5}, {X: 0, Y: 4},
		{X: 7, Y: 6}, {X: 7, Y: 2},
	}
	for _, move := range moves {
		node = tree.AddChild(node, move)
	}

	m := searcher.NewMCTS(tree,
		searcher.WithWorkers(1),
		searcher.WithRollouts(1),
		searcher.WithSeed(3),
		searcher.WithPlayout(drawPlayout),
	)
	t.Cleanup(func() { require.NoError(t, m.Close()) })
	m.Run(node, iterations)
	return tree, node
}

func TestEvaluationAgent(t *testing.T) {
	t.Run("picks the most visited child", func(t *testing.T) {
		tree, node := winningTree(t, 500)

		move, err := NewEvaluationAgent().FindMove(tree, node)
		require.NoError(t, err)
		require.Equal(t, game.NewPosition(7, 7), move, "Search should concentrate on the winning move")
	})

	t.Run("ties keep the first child", func(t *testing.T) {
		tree := searcher.NewTree(game.Black)
		tree.AddChild(tree.Root(), game.NewPosition(3, 3))
		tree.AddChild(tree.Root(), game.NewPosition(4, 4))

		move, err := NewEvaluationAgent().FindMove(tree, tree.Root())
		require.NoError(t, err)
		require.Equal(t, game.NewPosition(3, 3), move)
	})

	t.Run("no children", func(t *testing.T) {
		tree := searcher.NewTree(game.Black)

		move, err := NewEvaluationAgent().FindMove(tree, tree.Root())
		require.ErrorIs(t, err, ErrNoMoves)
		require.Equal(t, game.NoMove, move)
	})
}

func TestTrainingAgent(t *testing.T) {
	t.Run("panics without a positive temperature", func(t *testing.T) {
		require.Panics(t, func() { NewTrainingAgent(0, 1) })
	})

	t.Run("samples one of the children", func(t *testing.T) {
		tree, node := winningTree(t, 200)
		agent := NewTrainingAgent(1, 9)

		for i := 0; i < 20; i++ {
			move, err := agent.FindMove(tree, node)
			require.NoError(t, err)
			_, ok := tree.ChildByMove(node, move)
			require.True(t, ok, "Sampled move %s should be a child", move)
		}
	})

	t.Run("no children", func(t *testing.T) {
		tree := searcher.NewTree(game.Black)

		_, err := NewTrainingAgent(1, 1).FindMove(tree, tree.Root())
		require.ErrorIs(t, err, ErrNoMoves)
	})
}

func TestAdjustTemperature(t *testing.T) {
	t.Run("temperature one normalises visits", func(t *testing.T) {
		require.InDeltaSlice(t, []float64{0.25, 0.75}, adjustTemperature([]float64{1, 3}, 1), 1e-9)
	})

	t.Run("low temperature sharpens the policy", func(t *testing.T) {
		require.InDeltaSlice(t, []float64{0.1, 0.9}, adjustTemperature([]float64{1, 3}, 0.5), 1e-9)
	})

	t.Run("unvisited children are uniform", func(t *testing.T) {
		require.InDeltaSlice(t, []float64{0.5, 0.5}, adjustTemperature([]float64{0, 0}, 1), 1e-9)
	})
}

func TestSample(t *testing.T) {
	policy := []float64{0.25, 0.75}
	require.Equal(t, 0, sample(policy, 0))
	require.Equal(t, 0, sample(policy, 0.2))
	require.Equal(t, 1, sample(policy, 0.25))
	require.Equal(t, 1, sample(policy, 0.99))
	require.Equal(t, 1, sample([]float64{0.3, 0.3}, 0.9), "Should fall back to the last index")
}
