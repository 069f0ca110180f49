package searcher

import (
	"testing"

	"gomoku/game"

	"github.com/stretchr/testify/require"
)

func TestNewTree(t *testing.T) {
	tree := NewTree(game.Black)
	root := tree.Root()

	require.Equal(t, 1, tree.Len())
	require.Equal(t, NoNode, tree.Parent(root))
	require.Equal(t, game.NoMove, tree.Move(root))
	require.Equal(t, game.Black, tree.ToMove(root), "First player should move from the root")
	require.Equal(t, game.White, tree.Mover(root))
	require.Zero(t, tree.Board(root).Occupied(), "Root board should be empty")
	require.Empty(t, tree.Children(root))
	require.False(t, tree.Terminal(root))
}

func TestTreeAddChild(t *testing.T) {
	t.Run("stone belongs to the parent's player to move", func(t *testing.T) {
		tree := NewTree(game.Black)
		child := tree.AddChild(tree.Root(), game.Center)
		grandChild := tree.AddChild(child, game.NewPosition(7, 8))

		require.Equal(t, game.Black, tree.Board(child).At(game.Center))
		require.Equal(t, game.White, tree.ToMove(child), "Turn should pass to the opponent")
		require.Equal(t, game.Black, tree.Mover(child))
		require.Equal(t, game.White, tree.Board(grandChild).At(game.NewPosition(7, 8)))
		require.Equal(t, game.Black, tree.Board(grandChild).At(game.Center), "Child should inherit the parent's stones")
		require.Equal(t, game.Black, tree.ToMove(grandChild))
		require.Equal(t, 2, tree.Depth(grandChild))
		require.Zero(t, tree.Board(tree.Root()).Occupied(), "Parent board should not change")
	})

	t.Run("child completing five in a row is terminal", func(t *testing.T) {
		tree := NewTree(game.Black)
		node := tree.Root()
		for i := 0; i < 4; i++ {
			node = tree.AddChild(node, game.NewPosition(0, i))
			require.False(t, tree.Terminal(node))
			node = tree.AddChild(node, game.NewPosition(5, i))
			require.False(t, tree.Terminal(node))
		}

		win := tree.AddChild(node, game.NewPosition(0, 4))
		require.True(t, tree.Terminal(win), "Fifth black stone should end the game")
		require.Equal(t, game.Black, tree.Mover(win))
	})
}

func TestTreePruneSiblings(t *testing.T) {
	tree := NewTree(game.Black)
	root := tree.Root()
	var children, grandChildren []NodeID
	for i := 0; i < 3; i++ {
		child := tree.AddChild(root, game.NewPosition(7, 6+i))
		children = append(children, child)
		for j := 0; j < 2; j++ {
			grandChildren = append(grandChildren, tree.AddChild(child, game.NewPosition(8, 6+j)))
		}
	}
	require.Equal(t, 10, tree.Len())

	tree.PruneSiblings(children[1])

	require.Equal(t, 4, tree.Len(), "Only the root and the chosen subtree should remain")
	require.Equal(t, []NodeID{children[1]}, tree.Children(root))
	require.False(t, tree.Contains(children[0]))
	require.False(t, tree.Contains(children[2]))
	require.False(t, tree.Contains(grandChildren[0]))
	require.False(t, tree.Contains(grandChildren[5]))
	require.True(t, tree.Contains(grandChildren[2]))
	require.True(t, tree.Contains(grandChildren[3]))
	require.Equal(t, children[1], tree.Parent(grandChildren[2]))

	t.Run("pruning the root is a no-op", func(t *testing.T) {
		tree.PruneSiblings(root)
		require.Equal(t, 4, tree.Len())
	})
}

func TestTreeRelease(t *testing.T) {
	t.Run("released slots are reused", func(t *testing.T) {
		tree := NewTree(game.Black)
		a := tree.AddChild(tree.Root(), game.NewPosition(0, 0))
		tree.AddChild(tree.Root(), game.NewPosition(0, 1))
		tree.AddChild(a, game.NewPosition(1, 1))
		arena := len(tree.nodes)

		tree.Release(a)
		require.Equal(t, 2, tree.Len())
		require.Len(t, tree.Children(tree.Root()), 1, "Released node should be detached from its parent")

		tree.AddChild(tree.Root(), game.NewPosition(2, 2))
		tree.AddChild(tree.Root(), game.NewPosition(3, 3))
		require.Equal(t, arena, len(tree.nodes), "New nodes should reuse freed slots")
		require.Equal(t, 4, tree.Len())
	})

	t.Run("releasing a deep chain", func(t *testing.T) {
		tree := NewTree(game.Black)
		first := tree.AddChild(tree.Root(), game.NewPosition(0, 0))
		node := first
		for i := 1; i < game.Cells; i++ {
			node = tree.AddChild(node, game.NewPosition(i/game.Size, i%game.Size))
		}
		require.Equal(t, game.Cells+1, tree.Len())
		require.Equal(t, game.Cells, tree.Depth(node))

		tree.Release(first)
		require.Equal(t, 1, tree.Len())
		require.False(t, tree.Contains(node))
		require.Empty(t, tree.Children(tree.Root()))
	})

	t.Run("accessing a released node panics", func(t *testing.T) {
		tree := NewTree(game.Black)
		a := tree.AddChild(tree.Root(), game.Center)
		tree.Release(a)
		require.Panics(t, func() { tree.Visits(a) })
	})
}

func TestTreeLookups(t *testing.T) {
	tree := NewTree(game.Black)
	root := tree.Root()
	a := tree.AddChild(root, game.NewPosition(7, 6))
	b := tree.AddChild(root, game.NewPosition(7, 7))
	c := tree.AddChild(root, game.NewPosition(7, 8))

	t.Run("child by move", func(t *testing.T) {
		got, ok := tree.ChildByMove(root, game.NewPosition(7, 7))
		require.True(t, ok)
		require.Equal(t, b, got)

		_, ok = tree.ChildByMove(root, game.NewPosition(0, 0))
		require.False(t, ok)
	})

	t.Run("most visited keeps the earliest child on ties", func(t *testing.T) {
		tree.update(a, 1)
		tree.update(b, 1)
		tree.update(b, -1)
		tree.update(c, 1)
		tree.update(c, 1)

		got, ok := tree.MostVisited(root)
		require.True(t, ok)
		require.Equal(t, b, got, "b and c tie on visits, b comes first")
		require.Equal(t, 0.0, tree.Mean(b))
		require.Equal(t, 1.0, tree.Mean(c))
	})

	t.Run("most visited without children", func(t *testing.T) {
		_, ok := tree.MostVisited(a)
		require.False(t, ok)
	})
}
