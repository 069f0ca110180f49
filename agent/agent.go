package agent

import (
	"errors"

	"gomoku/game"
	"gomoku/searcher"
)

// ErrNoMoves is returned when the searched node has no children. With a
// positive margin that only happens once the board is full.
var ErrNoMoves = errors.New("no moves to choose from")

type Agent interface {
	// FindMove picks a move among the searched children of node.
	FindMove(tree *searcher.Tree, node searcher.NodeID) (game.Position, error)
}
