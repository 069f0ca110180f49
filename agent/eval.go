package agent

import (
	"gomoku/game"
	"gomoku/searcher"
)

type evaluationAgent struct{}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent() Agent {
	return evaluationAgent{}
}

func (a evaluationAgent) FindMove(tree *searcher.Tree, node searcher.NodeID) (game.Position, error) {
	child, ok := tree.MostVisited(node)
	if !ok {
		return game.NoMove, ErrNoMoves
	}
	return tree.Move(child), nil
}
