package engine

import (
	"fmt"
	"time"

	"gomoku/game"
	"gomoku/metrics"
	"gomoku/searcher"

	"github.com/rs/zerolog/log"
)

// Session is one game: the display board, the search tree shared by both
// players and the node matching the position on the board. Committing a move
// advances that node and releases every sibling subtree.
type Session struct {
	tree    *searcher.Tree
	mcts    *searcher.MCTS
	current searcher.NodeID
	board   game.Board
	moves   int
	winner  game.Player
	over    bool
}

func NewSession(options ...searcher.Option) *Session {
	tree := searcher.NewTree(game.First)
	return &Session{
		tree:    tree,
		mcts:    searcher.NewMCTS(tree, options...),
		current: tree.Root(),
	}
}

// Commit plays pos for the player to move.
func (s *Session) Commit(pos game.Position) error {
	if s.over {
		return ErrGameOver
	}
	if !pos.Valid() {
		return fmt.Errorf("commit %s: %w", pos, ErrOutOfBounds)
	}
	if !s.board.IsEmpty(pos) {
		return fmt.Errorf("commit %s: %w", pos, ErrOccupied)
	}

	player := s.tree.ToMove(s.current)
	child, ok := s.tree.ChildByMove(s.current, pos)
	if !ok {
		child = s.tree.AddChild(s.current, pos)
	}
	s.tree.PruneSiblings(child)
	s.current = child

	s.board.Place(pos, player)
	s.moves++
	switch {
	case game.CheckWin(s.board, pos, player):
		s.winner = player
		s.over = true
	case s.board.Full():
		s.over = true
	}

	log.Info().
		Int("step", s.moves).
		Stringer("player", player).
		Stringer("move", pos).
		Bool("searched", ok).
		Int("nodes", s.tree.Len()).
		Msg("move committed")
	return nil
}

// Search runs iterations of MCTS from the current node.
func (s *Session) Search(iterations int) (time.Duration, error) {
	if s.over {
		return 0, ErrGameOver
	}
	s.mcts.Expand(s.current)
	elapsed := s.mcts.Run(s.current, iterations)
	if len(s.tree.Children(s.current)) == 0 {
		return elapsed, ErrNoMoves
	}
	return elapsed, nil
}

// Think searches from the current node and returns the most visited move.
// It does not commit the move.
func (s *Session) Think(iterations int) (game.Position, error) {
	if _, err := s.Search(iterations); err != nil {
		return game.NoMove, fmt.Errorf("think: %w", err)
	}
	child, ok := s.tree.MostVisited(s.current)
	if !ok {
		return game.NoMove, fmt.Errorf("think: %w", ErrNoMoves)
	}
	return s.tree.Move(child), nil
}

func (s *Session) Tree() *searcher.Tree {
	return s.tree
}

// Current returns the tree node matching the display board.
func (s *Session) Current() searcher.NodeID {
	return s.current
}

func (s *Session) Board() game.Board {
	return s.board
}

func (s *Session) ToMove() game.Player {
	return s.tree.ToMove(s.current)
}

func (s *Session) Moves() int {
	return s.moves
}

// Over reports whether the game has ended. Winner is NoPlayer on a draw.
func (s *Session) Over() bool {
	return s.over
}

func (s *Session) Winner() game.Player {
	return s.winner
}

// Metrics returns the metrics of the last search.
func (s *Session) Metrics() metrics.SearchMetric {
	return s.mcts.Metrics()
}

// Close tears the tree down and stops the search's pool. Afterwards Commit,
// Search and Think return ErrGameOver; the tree accessors must not be used.
func (s *Session) Close() error {
	s.over = true
	if root := s.tree.Root(); s.tree.Contains(root) {
		s.tree.Release(root)
	}
	return s.mcts.Close()
}
