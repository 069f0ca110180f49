package engine

import (
	"errors"

	"gomoku/agent"
	"gomoku/game"
	"gomoku/metrics"
)

var (
	ErrOutOfBounds = errors.New("position is off the board")
	ErrOccupied    = errors.New("position is occupied")
	ErrGameOver    = errors.New("game is over")
	ErrNoMoves     = agent.ErrNoMoves
)

type Engine interface {
	// Run plays a game until a player completes five in a row or the board is full
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
