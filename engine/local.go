package engine

import (
	"fmt"
	"time"

	"gomoku/agent"
	"gomoku/game"
	"gomoku/metrics"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

// LocalEngine plays both sides of a game in-process. Both agents pick from
// the same search tree, which is reused from one move to the next.
type LocalEngine struct {
	session    *Session
	agents     [2]agent.Agent
	iterations int
}

func NewLocalEngine(session *Session, iterations int, black, white agent.Agent) *LocalEngine {
	if session == nil {
		panic("Must specify a session")
	}
	if black == nil || white == nil {
		panic("Must specify an agent for each player")
	}
	if iterations <= 0 {
		panic("Must specify search iterations")
	}
	return &LocalEngine{
		session:    session,
		agents:     [2]agent.Agent{black, white},
		iterations: iterations,
	}
}

// Run executes the game loop until a winner is found or the board is full.
func (e *LocalEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	s := e.session
	gameMetric := metrics.GameMetric{
		StartingPlayer: s.ToMove().String(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("player %s is starting", s.ToMove())

	var moveMetrics []metrics.MoveMetric
	for !s.Over() {
		player := s.ToMove()
		if _, err := s.Search(e.iterations); err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("step %d: %w", s.Moves()+1, err)
		}
		move, err := e.agents[player-1].FindMove(s.Tree(), s.Current())
		if err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("step %d: %w", s.Moves()+1, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         s.Moves() + 1,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: s.Metrics(),
		})
		if err := s.Commit(move); err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("step %d: %w", s.Moves()+1, err)
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = s.Moves()
	gameMetric.Winner = s.Winner().String()
	if s.Winner() == game.NoPlayer {
		log.Info().Int("moves", s.Moves()).Msg("game drawn")
	} else {
		log.Info().Int("moves", s.Moves()).Msgf("player %s wins", s.Winner())
	}
	return s.Winner(), gameMetric, moveMetrics, nil
}
