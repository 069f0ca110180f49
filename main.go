package main

import (
	"flag"
	"os"
	"time"

	"gomoku/agent"
	"gomoku/engine"
	"gomoku/meta"
	"gomoku/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

func main() {
	iterations := flag.Int("iterations", meta.ITERATIONS, "MCTS iterations per move")
	rollouts := flag.Int("rollouts", meta.ROLLOUTS, "Random playouts per simulated leaf")
	workers := flag.Int("workers", meta.WORKERS, "Number of rollout goroutines (at most 8)")
	depth := flag.Int("depth", meta.MAX_DEPTH, "Stones a playout may place before it is scored as a draw")
	margin := flag.Int("margin", meta.MARGIN, "Cells around the stones considered for moves")
	exploration := flag.Float64("c", meta.EXPLORATION, "UCB1 exploration constant")
	seed := flag.Uint64("seed", 0, "Random seed, 0 picks one")
	temperature := flag.Float64("temperature", 0, "Sample moves by visits^(1/T) instead of playing the most visited, 0 disables")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Warn().Err(err).Str("log-level", *level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if *margin < 1 {
		log.Fatal().Int("margin", *margin).Msg("margin must be at least 1")
	}

	if *seed == 0 {
		*seed = frand.Uint64n(1 << 63)
	}
	log.Info().Uint64("seed", *seed).Int("iterations", *iterations).Int("rollouts", *rollouts).Int("workers", *workers).Msg("starting self-play")

	session := engine.NewSession(
		searcher.WithRollouts(*rollouts),
		searcher.WithWorkers(*workers),
		searcher.WithMaxDepth(*depth),
		searcher.WithMargin(*margin),
		searcher.WithExploration(*exploration),
		searcher.WithSeed(*seed),
		searcher.WithMetrics(),
	)
	defer session.Close()

	black, white := agent.NewEvaluationAgent(), agent.NewEvaluationAgent()
	if *temperature > 0 {
		black = agent.NewTrainingAgent(*temperature, *seed+100)
		white = agent.NewTrainingAgent(*temperature, *seed+101)
	}

	winner, gameMetric, moveMetrics, err := engine.NewLocalEngine(session, *iterations, black, white).Run()
	if err != nil {
		log.Error().Err(err).Msg("game aborted")
		return
	}

	playouts := 0
	for _, m := range moveMetrics {
		playouts += m.Playouts
	}
	log.Info().
		Stringer("winner", winner).
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Int("playouts", playouts).
		Msg("game over")
	log.Debug().Msg("final board\n" + session.Board().String())
}
