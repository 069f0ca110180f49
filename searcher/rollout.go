package searcher

import (
	"gomoku/game"

	"golang.org/x/exp/rand"
)

// Playout plays one simulated game on a private copy of board, starting with
// toMove, and returns Win, Loss or Draw from the perspective of
// toMove.Opponent(), the player whose stone led to board.
type Playout func(board game.Board, toMove game.Player, rng *rand.Rand) int

const frontierRadius = 2

// neighbourhood holds the offsets within frontierRadius of a cell, excluding
// the cell itself.
var neighbourhood = func() []game.Position {
	var offsets []game.Position
	for dx := -frontierRadius; dx <= frontierRadius; dx++ {
		for dy := -frontierRadius; dy <= frontierRadius; dy++ {
			if dx != 0 || dy != 0 {
				offsets = append(offsets, game.Position{X: dx, Y: dy})
			}
		}
	}
	return offsets
}()

// candidates returns the empty cells in the stones' bounding box grown by
// margin. An empty board yields only the centre.
func candidates(board game.Board, margin int) []game.Position {
	r, ok := board.Bounds(margin)
	if !ok {
		return []game.Position{game.Center}
	}
	return board.AppendEmpty(make([]game.Position, 0, game.Cells), r)
}

// RandomPlayout places uniformly random stones drawn from a growing frontier:
// it starts as the bounding-box candidates and gains the empty neighbours of
// every stone placed. The playout stops at the first five in a row, when the
// frontier runs dry, or after maxDepth stones.
func RandomPlayout(margin, maxDepth int) Playout {
	return func(board game.Board, toMove game.Player, rng *rand.Rand) int {
		return randomPlayout(board, toMove, margin, maxDepth, rng)
	}
}

func randomPlayout(board game.Board, toMove game.Player, margin, maxDepth int, rng *rand.Rand) int {
	perspective := toMove.Opponent()
	moves := candidates(board, margin)

	var queued [game.Cells]bool
	for _, p := range moves {
		queued[p.Index()] = true
	}

	player := toMove
	// moves[:depth] holds the stones already placed, moves[depth:] the frontier
	for depth := 0; depth < len(moves) && depth < maxDepth; depth++ {
		pick := depth + rng.Intn(len(moves)-depth)
		moves[depth], moves[pick] = moves[pick], moves[depth]
		move := moves[depth]

		board.Place(move, player)
		if game.CheckWin(board, move, player) {
			if player == perspective {
				return Win
			}
			return Loss
		}

		for _, d := range neighbourhood {
			p := move.Offset(d.X, d.Y)
			if p.Valid() && !queued[p.Index()] && board.IsEmpty(p) {
				queued[p.Index()] = true
				moves = append(moves, p)
			}
		}
		player = player.Opponent()
	}
	return Draw
}
