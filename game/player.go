package game

// Player identifies a side, or the absence of a stone.
type Player uint8

const (
	NoPlayer Player = iota
	Black
	White
)

// First is the player who places the first stone.
const First = Black

// Opponent returns the other side. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return NoPlayer
	}
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "None"
	}
}
