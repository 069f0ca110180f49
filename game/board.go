package game

import (
	"math/bits"
	"strings"
)

const words = (Cells + 63) / 64

// bitset holds one bit per cell, indexed row-major.
type bitset [words]uint64

func (s *bitset) set(i int) {
	s[i>>6] |= 1 << (uint(i) & 63)
}

func (s bitset) has(i int) bool {
	return s[i>>6]&(1<<(uint(i)&63)) != 0
}

func (s bitset) count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

func (s bitset) union(o bitset) bitset {
	for i := range s {
		s[i] |= o[i]
	}
	return s
}

// Board stores one bitset per player. It is a value type: assigning a Board
// copies it, which is how search nodes and rollouts take private snapshots.
type Board struct {
	stones [2]bitset
}

// Place puts a stone for player on p. The caller guarantees that p is on the
// grid and empty; neither is checked here.
func (b *Board) Place(p Position, player Player) {
	b.stones[player-1].set(p.Index())
}

// At returns the owner of the stone on p, or NoPlayer for an empty cell.
func (b Board) At(p Position) Player {
	i := p.Index()
	switch {
	case b.stones[0].has(i):
		return Black
	case b.stones[1].has(i):
		return White
	default:
		return NoPlayer
	}
}

func (b Board) IsEmpty(p Position) bool {
	return !b.occupied().has(p.Index())
}

// has reports whether player owns p. Off-grid positions are never owned.
func (b Board) has(p Position, player Player) bool {
	return p.Valid() && b.stones[player-1].has(p.Index())
}

func (b Board) occupied() bitset {
	return b.stones[0].union(b.stones[1])
}

// Occupied returns the number of stones on the board.
func (b Board) Occupied() int {
	return b.occupied().count()
}

func (b Board) Full() bool {
	return b.Occupied() == Cells
}

// Stones returns every occupied position in row-major order.
func (b Board) Stones() []Position {
	occupied := b.occupied()
	stones := make([]Position, 0, occupied.count())
	for w, word := range occupied {
		for word != 0 {
			i := w*64 + bits.TrailingZeros64(word)
			stones = append(stones, positionAt(i))
			word &= word - 1
		}
	}
	return stones
}

// Bounds returns the bounding box of all stones grown by margin on every side
// and clamped to the grid. ok is false on an empty board.
func (b Board) Bounds(margin int) (r Rect, ok bool) {
	r = Rect{MinX: Size, MaxX: -1, MinY: Size, MaxY: -1}
	for _, p := range b.Stones() {
		r.MinX = min(r.MinX, p.X)
		r.MaxX = max(r.MaxX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxY = max(r.MaxY, p.Y)
	}
	if r.MaxX < 0 {
		return r, false
	}
	r.MinX = max(r.MinX-margin, 0)
	r.MaxX = min(r.MaxX+margin, Size-1)
	r.MinY = max(r.MinY-margin, 0)
	r.MaxY = min(r.MaxY+margin, Size-1)
	return r, true
}

// AppendEmpty appends the empty cells of r to dst in row-major order.
func (b Board) AppendEmpty(dst []Position, r Rect) []Position {
	occupied := b.occupied()
	for x := r.MinX; x <= r.MaxX; x++ {
		for y := r.MinY; y <= r.MaxY; y++ {
			p := Position{X: x, Y: y}
			if !occupied.has(p.Index()) {
				dst = append(dst, p)
			}
		}
	}
	return dst
}

// String renders the board one row per line, X for Black, O for White.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Cells + Size)
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			switch b.At(Position{X: x, Y: y}) {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
