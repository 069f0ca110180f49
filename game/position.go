package game

import "fmt"

// Size is the width and height of the square grid.
const Size = 15

// Cells is the number of cells on the grid.
const Cells = Size * Size

// WinLength is the number of contiguous stones that wins the game.
const WinLength = 5

// Position is a cell on the grid. X is the row and Y the column.
type Position struct {
	X int
	Y int
}

// NoMove marks the root of a game, which was not produced by any move.
var NoMove = Position{X: -1, Y: -1}

// Center is the middle cell of the grid.
var Center = Position{X: Size / 2, Y: Size / 2}

// NewPosition returns the cell on row x and column y.
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Valid reports whether the position lies on the grid.
func (p Position) Valid() bool {
	return p.X >= 0 && p.Y >= 0 && p.X < Size && p.Y < Size
}

// Offset returns the position shifted by (dx, dy). The result may be off the grid.
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Index returns the row-major cell number of p, in [0, Cells).
func (p Position) Index() int {
	return p.X*Size + p.Y
}

func positionAt(index int) Position {
	return Position{X: index / Size, Y: index % Size}
}

func (p Position) String() string {
	if p == NoMove {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an inclusive rectangle of rows [MinX, MaxX] and columns [MinY, MaxY].
type Rect struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Contains reports whether p lies inside r, bounds included.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}
