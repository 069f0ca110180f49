package game

// axes are the four line directions; each is also walked in reverse.
var axes = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// fivePattern is WinLength contiguous stones inside a packed window.
const fivePattern = 1<<WinLength - 1

// windowRadius cells on each side of the last move can belong to a line through it.
const windowRadius = WinLength - 1

// CheckWin reports whether the stone player just placed on last completes a
// line of at least WinLength stones. It walks outward from last along each
// axis and stops at the first foreign cell or the grid edge.
func CheckWin(b Board, last Position, player Player) bool {
	for _, axis := range axes {
		count := 1
		count += b.countDirection(last, axis[0], axis[1], player)
		count += b.countDirection(last, -axis[0], -axis[1], player)
		if count >= WinLength {
			return true
		}
	}
	return false
}

func (b Board) countDirection(from Position, dx, dy int, player Player) int {
	count := 0
	p := from.Offset(dx, dy)
	for count < windowRadius && b.has(p, player) {
		count++
		p = p.Offset(dx, dy)
	}
	return count
}

// CheckWinWindow answers the same question as CheckWin by packing the
// 2*windowRadius+1 cells centred on last into one word per axis, with
// off-grid cells packed as empty, and sliding fivePattern across it.
func CheckWinWindow(b Board, last Position, player Player) bool {
	for _, axis := range axes {
		if containsFive(b.window(last, axis[0], axis[1], player)) {
			return true
		}
	}
	return false
}

func (b Board) window(center Position, dx, dy int, player Player) uint16 {
	var w uint16
	for i := -windowRadius; i <= windowRadius; i++ {
		w <<= 1
		if b.has(center.Offset(i*dx, i*dy), player) {
			w |= 1
		}
	}
	return w
}

func containsFive(w uint16) bool {
	for shift := 0; shift <= 2*windowRadius+1-WinLength; shift++ {
		if (w>>shift)&fivePattern == fivePattern {
			return true
		}
	}
	return false
}
