package searcher

import (
	"fmt"

	"gomoku/game"
	"gomoku/utils"
)

// NodeID addresses a node inside a Tree. IDs stay valid until the node is
// released, after which the slot may be reused by a new node.
type NodeID int32

// NoNode is the parent of the root.
const NoNode NodeID = -1

type node struct {
	board    game.Board
	parent   NodeID
	children []NodeID
	move     game.Position
	toMove   game.Player
	visits   int
	score    float64
	terminal bool
	live     bool
}

// Tree is an arena of search nodes. Each node has exactly one parent, and
// released slots return to a free list. A Tree is not safe for concurrent use.
type Tree struct {
	nodes []node
	free  []NodeID
	root  NodeID
	live  int
}

// NewTree returns a tree holding a single root with an empty board and first
// to move.
func NewTree(first game.Player) *Tree {
	t := &Tree{}
	t.root = t.alloc(node{
		parent: NoNode,
		move:   game.NoMove,
		toMove: first,
	})
	return t
}

func (t *Tree) alloc(n node) NodeID {
	n.live = true
	t.live++
	if last := len(t.free) - 1; last >= 0 {
		id := t.free[last]
		t.free = t.free[:last]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) get(id NodeID) *node {
	if id < 0 || int(id) >= len(t.nodes) || !t.nodes[id].live {
		panic(fmt.Sprintf("node %d is not in the tree", id))
	}
	return &t.nodes[id]
}

// AddChild creates the node reached by playing move from parent. The stone
// belongs to the parent's player to move, and the child is terminal when
// that stone completes a line.
func (t *Tree) AddChild(parent NodeID, move game.Position) NodeID {
	p := t.get(parent)
	board := p.board
	mover := p.toMove
	board.Place(move, mover)

	child := t.alloc(node{
		board:    board,
		parent:   parent,
		move:     move,
		toMove:   mover.Opponent(),
		terminal: game.CheckWin(board, move, mover),
	})
	// alloc may grow the arena, so p is stale here
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	return child
}

// Release frees the subtree rooted at id and detaches it from its parent.
// Releasing the root tears the whole tree down.
func (t *Tree) Release(id NodeID) {
	if parent := t.get(id).parent; parent != NoNode {
		p := t.get(parent)
		if i := utils.FindIndex(p.children, id); i >= 0 {
			p.children = append(p.children[:i], p.children[i+1:]...)
		}
	}
	t.releaseSubtree(id)
}

// PruneSiblings frees every child of chosen's parent except chosen itself.
func (t *Tree) PruneSiblings(chosen NodeID) {
	parent := t.get(chosen).parent
	if parent == NoNode {
		return
	}
	p := t.get(parent)
	for _, c := range p.children {
		if c != chosen {
			t.releaseSubtree(c)
		}
	}
	p = t.get(parent)
	p.children = append(p.children[:0], chosen)
}

// releaseSubtree walks the subtree in post-order with an explicit stack so
// that deep game paths cannot exhaust the goroutine stack.
func (t *Tree) releaseSubtree(id NodeID) {
	type frame struct {
		id       NodeID
		expanded bool
	}
	stack := []frame{{id: id}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := &t.nodes[top.id]
		if !top.expanded {
			top.expanded = true
			for _, c := range n.children {
				stack = append(stack, frame{id: c})
			}
			continue
		}
		stack = stack[:len(stack)-1]
		*n = node{}
		t.free = append(t.free, top.id)
		t.live--
	}
}

// Root returns the node the tree was created with.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return t.live
}

// Contains reports whether id addresses a live node.
func (t *Tree) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && t.nodes[id].live
}

// Parent returns the node's parent, or NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.get(id).parent
}

// Children returns the node's children in insertion order. The slice is
// owned by the tree and is only valid until the next mutation.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.get(id).children
}

// Move returns the position played to reach the node, NoMove for the root.
func (t *Tree) Move(id NodeID) game.Position {
	return t.get(id).move
}

// Board returns a copy of the node's board.
func (t *Tree) Board(id NodeID) game.Board {
	return t.get(id).board
}

// ToMove returns the player to move after the node's stone was placed.
func (t *Tree) ToMove(id NodeID) game.Player {
	return t.get(id).toMove
}

// Mover returns the player who placed the node's stone.
func (t *Tree) Mover(id NodeID) game.Player {
	return t.get(id).toMove.Opponent()
}

// Terminal reports whether the node's stone completed five in a row.
func (t *Tree) Terminal(id NodeID) bool {
	return t.get(id).terminal
}

// Visits returns how many backpropagations passed through the node.
func (t *Tree) Visits(id NodeID) int {
	return t.get(id).visits
}

// Score returns the summed outcomes seen from the node's mover perspective.
func (t *Tree) Score(id NodeID) float64 {
	return t.get(id).score
}

// Mean returns Score/Visits, or 0 for an unvisited node.
func (t *Tree) Mean(id NodeID) float64 {
	n := t.get(id)
	if n.visits == 0 {
		return 0
	}
	return n.score / float64(n.visits)
}

// Depth returns the number of edges between id and the root.
func (t *Tree) Depth(id NodeID) int {
	depth := 0
	for p := t.get(id).parent; p != NoNode; p = t.nodes[p].parent {
		depth++
	}
	return depth
}

// ChildByMove finds the child of parent reached by move.
func (t *Tree) ChildByMove(parent NodeID, move game.Position) (NodeID, bool) {
	for _, c := range t.get(parent).children {
		if t.nodes[c].move == move {
			return c, true
		}
	}
	return NoNode, false
}

// MostVisited returns the child with the highest visit count, keeping the
// earliest child on ties. ok is false when parent has no children.
func (t *Tree) MostVisited(parent NodeID) (NodeID, bool) {
	children := t.get(parent).children
	i := utils.ArgMax(children, func(c NodeID) int { return t.nodes[c].visits })
	if i < 0 {
		return NoNode, false
	}
	return children[i], true
}

// update records one backpropagated outcome on id.
func (t *Tree) update(id NodeID, outcome float64) {
	n := t.get(id)
	n.visits++
	n.score += outcome
}
