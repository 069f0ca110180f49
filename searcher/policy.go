package searcher

import "math"

// ucb1 scores the children of one parent:
// mean + c*sqrt(ln(N)/n), with N the parent's visits and n the child's.
type ucb1 struct {
	c   float64
	lnN float64
}

func newUCB1(c float64, parentVisits int) ucb1 {
	if parentVisits == 0 {
		panic("parent visits cannot be 0")
	}
	return ucb1{c: c, lnN: math.Log(float64(parentVisits))}
}

func (u ucb1) evaluate(score float64, visits int) float64 {
	if visits == 0 {
		panic("child visits cannot be 0")
	}
	n := float64(visits)
	return score/n + u.c*math.Sqrt(u.lnN/n)
}
