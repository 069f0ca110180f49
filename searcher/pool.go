package searcher

import (
	"fmt"
	"sync"

	"gomoku/game"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Pool runs playouts on a fixed set of long-lived goroutines. Worker i owns
// its own random source seeded with seed+i, so a fixed seed and a
// deterministic Playout give reproducible results.
type Pool struct {
	jobs  []chan job
	group errgroup.Group
	once  sync.Once
	err   error
}

type job struct {
	board   game.Board
	toMove  game.Player
	n       int
	playout Playout
	results chan<- partial
}

type partial struct {
	sum  int
	full int
}

func (j job) run(rng *rand.Rand) partial {
	var p partial
	for i := 0; i < j.n; i++ {
		outcome := j.playout(j.board, j.toMove, rng)
		p.sum += outcome
		if outcome != Draw {
			p.full++
		}
	}
	return p
}

// NewPool starts workers goroutines. It panics unless 1 <= workers <= MaxWorkers.
func NewPool(workers int, seed uint64) *Pool {
	if workers < 1 || workers > MaxWorkers {
		panic(fmt.Sprintf("worker count must be in [1, %d], got %d", MaxWorkers, workers))
	}

	p := &Pool{jobs: make([]chan job, workers)}
	for i := range p.jobs {
		jobs := make(chan job)
		rng := rand.New(rand.NewSource(seed + uint64(i)))
		p.jobs[i] = jobs
		p.group.Go(func() error {
			for j := range jobs {
				j.results <- j.run(rng)
			}
			return nil
		})
	}
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return len(p.jobs)
}

// Dispatch runs n playouts from board, splitting them as evenly as possible
// across the workers, and blocks until every share has reported. It returns
// the mean outcome and the number of playouts decided before their cutoff.
func (p *Pool) Dispatch(board game.Board, toMove game.Player, n int, playout Playout) (float64, int) {
	if n <= 0 {
		return 0, 0
	}

	workers := len(p.jobs)
	quotient, remainder := n/workers, n%workers
	results := make(chan partial, workers)
	sent := 0
	for i, jobs := range p.jobs {
		share := quotient
		if i < remainder {
			share++
		}
		if share == 0 {
			continue
		}
		jobs <- job{board: board, toMove: toMove, n: share, playout: playout, results: results}
		sent++
	}

	var total partial
	for i := 0; i < sent; i++ {
		r := <-results
		total.sum += r.sum
		total.full += r.full
	}
	return float64(total.sum) / float64(n), total.full
}

// Close stops the workers and waits for them to exit. Dispatch must not be
// called afterwards.
func (p *Pool) Close() error {
	p.once.Do(func() {
		for _, jobs := range p.jobs {
			close(jobs)
		}
		p.err = p.group.Wait()
	})
	return p.err
}
