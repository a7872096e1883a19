package gridpath

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/gridgraph"
)

// Pathfinder answers constrained shortest-path queries over one cost map.
type Pathfinder struct {
	costs *gridgraph.CostMap
	opts  Options
}

// New validates the configuration and returns a Pathfinder.
//
// Preconditions (in order):
//  1. costs must be non-nil.
//  2. every option must be valid (MinRun ≥ 1).
//  3. MaxRun ≥ MinRun.
//
// All failures wrap ErrInvalidConfiguration.
func New(costs *gridgraph.CostMap, opts ...Option) (*Pathfinder, error) {
	if costs == nil {
		return nil, fmt.Errorf("%w: cost map is nil", ErrInvalidConfiguration)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.MaxRun < cfg.MinRun {
		return nil, fmt.Errorf("%w: MaxRun %d < MinRun %d", ErrInvalidConfiguration, cfg.MaxRun, cfg.MinRun)
	}

	return &Pathfinder{costs: costs, opts: cfg}, nil
}

// Options returns the effective configuration.
func (p *Pathfinder) Options() Options {
	o := p.opts
	o.err = nil
	return o
}

// Solve returns the minimum accumulated cost of a legal route from start to goal.
// The weight of start itself is never paid.
//
// Errors: ErrOutOfBounds, ErrUnreachable.
func (p *Pathfinder) Solve(start, goal gridgraph.Cell) (int, error) {
	r, err := p.run(start, goal, false)
	if err != nil {
		return 0, err
	}
	return r.dist[r.found], nil
}

// SolvePath is Solve with route reconstruction.
func (p *Pathfinder) SolvePath(start, goal gridgraph.Cell) (Result, error) {
	r, err := p.run(start, goal, true)
	if err != nil {
		return Result{}, err
	}
	return r.result(), nil
}

func (p *Pathfinder) run(start, goal gridgraph.Cell, trackPath bool) (*runner, error) {
	if !p.costs.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v outside %dx%d grid", ErrOutOfBounds, start, p.costs.Rows, p.costs.Cols)
	}
	if !p.costs.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v outside %dx%d grid", ErrOutOfBounds, goal, p.costs.Rows, p.costs.Cols)
	}

	r := &runner{
		costs:   p.costs,
		minRun:  p.opts.MinRun,
		maxRun:  p.opts.MaxRun,
		goal:    p.costs.Index(goal),
		dist:    make(map[node]int),
		visited: make(map[node]struct{}),
	}
	if trackPath {
		r.prev = make(map[node]node)
	}
	r.init(p.costs.Index(start))
	if !r.process() {
		return nil, fmt.Errorf("%w: no route from %v to %v with runs in [%d,%d]",
			ErrUnreachable, start, goal, p.opts.MinRun, p.opts.MaxRun)
	}

	return r, nil
}

// node is a search state. idx is the row-major cell index; run counts the
// consecutive moves made in dir that produced this state.
type node struct {
	idx int
	dir direction.Direction
	run int
}

// runner holds the mutable state for a single search.
type runner struct {
	costs   *gridgraph.CostMap
	minRun  int
	maxRun  int
	goal    int
	start   node
	found   node
	dist    map[node]int      // best known cost per state
	prev    map[node]node     // predecessor per state; nil unless a path is wanted
	visited map[node]struct{} // finalised states
	pq      nodePQ
}

// init seeds the search with the synthetic start state and pushes it into the heap.
func (r *runner) init(startIdx int) {
	// 1) The start state has no heading and a full run. Going straight is
	//    impossible without a heading, and a full run satisfies any MinRun,
	//    so every one of the four directions opens as a turn.
	r.start = node{idx: startIdx, dir: direction.None, run: r.maxRun}

	// 2) Standing on the start costs nothing; its own weight is never paid.
	r.dist[r.start] = 0

	// 3) Initialise the priority queue and push the start with cost 0.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{n: r.start, cost: 0})
}

// process is the main Dijkstra loop over (cell, heading, run) states.
// It reports whether a goal state was finalised.
//
// Loop termination conditions:
//
//   - A goal state with run ≥ MinRun is popped (its cost is optimal).
//   - The heap becomes empty (no legal route exists).
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest state from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.n

		// 2) If this state was already finalised, skip the stale heap entry
		//    left behind by lazy decrease-key.
		if _, ok := r.visited[u]; ok {
			continue
		}

		// 3) Mark u as visited. Its cost is now final.
		r.visited[u] = struct{}{}

		// 4) Stop at the goal only after a run of at least MinRun;
		//    arriving mid-run does not count as stopping there.
		if u.idx == r.goal && u.run >= r.minRun {
			r.found = u
			return true
		}

		// 5) Push every legal successor of u.
		r.expand(u, item.cost)
	}

	return false
}

// expand relaxes every move out of state u, whose cost is final.
// The edge cost of a move is the weight of the cell it enters.
func (r *runner) expand(u node, cost int) {
	here := r.costs.CellAt(u.idx)
	for _, d := range direction.All {
		// 1) Never reverse.
		if u.dir != direction.None && d == u.dir.Opposite() {
			continue
		}

		// 2) Going straight extends the run up to MaxRun; turning resets it
		//    to 1 and is only allowed once the run has reached MinRun.
		var run int
		if d == u.dir {
			if u.run >= r.maxRun {
				continue
			}
			run = u.run + 1
		} else {
			if u.run < r.minRun {
				continue
			}
			run = 1
		}

		// 3) Drop moves that leave the grid or reach a finalised state.
		next := here.Step(d)
		if !r.costs.InBounds(next) {
			continue
		}
		v := node{idx: r.costs.Index(next), dir: d, run: run}
		if _, ok := r.visited[v]; ok {
			continue
		}

		// 4) Relax: keep the move only if it improves the best known cost,
		//    then push a fresh heap entry (lazy decrease-key).
		newCost := cost + r.costs.Weight(next)
		if old, ok := r.dist[v]; ok && newCost >= old {
			continue
		}
		r.dist[v] = newCost
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{n: v, cost: newCost})
	}
}

// result rebuilds the route ending at r.found.
func (r *runner) result() Result {
	var states []node
	for at := r.found; ; at = r.prev[at] {
		states = append(states, at)
		if at == r.start {
			break
		}
	}
	// reverse to get start → goal
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}

	res := Result{
		Cost:  r.dist[r.found],
		Path:  make([]gridgraph.Cell, len(states)),
		Moves: make([]direction.Direction, 0, len(states)-1),
	}
	for i, s := range states {
		res.Path[i] = r.costs.CellAt(s.idx)
		if i > 0 {
			res.Moves = append(res.Moves, s.dir)
		}
	}

	return res
}

// nodeItem is a frontier entry.
type nodeItem struct {
	n    node
	cost int
}

// nodePQ is a min-heap of *nodeItem ordered by cost ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
