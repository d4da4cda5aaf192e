// Package steps orders assembly steps by their prerequisites, alone or with
// a team of workers.
package steps

import (
	"cmp"
	"container/heap"
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrMalformed is returned for a line that is not a step instruction.
	ErrMalformed = errors.New("malformed instruction")
	// ErrEmpty is returned when there are no instructions.
	ErrEmpty = errors.New("no instructions")
	// ErrCycle is returned when some steps can never start.
	ErrCycle = errors.New("steps form a cycle")
)

const (
	// DefaultWorkers is the team size in the puzzle.
	DefaultWorkers = 5
	// DefaultBaseDuration is added to every step's duration in the puzzle.
	DefaultBaseDuration = 60
)

// Edge says step Before must finish before step After can begin.
type Edge struct {
	Before string
	After  string
}

// Parse reads "Step C must be finished before step A can begin.".
// Step names are single upper-case letters.
func Parse(line string) (Edge, error) {
	f := strings.Fields(line)
	if len(f) != 10 || f[0] != "Step" || f[6] != "step" {
		return Edge{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	e := Edge{Before: f[1], After: f[7]}
	for _, id := range []string{e.Before, e.After} {
		if len(id) != 1 || id[0] < 'A' || id[0] > 'Z' {
			return Edge{}, fmt.Errorf("%w: step name %q is not a letter A-Z", ErrMalformed, id)
		}
	}
	return e, nil
}

// Duration returns the seconds step id takes: base plus its position in the
// alphabet, so A takes base+1.
func Duration(id string, base int) int {
	return base + int(id[0]-'A') + 1
}

// Graph holds the steps and their prerequisites.
type Graph struct {
	next    map[string][]string
	pending map[string]int
}

// NewGraph builds the dependency graph. Repeated edges are kept and counted
// twice on both sides, so they do not change the order.
func NewGraph(edges []Edge) *Graph {
	g := &Graph{
		next:    make(map[string][]string),
		pending: make(map[string]int),
	}
	for _, e := range edges {
		if _, ok := g.pending[e.Before]; !ok {
			g.pending[e.Before] = 0
		}
		g.pending[e.After]++
		g.next[e.Before] = append(g.next[e.Before], e.After)
	}
	return g
}

// Len returns the number of distinct steps.
func (g *Graph) Len() int {
	return len(g.pending)
}

// Order returns the steps in the order a single worker completes them,
// always picking the alphabetically first available step.
func (g *Graph) Order() (string, error) {
	r := g.start()
	var order strings.Builder
	for r.ready.Len() > 0 {
		id := heap.Pop(&r.ready).(string)
		order.WriteString(id)
		r.finish(id)
	}
	if order.Len() != g.Len() {
		return "", fmt.Errorf("%w: %d of %d steps ordered", ErrCycle, order.Len(), g.Len())
	}
	return order.String(), nil
}

// Timeline is the result of working through the graph with a team.
type Timeline struct {
	// Seconds is when the last step completes.
	Seconds int
	// Order lists the steps by completion time; simultaneous completions
	// are listed alphabetically.
	Order string
}

// Schedule works through the graph with the given number of workers. Idle
// workers take the alphabetically first available step, and a step becomes
// available the moment its last prerequisite completes.
func (g *Graph) Schedule(workers, base int) (Timeline, error) {
	if workers <= 0 {
		return Timeline{}, fmt.Errorf("workers must be positive, got %d", workers)
	}

	type job struct {
		id   string
		done int
	}

	r := g.start()
	var (
		busy  []job
		order strings.Builder
		now   int
	)
	for {
		for len(busy) < workers && r.ready.Len() > 0 {
			id := heap.Pop(&r.ready).(string)
			busy = append(busy, job{id: id, done: now + Duration(id, base)})
		}
		if len(busy) == 0 {
			break
		}

		slices.SortFunc(busy, func(a, b job) int {
			if c := cmp.Compare(a.done, b.done); c != 0 {
				return c
			}
			return strings.Compare(a.id, b.id)
		})
		now = busy[0].done
		n := 0
		for n < len(busy) && busy[n].done == now {
			order.WriteString(busy[n].id)
			r.finish(busy[n].id)
			n++
		}
		busy = busy[n:]
	}

	if order.Len() != g.Len() {
		return Timeline{}, fmt.Errorf("%w: %d of %d steps completed", ErrCycle, order.Len(), g.Len())
	}
	return Timeline{Seconds: now, Order: order.String()}, nil
}

// run tracks the remaining prerequisites while walking a Graph.
type run struct {
	g       *Graph
	pending map[string]int
	ready   queue
}

func (g *Graph) start() *run {
	r := &run{g: g, pending: make(map[string]int, len(g.pending))}
	for id, n := range g.pending {
		r.pending[id] = n
		if n == 0 {
			r.ready = append(r.ready, id)
		}
	}
	heap.Init(&r.ready)
	return r
}

func (r *run) finish(id string) {
	for _, next := range r.g.next[id] {
		r.pending[next]--
		if r.pending[next] == 0 {
			heap.Push(&r.ready, next)
		}
	}
}

// queue is a min-heap of step ids.
type queue []string

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i] < q[j] }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x any) {
	*q = append(*q, x.(string))
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	id := old[n-1]
	*q = old[:n-1]
	return id
}
