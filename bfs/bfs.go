// Package bfs provides breadth-first search over a core.Snapshot,
// returning bond-count distances, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/stereo/core"
)

// queueItem pairs an atom with its BFS depth.
type queueItem struct {
	atom  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	s     *core.Snapshot
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on s starting from atom start.
// Returns ErrNilSnapshot or ErrStartAtomNotFound for invalid input, or any
// OnVisit error.
//
// Complexity: O(V + E).
func BFS(s *core.Snapshot, start int, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, ErrNilSnapshot
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if start < 0 || start >= s.AtomCount() {
		return nil, ErrStartAtomNotFound
	}

	w := newWalker(s, o)
	w.enqueue(start, 0, -1, -1)

	return w.res, w.loop()
}

// Components labels the atoms accepted by include with the id of their
// connected component, counting from 0 in order of the lowest atom index.
// Only bonds passing the FilterBond option are crossed; OnVisit still sees
// every visit. Excluded atoms get -1.
//
// Complexity: O(V + E).
func Components(s *core.Snapshot, include func(atom int) bool, opts ...Option) ([]int, error) {
	if s == nil {
		return nil, ErrNilSnapshot
	}
	base := DefaultOptions()
	for _, opt := range opts {
		opt(&base)
	}
	filter := WithFilterBond(func(bond, from, to int) bool {
		return include(to) && base.FilterBond(bond, from, to)
	})

	n := s.AtomCount()
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	next := 0
	for root := 0; root < n; root++ {
		if label[root] >= 0 || !include(root) {
			continue
		}
		id := next
		visit := WithOnVisit(func(atom, depth int) error {
			label[atom] = id
			return base.OnVisit(atom, depth)
		})
		run := append(append([]Option(nil), opts...), filter, visit)
		if _, err := BFS(s, root, run...); err != nil {
			return nil, err
		}
		next++
	}

	return label, nil
}

func newWalker(s *core.Snapshot, o Options) *walker {
	n := s.AtomCount()
	res := &Result{
		Order:      make([]int, 0, n),
		Depth:      make([]int, n),
		Parent:     make([]int, n),
		ParentBond: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i], res.Parent[i], res.ParentBond[i] = -1, -1, -1
	}

	return &walker{s: s, opts: o, queue: make([]queueItem, 0, n), res: res}
}

// enqueue marks atom visited at depth d and records its parent.
func (w *walker) enqueue(atom, d, parent, via int) {
	w.res.Depth[atom] = d
	w.res.Parent[atom] = parent
	w.res.ParentBond[atom] = via
	w.queue = append(w.queue, queueItem{atom: atom, depth: d})
}

// loop processes the queue until it is empty or OnVisit fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.atom)
		if err := w.opts.OnVisit(item.atom, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at atom %d: %w", item.atom, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and enqueues each unseen neighbour in
// bond insertion order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	nbrs := w.s.Neighbors(item.atom)
	for k, bi := range w.s.BondsOf(item.atom) {
		nbr := nbrs[k]
		if w.res.Depth[nbr] >= 0 || !w.opts.FilterBond(bi, item.atom, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.atom, bi)
	}
}
