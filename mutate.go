package grid

import "fmt"

// Mutations change the item sequence of a live grid. Each one invalidates the
// grids it touches; geometry is recomputed on the next RequestLayout. Callers
// must not mutate a grid from inside a measurement it is driving.

// Insert splices items into the sequence before index. An index outside
// [0, Len) appends. Each content is attached to the backend.
func (g *Grid) Insert(index int, items ...*Item) {
	g.validateInsert(items)
	if index < 0 || index > len(g.items) {
		index = len(g.items)
	}
	for i, it := range items {
		g.insertAt(index+i, it)
	}
	g.Invalidate()
}

// Append adds items to the end of the sequence.
func (g *Grid) Append(items ...*Item) {
	g.Insert(len(g.items), items...)
}

// Remove takes the item holding c out of whichever grid in this tree owns it.
// The item's geometry is released and its content detached from the backend.
// The returned item may be inserted again.
func (g *Grid) Remove(c Content) *Item {
	owner, i, ok := g.Find(c)
	if !ok {
		panic(fmt.Sprintf("grid: remove: %s is not in the grid", describe(c)))
	}
	it := owner.removeAt(i)
	owner.Invalidate()
	return it
}

// Swap exchanges the positions of a and b anywhere in this tree. When both
// belong to the same grid their positions are exchanged; otherwise each moves
// into the other's grid at the other's former index.
func (g *Grid) Swap(a, b Content) {
	ga, ia, ok := g.Find(a)
	if !ok {
		panic(fmt.Sprintf("grid: swap: %s is not in the grid", describe(a)))
	}
	gb, ib, ok := g.Find(b)
	if !ok {
		panic(fmt.Sprintf("grid: swap: %s is not in the grid", describe(b)))
	}
	if ga == gb {
		if ia != ib {
			ga.items[ia], ga.items[ib] = ga.items[ib], ga.items[ia]
			ga.Invalidate()
		}
		return
	}

	if n, ok := nestedGrid(a); ok && n.contains(gb) {
		panic(fmt.Sprintf("grid: swap: %s would be nested inside itself", describe(a)))
	}
	if n, ok := nestedGrid(b); ok && n.contains(ga) {
		panic(fmt.Sprintf("grid: swap: %s would be nested inside itself", describe(b)))
	}

	itA := ga.removeAt(ia)
	itB := gb.removeAt(ib)
	gb.insertAt(ib, itA)
	ga.insertAt(ia, itB)
	ga.Invalidate()
	gb.Invalidate()
}

// SetAlignment replaces the item holding c with the one build returns for it.
// build must return a new item for the same content.
func (g *Grid) SetAlignment(c Content, build func(Content) *Item) {
	owner, i, ok := g.Find(c)
	if !ok {
		panic(fmt.Sprintf("grid: set alignment: %s is not in the grid", describe(c)))
	}
	it := build(c)
	switch {
	case it == nil:
		panic("grid: set alignment: builder returned nil")
	case it.content != c:
		panic(fmt.Sprintf("grid: set alignment: builder returned %s for %s",
			describe(it.content), describe(c)))
	case it.owner != nil:
		panic(fmt.Sprintf("grid: set alignment: item for %s already belongs to a grid", describe(c)))
	}

	old := owner.items[i]
	owner.backend.ReleaseGeometry(owner, c)
	old.owner = nil
	it.owner = owner
	owner.items[i] = it
	owner.Invalidate()
}

// Find locates c in this grid or any grid nested in it, depth-first in item
// order. It returns the owning grid and the item's index there.
func (g *Grid) Find(c Content) (*Grid, int, bool) {
	for i, it := range g.items {
		if it.content == c {
			return g, i, true
		}
		if n, ok := nestedGrid(it.content); ok {
			if owner, j, found := n.Find(c); found {
				return owner, j, true
			}
		}
	}
	return nil, 0, false
}

func (g *Grid) validateInsert(items []*Item) {
	root := g.root()
	seen := make(map[Content]bool, len(items))
	for _, it := range items {
		if it == nil {
			panic("grid: insert: nil item")
		}
		if it.owner != nil {
			panic(fmt.Sprintf("grid: insert: item for %s already belongs to a grid", describe(it.content)))
		}
		if n, ok := nestedGrid(it.content); ok {
			if n.contains(g) {
				panic(fmt.Sprintf("grid: insert: %s would be nested inside itself", describe(n)))
			}
			if n.parent != nil {
				panic(fmt.Sprintf("grid: insert: %s is already nested in %s", describe(n), describe(n.parent)))
			}
		}
		// A nested grid brings its whole subtree along, so every content in it
		// must be new to this tree as well.
		walkContents(it.content, func(c Content) {
			if seen[c] {
				panic(fmt.Sprintf("grid: insert: %s appears twice", describe(c)))
			}
			seen[c] = true
			if _, _, found := root.Find(c); found {
				panic(fmt.Sprintf("grid: insert: %s is already in the grid", describe(c)))
			}
		})
	}
}

// walkContents calls fn for c and, when c is a grid, for every content nested
// in it, depth-first in item order.
func walkContents(c Content, fn func(Content)) {
	fn(c)
	if n, ok := nestedGrid(c); ok {
		for _, it := range n.items {
			walkContents(it.content, fn)
		}
	}
}

// insertAt splices a validated item in at i and attaches it.
func (g *Grid) insertAt(i int, it *Item) {
	if i < 0 || i > len(g.items) {
		i = len(g.items)
	}
	g.items = append(g.items, nil)
	copy(g.items[i+1:], g.items[i:])
	g.items[i] = it
	it.owner = g

	if n, ok := nestedGrid(it.content); ok {
		n.parent = g
		n.adopt(g)
	}
	g.backend.Attach(g, it.content)
}

// removeAt takes the item at i out of the sequence and detaches it.
func (g *Grid) removeAt(i int) *Item {
	it := g.items[i]
	g.backend.ReleaseGeometry(g, it.content)
	g.backend.Detach(g, it.content)
	g.items = append(g.items[:i], g.items[i+1:]...)

	it.owner = nil
	it.geometry = Geometry{}
	it.spacing = Edges{}
	if n, ok := nestedGrid(it.content); ok {
		n.parent = nil
	}
	return it
}

// adopt takes on p's backend, logger and meter wherever g was not configured
// with its own, and passes them on to grids nested in g.
func (g *Grid) adopt(p *Grid) {
	if !g.ownLogger {
		g.logger = p.logger
	}
	if !g.ownMeter {
		g.metrics = p.metrics
	}
	if !g.ownBackend {
		for _, it := range g.items {
			g.backend.Detach(g, it.content)
		}
		g.backend = p.backend
		for _, it := range g.items {
			g.backend.Attach(g, it.content)
		}
	}
	for _, it := range g.items {
		if n, ok := nestedGrid(it.content); ok {
			n.adopt(g)
		}
	}
}

// contains reports whether other is g or nested somewhere inside g.
func (g *Grid) contains(other *Grid) bool {
	for p := other; p != nil; p = p.parent {
		if p == g {
			return true
		}
	}
	return false
}

func (g *Grid) root() *Grid {
	r := g
	for r.parent != nil {
		r = r.parent
	}
	return r
}
