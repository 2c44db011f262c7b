package board

import "sort"

// GroupID is an opaque index into a Board's group table. IDs are reused
// once a group is removed and carry no meaning beyond identity within a
// single board lifetime; they are never part of observable game state.
type GroupID int

// A Group is one connected chain of same-color stones together with its
// liberties, the empty points orthogonally adjacent to the chain. A
// group never touches the owning Board's grid; all grid mutation is the
// Board's responsibility.
type Group struct {
	id        GroupID
	color     Color
	stones    map[Point]struct{}
	liberties map[Point]struct{}
}

func newGroup(id GroupID, color Color) *Group {
	return &Group{
		id:        id,
		color:     color,
		stones:    make(map[Point]struct{}),
		liberties: make(map[Point]struct{}),
	}
}

func (g *Group) ID() GroupID { return g.id }

func (g *Group) Color() Color { return g.color }

func (g *Group) StoneCount() int { return len(g.stones) }

func (g *Group) LibertyCount() int { return len(g.liberties) }

// IsDead reports whether the group has no liberties left.
func (g *Group) IsDead() bool { return len(g.liberties) == 0 }

func (g *Group) hasStone(p Point) bool {
	_, ok := g.stones[p]
	return ok
}

// addStone makes p part of the chain. A point is never both a stone and
// a liberty, so it is dropped from the liberty set first.
func (g *Group) addStone(p Point) {
	delete(g.liberties, p)
	g.stones[p] = struct{}{}
}

func (g *Group) addLiberty(p Point) { g.liberties[p] = struct{}{} }

func (g *Group) removeLiberty(p Point) { delete(g.liberties, p) }

// absorb destructively merges other into g: stone and liberty sets are
// unioned, then any liberty that is now an owned stone is stripped.
func (g *Group) absorb(other *Group) {
	for p := range other.stones {
		g.stones[p] = struct{}{}
	}
	for p := range other.liberties {
		g.liberties[p] = struct{}{}
	}
	for p := range g.stones {
		delete(g.liberties, p)
	}
}

// soleStone returns the group's only stone. Callers must have checked
// that the group holds exactly one.
func (g *Group) soleStone() Point {
	for p := range g.stones {
		return p
	}
	return Point{}
}

// Stones returns a sorted copy of the group's stone coordinates.
func (g *Group) Stones() []Point {
	return sortedPoints(g.stones)
}

// Liberties returns a sorted copy of the group's liberty coordinates.
func (g *Group) Liberties() []Point {
	return sortedPoints(g.liberties)
}

// Copy returns a deep copy of the group, detached from any board.
func (g *Group) Copy() *Group {
	ng := newGroup(g.id, g.color)
	for p := range g.stones {
		ng.stones[p] = struct{}{}
	}
	for p := range g.liberties {
		ng.liberties[p] = struct{}{}
	}
	return ng
}

func sortedPoints(set map[Point]struct{}) []Point {
	ps := make([]Point, 0, len(set))
	for p := range set {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].X != ps[j].X {
			return ps[i].X < ps[j].X
		}
		return ps[i].Y < ps[j].Y
	})
	return ps
}
