// Package board implements the rules core of a Go engine: a stone grid
// with dynamic group (chain) maintenance, liberty bookkeeping, automatic
// capture, suicide and simple-ko rejection, and exact move undo. The
// package is fully synchronous; a Board expects one driver issuing one
// call at a time, and every mutating call either commits completely or
// leaves no observable change.
package board

import (
	"github.com/rs/zerolog/log"
)

// Color is the state of an intersection owner. The zero value is Empty
// so a zeroed grid is an empty grid.
type Color int8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other stone color.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// Intersection is the state of a single grid cell: Empty, or a stone of
// some color belonging to a group. GID is meaningful only when occupied.
type Intersection struct {
	Color Color
	GID   GroupID
}

// Occupied reports whether a stone sits on this intersection.
func (it Intersection) Occupied() bool { return it.Color != Empty }

// Board owns the grid, the group table, the move history, the per-color
// dead-stone counters and the active ko point. All mutation goes through
// Play, Pass, Undo, Clear and Resize.
type Board struct {
	grid      [MaxBoardDim][MaxBoardDim]Intersection
	groups    map[GroupID]*Group
	history   []*Move
	size      int
	blackDead int
	whiteDead int
	ko        Point
	hasKo     bool
}

// New returns an empty board of the default size.
func New() *Board {
	return &Board{
		groups: make(map[GroupID]*Group),
		size:   DefaultBoardDim,
	}
}

func (b *Board) at(p Point) Intersection {
	return b.grid[p.X-1][p.Y-1]
}

func (b *Board) set(p Point, it Intersection) {
	b.grid[p.X-1][p.Y-1] = it
}

func (b *Board) inBounds(p Point) bool {
	return p.X >= 1 && p.X <= b.size && p.Y >= 1 && p.Y <= b.size
}

// nextGID returns the smallest id not currently in the group table.
// Linear in the number of live groups, which is fine at board scale.
func (b *Board) nextGID() GroupID {
	for id := GroupID(0); ; id++ {
		if _, ok := b.groups[id]; !ok {
			return id
		}
	}
}

// Play places a stone for color at the 1-indexed point (x, y). It
// returns false, with no state change and nothing pushed to history, if
// the point is out of range or occupied, if it is the active ko point,
// or if the placement would be suicide. On success the move, together
// with every group it captured, is pushed onto the history.
func (b *Board) Play(color Color, x, y int) bool {
	p := Point{x, y}
	if !b.inBounds(p) || b.at(p).Occupied() {
		return false
	}
	if b.hasKo && b.ko == p {
		return false
	}

	gid := b.nextGID()
	b.set(p, Intersection{Color: color, GID: gid})
	ng := newGroup(gid, color)
	ng.addStone(p)
	b.groups[gid] = ng

	var nbuf [4]Point
	nbs := neighbors(p, b.size, nbuf[:0])

	// The new stone fills a liberty of every adjacent group, friend or
	// foe.
	for _, n := range nbs {
		if it := b.at(n); it.Occupied() && it.GID != gid {
			b.groups[it.GID].removeLiberty(p)
		}
	}

	// Capture any opposing group that just lost its last liberty. A
	// captured group's cells read Empty afterwards, so a group reachable
	// through two neighbors is only processed once.
	var captured []*Group
	capturedStones := 0
	for _, n := range nbs {
		it := b.at(n)
		if !it.Occupied() || it.Color == color {
			continue
		}
		if g := b.groups[it.GID]; g.IsDead() {
			b.capture(g)
			captured = append(captured, g)
			capturedStones += g.StoneCount()
		}
	}

	// Nothing captured: the placement may be suicide. Roll the grid and
	// the neighbor liberties back before anything reaches the history.
	if capturedStones == 0 && b.wouldBeSuicide(color, nbs) {
		b.set(p, Intersection{})
		delete(b.groups, gid)
		for _, n := range nbs {
			if it := b.at(n); it.Occupied() {
				b.groups[it.GID].addLiberty(p)
			}
		}
		return false
	}

	// Empty neighbors, including any points just vacated by a capture,
	// become liberties of the new stone.
	for _, n := range nbs {
		if !b.at(n).Occupied() {
			ng.addLiberty(n)
		}
	}

	// Merge with friendly neighbor chains. The merged group's id can
	// change on every fuse, so it is re-read from the grid.
	for _, n := range nbs {
		it := b.at(n)
		if it.Occupied() && it.Color == color && it.GID != b.at(p).GID {
			b.fuse(p, n)
		}
	}

	b.history = append(b.history, &Move{
		color:    color,
		mtype:    MoveTypePlay,
		point:    p,
		captured: captured,
	})
	b.recomputeKo()
	return true
}

// Pass records a pass for color. Passing always succeeds and clears any
// active ko restriction; the restriction is only ever valid immediately
// after the capturing move.
func (b *Board) Pass(color Color) {
	b.hasKo = false
	b.history = append(b.history, &Move{color: color, mtype: MoveTypePass})
}

// Undo reverses the most recent Play or Pass exactly: grid, group
// partition, dead-stone counters and ko all return to their prior
// values. It returns false only when the history is empty.
func (b *Board) Undo() bool {
	if len(b.history) == 0 {
		return false
	}
	m := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	if m.mtype == MoveTypePlay {
		b.unplace(m)
	}
	b.recomputeKo()
	return true
}

// Clear wipes stones, groups, history, counters and ko, keeping the
// current size.
func (b *Board) Clear() {
	b.grid = [MaxBoardDim][MaxBoardDim]Intersection{}
	b.groups = make(map[GroupID]*Group)
	b.history = b.history[:0]
	b.blackDead = 0
	b.whiteDead = 0
	b.hasKo = false
}

// Resize clears the board and sets a new size. Sizes outside
// [1, MaxBoardDim] are rejected with no state change.
func (b *Board) Resize(n int) bool {
	if n < 1 || n > MaxBoardDim {
		return false
	}
	b.Clear()
	b.size = n
	log.Debug().Int("size", n).Msg("board resized")
	return true
}

// capture erases g's stones from the grid, credits every vacated point
// as a liberty to each surviving adjacent group of either color, removes
// g from the table, and accrues g's stones to its color's dead counter.
// The caller takes ownership of g for the history record; its (empty)
// liberty set is kept verbatim for restoration.
func (b *Board) capture(g *Group) {
	for s := range g.stones {
		b.set(s, Intersection{})
	}
	var nbuf [4]Point
	for s := range g.stones {
		for _, n := range neighbors(s, b.size, nbuf[:0]) {
			if it := b.at(n); it.Occupied() {
				b.groups[it.GID].addLiberty(s)
			}
		}
	}
	delete(b.groups, g.id)
	switch g.color {
	case Black:
		b.blackDead += g.StoneCount()
	case White:
		b.whiteDead += g.StoneCount()
	}
	log.Debug().Int("stones", g.StoneCount()).Stringer("color", g.color).
		Msg("group captured")
}

// wouldBeSuicide reports whether the stone just placed would leave its
// own merged chain without a liberty. The placed point has already been
// removed from every adjacent group's liberty set, so a friendly
// neighbor with any liberty left keeps the chain alive.
func (b *Board) wouldBeSuicide(color Color, nbs []Point) bool {
	for _, n := range nbs {
		it := b.at(n)
		if !it.Occupied() {
			return false
		}
		if it.Color == color && b.groups[it.GID].LibertyCount() > 0 {
			return false
		}
	}
	return true
}

// fuse merges the chains at p1 and p2 into one group, the larger by
// stone count absorbing the smaller to bound amortized relabeling work.
func (b *Board) fuse(p1, p2 Point) {
	g1 := b.groups[b.at(p1).GID]
	g2 := b.groups[b.at(p2).GID]
	if g1.id == g2.id {
		return
	}
	if g2.StoneCount() > g1.StoneCount() {
		g1, g2 = g2, g1
	}
	for s := range g2.stones {
		it := b.at(s)
		it.GID = g1.id
		b.set(s, it)
	}
	g1.absorb(g2)
	delete(b.groups, g2.id)
}

// unplace reverses a play: removes the stone, splits what is left of its
// chain back into connected components, restores the captured groups and
// re-credits the freed point as a liberty. A grid/group mismatch here is
// a corrupted board; there is no recovery from that.
func (b *Board) unplace(m *Move) {
	p := m.point
	it := b.at(p)
	if !it.Occupied() {
		log.Panic().Int("x", p.X).Int("y", p.Y).Msg("undo: no stone at move point")
	}
	g, ok := b.groups[it.GID]
	if !ok || !g.hasStone(p) {
		log.Panic().Int("gid", int(it.GID)).Msg("undo: grid and group table disagree")
	}
	b.set(p, Intersection{})
	delete(b.groups, g.id)

	// The removed stone may have been an articulation point of its
	// chain; rebuild the remainder as one fresh group per connected
	// component.
	b.splitGroup(g)

	// Captured groups come back in their original capture order. This
	// runs after the split so their stones reclaim the phantom liberties
	// the fragments just picked up.
	for _, cg := range m.captured {
		b.restore(cg, p)
	}

	// p is empty again: a liberty of every adjacent surviving group.
	var nbuf [4]Point
	for _, n := range neighbors(p, b.size, nbuf[:0]) {
		if it := b.at(n); it.Occupied() {
			b.groups[it.GID].addLiberty(p)
		}
	}
}

// splitGroup rebuilds the on-grid remnant of g as one fresh group per
// connected component. The flood fill runs on an explicit worklist and
// is confined to stones that belonged to g; liberties are recomputed
// from scratch off the current grid.
func (b *Board) splitGroup(g *Group) {
	seen := make(map[Point]struct{}, g.StoneCount())
	var nbuf [4]Point
	for s := range g.stones {
		if !b.at(s).Occupied() {
			continue // the unplayed stone itself
		}
		if _, done := seen[s]; done {
			continue
		}
		gid := b.nextGID()
		ng := newGroup(gid, g.color)
		b.groups[gid] = ng

		work := []Point{s}
		seen[s] = struct{}{}
		for len(work) > 0 {
			cur := work[len(work)-1]
			work = work[:len(work)-1]
			ng.addStone(cur)
			b.set(cur, Intersection{Color: g.color, GID: gid})
			for _, n := range neighbors(cur, b.size, nbuf[:0]) {
				if !g.hasStone(n) || !b.at(n).Occupied() {
					continue
				}
				if _, done := seen[n]; done {
					continue
				}
				seen[n] = struct{}{}
				work = append(work, n)
			}
		}
		for st := range ng.stones {
			for _, n := range neighbors(st, b.size, nbuf[:0]) {
				if !b.at(n).Occupied() {
					ng.addLiberty(n)
				}
			}
		}
	}
}

// restore re-places a captured group on the grid under a fresh id,
// carrying over its stored liberty set plus the point freed by the
// unplayed stone. Every coordinate the group reoccupies stops being a
// liberty of its neighbors, and its stones are refunded from the dead
// counter.
func (b *Board) restore(cg *Group, freed Point) {
	gid := b.nextGID()
	ng := newGroup(gid, cg.color)
	for s := range cg.stones {
		if b.at(s).Occupied() {
			log.Panic().Int("x", s.X).Int("y", s.Y).Msg("undo: captured stone's point is occupied")
		}
		ng.stones[s] = struct{}{}
		b.set(s, Intersection{Color: cg.color, GID: gid})
	}
	for l := range cg.liberties {
		ng.liberties[l] = struct{}{}
	}
	ng.addLiberty(freed)
	b.groups[gid] = ng

	var nbuf [4]Point
	for s := range ng.stones {
		for _, n := range neighbors(s, b.size, nbuf[:0]) {
			if it := b.at(n); it.Occupied() && it.GID != gid {
				b.groups[it.GID].removeLiberty(s)
			}
		}
	}

	switch cg.color {
	case Black:
		b.blackDead -= ng.StoneCount()
	case White:
		b.whiteDead -= ng.StoneCount()
	}
}

// recomputeKo re-derives the ko point from the move on top of the
// history: a play that captured exactly one single-stone group and whose
// own stone now sits alone with a single liberty bars an immediate
// recapture at the captured point. Anything else clears the restriction.
func (b *Board) recomputeKo() {
	b.hasKo = false
	if len(b.history) == 0 {
		return
	}
	m := b.history[len(b.history)-1]
	if m.mtype != MoveTypePlay || m.CapturedCount() != 1 {
		return
	}
	cg := m.captured[0]
	it := b.at(m.point)
	if !it.Occupied() {
		return
	}
	g := b.groups[it.GID]
	if g.StoneCount() == 1 && g.LibertyCount() == 1 {
		b.ko = cg.soleStone()
		b.hasKo = true
	}
}
