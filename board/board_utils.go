package board

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Size returns the active board extent.
func (b *Board) Size() int { return b.size }

// MoveCount returns the number of moves currently on the history.
func (b *Board) MoveCount() int { return len(b.history) }

// LastMove returns the most recent history entry, if any.
func (b *Board) LastMove() (*Move, bool) {
	if len(b.history) == 0 {
		return nil, false
	}
	return b.history[len(b.history)-1], true
}

// DeadStones returns the cumulative captured-stone counts: stones of
// each color ever removed from the board.
func (b *Board) DeadStones() (black, white int) {
	return b.blackDead, b.whiteDead
}

// Ko returns the point the next move may not occupy, if any.
func (b *Board) Ko() (Point, bool) {
	return b.ko, b.hasKo
}

// At returns the intersection at the 1-indexed point (x, y). Out-of-range
// coordinates read as Empty.
func (b *Board) At(x, y int) Intersection {
	p := Point{x, y}
	if !b.inBounds(p) {
		return Intersection{}
	}
	return b.at(p)
}

// Grid returns a copy of the active size×size grid, indexed [x-1][y-1].
func (b *Board) Grid() [][]Intersection {
	grid := make([][]Intersection, b.size)
	for i := 0; i < b.size; i++ {
		grid[i] = make([]Intersection, b.size)
		copy(grid[i], b.grid[i][:b.size])
	}
	return grid
}

// Groups returns a deep copy of the live group table.
func (b *Board) Groups() map[GroupID]*Group {
	groups := make(map[GroupID]*Group, len(b.groups))
	for id, g := range b.groups {
		groups[id] = g.Copy()
	}
	return groups
}

// LibertiesOf returns the liberties of the group occupying (x, y), nil
// if the point is empty or out of range.
func (b *Board) LibertiesOf(x, y int) []Point {
	it := b.At(x, y)
	if !it.Occupied() {
		return nil
	}
	return b.groups[it.GID].Liberties()
}

// StoneLists returns every stone on the board by color, sorted, for
// protocol-level board reporting.
func (b *Board) StoneLists() (black, white []Point) {
	for x := 1; x <= b.size; x++ {
		for y := 1; y <= b.size; y++ {
			switch b.grid[x-1][y-1].Color {
			case Black:
				black = append(black, Point{x, y})
			case White:
				white = append(white, Point{x, y})
			}
		}
	}
	return black, white
}

// ToDisplayText draws the position as a text diagram, black as X and
// white as O, with the y axis growing upwards.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for y := b.size; y >= 1; y-- {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := 1; x <= b.size; x++ {
			switch b.grid[x-1][y-1].Color {
			case Black:
				sb.WriteString("X ")
			case White:
				sb.WriteString("O ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("   ")
	for x := 1; x <= b.size; x++ {
		sb.WriteString("--")
	}
	sb.WriteString("\n")
	return sb.String()
}

// Copy returns a deep copy of the board, history included.
func (b *Board) Copy() *Board {
	nb := &Board{
		grid:      b.grid,
		groups:    make(map[GroupID]*Group, len(b.groups)),
		history:   make([]*Move, len(b.history)),
		size:      b.size,
		blackDead: b.blackDead,
		whiteDead: b.whiteDead,
		ko:        b.ko,
		hasKo:     b.hasKo,
	}
	for id, g := range b.groups {
		nb.groups[id] = g.Copy()
	}
	for i, m := range b.history {
		nm := &Move{color: m.color, mtype: m.mtype, point: m.point}
		for _, cg := range m.captured {
			nm.captured = append(nm.captured, cg.Copy())
		}
		nb.history[i] = nm
	}
	return nb
}

// Equals checks the boards for equality of observable state: size,
// stone placement, group partition, dead counters and ko. Group ids are
// deliberately ignored; they carry no game meaning.
func (b *Board) Equals(b2 *Board) bool {
	if b.size != b2.size {
		log.Debug().Msgf("sizes don't match: %v %v", b.size, b2.size)
		return false
	}
	if b.blackDead != b2.blackDead || b.whiteDead != b2.whiteDead {
		log.Debug().Msgf("dead counters don't match: (%v,%v) (%v,%v)",
			b.blackDead, b.whiteDead, b2.blackDead, b2.whiteDead)
		return false
	}
	if b.hasKo != b2.hasKo || (b.hasKo && b.ko != b2.ko) {
		log.Debug().Msgf("ko doesn't match: %v,%v %v,%v", b.ko, b.hasKo, b2.ko, b2.hasKo)
		return false
	}
	for x := 1; x <= b.size; x++ {
		for y := 1; y <= b.size; y++ {
			it, it2 := b.grid[x-1][y-1], b2.grid[x-1][y-1]
			if it.Color != it2.Color {
				log.Debug().Msgf("colors not equal at (%v,%v): %v %v", x, y, it.Color, it2.Color)
				return false
			}
			if !it.Occupied() {
				continue
			}
			g, g2 := b.groups[it.GID], b2.groups[it2.GID]
			if !samePartition(g, g2) {
				log.Debug().Msgf("group partition differs at (%v,%v)", x, y)
				return false
			}
		}
	}
	return true
}

// samePartition reports whether two groups cover the same stones with
// the same liberties, regardless of id.
func samePartition(g, g2 *Group) bool {
	if g.StoneCount() != g2.StoneCount() || g.LibertyCount() != g2.LibertyCount() {
		return false
	}
	for p := range g.stones {
		if !g2.hasStone(p) {
			return false
		}
	}
	for p := range g.liberties {
		if _, ok := g2.liberties[p]; !ok {
			return false
		}
	}
	return true
}
