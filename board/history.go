package board

// MoveType distinguishes the two recordable actions.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypePass
)

// A Move is one history entry. Play entries carry the full pre-capture
// copy of every group the move removed, in capture order; Undo moves
// those copies back onto the board verbatim. Ownership of the captured
// groups transfers to the history when the move commits and back to the
// board when it is undone.
type Move struct {
	color    Color
	mtype    MoveType
	point    Point
	captured []*Group
}

func (m *Move) Color() Color { return m.color }

func (m *Move) Type() MoveType { return m.mtype }

// Point returns the placement coordinate. Only meaningful for
// MoveTypePlay entries.
func (m *Move) Point() Point { return m.point }

// CapturedCount returns the total number of stones this move captured.
func (m *Move) CapturedCount() int {
	n := 0
	for _, g := range m.captured {
		n += g.StoneCount()
	}
	return n
}
