package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestNewBoard(t *testing.T) {
	is := is.New(t)
	b := New()
	is.Equal(b.Size(), 19)
	is.Equal(b.MoveCount(), 0)
	black, white := b.DeadStones()
	is.Equal(black, 0)
	is.Equal(white, 0)
	_, hasKo := b.Ko()
	is.True(!hasKo)
}

func TestPlaySimple(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Play(Black, 3, 3))
	is.Equal(b.At(3, 3).Color, Black)
	is.Equal(b.MoveCount(), 1)
	is.Equal(len(b.LibertiesOf(3, 3)), 4)
}

func TestPlayRejections(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Play(Black, 3, 3))

	is.True(!b.Play(White, 3, 3)) // occupied
	is.True(!b.Play(White, 0, 3)) // out of range
	is.True(!b.Play(White, 3, 0))
	is.True(!b.Play(White, 20, 3))
	is.Equal(b.MoveCount(), 1) // rejections never reach the history
}

func TestEdgeAndCornerLiberties(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(5))

	is.True(b.Play(Black, 1, 1))
	is.Equal(len(b.LibertiesOf(1, 1)), 2)

	is.True(b.Play(White, 3, 1))
	is.Equal(len(b.LibertiesOf(3, 1)), 3)
}

func TestMergeIntoSingleGroup(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(9))

	is.True(b.Play(Black, 2, 2))
	is.True(b.Play(Black, 4, 2))
	is.Equal(len(b.Groups()), 2)

	// Bridging stone fuses both chains into one group.
	is.True(b.Play(Black, 3, 2))
	groups := b.Groups()
	is.Equal(len(groups), 1)
	for _, g := range groups {
		is.Equal(g.StoneCount(), 3)
		is.Equal(g.LibertyCount(), 8)
	}
}

func TestUnionBySizeKeepsLargerID(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(9))

	is.True(b.Play(Black, 2, 2))
	is.True(b.Play(Black, 3, 2))
	bigID := b.At(2, 2).GID

	// A fresh singleton merging into the two-stone chain is absorbed by
	// it, not the other way around.
	is.True(b.Play(Black, 4, 2))
	is.Equal(b.At(4, 2).GID, bigID)
}

func TestGroupIDReuse(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(5))

	is.True(b.Play(White, 1, 1))
	is.True(b.Play(Black, 2, 1))
	is.True(b.Play(Black, 1, 2)) // captures the corner stone

	// The captured group's id is the smallest free one again.
	is.True(b.Play(White, 5, 5))
	ids := make(map[GroupID]bool)
	for id := range b.Groups() {
		ids[id] = true
	}
	is.Equal(len(ids), 3)
	is.True(ids[0] && ids[1] && ids[2])
}

func TestCaptureScenarioFiveByFive(t *testing.T) {
	// The reference capture sequence: white 2,2 surrounded by four black
	// plays; the fourth captures.
	is := is.New(t)
	b := New()
	is.True(b.Resize(5))

	is.True(b.Play(White, 2, 2))
	is.True(b.Play(Black, 2, 1))
	is.True(b.Play(Black, 1, 2))
	is.True(b.Play(Black, 3, 2))

	blackDead, whiteDead := b.DeadStones()
	is.Equal(whiteDead, 0)

	is.True(b.Play(Black, 2, 3))
	is.True(!b.At(2, 2).Occupied())
	blackDead, whiteDead = b.DeadStones()
	is.Equal(whiteDead, 1)
	is.Equal(blackDead, 0)

	// The vacated point is a liberty of every black neighbor chain.
	for _, pt := range []Point{{2, 1}, {1, 2}, {3, 2}, {2, 3}} {
		libs := b.LibertiesOf(pt.X, pt.Y)
		found := false
		for _, l := range libs {
			if l == (Point{2, 2}) {
				found = true
			}
		}
		is.True(found)
	}

	is.True(b.Undo())
	is.Equal(b.At(2, 2).Color, White)
	is.True(!b.At(2, 3).Occupied())
	_, whiteDead = b.DeadStones()
	is.Equal(whiteDead, 0)
}

func TestMultiStoneCaptureCountsAllStones(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(5))

	// Two connected white stones on the edge.
	is.True(b.Play(White, 2, 1))
	is.True(b.Play(White, 3, 1))

	is.True(b.Play(Black, 1, 1))
	is.True(b.Play(Black, 4, 1))
	is.True(b.Play(Black, 2, 2))
	is.True(b.Play(Black, 3, 2))

	is.True(!b.At(2, 1).Occupied())
	is.True(!b.At(3, 1).Occupied())
	_, whiteDead := b.DeadStones()
	is.Equal(whiteDead, 2)
}

func TestNoZeroLibertySurvivors(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(5))

	moves := []struct {
		c    Color
		x, y int
	}{
		{White, 2, 2}, {Black, 2, 1}, {White, 3, 3}, {Black, 1, 2},
		{Black, 3, 2}, {White, 4, 4}, {Black, 2, 3},
	}
	for _, m := range moves {
		if b.Play(m.c, m.x, m.y) {
			for _, g := range b.Groups() {
				is.True(g.LibertyCount() > 0)
			}
		}
	}
}

func TestSuicideRejected(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(5))

	is.True(b.Play(White, 1, 2))
	is.True(b.Play(White, 2, 1))

	before := b.Copy()
	is.True(!b.Play(Black, 1, 1))
	is.True(b.Equals(before))
	is.Equal(b.MoveCount(), 2)
}

func TestSuicideOfWholeChainRejected(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(5))

	// Black corner stone with one friendly neighbor; white walls off
	// every outside liberty. Black filling the last own liberty would
	// kill the whole chain.
	is.True(b.Play(Black, 1, 1))
	is.True(b.Play(White, 1, 2))
	is.True(b.Play(White, 2, 2))
	is.True(b.Play(White, 3, 1))

	before := b.Copy()
	is.True(!b.Play(Black, 2, 1))
	is.True(b.Equals(before))
}

func TestCapturingOnLastLibertyIsNotSuicide(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(5))

	// White corner stone at 1,1 with a single liberty; black playing
	// that liberty has no liberties of its own until the capture frees
	// the corner.
	is.True(b.Play(White, 1, 1))
	is.True(b.Play(White, 2, 2))
	is.True(b.Play(White, 1, 3))
	is.True(b.Play(Black, 2, 1))

	is.True(b.Play(Black, 1, 2)) // captures 1,1
	is.True(!b.At(1, 1).Occupied())
	is.Equal(len(b.LibertiesOf(1, 2)), 1)
}

func TestSimpleKo(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(5))

	// Ko shape around the points 2,2 and 3,2.
	is.True(b.Play(Black, 1, 2))
	is.True(b.Play(Black, 2, 1))
	is.True(b.Play(Black, 2, 3))
	is.True(b.Play(White, 4, 2))
	is.True(b.Play(White, 3, 1))
	is.True(b.Play(White, 3, 3))

	is.True(b.Play(White, 2, 2))
	is.True(b.Play(Black, 3, 2)) // captures 2,2, creating the ko

	ko, hasKo := b.Ko()
	is.True(hasKo)
	is.Equal(ko, Point{2, 2})

	// Immediate recapture is barred.
	is.True(!b.Play(White, 2, 2))

	// Any intervening move lifts the restriction.
	is.True(b.Play(White, 5, 5))
	_, hasKo = b.Ko()
	is.True(!hasKo)
	is.True(b.Play(White, 2, 2))
}

func TestPassClearsKo(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(5))

	is.True(b.Play(Black, 1, 2))
	is.True(b.Play(Black, 2, 1))
	is.True(b.Play(Black, 2, 3))
	is.True(b.Play(White, 4, 2))
	is.True(b.Play(White, 3, 1))
	is.True(b.Play(White, 3, 3))
	is.True(b.Play(White, 2, 2))
	is.True(b.Play(Black, 3, 2))

	_, hasKo := b.Ko()
	is.True(hasKo)

	b.Pass(White)
	_, hasKo = b.Ko()
	is.True(!hasKo)
	is.True(b.Play(White, 2, 2))
}

func TestNoKoOnMultiStoneCapture(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(5))

	is.True(b.Play(White, 2, 1))
	is.True(b.Play(White, 3, 1))
	is.True(b.Play(Black, 1, 1))
	is.True(b.Play(Black, 2, 2))
	is.True(b.Play(Black, 3, 2))
	is.True(b.Play(Black, 4, 1)) // captures both white stones

	_, hasKo := b.Ko()
	is.True(!hasKo)
}

func TestResizeGuards(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Play(Black, 3, 3))

	before := b.Copy()
	is.True(!b.Resize(0))
	is.True(!b.Resize(26))
	is.True(b.Equals(before))
	is.Equal(b.Size(), 19)

	is.True(b.Resize(9))
	is.Equal(b.Size(), 9)
	is.Equal(b.MoveCount(), 0)
	is.True(!b.At(3, 3).Occupied())
	is.Equal(len(b.Groups()), 0)
}

func TestClearKeepsSize(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(13))
	is.True(b.Play(Black, 3, 3))
	b.Pass(White)

	b.Clear()
	is.Equal(b.Size(), 13)
	is.Equal(b.MoveCount(), 0)
	is.True(!b.At(3, 3).Occupied())
	black, white := b.DeadStones()
	is.Equal(black, 0)
	is.Equal(white, 0)
}

func TestHistoryRecords(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(5))

	_, ok := b.LastMove()
	is.True(!ok)

	is.True(b.Play(White, 2, 2))
	m, ok := b.LastMove()
	is.True(ok)
	is.Equal(m.Color(), White)
	is.Equal(m.Type(), MoveTypePlay)
	is.Equal(m.Point(), Point{2, 2})
	is.Equal(m.CapturedCount(), 0)

	b.Pass(Black)
	m, _ = b.LastMove()
	is.Equal(m.Type(), MoveTypePass)

	is.True(b.Play(Black, 2, 1))
	is.True(b.Play(Black, 1, 2))
	is.True(b.Play(Black, 3, 2))
	is.True(b.Play(Black, 2, 3)) // captures 2,2
	m, _ = b.LastMove()
	is.Equal(m.CapturedCount(), 1)
}

func TestStoneLists(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(b.Resize(5))
	is.True(b.Play(Black, 1, 1))
	is.True(b.Play(White, 5, 5))
	is.True(b.Play(Black, 2, 4))

	black, white := b.StoneLists()
	is.Equal(black, []Point{{1, 1}, {2, 4}})
	is.Equal(white, []Point{{5, 5}})
}
