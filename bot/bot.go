// Package bot implements a move generator that plays randomly but still
// follows the rules. It drives the board only through Play and Pass and
// has no privileged view of groups or liberties.
package bot

import (
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/clockgo/clockgo/board"
)

// DefaultTries is how many random vertices are attempted before falling
// back to a deterministic scan.
const DefaultTries = 10

// Searcher generates legal moves for a color on a given board.
type Searcher struct {
	tries int
}

// New returns a searcher attempting the given number of random vertices
// per move; non-positive means DefaultTries.
func New(tries int) *Searcher {
	if tries <= 0 {
		tries = DefaultTries
	}
	return &Searcher{tries: tries}
}

// GenMove plays a legal move for color on b and returns its coordinate.
// When no legal move exists anywhere a pass is recorded instead and the
// second return is false.
func (s *Searcher) GenMove(b *board.Board, color board.Color) (board.Point, bool) {
	size := b.Size()
	for i := 0; i < s.tries; i++ {
		x := frand.Intn(size) + 1
		y := frand.Intn(size) + 1
		if b.Play(color, x, y) {
			return board.Point{X: x, Y: y}, true
		}
	}

	// Random placement keeps hitting illegal points; sweep the whole
	// board for anything playable.
	for x := 1; x <= size; x++ {
		for y := 1; y <= size; y++ {
			if b.Play(color, x, y) {
				return board.Point{X: x, Y: y}, true
			}
		}
	}

	log.Debug().Stringer("color", color).Msg("no legal move, passing")
	b.Pass(color)
	return board.Point{}, false
}
