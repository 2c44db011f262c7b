package board

const (
	// MaxBoardDim is the largest supported board extent.
	MaxBoardDim = 25
	// DefaultBoardDim is the size of a freshly constructed board.
	DefaultBoardDim = 19
)

// Point is a 1-indexed board coordinate; X and Y are in [1, size].
type Point struct {
	X, Y int
}

// neighbors appends to buf the in-bounds orthogonal neighbors of p on a
// size×size board and returns the result. Candidates are collected up
// front so callers are free to mutate the grid and the group table while
// ranging over them.
func neighbors(p Point, size int, buf []Point) []Point {
	if p.X > 1 {
		buf = append(buf, Point{p.X - 1, p.Y})
	}
	if p.Y > 1 {
		buf = append(buf, Point{p.X, p.Y - 1})
	}
	if p.X < size {
		buf = append(buf, Point{p.X + 1, p.Y})
	}
	if p.Y < size {
		buf = append(buf, Point{p.X, p.Y + 1})
	}
	return buf
}
