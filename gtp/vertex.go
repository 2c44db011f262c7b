package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clockgo/clockgo/board"
)

// GTP vertices are a column letter (A upward, skipping I) followed by a
// 1-indexed row number, e.g. D4 or T19, or the word "pass".

// FormatVertex renders a board point as a GTP vertex.
func FormatVertex(p board.Point) string {
	c := rune('A' + p.X - 1)
	if p.X >= 9 {
		c++ // no I column
	}
	return fmt.Sprintf("%c%d", c, p.Y)
}

// ParseVertex parses a GTP vertex within a size×size board. The second
// return is true when the vertex is a pass.
func ParseVertex(s string, size int) (board.Point, bool, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "PASS" {
		return board.Point{}, true, nil
	}
	if len(s) < 2 {
		return board.Point{}, false, fmt.Errorf("invalid vertex %q", s)
	}
	c := rune(s[0])
	if c < 'A' || c > 'Z' || c == 'I' {
		return board.Point{}, false, fmt.Errorf("invalid column in vertex %q", s)
	}
	x := int(c-'A') + 1
	if c > 'I' {
		x--
	}
	y, err := strconv.Atoi(s[1:])
	if err != nil {
		return board.Point{}, false, fmt.Errorf("invalid row in vertex %q", s)
	}
	if x < 1 || x > size || y < 1 || y > size {
		return board.Point{}, false, fmt.Errorf("vertex %q is outside the board", s)
	}
	return board.Point{X: x, Y: y}, false, nil
}

// ParseColor parses a GTP color argument (b/black/w/white).
func ParseColor(s string) (board.Color, error) {
	switch strings.ToLower(s) {
	case "b", "black":
		return board.Black, nil
	case "w", "white":
		return board.White, nil
	}
	return board.Empty, fmt.Errorf("invalid color %q", s)
}
