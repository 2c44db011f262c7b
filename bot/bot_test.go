package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockgo/clockgo/board"
)

func TestGenMovePlaysALegalMove(t *testing.T) {
	b := board.New()
	require.True(t, b.Resize(5))
	s := New(0)

	p, ok := s.GenMove(b, board.Black)
	require.True(t, ok)
	assert.Equal(t, board.Black, b.At(p.X, p.Y).Color)
	assert.Equal(t, 1, b.MoveCount())
}

func TestGenMovePassesWhenNothingIsPlayable(t *testing.T) {
	b := board.New()
	require.True(t, b.Resize(1))
	s := New(0)

	// The only point on a 1×1 board is suicide, so the bot must pass.
	_, ok := s.GenMove(b, board.Black)
	assert.False(t, ok)
	assert.Equal(t, 1, b.MoveCount(), "the pass is recorded on the history")
}

func TestGenMoveEventuallyExhaustsTheBoard(t *testing.T) {
	b := board.New()
	require.True(t, b.Resize(3))
	s := New(4)

	color := board.Black
	played := 0
	for i := 0; i < 30; i++ {
		p, ok := s.GenMove(b, color)
		if ok {
			assert.True(t, p.X >= 1 && p.X <= 3 && p.Y >= 1 && p.Y <= 3)
			played++
		}
		color = color.Opponent()
	}
	// Every generated move was recorded, pass or not.
	assert.Equal(t, 30, b.MoveCount())
	assert.Greater(t, played, 0)
}
