package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard_Contains(t *testing.T) {
	board := DefaultBoard()

	assert.True(t, board.Contains(Position{0, 0}))
	assert.True(t, board.Contains(Position{2, 2}))
	assert.False(t, board.Contains(Position{3, 0}))
	assert.False(t, board.Contains(Position{0, -1}))
}

func TestBoard_Tiles(t *testing.T) {
	board := DefaultBoard()

	assert.Equal(t, Position{0, 0}, board.StartingTile())
	assert.Equal(t, Position{2, 2}, board.FinalTile())
}

func TestAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want bool
	}{
		{"left neighbor", Position{0, 1}, Position{1, 1}, true},
		{"right neighbor", Position{2, 1}, Position{1, 1}, true},
		{"above", Position{1, 0}, Position{1, 1}, true},
		{"below", Position{1, 2}, Position{1, 1}, true},
		{"same tile", Position{1, 1}, Position{1, 1}, false},
		{"diagonal", Position{0, 0}, Position{1, 1}, false},
		{"two apart", Position{0, 1}, Position{2, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Adjacent(tt.a, tt.b))
			assert.Equal(t, tt.want, Adjacent(tt.b, tt.a))
		})
	}
}

func TestBoard_Move(t *testing.T) {
	board := DefaultBoard()

	next, ok := board.Move(Position{1, 1}, DirectionRight)
	assert.True(t, ok)
	assert.Equal(t, Position{2, 1}, next)

	next, ok = board.Move(Position{1, 1}, DirectionUp)
	assert.True(t, ok)
	assert.Equal(t, Position{1, 0}, next)

	// Off-board moves leave the position unchanged.
	next, ok = board.Move(Position{0, 0}, DirectionLeft)
	assert.False(t, ok)
	assert.Equal(t, Position{0, 0}, next)

	next, ok = board.Move(Position{2, 2}, DirectionDown)
	assert.False(t, ok)
	assert.Equal(t, Position{2, 2}, next)

	_, ok = board.Move(Position{1, 1}, Direction("sideways"))
	assert.False(t, ok)
}
