// Package game holds the board data contract shared with the client: tile
// positions, movement directions, and the adjacency rule that constrains
// movement and item collection. The package has no durable state of its own.
package game

// Position is a tile coordinate on the board. (0,0) is the starting tile.
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Direction is a movement intent relative to the player's position.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Board is a rectangular tile grid.
type Board struct {
	Width  int
	Height int
}

// DefaultBoard matches the 3x3 grid the client renders.
func DefaultBoard() Board {
	return Board{Width: 3, Height: 3}
}

// Contains reports whether p lies on the board.
func (b Board) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// StartingTile is where a new journey begins.
func (b Board) StartingTile() Position {
	return Position{X: 0, Y: 0}
}

// FinalTile is the mission-completion tile in the opposite corner.
func (b Board) FinalTile() Position {
	return Position{X: b.Width - 1, Y: b.Height - 1}
}

// Adjacent reports whether a and b share an edge. Movement and item
// collection only apply between adjacent tiles; diagonals do not count.
func Adjacent(a, b Position) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// Move returns the position one tile away from p in the given direction and
// whether that tile is still on the board. The position is unchanged when the
// move would leave the board.
func (b Board) Move(p Position, dir Direction) (Position, bool) {
	next := p
	switch dir {
	case DirectionUp:
		next.Y--
	case DirectionDown:
		next.Y++
	case DirectionLeft:
		next.X--
	case DirectionRight:
		next.X++
	default:
		return p, false
	}
	if !b.Contains(next) {
		return p, false
	}
	return next, true
}
