package core

import (
	"fmt"

	"golang.org/x/exp/rand"
)

type Coord struct {
	X, Y int
}

func EqualCoord(a, b Coord) bool {
	return a.X == b.X && a.Y == b.Y
}

// RandomCoord picks a cell uniformly over a width x height grid.
func RandomCoord(r *rand.Rand, width, height int) Coord {
	return Coord{
		X: r.Intn(width),
		Y: r.Intn(height),
	}
}

// Wrap folds c back onto a width x height torus. Only a single step past
// either edge is expected.
func (c Coord) Wrap(width, height int) Coord {
	if c.X >= width {
		c.X = 0
	}
	if c.X < 0 {
		c.X = width - 1
	}
	if c.Y >= height {
		c.Y = 0
	}
	if c.Y < 0 {
		c.Y = height - 1
	}
	return c
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var shiftMap = map[Direction]Coord{
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
}

// Shift returns the unit vector of d.
func (d Direction) Shift() Coord {
	return shiftMap[d]
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

var key2Dir = map[rune]Direction{
	'w': Up,
	'a': Left,
	's': Down,
	'd': Right,
	'W': Up,
	'A': Left,
	'S': Down,
	'D': Right,
}

// ParseKey maps a w/a/s/d symbol, in either case, to its direction.
func ParseKey(symbol rune) (Direction, bool) {
	dir, ok := key2Dir[symbol]
	return dir, ok
}
