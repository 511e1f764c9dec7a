package core

// Player is the snake. Body holds the previous head positions, newest first,
// so the tail is the last element.
type Player struct {
	Head      Coord
	Body      []Coord
	Direction Direction

	extend bool
}

func NewPlayer(x, y int) *Player {
	return &Player{
		Head:      Coord{X: x, Y: y},
		Direction: Right,
	}
}

// Move advances the snake one cell, wrapping around the grid edges.
func (p *Player) Move(width, height int) {
	if len(p.Body) > 0 || p.extend {
		if p.extend {
			p.extend = false
		} else {
			p.Body = p.Body[:len(p.Body)-1]
		}
		p.Body = append(p.Body, Coord{})
		copy(p.Body[1:], p.Body)
		p.Body[0] = p.Head
	}

	shift := p.Direction.Shift()
	p.Head.X += shift.X
	p.Head.Y += shift.Y
	p.Head = p.Head.Wrap(width, height)
}

// HandleKey steers the snake by a w/a/s/d symbol. Other symbols are ignored.
func (p *Player) HandleKey(symbol rune) {
	dir, ok := ParseKey(symbol)
	if !ok {
		return
	}
	p.Steer(dir)
}

// Steer changes direction unless it would turn the head straight back into
// the body.
func (p *Player) Steer(dir Direction) {
	if len(p.Body) > 0 && dir == p.Direction.Opposite() {
		return
	}
	p.Direction = dir
}

// Grow makes the next Move keep the tail.
func (p *Player) Grow() {
	p.extend = true
}

// Growing reports whether a growth is pending.
func (p *Player) Growing() bool {
	return p.extend
}

// Collides reports whether the head overlaps the body.
func (p *Player) Collides() bool {
	for _, b := range p.Body {
		if EqualCoord(b, p.Head) {
			return true
		}
	}
	return false
}
