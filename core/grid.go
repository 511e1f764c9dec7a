package core

// GameGrid is the occupancy matrix the renderers draw. Data is row-major:
// Data[y][x].
type GameGrid struct {
	Data   [][]bool
	Width  int
	Height int
}

func NewGameGrid(width, height int) GameGrid {
	data := make([][]bool, height)
	for y := range data {
		data[y] = make([]bool, width)
	}

	return GameGrid{
		Data:   data,
		Width:  width,
		Height: height,
	}
}

func (g GameGrid) Clear() {
	for y := range g.Data {
		for x := range g.Data[y] {
			g.Data[y][x] = false
		}
	}
}

// Set switches every listed cell to value.
func (g GameGrid) Set(coords []Coord, value bool) {
	for _, c := range coords {
		g.Data[c.Y][c.X] = value
	}
}

func (g GameGrid) At(c Coord) bool {
	return g.Data[c.Y][c.X]
}

// Count returns the number of cells switched on.
func (g GameGrid) Count() int {
	n := 0
	for y := range g.Data {
		for _, on := range g.Data[y] {
			if on {
				n++
			}
		}
	}
	return n
}

func (g GameGrid) Clone() GameGrid {
	clone := GameGrid{
		Data:   make([][]bool, len(g.Data)),
		Width:  g.Width,
		Height: g.Height,
	}
	for y := range g.Data {
		clone.Data[y] = append([]bool(nil), g.Data[y]...)
	}
	return clone
}
