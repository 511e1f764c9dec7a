package core

// GameState is what the simulation hands to a frontend every tick. Values
// received from a channel are snapshots and never change afterwards.
type GameState struct {
	Grid  GameGrid
	Score int
	Dead  bool
	Tick  uint64
}

func NewGameState(width, height int) GameState {
	return GameState{
		Grid: NewGameGrid(width, height),
	}
}

// Snapshot deep-copies the state so it can cross to another goroutine.
func (s GameState) Snapshot() GameState {
	s.Grid = s.Grid.Clone()
	return s
}
