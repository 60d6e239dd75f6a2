package core

// Input is one already-translated selection from an input adapter.
// Selected is false when the pointer was off the board; the position is then
// meaningless.
type Input struct {
	Selected bool
	Position Coordinate
}

// SelectAt builds an on-board input for pos
func SelectAt(x, y int) Input {
	return Input{Selected: true, Position: Coordinate{X: x, Y: y}}
}

// NoSelection is the input reported for clicks that missed the grid
var NoSelection = Input{}
