package core

import "fmt"

// Team tags which side a piece belongs to. Terrain and other neutral pieces
// carry TeamNone.
type Team int

const (
	TeamNone Team = iota
	TeamDark
	TeamLight
)

func (t Team) String() string {
	switch t {
	case TeamNone:
		return "None"
	case TeamDark:
		return "Dark"
	case TeamLight:
		return "Light"
	default:
		return fmt.Sprintf("Team(%d)", int(t))
	}
}

// Opponent returns the other playing team. TeamNone has no opponent.
func (t Team) Opponent() Team {
	switch t {
	case TeamDark:
		return TeamLight
	case TeamLight:
		return TeamDark
	default:
		return TeamNone
	}
}

// Layer partitions board occupancy. Each layer enforces one piece per cell
// independently of the others.
type Layer int

const (
	LayerUndefined Layer = iota
	LayerUnits
	LayerPointsOfInterest
	LayerTerrain
)

// Layers lists the occupancy layers in query order
var Layers = []Layer{LayerUnits, LayerPointsOfInterest, LayerTerrain}

func (l Layer) String() string {
	switch l {
	case LayerUnits:
		return "Units"
	case LayerPointsOfInterest:
		return "PointsOfInterest"
	case LayerTerrain:
		return "Terrain"
	default:
		return "Undefined"
	}
}
