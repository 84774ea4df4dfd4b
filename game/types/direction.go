package types

// Direction is one of the four axis-aligned unit steps.
type Direction struct {
	X, Y int
}

var (
	Up    = Direction{X: 0, Y: -1} // Rows grow downwards
	Right = Direction{X: 1, Y: 0}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
)

// Directions lists the valid headings clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// Valid reports whether d is a unit step along one axis.
func (d Direction) Valid() bool {
	for _, v := range Directions {
		if d == v {
			return true
		}
	}
	return false
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
	default:
		return "none"
	}
}
