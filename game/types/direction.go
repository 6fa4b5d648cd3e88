package types

// Direction is one of the four cardinal headings.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the heading that would reverse the snake onto itself.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Offset returns the displacement of one step of the given cell size.
func (d Direction) Offset(cell int) Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -cell}
	case Down:
		return Point{X: 0, Y: cell}
	case Left:
		return Point{X: -cell, Y: 0}
	default:
		return Point{X: cell, Y: 0}
	}
}

// Step moves p one cell in direction d.
func (p Point) Step(d Direction, cell int) Point {
	off := d.Offset(cell)
	return Point{X: p.X + off.X, Y: p.Y + off.Y}
}
