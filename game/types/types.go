package types

// DefaultColumns is the number of cells across the board; the cell size is
// derived from the window width.
const DefaultColumns = 40

// Point is a grid-aligned position in board units.
type Point struct {
	X, Y int
}

// Grid represents the game grid dimensions
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid builds a grid whose cell size is width/columns.
func NewGrid(width, height, columns int) Grid {
	if columns <= 0 {
		columns = DefaultColumns
	}
	cell := width / columns
	if cell <= 0 {
		cell = 1
	}
	return Grid{Width: width, Height: height, CellSize: cell}
}

func (g Grid) Columns() int {
	return g.Width / g.CellSize
}

func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Contains reports whether p lies on one of the board's whole cells.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Columns()*g.CellSize &&
		p.Y >= 0 && p.Y < g.Rows()*g.CellSize
}

// Wrap maps a coordinate that left the board back in from the opposite edge.
func (g Grid) Wrap(p Point) Point {
	span := g.Columns() * g.CellSize
	if p.X < 0 {
		p.X += span
	} else if p.X >= span {
		p.X -= span
	}
	span = g.Rows() * g.CellSize
	if p.Y < 0 {
		p.Y += span
	} else if p.Y >= span {
		p.Y -= span
	}
	return p
}

// Center returns the cell closest to the middle of the board.
func (g Grid) Center() Point {
	return Point{
		X: g.Columns() / 2 * g.CellSize,
		Y: g.Rows() / 2 * g.CellSize,
	}
}

// Cell converts column/row indexes to a board position.
func (g Grid) Cell(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// Cells enumerates every cell of the board, row by row.
func (g Grid) Cells() []Point {
	cols, rows := g.Columns(), g.Rows()
	cells := make([]Point, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cells = append(cells, g.Cell(col, row))
		}
	}
	return cells
}
