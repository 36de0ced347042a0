// Package core contains the fundamental types used throughout the cubist renderer.
package core

// Point represents a 2D coordinate. In a Bitmap it addresses a cell
// (X = column, Y = row, row 0 at the top); on a canvas it addresses a
// character position.
type Point struct {
	X, Y int
}

// Cell is the state of a single bitmap cell.
type Cell int

const (
	Empty Cell = iota
	Raised
)

// String returns the string representation of a Cell.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Raised:
		return "Raised"
	default:
		return "Unknown"
	}
}

// Bitmap is a rectangular grid of cells. It is created once by a loader and
// treated as immutable by everything downstream; the renderer only reads it.
type Bitmap struct {
	cells [][]Cell
}

// NewBitmap builds a Bitmap from a cell grid. The grid is used as-is, without
// copying; callers hand over ownership. Shape validation happens in the
// renderer, so malformed grids can still be constructed and carried around.
func NewBitmap(cells [][]Cell) Bitmap {
	return Bitmap{cells: cells}
}

// Rows returns the number of rows in the bitmap.
func (b Bitmap) Rows() int {
	return len(b.cells)
}

// Cols returns the length of the first row, or 0 for an empty bitmap.
// For a rectangular bitmap this is the column count.
func (b Bitmap) Cols() int {
	if len(b.cells) == 0 {
		return 0
	}
	return len(b.cells[0])
}

// RowLen returns the length of row y.
func (b Bitmap) RowLen(y int) int {
	return len(b.cells[y])
}

// At returns the cell at (x, y). Out-of-range coordinates read as Empty,
// which lets adjacency checks probe past the grid edge without guards.
func (b Bitmap) At(x, y int) Cell {
	if y < 0 || y >= len(b.cells) {
		return Empty
	}
	row := b.cells[y]
	if x < 0 || x >= len(row) {
		return Empty
	}
	return row[x]
}

// Group is a maximal run of horizontally touching raised cells in one row.
// Y is the bitmap row, X the leftmost member's column, Size the member count.
type Group struct {
	Y, X int
	Size int
}

// End returns the column just past the rightmost member.
func (g Group) End() int {
	return g.X + g.Size
}

// Contains reports whether column x falls within the group.
func (g Group) Contains(x int) bool {
	return x >= g.X && x < g.End()
}
