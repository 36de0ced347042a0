// Package canvas provides the 2D character buffer the renderer draws into.
package canvas

import (
	"errors"
	"fmt"
	"strings"

	"cubist/core"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
	ErrConflict    = errors.New("conflicting character at position")
)

// Background characters may be freely overwritten by any drawing operation.
// Space is the empty canvas; underscore is base-plane fill that block edges
// are expected to cut through.
const (
	Blank = ' '
	Fill  = '_'
)

// MatrixCanvas is a rune matrix with the drawing primitives the block
// renderer needs.
//
// A canvas is exclusively owned by a single render call: it is allocated,
// mutated, converted to lines and discarded. Nothing here is safe for
// concurrent writes, and nothing needs to be.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//   - All coordinates are in character cells
//
// Unlike a general-purpose canvas there is no character merging: a cell holds
// background (space or underscore) or exactly one drawn character. Drawing the
// same character twice is a no-op; drawing a different character over a drawn
// cell is a conflict, surfaced as an error rather than silently resolved.
type MatrixCanvas struct {
	matrix [][]rune
	width  int
	height int
}

// NewMatrixCanvas creates a canvas of the given size, initialized to spaces.
func NewMatrixCanvas(width, height int) (*MatrixCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	matrix := make([][]rune, height)
	for y := 0; y < height; y++ {
		matrix[y] = make([]rune, width)
		for x := 0; x < width; x++ {
			matrix[y][x] = Blank
		}
	}

	return &MatrixCanvas{
		matrix: matrix,
		width:  width,
		height: height,
	}, nil
}

// Size returns the width and height of the canvas.
func (c *MatrixCanvas) Size() (width, height int) {
	return c.width, c.height
}

// Get returns the character at the given position.
// Returns ' ' (space) if position is out of bounds.
func (c *MatrixCanvas) Get(p core.Point) rune {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return Blank
	}
	return c.matrix[p.Y][p.X]
}

// Put places a character at the given position. Background characters are
// overwritten; an identical drawn character is accepted silently (edges of
// adjacent blocks legitimately share cells); anything else is a conflict.
func (c *MatrixCanvas) Put(p core.Point, char rune) error {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	existing := c.matrix[p.Y][p.X]
	if existing != Blank && existing != Fill && existing != char {
		return fmt.Errorf("%w: (%d,%d) holds %q, attempted %q",
			ErrConflict, p.X, p.Y, existing, char)
	}
	c.matrix[p.Y][p.X] = char
	return nil
}

// Overwrite places a character at the given position regardless of what the
// cell holds. For the one legitimate occlusion: a nearer block's edge cutting
// the tail of a farther block's edge run.
func (c *MatrixCanvas) Overwrite(p core.Point, char rune) error {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	c.matrix[p.Y][p.X] = char
	return nil
}

// PutRun places count copies of char starting at p, advancing rightward.
func (c *MatrixCanvas) PutRun(p core.Point, char rune, count int) error {
	for i := 0; i < count; i++ {
		if err := c.Put(core.Point{X: p.X + i, Y: p.Y}, char); err != nil {
			return err
		}
	}
	return nil
}

// FillRow unconditionally writes the fill character across [x1, x2) of row y,
// clipped to the canvas. Used to lay down the base planes before any drawing.
func (c *MatrixCanvas) FillRow(y, x1, x2 int) {
	if y < 0 || y >= c.height {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > c.width {
		x2 = c.width
	}
	for x := x1; x < x2; x++ {
		c.matrix[y][x] = Fill
	}
}

// FillGaps replaces spaces on row y with the fill character, from column
// `margin` up to the last non-space cell. Cells already holding a drawn
// character are left alone. Rows with no drawn content are untouched.
func (c *MatrixCanvas) FillGaps(y, margin int) {
	if y < 0 || y >= c.height {
		return
	}
	last := -1
	for x := c.width - 1; x >= 0; x-- {
		if c.matrix[y][x] != Blank {
			last = x
			break
		}
	}
	if last < 0 {
		return
	}
	if margin < 0 {
		margin = 0
	}
	for x := margin; x < last; x++ {
		if c.matrix[y][x] == Blank {
			c.matrix[y][x] = Fill
		}
	}
}

// Lines finalizes the canvas into one string per row, each trimmed of
// trailing spaces. Leading spaces are kept; they encode the perspective
// indentation.
func (c *MatrixCanvas) Lines() []string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		lines[y] = strings.TrimRight(string(c.matrix[y]), " ")
	}
	return lines
}

// String returns the canvas as a newline-joined string, untrimmed.
// Mostly useful in tests and debugging.
func (c *MatrixCanvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))
	for y := 0; y < c.height; y++ {
		sb.WriteString(string(c.matrix[y]))
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
