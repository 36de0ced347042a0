// Package render converts bitmaps into pseudo-3D ASCII block art.
//
// Each raised cell becomes an isometric cube extrusion drawn with slashes,
// backslashes and underscores. There are no glyph tables: every offset is
// derived arithmetically from the grid dimensions and cell coordinates, so
// grids of any size render uniformly.
package render

import (
	"errors"
	"fmt"
	"strings"

	"cubist/canvas"
	"cubist/core"
)

// Common errors
var (
	ErrInvalidShape   = errors.New("bitmap rows must have equal length")
	ErrEmptyGrid      = errors.New("bitmap must have at least one row and one column")
	ErrRenderConflict = errors.New("blocks drew conflicting characters")
)

// columnStep is the number of character cells one bitmap column occupies in
// the perspective skew.
const columnStep = 2

// runLength is the slash or backslash run representing the edge of a group
// of n touching blocks. A solitary block has n=1, giving a run of 3.
func runLength(n int) int {
	return 2*n + 1
}

// placement is the resolved draw plan for one horizontal group.
type placement struct {
	group    core.Group
	riseLine int  // canvas line carrying the rising edge
	riseX    int  // column of the rising lead character
	fallX    int  // column of the falling lead character, one line below
	occluded bool // a block stands on the leftmost member; the falling run is hidden
}

// Render draws the bitmap as pseudo-3D block art, one string per output line.
//
// A rows×cols grid produces rows+1 lines: the ceiling plane, rows-1
// intermediate lines, and the floor plane. Lines are trimmed of trailing
// spaces; leading spaces encode the perspective indentation and are kept.
//
// Render is pure: same bitmap in, same lines out, no state shared between
// calls. Concurrent calls need no coordination.
func Render(bm core.Bitmap) ([]string, error) {
	rows, cols := bm.Rows(), bm.Cols()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}
	for y := 0; y < rows; y++ {
		if bm.RowLen(y) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrInvalidShape, y, bm.RowLen(y), cols)
		}
	}

	placements := plan(bm)
	width := artWidth(rows, cols, placements)

	cv, err := canvas.NewMatrixCanvas(width, rows+1)
	if err != nil {
		return nil, err
	}

	// Base planes: the ceiling spans the grid's projected width, the floor is
	// indented by the grid depth and runs to the full art width.
	cv.FillRow(0, 0, columnStep*cols)
	cv.FillRow(rows, rows, width)

	for _, pl := range placements {
		if err := drawGroup(cv, pl); err != nil {
			if errors.Is(err, canvas.ErrConflict) {
				return nil, fmt.Errorf("%w: %v", ErrRenderConflict, err)
			}
			return nil, err
		}
	}

	// Close the gaps between edges with base-plane fill. Line i is indented
	// by i cells; untouched lines stay blank.
	for y := 0; y < rows; y++ {
		cv.FillGaps(y, y)
	}

	return cv.Lines(), nil
}

// RenderString is Render with the lines joined by newlines.
func RenderString(bm core.Bitmap) (string, error) {
	lines, err := Render(bm)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// plan walks the bitmap bottom row first and resolves each horizontal group
// into a placement. Bottom rows project onto the upper canvas lines; drawing
// them first lets a group standing on another find the seam its partner left.
func plan(bm core.Bitmap) []placement {
	rows := bm.Rows()
	var placements []placement
	for y := rows - 1; y >= 0; y-- {
		for _, g := range rowGroups(bm, y) {
			t := rows - y - 1
			placements = append(placements, placement{
				group:    g,
				riseLine: t,
				riseX:    columnStep*g.X + t,
				fallX:    t + 1 + max(0, columnStep*g.X-1),
				occluded: bm.At(g.X, y-1) == core.Raised,
			})
		}
	}
	return placements
}

// rowGroups returns the maximal runs of raised cells in row y, left to right.
func rowGroups(bm core.Bitmap, y int) []core.Group {
	var groups []core.Group
	cols := bm.Cols()
	for x := 0; x < cols; {
		if bm.At(x, y) != core.Raised {
			x++
			continue
		}
		start := x
		for x < cols && bm.At(x, y) == core.Raised {
			x++
		}
		groups = append(groups, core.Group{Y: y, X: start, Size: x - start})
	}
	return groups
}

// artWidth returns the canvas width: the base width 2*cols+rows, expanded
// when a boundary group's edge run extends past it.
func artWidth(rows, cols int, placements []placement) int {
	width := columnStep*cols + rows
	for _, pl := range placements {
		run := runLength(pl.group.Size)
		if end := pl.riseX + 1 + run; end > width {
			width = end
		}
		fallEnd := pl.fallX + 1
		if !pl.occluded {
			fallEnd += run
		}
		if fallEnd > width {
			width = fallEnd
		}
	}
	return width
}

// drawGroup draws the rising and falling edges of one group.
func drawGroup(cv *canvas.MatrixCanvas, pl placement) error {
	run := runLength(pl.group.Size)

	// Rising edge. A backslash already present at the lead cell is the seam
	// left by the group this one stands on; keep it instead of opening a
	// fresh edge.
	lead := '/'
	if cv.Get(core.Point{X: pl.riseX, Y: pl.riseLine}) == '\\' {
		lead = '\\'
	}
	if err := cv.Put(core.Point{X: pl.riseX, Y: pl.riseLine}, lead); err != nil {
		return err
	}
	if err := cv.PutRun(core.Point{X: pl.riseX + 1, Y: pl.riseLine}, '\\', run); err != nil {
		return err
	}

	// Falling edge, one line below. A block standing on the group hides the
	// slash run; only the lead backslash survives as the shared seam.
	//
	// The lead may land on the tail of the previous group's falling run when
	// that group hugs the left margin (its x=0 run is shifted one cell right);
	// the nearer cube occludes the run, so the lead wins.
	fallLead := core.Point{X: pl.fallX, Y: pl.riseLine + 1}
	if cv.Get(fallLead) == '/' {
		if err := cv.Overwrite(fallLead, '\\'); err != nil {
			return err
		}
	} else if err := cv.Put(fallLead, '\\'); err != nil {
		return err
	}
	if pl.occluded {
		return nil
	}
	return cv.PutRun(core.Point{X: pl.fallX + 1, Y: pl.riseLine + 1}, '/', run)
}
