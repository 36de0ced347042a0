// Package demo generates random bitmaps for demo mode.
package demo

import (
	"math/rand"

	"cubist/core"
)

// RandomBitmap returns a rows×cols bitmap with one or two raised cells. A
// pair may sit apart, touch horizontally, or stack vertically in the same
// column; diagonal contact never occurs, so the result always renders
// without edge conflicts.
func RandomBitmap(cols, rows int, rng *rand.Rand) core.Bitmap {
	cells := make([][]core.Cell, rows)
	for y := range cells {
		cells[y] = make([]core.Cell, cols)
	}

	x0, y0 := rng.Intn(cols), rng.Intn(rows)
	cells[y0][x0] = core.Raised

	if rng.Intn(2) == 1 {
		var candidates []core.Point
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				if x == x0 && y == y0 {
					continue
				}
				dx, dy := abs(x-x0), abs(y-y0)
				apart := dx > 1 || dy > 1
				horizontal := dy == 0 && dx == 1
				vertical := dx == 0 && dy == 1
				if apart || horizontal || vertical {
					candidates = append(candidates, core.Point{X: x, Y: y})
				}
			}
		}
		if len(candidates) > 0 {
			p := candidates[rng.Intn(len(candidates))]
			cells[p.Y][p.X] = core.Raised
		}
	}

	return core.NewBitmap(cells)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
