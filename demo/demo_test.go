package demo

import (
	"math/rand"
	"testing"

	"cubist/core"
	"cubist/render"
)

func TestRandomBitmap_Validity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		bm := RandomBitmap(6, 4, rng)
		if bm.Rows() != 4 || bm.Cols() != 6 {
			t.Fatalf("trial %d: shape = %dx%d, want 6x4", trial, bm.Cols(), bm.Rows())
		}

		var coords []core.Point
		for y := 0; y < bm.Rows(); y++ {
			for x := 0; x < bm.Cols(); x++ {
				if bm.At(x, y) == core.Raised {
					coords = append(coords, core.Point{X: x, Y: y})
				}
			}
		}
		if len(coords) < 1 || len(coords) > 2 {
			t.Fatalf("trial %d: %d raised cells, want 1 or 2", trial, len(coords))
		}
		if len(coords) == 2 {
			dx := abs(coords[0].X - coords[1].X)
			dy := abs(coords[0].Y - coords[1].Y)
			if dx == 1 && dy == 1 {
				t.Fatalf("trial %d: diagonal contact at %v and %v", trial, coords[0], coords[1])
			}
		}

		// Every generated bitmap must render without conflicts.
		if _, err := render.Render(bm); err != nil {
			t.Fatalf("trial %d: Render() error = %v", trial, err)
		}
	}
}

func TestRandomBitmap_SeededDeterminism(t *testing.T) {
	a := RandomBitmap(5, 3, rand.New(rand.NewSource(7)))
	b := RandomBitmap(5, 3, rand.New(rand.NewSource(7)))
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("same seed diverged at (%d,%d)", x, y)
			}
		}
	}
}
