package core

import "testing"

func TestBitmap_At(t *testing.T) {
	bm := NewBitmap([][]Cell{
		{Empty, Raised},
		{Raised, Empty},
	})

	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"raised top right", 1, 0, Raised},
		{"raised bottom left", 0, 1, Raised},
		{"empty origin", 0, 0, Empty},
		{"left of grid", -1, 0, Empty},
		{"right of grid", 2, 0, Empty},
		{"above grid", 0, -1, Empty},
		{"below grid", 0, 2, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bm.At(tt.x, tt.y); got != tt.want {
				t.Errorf("At(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBitmap_Shape(t *testing.T) {
	bm := NewBitmap([][]Cell{
		{Empty, Empty, Empty},
		{Empty, Raised},
	})
	if got := bm.Rows(); got != 2 {
		t.Errorf("Rows() = %d, want 2", got)
	}
	if got := bm.Cols(); got != 3 {
		t.Errorf("Cols() = %d, want 3", got)
	}
	if got := bm.RowLen(1); got != 2 {
		t.Errorf("RowLen(1) = %d, want 2", got)
	}

	empty := NewBitmap(nil)
	if empty.Rows() != 0 || empty.Cols() != 0 {
		t.Errorf("empty bitmap = %dx%d, want 0x0", empty.Cols(), empty.Rows())
	}
}

func TestGroup(t *testing.T) {
	g := Group{Y: 2, X: 3, Size: 2}
	if got := g.End(); got != 5 {
		t.Errorf("End() = %d, want 5", got)
	}
	for x, want := range map[int]bool{2: false, 3: true, 4: true, 5: false} {
		if got := g.Contains(x); got != want {
			t.Errorf("Contains(%d) = %v, want %v", x, got, want)
		}
	}
}

func TestCell_String(t *testing.T) {
	if got := Raised.String(); got != "Raised" {
		t.Errorf("Raised.String() = %q", got)
	}
	if got := Empty.String(); got != "Empty" {
		t.Errorf("Empty.String() = %q", got)
	}
	if got := Cell(99).String(); got != "Unknown" {
		t.Errorf("Cell(99).String() = %q", got)
	}
}
