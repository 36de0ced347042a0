// Package validation checks rendered block art against its source bitmap.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cubist/core"
	"cubist/render"
)

// ValidationError describes one way a piece of art deviates from what its
// bitmap should produce.
type ValidationError struct {
	Line    int // output line index, -1 for whole-art checks
	Message string
}

func (e ValidationError) Error() string {
	if e.Line < 0 {
		return e.Message
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ArtValidator validates rendered art structurally: line count, character
// set, base planes and edge census. It re-renders the bitmap and compares
// shape-level properties rather than demanding byte equality, so it can judge
// art produced by other implementations.
type ArtValidator struct {
	errors []ValidationError
}

// NewArtValidator creates a validator.
func NewArtValidator() *ArtValidator {
	return &ArtValidator{}
}

// Validate checks art against the bitmap it claims to render and returns all
// deviations found. Rendering errors on the bitmap itself are reported as a
// single whole-art error.
func (v *ArtValidator) Validate(art []string, bm core.Bitmap) []ValidationError {
	v.errors = nil

	want, err := render.Render(bm)
	if err != nil {
		v.addf(-1, "bitmap does not render: %v", err)
		return v.errors
	}

	rows, cols := bm.Rows(), bm.Cols()
	if len(art) != rows+1 {
		v.addf(-1, "wrong line count: got %d, want %d", len(art), rows+1)
		return v.errors
	}

	width := maxLen(want)
	for i, line := range art {
		if len(line) > width {
			v.addf(i, "wider than the art width %d: %d", width, len(line))
		}
		if bad := strings.IndexFunc(line, func(r rune) bool {
			return r != '_' && r != '/' && r != '\\' && r != ' '
		}); bad >= 0 {
			r, _ := utf8.DecodeRuneInString(line[bad:])
			v.addf(i, "foreign character %q at column %d", r, bad)
		}
	}

	// The floor plane is fully determined by the grid shape and the art
	// width; it must match exactly.
	if art[rows] != want[rows] {
		v.addf(rows, "invalid floor line: got %q, want %q", art[rows], want[rows])
	}

	// The ceiling is underscores cut only by bottom-row edges: after the
	// indent rule there is nothing blank on it.
	if len(art) > 0 && strings.ContainsRune(strings.TrimRight(art[0], " "), ' ') {
		v.addf(0, "ceiling contains interior spaces")
	}

	// Edge census: every slash and backslash the bitmap calls for, no more.
	if got, expect := countRune(art, '/'), countRune(want, '/'); got != expect {
		v.addf(-1, "wrong number of slashes: got %d, want %d", got, expect)
	}
	if got, expect := countRune(art, '\\'), countRune(want, '\\'); got != expect {
		v.addf(-1, "wrong number of backslashes: got %d, want %d", got, expect)
	}

	// An empty bottom row leaves the ceiling uncut, so somewhere in the art
	// the full 2*cols underscore run must survive.
	if len(rowGroupsBottom(bm)) == 0 && longestRun(art, '_') < 2*cols {
		v.addf(-1, "underscores too short: longest run %d, want at least %d",
			longestRun(art, '_'), 2*cols)
	}

	return v.errors
}

func (v *ArtValidator) addf(line int, format string, args ...interface{}) {
	v.errors = append(v.errors, ValidationError{Line: line, Message: fmt.Sprintf(format, args...)})
}

func maxLen(lines []string) int {
	m := 0
	for _, line := range lines {
		if len(line) > m {
			m = len(line)
		}
	}
	return m
}

func countRune(lines []string, r rune) int {
	n := 0
	for _, line := range lines {
		n += strings.Count(line, string(r))
	}
	return n
}

// longestRun returns the longest consecutive run of r across all lines.
func longestRun(lines []string, r rune) int {
	best, curr := 0, 0
	for _, line := range lines {
		curr = 0
		for _, c := range line {
			if c == r {
				curr++
				if curr > best {
					best = curr
				}
			} else {
				curr = 0
			}
		}
	}
	return best
}

// rowGroupsBottom reports the raised columns of the bottom row.
func rowGroupsBottom(bm core.Bitmap) []int {
	var xs []int
	y := bm.Rows() - 1
	for x := 0; x < bm.Cols(); x++ {
		if bm.At(x, y) == core.Raised {
			xs = append(xs, x)
		}
	}
	return xs
}
