// Package importer loads bitmaps from external representations: plain text
// rows of '0'/'1' characters and JSON glyph fonts.
package importer

import (
	"errors"
	"fmt"
	"strings"

	"cubist/core"
)

// Common errors
var (
	ErrEmptyInput   = errors.New("bitmap cannot be empty")
	ErrBadCharacter = errors.New("bitmap rows may only contain '0' and '1'")
)

// ParseLines converts rows of '0'/'1' characters into a bitmap. Characters
// outside that alphabet are rejected. Row lengths are taken as given; the
// renderer owns rectangularity validation.
func ParseLines(rows []string) (core.Bitmap, error) {
	if len(rows) == 0 {
		return core.Bitmap{}, ErrEmptyInput
	}
	cells := make([][]core.Cell, len(rows))
	for y, row := range rows {
		cells[y] = make([]core.Cell, len(row))
		for x, ch := range row {
			switch ch {
			case '0':
				cells[y][x] = core.Empty
			case '1':
				cells[y][x] = core.Raised
			default:
				return core.Bitmap{}, fmt.Errorf("%w: %q at row %d column %d",
					ErrBadCharacter, ch, y, x)
			}
		}
	}
	return core.NewBitmap(cells), nil
}

// ParseText splits content on newlines and parses it with ParseLines.
// Trailing blank lines from a final newline are dropped.
func ParseText(content string) (core.Bitmap, error) {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return ParseLines(lines)
}
