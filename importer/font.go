package importer

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"cubist/core"
)

// ErrBadFont reports a malformed glyph font file.
var ErrBadFont = errors.New("malformed font file")

// Font is a set of named glyph bitmaps loaded from a JSON font file:
//
//	{
//	  "name": "bbs",
//	  "glyphs": {
//	    "A": ["010", "101", "111"],
//	    "B": ["110", "110", "110"]
//	  }
//	}
//
// Glyph rows use the same '0'/'1' alphabet as plain text bitmaps.
type Font struct {
	name   string
	glyphs map[string]core.Bitmap
	order  []string
}

// LoadFont parses a JSON font file.
func LoadFont(data []byte) (*Font, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrBadFont)
	}
	doc := gjson.ParseBytes(data)
	glyphs := doc.Get("glyphs")
	if !glyphs.IsObject() {
		return nil, fmt.Errorf("%w: missing \"glyphs\" object", ErrBadFont)
	}

	f := &Font{
		name:   doc.Get("name").String(),
		glyphs: make(map[string]core.Bitmap),
	}
	var loadErr error
	glyphs.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			loadErr = fmt.Errorf("%w: glyph %q is not an array of rows", ErrBadFont, key.String())
			return false
		}
		rows := make([]string, 0, len(value.Array()))
		for _, r := range value.Array() {
			rows = append(rows, r.String())
		}
		bm, err := ParseLines(rows)
		if err != nil {
			loadErr = fmt.Errorf("glyph %q: %w", key.String(), err)
			return false
		}
		f.glyphs[key.String()] = bm
		f.order = append(f.order, key.String())
		return true
	})
	if loadErr != nil {
		return nil, loadErr
	}
	if len(f.glyphs) == 0 {
		return nil, fmt.Errorf("%w: no glyphs", ErrBadFont)
	}
	return f, nil
}

// Name returns the font's declared name, possibly empty.
func (f *Font) Name() string {
	return f.name
}

// Glyphs returns the glyph names in file order.
func (f *Font) Glyphs() []string {
	return f.order
}

// Glyph returns the bitmap for a named glyph.
func (f *Font) Glyph(name string) (core.Bitmap, bool) {
	bm, ok := f.glyphs[name]
	return bm, ok
}

// Text resolves each rune of s to its glyph bitmap, in order.
func (f *Font) Text(s string) ([]core.Bitmap, error) {
	var bms []core.Bitmap
	for _, r := range s {
		bm, ok := f.glyphs[string(r)]
		if !ok {
			return nil, fmt.Errorf("font %q has no glyph %q", f.name, r)
		}
		bms = append(bms, bm)
	}
	return bms, nil
}
