package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"cubist/core"
	"cubist/demo"
	"cubist/importer"
	"cubist/render"
	"cubist/terminal"
	"cubist/validation"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive fullscreen viewer")
		demoMode    = flag.Bool("demo", false, "Render random bitmaps")
		count       = flag.Int("count", 5, "Number of bitmaps in demo mode")
		seed        = flag.Int64("seed", 0, "Random seed for demo mode (0 = time-based)")
		grid        = flag.String("grid", "6x4", "Random bitmap size as COLSxROWS")
		fontFile    = flag.String("font", "", "JSON glyph font file")
		text        = flag.String("text", "", "Glyphs from -font to render, one per character")
		validate    = flag.Bool("validate", false, "Validate the rendered output")
		outputFile  = flag.String("o", "", "Output file (default: stdout)")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [bitmap.txt]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Renders bitmaps of raised cells as pseudo-3D ASCII block art.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s glyph.txt                   # Render a '0'/'1' text bitmap\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  echo 010 | %s                  # Render from stdin\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -demo -count 3 -seed 42     # Render random bitmaps\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -font bbs.json -text AB     # Render glyphs from a font\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i -demo                    # Interactive random viewer\n", os.Args[0])
	}
	flag.Parse()

	cols, rows, err := parseGrid(*grid)
	if err != nil {
		fatalf("invalid -grid: %v", err)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	var font *importer.Font
	if *fontFile != "" {
		data, err := os.ReadFile(*fontFile)
		if err != nil {
			fatalf("read font: %v", err)
		}
		font, err = importer.LoadFont(data)
		if err != nil {
			fatalf("load font: %v", err)
		}
	}

	if *interactive {
		source, err := buildSource(font, *text, cols, rows, rng)
		if err != nil {
			fatalf("%v", err)
		}
		if err := terminal.NewViewer(source).Run(); err != nil {
			fatalf("viewer: %v", err)
		}
		return
	}

	bitmaps, err := collectBitmaps(font, *text, *demoMode, *count, cols, rows, rng)
	if err != nil {
		fatalf("%v", err)
	}

	out := io.Writer(os.Stdout)
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			fatalf("create output: %v", err)
		}
		defer f.Close()
		out = f
	}

	for i, bm := range bitmaps {
		art, err := render.Render(bm)
		if err != nil {
			fatalf("render: %v", err)
		}
		if *validate {
			if errs := validation.NewArtValidator().Validate(art, bm); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(os.Stderr, "validation: %v\n", e)
				}
				os.Exit(1)
			}
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		for _, line := range art {
			fmt.Fprintln(out, line)
		}
	}
}

// buildSource picks the viewer's bitmap source: font glyphs when a font is
// loaded, random bitmaps otherwise.
func buildSource(font *importer.Font, text string, cols, rows int, rng *rand.Rand) (terminal.Source, error) {
	if font != nil {
		names := font.Glyphs()
		if text != "" {
			names = strings.Split(text, "")
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("font has no glyphs to show")
		}
		i := 0
		return terminal.SourceFunc(func() (string, core.Bitmap, error) {
			name := names[i%len(names)]
			i++
			bm, ok := font.Glyph(name)
			if !ok {
				return "", core.Bitmap{}, fmt.Errorf("font has no glyph %q", name)
			}
			return name, bm, nil
		}), nil
	}
	return terminal.SourceFunc(func() (string, core.Bitmap, error) {
		return "random", demo.RandomBitmap(cols, rows, rng), nil
	}), nil
}

// collectBitmaps gathers the bitmaps to render in batch mode, in order of
// precedence: demo mode, font text, then a bitmap file or stdin.
func collectBitmaps(font *importer.Font, text string, demoMode bool, count, cols, rows int, rng *rand.Rand) ([]core.Bitmap, error) {
	if demoMode {
		bms := make([]core.Bitmap, 0, count)
		for i := 0; i < count; i++ {
			bms = append(bms, demo.RandomBitmap(cols, rows, rng))
		}
		return bms, nil
	}

	if text != "" {
		if font == nil {
			return nil, fmt.Errorf("-text requires -font")
		}
		return font.Text(text)
	}

	var data []byte
	var err error
	if name := flag.Arg(0); name != "" && name != "-" {
		data, err = os.ReadFile(name)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("read bitmap: %w", err)
	}
	bm, err := importer.ParseText(string(data))
	if err != nil {
		return nil, err
	}
	return []core.Bitmap{bm}, nil
}

// parseGrid parses a COLSxROWS size like "6x4".
func parseGrid(s string) (cols, rows int, err error) {
	if _, err := fmt.Sscanf(s, "%dx%d", &cols, &rows); err != nil {
		return 0, 0, fmt.Errorf("want COLSxROWS, got %q", s)
	}
	if cols < 1 || rows < 1 {
		return 0, 0, fmt.Errorf("grid must be at least 1x1, got %q", s)
	}
	return cols, rows, nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
