// Package terminal displays rendered block art on a fullscreen tcell canvas.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"cubist/core"
	"cubist/render"
)

// Source supplies successive bitmaps for the viewer to display.
type Source interface {
	Next() (name string, bm core.Bitmap, err error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() (string, core.Bitmap, error)

// Next calls f.
func (f SourceFunc) Next() (string, core.Bitmap, error) {
	return f()
}

// Viewer shows rendered art one bitmap at a time. Space or 'n' advances to
// the next bitmap from the source; 'q', Escape or Ctrl-C exits.
type Viewer struct {
	source Source
	screen tcell.Screen

	name string
	art  []string
}

// NewViewer creates a viewer reading from source.
func NewViewer(source Source) *Viewer {
	return &Viewer{source: source}
}

// Run opens a terminal screen and enters the event loop, blocking until the
// user exits or the source fails.
func (v *Viewer) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	return v.run(screen)
}

// run drives the event loop on an already-initialized screen. Split from Run
// so tests can pass a simulation screen.
func (v *Viewer) run(screen tcell.Screen) error {
	v.screen = screen
	if err := v.advance(); err != nil {
		return err
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			v.draw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyEnter || ev.Rune() == ' ' || ev.Rune() == 'n':
				if err := v.advance(); err != nil {
					return err
				}
			}
		}
	}
}

// advance pulls the next bitmap from the source, renders it and redraws.
func (v *Viewer) advance() error {
	name, bm, err := v.source.Next()
	if err != nil {
		return fmt.Errorf("next bitmap: %w", err)
	}
	art, err := render.Render(bm)
	if err != nil {
		return fmt.Errorf("render %q: %w", name, err)
	}
	v.name = name
	v.art = art
	v.draw()
	return nil
}

// draw paints the current art centered on the screen with a status line.
func (v *Viewer) draw() {
	v.screen.Clear()
	sw, sh := v.screen.Size()

	artWidth := 0
	for _, line := range v.art {
		if len(line) > artWidth {
			artWidth = len(line)
		}
	}
	x0 := max(0, (sw-artWidth)/2)
	y0 := max(0, (sh-len(v.art))/2)

	style := tcell.StyleDefault
	for dy, line := range v.art {
		for dx, r := range line {
			v.screen.SetContent(x0+dx, y0+dy, r, nil, style)
		}
	}

	status := "space/n: next   q: quit"
	if v.name != "" {
		status = v.name + "   " + status
	}
	statusStyle := tcell.StyleDefault.Reverse(true)
	for i, r := range status {
		if i >= sw {
			break
		}
		v.screen.SetContent(i, sh-1, r, nil, statusStyle)
	}

	v.screen.Show()
}
