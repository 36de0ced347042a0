package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"cubist/core"
)

func testSource() Source {
	cells := [][]core.Cell{
		{core.Empty, core.Empty},
		{core.Raised, core.Empty},
	}
	return SourceFunc(func() (string, core.Bitmap, error) {
		return "glyph", core.NewBitmap(cells), nil
	})
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(40, 12)
	return s
}

// screenText flattens the simulation screen into newline-joined text.
func screenText(s tcell.SimulationScreen) string {
	cells, w, h := s.GetContents()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) > 0 {
				sb.WriteRune(c.Runes[0])
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func TestViewer_DrawsArt(t *testing.T) {
	s := newSimScreen(t)
	defer s.Fini()

	v := NewViewer(testSource())
	v.screen = s
	if err := v.advance(); err != nil {
		t.Fatalf("advance() error = %v", err)
	}

	content := screenText(s)
	for _, want := range []string{`/\\\`, `\///`, `____`} {
		if !strings.Contains(content, want) {
			t.Errorf("screen missing %q\nscreen:\n%s", want, content)
		}
	}
	if !strings.Contains(content, "glyph") {
		t.Errorf("status line missing source name\nscreen:\n%s", content)
	}
}

func TestViewer_QuitKey(t *testing.T) {
	s := newSimScreen(t)
	defer s.Fini()

	v := NewViewer(testSource())
	done := make(chan error, 1)
	go func() { done <- v.run(s) }()

	s.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("viewer did not exit on 'q'")
	}
}
