package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", got)
	}

	s.SetCell(4, 2, Cell{Rune: 'Y', Color: ColorRed})
	cell := s.GetCell(4, 2)
	if cell.Rune != 'Y' || cell.Color != ColorRed {
		t.Errorf("GetCell(4, 2) = %+v, expected {Y red}", cell)
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(5, 5)

	// None of these should panic.
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(5, 0, 'X')
	s.Set(0, 5, 'X')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get out of bounds = %q, expected space", got)
	}
	if cell := s.GetCell(99, 99); cell != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Errorf("GetCell out of bounds = %+v, expected empty cell", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, Cell{Rune: '#', Color: ColorGreen})
	s.Clear()

	if got := s.Get(1, 1); got != ' ' {
		t.Errorf("after Clear, Get(1, 1) = %q, expected space", got)
	}
	if got := s.GetCell(1, 1).Color; got != ColorDefault {
		t.Errorf("after Clear, color = %v, expected default", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, 'A')
	s.Set(5, 3, 'B')

	s.Resize(4, 3)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("after shrink, Get(2, 2) = %q, expected 'A'", got)
	}
	// 'B' was outside the new bounds.
	if got := s.Get(5, 3); got != ' ' {
		t.Errorf("after shrink, Get(5, 3) = %q, expected space", got)
	}

	s.Resize(8, 6)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("after grow, Get(2, 2) = %q, expected 'A'", got)
	}
}

func TestScreenSetPoint(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetPoint(4, 5, ColorCyan)

	cell := s.GetCell(4, 5)
	if cell.Rune == ' ' {
		t.Error("SetPoint left the cell empty")
	}
	if cell.Color != ColorCyan {
		t.Errorf("SetPoint color = %v, expected cyan", cell.Color)
	}
}

func TestScreenFillCircleZeroRadiusIsPoint(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillCircle(5, 5, 0, ColorYellow)

	if s.GetCell(5, 5).Color != ColorYellow {
		t.Error("FillCircle with radius 0 did not draw the center point")
	}
	filled := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				filled++
			}
		}
	}
	if filled != 1 {
		t.Errorf("FillCircle radius 0 filled %d cells, expected 1", filled)
	}
}

func TestScreenFillCircleCoversCenter(t *testing.T) {
	s := NewScreen(20, 20)
	s.FillCircle(10, 10, 2, ColorRed)

	for _, p := range [][2]int{{10, 10}, {10, 8}, {10, 12}, {8, 10}, {12, 10}} {
		if s.Get(p[0], p[1]) == ' ' {
			t.Errorf("FillCircle did not cover (%d, %d)", p[0], p[1])
		}
	}
	// Well outside the circle.
	if s.Get(10, 14) != ' ' {
		t.Error("FillCircle overdrew below the circle")
	}
}

func TestScreenDrawLine(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawLine(0, 0, 4, 4, ColorWhite)

	for i := 0; i <= 4; i++ {
		if s.Get(i, i) == ' ' {
			t.Errorf("DrawLine missing diagonal cell (%d, %d)", i, i)
		}
	}
}

func TestScreenDrawLineHorizontal(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawLine(1, 1, 6, 1, ColorWhite)

	row := s.Row(1)
	if strings.TrimSpace(row) == "" {
		t.Fatal("DrawLine drew nothing")
	}
	for x := 1; x <= 6; x++ {
		if s.Get(x, 1) == ' ' {
			t.Errorf("DrawLine missing cell (%d, 1)", x)
		}
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(2, 3, 4, 2, ColorBlue)

	for y := 3; y < 5; y++ {
		for x := 2; x < 6; x++ {
			if s.GetCell(x, y).Color != ColorBlue {
				t.Errorf("FillRect missing cell (%d, %d)", x, y)
			}
		}
	}
	if s.Get(1, 3) != ' ' || s.Get(6, 3) != ' ' {
		t.Error("FillRect overdrew its bounds")
	}
}

func TestScreenBlitTransparency(t *testing.T) {
	dst := NewScreen(10, 10)
	dst.Set(3, 3, 'K') // should survive under a transparent cell

	src := NewScreen(3, 3)
	src.SetCell(0, 0, Cell{Rune: '*', Color: ColorGreen})

	dst.Blit(src, 2, 2)

	if got := dst.Get(2, 2); got != '*' {
		t.Errorf("Blit did not copy cell, got %q", got)
	}
	if got := dst.Get(3, 3); got != 'K' {
		t.Errorf("Blit overwrote through a transparent cell, got %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("bright-magenta")
	if err != nil {
		t.Fatalf("ParseColor() failed: %v", err)
	}
	if c != ColorBrightMagenta {
		t.Errorf("ParseColor() = %v, expected bright magenta", c)
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor() accepted an unknown color name")
	}
}
