package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	// Untouched cells are spaces
	if s.Get(0, 0) != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", s.Get(0, 0))
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '#', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '#' {
		t.Errorf("GetCell rune = %q, expected '#'", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("GetCell color = %d, expected ColorRed", cell.Color)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// These should not panic
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
	if s.GetCell(100, 100).Color != ColorDefault {
		t.Error("Out-of-bounds GetCell should return default color")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawText(2, 1, "hello")
	row := s.Row(1)
	if !strings.Contains(row, "hello") {
		t.Errorf("Row(1) = %q, expected to contain 'hello'", row)
	}

	// Clipped text should not panic
	s.DrawText(18, 0, "clipped")
	if s.Get(18, 0) != 'c' || s.Get(19, 0) != 'l' {
		t.Error("DrawText should write the visible prefix of clipped text")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawTextColored(0, 0, "hit", ColorBrightRed)
	for i := range 3 {
		if s.GetCell(i, 0).Color != ColorBrightRed {
			t.Errorf("cell %d color = %d, expected ColorBrightRed", i, s.GetCell(i, 0).Color)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, 'X', ColorRed)
	s.Clear()

	if s.Get(2, 2) != ' ' {
		t.Error("Clear should reset runes to spaces")
	}
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("Clear should reset colors to default")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	// Shrink below the content
	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("Content outside the shrunk screen should be gone")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 5, 3))

	if s.Get(0, 0) != '┌' || s.Get(4, 0) != '┐' {
		t.Error("DrawBox top corners not drawn")
	}
	if s.Get(0, 2) != '└' || s.Get(4, 2) != '┘' {
		t.Error("DrawBox bottom corners not drawn")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 1) != '│' {
		t.Error("DrawBox edges not drawn")
	}
}
