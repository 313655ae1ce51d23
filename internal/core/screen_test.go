package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Both buffers start blank
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
			if s.Committed(x, y).Rune != ' ' {
				t.Errorf("New committed buffer should be blank at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenCommit(t *testing.T) {
	s := NewScreen(10, 3)

	s.SetCell(2, 1, '#', ColorOrange)
	if got := s.Committed(2, 1); got.Rune != ' ' {
		t.Errorf("pending write leaked into committed buffer: %q", got.Rune)
	}

	s.Commit()
	got := s.Committed(2, 1)
	if got.Rune != '#' || got.Color != ColorOrange {
		t.Errorf("Committed(2, 1) = %+v, expected '#' orange", got)
	}
	if s.Commits() != 1 {
		t.Errorf("Commits() = %d, expected 1", s.Commits())
	}

	// Later writes stay pending until the next commit
	s.Set(2, 1, ' ')
	if s.Committed(2, 1).Rune != '#' {
		t.Error("committed cell changed without Commit")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "ABC")
	s.DrawText(0, 1, "DEF")
	s.DrawText(0, 2, "GHI")
	s.Commit()

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	if !strings.HasPrefix(lines[0], "ABC") {
		t.Errorf("Line 0 should start with 'ABC', got %q", lines[0])
	}
	if s.Row(2) != "GHI  " {
		t.Errorf("Row(2) = %q, expected %q", s.Row(2), "GHI  ")
	}
	if s.Row(7) != "     " {
		t.Errorf("Row(7) should be blank, got %q", s.Row(7))
	}
}
