package vgatext

import (
	"fmt"
	"strings"
	"testing"
)

func testWriter() (*Writer, *Buffer) {
	b := NewBuffer()
	return NewWriter(b, DefaultColorCode), b
}

func testPosition(t *testing.T, w *Writer, row, col int) {
	t.Helper()
	if r, c := w.Position(); r != row || c != col {
		t.Errorf("expected position (%d,%d), got (%d,%d)", row, col, r, c)
	}
}

func TestWriterNew(t *testing.T) {
	w, _ := testWriter()
	testPosition(t, w, 0, 0)
	if v := w.ColorCode(); v != DefaultColorCode {
		t.Errorf("expected color code %s, got %s", DefaultColorCode, v)
	}
}

func TestWriterScenario(t *testing.T) {
	w, b := testWriter()
	if n, err := w.WriteString("AB\nCD"); err != nil || n != 5 {
		t.Fatalf("expected (5, nil), got (%d, %v)", n, err)
	}

	tests := []struct {
		row, col int
		want     byte
	}{
		{0, 0, 'A'},
		{0, 1, 'B'},
		{1, 0, 'C'},
		{1, 1, 'D'},
	}
	for _, test := range tests {
		c := b.ReadCell(test.row, test.col)
		if c.Char != test.want || c.Color != DefaultColorCode {
			t.Errorf("(%d,%d): expected %q in %s, got %q in %s", test.row, test.col, test.want, DefaultColorCode, c.Char, c.Color)
		}
	}
	if v := b.ReadCell(0, 2); v != Blank {
		t.Errorf("expected newline to leave (0,2) blank, got %+v", v)
	}
	testPosition(t, w, 1, 2)
}

func TestWriteStringMatchesWriteByte(t *testing.T) {
	var input []byte
	for c := byte(0x20); c <= 0x7e; c++ {
		input = append(input, c)
		if c%13 == 0 {
			input = append(input, '\n')
		}
	}

	a, ab := testWriter()
	for _, c := range input {
		_ = a.WriteByte(c)
	}
	s, sb := testWriter()
	_, _ = s.WriteString(string(input))

	if Capture(ab) != Capture(sb) {
		t.Error("expected WriteString and WriteByte to produce the same grid")
	}
	ar, ac := a.Position()
	sr, sc := s.Position()
	if ar != sr || ac != sc {
		t.Errorf("expected equal positions, got (%d,%d) and (%d,%d)", ar, ac, sr, sc)
	}
}

func TestWriteStringPlaceholder(t *testing.T) {
	for n := 0; n < 256; n++ {
		c := byte(n)
		if (c >= 0x20 && c <= 0x7e) || c == '\n' {
			continue
		}
		t.Run(fmt.Sprintf("%#02x", c), func(it *testing.T) {
			w, b := testWriter()
			_, _ = w.WriteString(string([]byte{c}))
			if v := b.ReadCell(0, 0); v.Char != Placeholder || v.Color != DefaultColorCode {
				it.Errorf("expected placeholder in %s, got %#02x in %s", DefaultColorCode, v.Char, v.Color)
			}
			testPosition(it, w, 0, 1)
		})
	}
}

func TestWriteStringUTF8(t *testing.T) {
	w, b := testWriter()
	_, _ = w.WriteString("é!") // two bytes, then '!'

	s := Capture(b)
	if v := s.Row(0); v != "\xfe\xfe!" {
		t.Errorf("expected one placeholder per byte, got %q", v)
	}
	testPosition(t, w, 0, 3)
}

func TestWrite(t *testing.T) {
	w, b := testWriter()
	n, err := fmt.Fprintf(w, "%d%s\x01", 42, "x")
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("expected 4 bytes written, got %d", n)
	}
	s := Capture(b)
	if v := s.Row(0); v != "42x\xfe" {
		t.Errorf("expected %q, got %q", "42x\xfe", v)
	}
}

func TestWriterWrap(t *testing.T) {
	w, b := testWriter()
	line := strings.Repeat("a", Width)
	_, _ = w.WriteString(line)
	testPosition(t, w, 0, Width)

	_ = w.WriteByte('b')
	testPosition(t, w, 1, 1)

	s := Capture(b)
	if v := s.Row(0); v != line {
		t.Errorf("expected first row %q, got %q", line, v)
	}
	if v := s.Row(1); v != "b" {
		t.Errorf("expected 81st byte at the start of the next row, got %q", v)
	}
}

func TestWriterWrapNewline(t *testing.T) {
	// A newline on a full row moves down once, it doesn't wrap first.
	w, _ := testWriter()
	_, _ = w.WriteString(strings.Repeat("a", Width) + "\n")
	testPosition(t, w, 1, 0)
}

func TestWriterScroll(t *testing.T) {
	w, b := testWriter()
	for i := 0; i < Height; i++ {
		if i > 0 {
			_ = w.WriteByte('\n')
		}
		_, _ = fmt.Fprintf(w, "line %d", i)
	}
	testPosition(t, w, Height-1, len(fmt.Sprintf("line %d", Height-1)))

	before := Capture(b)
	_ = w.WriteByte('\n')
	testPosition(t, w, Height-1, 0)

	after := Capture(b)
	for row := 0; row < Height-1; row++ {
		if after[row] != before[row+1] {
			t.Errorf("expected row %d to hold former row %d %q, got %q", row, row+1, before.Row(row+1), after.Row(row))
		}
	}
	for col := 0; col < Width; col++ {
		if v := after[Height-1][col]; v != Blank {
			t.Fatalf("expected last row to be blank, got %+v at column %d", v, col)
		}
	}
	if v := after.Row(0); v != "line 1" {
		t.Errorf("expected %q on the first row, got %q", "line 1", v)
	}

	_, _ = w.WriteString("next")
	after = Capture(b)
	if v := after.Row(Height - 1); v != "next" {
		t.Errorf("expected %q on the last row, got %q", "next", v)
	}
}

func TestWriterScrollRowClamped(t *testing.T) {
	w, b := testWriter()
	for i := 0; i < Height*3; i++ {
		_, _ = fmt.Fprintf(w, "%d\n", i)
		if r, _ := w.Position(); r > Height-1 {
			t.Fatalf("row %d past the last row", r)
		}
	}
	testPosition(t, w, Height-1, 0)

	s := Capture(b)
	if v := s.Row(0); v != fmt.Sprint(Height*3-Height+1) {
		t.Errorf("expected %d on the first row, got %q", Height*3-Height+1, v)
	}
	if v := s.Row(Height - 2); v != fmt.Sprint(Height*3-1) {
		t.Errorf("expected %d on the second to last row, got %q", Height*3-1, v)
	}
}

func TestWriterScrollBlank(t *testing.T) {
	w, b := testWriter()
	for i := 0; i < Height*2; i++ {
		_ = w.WriteByte('\n')
	}
	if s := Capture(b); s != (Snapshot{}) {
		t.Error("expected scrolling a blank grid to leave it blank")
	}
}

func TestWriterWrapScroll(t *testing.T) {
	w, b := testWriter()
	for i := 0; i < Width*Height; i++ {
		_ = w.WriteByte(byte('a' + i/Width%26))
	}
	testPosition(t, w, Height-1, Width)

	_ = w.WriteByte('!')
	testPosition(t, w, Height-1, 1)

	s := Capture(b)
	if v := s.Row(0); v != strings.Repeat("b", Width) {
		t.Errorf("expected first row of b, got %q", v)
	}
	if v := s.Row(Height - 1); v != "!" {
		t.Errorf("expected %q on the last row, got %q", "!", v)
	}
}
