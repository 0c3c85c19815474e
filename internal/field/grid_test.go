package field

import "testing"

func TestNewGridAllEmpty(t *testing.T) {
	g := NewGrid(3, 4)
	if g.Length() != 3 || g.Width() != 4 {
		t.Fatalf("dimensions = %dx%d, want 3x4", g.Length(), g.Width())
	}
	if n := g.Count(CellEmpty); n != 12 {
		t.Errorf("Count(CellEmpty) = %d, want 12", n)
	}
}

func TestNewGridNegativeDimensions(t *testing.T) {
	g := NewGrid(-1, 5)
	if g.Length() != 0 || g.Width() != 5 {
		t.Errorf("dimensions = %dx%d, want 0x5", g.Length(), g.Width())
	}
	if _, ok := g.Find(CellEmpty); ok {
		t.Error("zero-row grid should contain no cells")
	}
}

func TestInBounds(t *testing.T) {
	g := NewGrid(3, 5)
	cases := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{2, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 5, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.row, c.col); got != c.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", c.row, c.col, got, c.want)
		}
	}
}

func TestSetAndAt(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(1, 0, CellHole)
	if g.At(1, 0) != CellHole {
		t.Fatalf("At(1,0) = %v, want hole", g.At(1, 0))
	}
	if g.At(0, 1) != CellEmpty {
		t.Fatalf("At(0,1) = %v, want empty", g.At(0, 1))
	}
}

func TestFindRowMajor(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(2, 0, CellHat)
	g.Set(1, 2, CellHat)
	pos, ok := g.Find(CellHat)
	if !ok {
		t.Fatal("Find returned false")
	}
	if pos != (Position{Row: 1, Col: 2}) {
		t.Errorf("Find = %v, want (1,2)", pos)
	}
}

func TestParse(t *testing.T) {
	g, err := Parse("*░O\n░^░\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Length() != 2 || g.Width() != 3 {
		t.Fatalf("dimensions = %dx%d, want 2x3", g.Length(), g.Width())
	}
	want := [][]Cell{
		{CellPath, CellEmpty, CellHole},
		{CellEmpty, CellHat, CellEmpty},
	}
	for row := range want {
		for col := range want[row] {
			if got := g.At(row, col); got != want[row][col] {
				t.Errorf("At(%d,%d) = %v, want %v", row, col, got, want[row][col])
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"ragged rows", "░░\n░"},
		{"unknown glyph", "░x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.text); err == nil {
				t.Errorf("Parse(%q) returned nil error", tc.text)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	g, err := Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Length() != 0 {
		t.Errorf("Length = %d, want 0", g.Length())
	}
}

func TestGridStringRoundTrip(t *testing.T) {
	text := "░O░░\n░░^O\n*░░░"
	g, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := g.String(); got != text {
		t.Errorf("String() = %q, want %q", got, text)
	}
}

func TestCellGlyph(t *testing.T) {
	cases := []struct {
		cell Cell
		want rune
	}{
		{CellEmpty, '░'},
		{CellHole, 'O'},
		{CellHat, '^'},
		{CellPath, '*'},
	}
	for _, c := range cases {
		if got := c.cell.Glyph(); got != c.want {
			t.Errorf("%v.Glyph() = %q, want %q", c.cell, got, c.want)
		}
	}
}
