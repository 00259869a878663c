package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/rainbow-chess/internal/palette"
)

func TestSquareParity(t *testing.T) {
	tests := []struct {
		sq   string
		dark bool
	}{
		{"a1", true},
		{"b8", true},
		{"d4", true},
		{"a8", false},
		{"h1", false},
		{"e4", false},
	}

	for _, tt := range tests {
		sq, err := ParseSquare(tt.sq)
		if err != nil {
			t.Fatalf("ParseSquare(%q) failed: %v", tt.sq, err)
		}
		if sq.IsDark() != tt.dark {
			t.Errorf("%s.IsDark() = %v, want %v", tt.sq, sq.IsDark(), tt.dark)
		}
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for i := 0; i < NumSquares; i++ {
		sq := SquareAt(i)
		if !sq.Valid() {
			t.Fatalf("SquareAt(%d) = %+v is not valid", i, sq)
		}
		if sq.Index() != i {
			t.Errorf("SquareAt(%d).Index() = %d", i, sq.Index())
		}
		parsed, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q) failed: %v", sq.String(), err)
		}
		if parsed != sq {
			t.Errorf("round trip of %q gave %+v", sq.String(), parsed)
		}
	}

	for _, bad := range []string{"", "e", "e9", "i1", "a0", "E4", "e44"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) should fail", bad)
		}
	}
}

func TestAllTraversalOrder(t *testing.T) {
	all := All()
	if len(all) != NumSquares {
		t.Fatalf("All() returned %d squares", len(all))
	}
	if all[0].String() != "a8" || all[7].String() != "h8" || all[63].String() != "h1" {
		t.Errorf("unexpected traversal: first=%s eighth=%s last=%s", all[0], all[7], all[63])
	}

	dark := DarkSquares()
	if len(dark) != NumSquares/2 {
		t.Fatalf("DarkSquares() returned %d squares", len(dark))
	}
	if dark[0].String() != "b8" {
		t.Errorf("first dark square = %s, want b8", dark[0])
	}
	for i, sq := range dark {
		if got := darkOrdinal(sq); got != i {
			t.Errorf("darkOrdinal(%s) = %d, want %d", sq, got, i)
		}
	}
}

func scheme(t *testing.T, n int) palette.Scheme {
	t.Helper()
	accents := make([]palette.Color, n)
	for i := range accents {
		accents[i] = palette.Color(0x100000 * (i + 1))
	}
	s, err := palette.NewScheme("test", "Test", accents, palette.White)
	if err != nil {
		t.Fatalf("NewScheme(%d) failed: %v", n, err)
	}
	return s
}

func TestDistributeCoversEveryCatalogScheme(t *testing.T) {
	for _, s := range palette.List() {
		t.Run(s.Key(), func(t *testing.T) {
			m := Distribute(s)
			used := make(map[palette.Color]bool)
			for _, sq := range All() {
				c := m.At(sq)
				if !sq.IsDark() {
					if c != s.LightSquare() {
						t.Errorf("light square %s = %s, want %s", sq, c, s.LightSquare())
					}
					continue
				}
				used[c] = true
			}
			for i, a := range s.Accents() {
				if !used[a] {
					t.Errorf("accent %d (%s) never used", i, a)
				}
			}
			if len(m.ByName()) != NumSquares {
				t.Errorf("ByName() has %d entries", len(m.ByName()))
			}
		})
	}
}

func TestSmallPaletteFormulas(t *testing.T) {
	tests := []struct {
		n       int
		formula func(f, r int) int
	}{
		{2, func(f, r int) int { return ((f + r) >> 1) % 2 }},
		{3, func(f, r int) int { return (f + r*2) % 3 }},
		{4, func(f, r int) int { return (f*2 + r) % 4 }},
		{5, func(f, r int) int { return (f*3 + r*2) % 5 }},
	}

	for _, tt := range tests {
		s := scheme(t, tt.n)
		m := Distribute(s)
		for _, sq := range DarkSquares() {
			want := s.Accent(tt.formula(sq.File, sq.Rank))
			if got := m.At(sq); got != want {
				t.Errorf("n=%d %s = %s, want %s", tt.n, sq, got, want)
			}
		}
	}
}

// diagonalPairs returns all dark-square pairs one step apart along a
// diagonal. rising pairs go toward higher file and higher rank, falling pairs
// toward higher file and lower rank.
func diagonalPairs(rising bool) [][2]Square {
	var pairs [][2]Square
	for _, sq := range DarkSquares() {
		next := Square{File: sq.File + 1, Rank: sq.Rank + 1}
		if !rising {
			next.Rank = sq.Rank - 1
		}
		if next.Valid() {
			pairs = append(pairs, [2]Square{sq, next})
		}
	}
	return pairs
}

func TestSmallPalettesSeparateDiagonalNeighbours(t *testing.T) {
	tests := []struct {
		n       int
		rising  bool
		falling bool
	}{
		{n: 2, rising: true},
		{n: 3, falling: true},
		{n: 4, rising: true, falling: true},
		{n: 5, falling: true},
	}

	for _, tt := range tests {
		m := Distribute(scheme(t, tt.n))
		check := func(rising bool) {
			pairs := diagonalPairs(rising)
			if len(pairs) == 0 {
				t.Fatal("no diagonal pairs generated")
			}
			for _, p := range pairs {
				if m.At(p[0]) == m.At(p[1]) {
					t.Errorf("n=%d: %s and %s share %s", tt.n, p[0], p[1], m.At(p[0]))
				}
			}
		}
		if tt.rising {
			check(true)
		}
		if tt.falling {
			check(false)
		}
	}
}

func TestRoundRobinForLargePalettes(t *testing.T) {
	for _, n := range []int{6, 7, 8, 9, 12} {
		s := scheme(t, n)
		m := Distribute(s)

		if got := m.At(NewSquare(1, 8)); got != s.Accent(0) {
			t.Errorf("n=%d: b8 = %s, want first accent %s", n, got, s.Accent(0))
		}
		for i, sq := range DarkSquares() {
			if got, want := m.At(sq), s.Accent(i%n); got != want {
				t.Errorf("n=%d: %s = %s, want %s", n, sq, got, want)
			}
		}
	}
}

func TestOneColorFallsBackToRoundRobin(t *testing.T) {
	for _, sq := range DarkSquares() {
		if got := AccentIndex(1, sq); got != 0 {
			t.Fatalf("AccentIndex(1, %s) = %d", sq, got)
		}
	}
}

func TestIntersexB8(t *testing.T) {
	m := Distribute(palette.Lookup("intersex"))
	if got := m.ByName()["b8"]; got != "#FFD800" {
		t.Errorf("b8 = %s, want #FFD800", got)
	}
}

func TestDistributeIsDeterministic(t *testing.T) {
	s := palette.Lookup("progress")
	a, b := Distribute(s), Distribute(s)
	if diff := cmp.Diff(a.ByName(), b.ByName()); diff != "" {
		t.Errorf("two runs differ (-first +second):\n%s", diff)
	}
}

func TestRows(t *testing.T) {
	white := Rows(WhiteBottom)
	if white[0][0].String() != "a8" || white[7][7].String() != "h1" {
		t.Errorf("white rows corners: %s %s", white[0][0], white[7][7])
	}
	black := Rows(BlackBottom)
	if black[0][0].String() != "h1" || black[7][7].String() != "a8" {
		t.Errorf("black rows corners: %s %s", black[0][0], black[7][7])
	}

	if diff := cmp.Diff([]string{"h", "g", "f", "e", "d", "c", "b", "a"}, FileLabels(BlackBottom)); diff != "" {
		t.Errorf("black file labels (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"8", "7", "6", "5", "4", "3", "2", "1"}, RankLabels(WhiteBottom)); diff != "" {
		t.Errorf("white rank labels (-want +got):\n%s", diff)
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in      string
		want    Orientation
		wantErr bool
	}{
		{"white", WhiteBottom, false},
		{"W", WhiteBottom, false},
		{"", WhiteBottom, false},
		{"Black", BlackBottom, false},
		{"b", BlackBottom, false},
		{"sideways", WhiteBottom, true},
	}
	for _, tt := range tests {
		got, err := ParseOrientation(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOrientation(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseOrientation(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if WhiteBottom.Flip() != BlackBottom || BlackBottom.Flip() != WhiteBottom {
		t.Error("Flip is not an involution")
	}
}
