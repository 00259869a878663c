package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/rainbow-chess/internal/board"
	"github.com/vovakirdan/rainbow-chess/internal/palette"
)

func TestDistribute(t *testing.T) {
	m := Distribute("intersex")
	if len(m) != board.NumSquares {
		t.Fatalf("Distribute returned %d squares", len(m))
	}
	if m["b8"] != "#FFD800" {
		t.Errorf("b8 = %s, want #FFD800", m["b8"])
	}
	if m["a8"] != "#F5F1E8" {
		t.Errorf("a8 = %s, want cream #F5F1E8", m["a8"])
	}
}

func TestUnknownKeyMatchesDefault(t *testing.T) {
	if diff := cmp.Diff(Distribute("default"), Distribute("not-a-scheme")); diff != "" {
		t.Errorf("unknown key colors differ from default (-default +unknown):\n%s", diff)
	}
	if diff := cmp.Diff(ResolveContrast("default"), ResolveContrast("")); diff != "" {
		t.Errorf("empty key contrast differs from default (-default +empty):\n%s", diff)
	}
}

func TestResolveContrast(t *testing.T) {
	want := Notation{
		LightSquareForeground: "#000000",
		DarkSquareForeground:  "#FFFFFF",
		Bold:                  true,
	}
	got := ResolveContrast("default")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolveContrast(default) mismatch (-want +got):\n%s", diff)
	}
	if again := ResolveContrast("default"); again != got {
		t.Errorf("ResolveContrast not deterministic: %+v vs %+v", got, again)
	}
}

func TestCustomRegistry(t *testing.T) {
	s, err := palette.NewScheme("club", "Club",
		[]palette.Color{palette.MustParseColor("#112233"), palette.MustParseColor("#445566")},
		palette.White)
	if err != nil {
		t.Fatalf("NewScheme failed: %v", err)
	}
	reg, err := palette.Builtin().With(s)
	if err != nil {
		t.Fatalf("With failed: %v", err)
	}

	m := DistributeIn(reg, "club")
	if m["a8"] != "#FFFFFF" {
		t.Errorf("a8 = %s, want white", m["a8"])
	}
	if n := ResolveContrastIn(reg, "club"); n.LightSquareForeground != "#000000" {
		t.Errorf("light-square foreground = %s, want black", n.LightSquareForeground)
	}
}

func TestBuildAndFlip(t *testing.T) {
	th := Build(palette.Builtin(), "rainbow", board.WhiteBottom)
	if th.Scheme.Key() != "rainbow" {
		t.Fatalf("scheme = %q", th.Scheme.Key())
	}

	b8 := board.NewSquare(1, 8)
	if th.Fill(b8) != palette.MustParseColor("#E40303") {
		t.Errorf("b8 fill = %s, want first rainbow accent", th.Fill(b8))
	}

	flipped := th.Flipped()
	if flipped.Orientation != board.BlackBottom {
		t.Error("Flipped did not change orientation")
	}
	if flipped.Colors != th.Colors {
		t.Error("orientation must not change square colors")
	}
	if th.Orientation != board.WhiteBottom {
		t.Error("Flipped mutated the receiver")
	}
}

func TestLabelAt(t *testing.T) {
	th := Build(palette.Builtin(), "default", board.WhiteBottom)

	a1 := th.LabelAt(board.NewSquare(0, 1))
	if a1.Rank != "1" || a1.File != "a" {
		t.Errorf("a1 label = %+v, want rank 1 and file a", a1)
	}
	if a1.Style != th.Styles.Dark {
		t.Errorf("a1 is dark, got style %+v", a1.Style)
	}

	if l := th.LabelAt(board.NewSquare(0, 5)); l.Rank != "5" || l.File != "" {
		t.Errorf("a5 label = %+v", l)
	}
	if l := th.LabelAt(board.NewSquare(6, 1)); l.File != "g" || l.Rank != "" {
		t.Errorf("g1 label = %+v", l)
	}
	if l := th.LabelAt(board.NewSquare(4, 4)); !l.Empty() {
		t.Errorf("e4 should carry no label, got %+v", l)
	}

	black := th.Flipped()
	if l := black.LabelAt(board.NewSquare(7, 8)); l.Rank != "8" || l.File != "h" {
		t.Errorf("black-bottom h8 label = %+v", l)
	}
	if l := black.LabelAt(board.NewSquare(0, 1)); !l.Empty() {
		t.Errorf("black-bottom a1 should be unlabeled, got %+v", l)
	}
}
