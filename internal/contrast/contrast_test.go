package contrast

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/rainbow-chess/internal/palette"
)

func TestIsLight(t *testing.T) {
	tests := []struct {
		color string
		light bool
	}{
		{"#FFFFFF", true},
		{"#000000", false},
		{"#9B9B9B", false}, // brightness exactly 155
		{"#9C9C9C", true},  // brightness 156
		{"#F5F1E8", true},
		{"#FFD800", true},
		{"#7902AA", false},
		{"#E40303", false},
		{"#5BCFFA", true},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			c := palette.MustParseColor(tt.color)
			if got := IsLight(c); got != tt.light {
				t.Errorf("IsLight(%s) = %v, want %v (brightness %.3f)", tt.color, got, tt.light, Brightness(c))
			}
		})
	}
}

func TestBrightness(t *testing.T) {
	if got := Brightness(palette.White); got != 255 {
		t.Errorf("Brightness(white) = %v, want 255", got)
	}
	if got := Brightness(palette.Black); got != 0 {
		t.Errorf("Brightness(black) = %v, want 0", got)
	}
	if got := Brightness(palette.MustParseColor("#9B9B9B")); got != 155 {
		t.Errorf("Brightness(#9B9B9B) = %v, want 155", got)
	}
}

func TestIsLightMonotonicOnGrays(t *testing.T) {
	prev := false
	for v := 0; v <= 255; v++ {
		c := palette.RGB(uint8(v), uint8(v), uint8(v))
		cur := IsLight(c)
		if prev && !cur {
			t.Fatalf("gray %d is dark after a lighter gray was light", v)
		}
		prev = cur
	}
}

func TestResolveCatalog(t *testing.T) {
	tests := []struct {
		key   string
		light palette.Color
		dark  palette.Color
	}{
		{"default", palette.Black, palette.White},     // all six accents light
		{"intersex", palette.Black, palette.Black},    // one of two: tie
		{"bisexual", palette.Black, palette.Black},    // no light accents
		{"aromantic", palette.Black, palette.White},   // two of three
		{"transgender", palette.Black, palette.White}, // both light
		{"progress", palette.Black, palette.Black},    // four of nine
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := Resolve(palette.Lookup(tt.key))
			want := Styles{
				Light: Style{Foreground: tt.light, Bold: true},
				Dark:  Style{Foreground: tt.dark, Bold: true},
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Resolve(%s) mismatch (-want +got):\n%s", tt.key, diff)
			}
		})
	}
}

func TestResolveDarkLightSquare(t *testing.T) {
	s, err := palette.NewScheme("night", "Night",
		[]palette.Color{palette.MustParseColor("#101010"), palette.MustParseColor("#202020")},
		palette.MustParseColor("#333333"))
	if err != nil {
		t.Fatalf("NewScheme failed: %v", err)
	}

	got := Resolve(s)
	if got.Light.Foreground != palette.White {
		t.Errorf("light-square foreground = %s, want white", got.Light.Foreground)
	}
	if got.Dark.Foreground != palette.Black {
		t.Errorf("dark-square foreground = %s, want black", got.Dark.Foreground)
	}
	if !got.Light.Bold || !got.Dark.Bold {
		t.Error("notation must always be bold")
	}
	if got.For(true) != got.Dark || got.For(false) != got.Light {
		t.Error("For picks the wrong class")
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	for _, s := range palette.List() {
		if a, b := Resolve(s), Resolve(s); a != b {
			t.Errorf("Resolve(%s) not deterministic: %+v vs %+v", s.Key(), a, b)
		}
	}
}
