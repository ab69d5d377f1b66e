package surface

import (
	"image/color"
	"testing"
)

func TestPaletteSize(t *testing.T) {
	if len(Palette) != 15 {
		t.Fatalf("palette has %d entries, want 15", len(Palette))
	}
	seen := map[color.NRGBA]bool{}
	for _, c := range Palette {
		if c.A != 0xff {
			t.Errorf("palette entry %v is not opaque", c)
		}
		if seen[c] {
			t.Errorf("palette entry %v appears twice", c)
		}
		seen[c] = true
	}
}

func TestDefaultColorIsBlack(t *testing.T) {
	want := color.NRGBA{A: 0xff}
	if DefaultColor != want {
		t.Fatalf("default color = %v, want black %v", DefaultColor, want)
	}
}

func TestClampBrush(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1}, {-3, 1}, {1, 1}, {3, 3}, {20, 20}, {21, 20}, {100, 20},
	}
	for _, tt := range tests {
		if got := ClampBrush(tt.in); got != tt.want {
			t.Errorf("ClampBrush(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
