package palette

import (
	"image/color"
	"testing"
)

func TestDistinct(t *testing.T) {
	t.Run("count", func(t *testing.T) {
		for _, n := range []int{1, 3, 12} {
			if got := len(Distinct(n)); got != n {
				t.Errorf("Distinct(%d) returned %d colors", n, got)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := Distinct(0); got != nil {
			t.Errorf("Distinct(0) = %v, want nil", got)
		}
		if got := Distinct(-1); got != nil {
			t.Errorf("Distinct(-1) = %v, want nil", got)
		}
	})

	t.Run("distinct and opaque", func(t *testing.T) {
		colors := Distinct(8)
		seen := make(map[color.Color]bool)
		for _, c := range colors {
			if seen[c] {
				t.Errorf("duplicate color %v", c)
			}
			seen[c] = true
			_, _, _, a := c.RGBA()
			if a != 0xffff {
				t.Errorf("color %v is not opaque", c)
			}
		}
	})
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"long form", "#555555", color.RGBA{0x55, 0x55, 0x55, 0xff}, false},
		{"mixed case", "#A1b2C3", color.RGBA{0xa1, 0xb2, 0xc3, 0xff}, false},
		{"short form", "#abc", color.RGBA{0xaa, 0xbb, 0xcc, 0xff}, false},
		{"missing hash", "555555", color.RGBA{}, true},
		{"too short", "#55", color.RGBA{}, true},
		{"not hex", "#zzzzzz", color.RGBA{}, true},
		{"empty", "", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
