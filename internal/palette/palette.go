// Package palette generates distinct plot colors and parses hex color
// strings.
package palette

import (
	"fmt"
	"image/color"
)

// Distinct creates a palette of n distinct colors by walking the hue wheel
// at fixed saturation and lightness.
func Distinct(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// ParseHex parses "#rgb" or "#rrggbb" into a color.
func ParseHex(s string) (color.Color, error) {
	var r, g, b uint8
	switch len(s) {
	case 4:
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b = r*17, g*17, b*17
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("parse color %q: %w", s, err)
		}
	default:
		return nil, fmt.Errorf("parse color %q: want #rgb or #rrggbb", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
