// Package layout holds the display-free helpers the renderer uses to place and
// color things on screen.
package layout

import (
	"image/color"
	"math"
	"strings"
	"unicode/utf8"
)

// Polar returns the screen point at angle degrees clockwise from the top and
// radius r around (cx, cy).
func Polar(cx, cy, angle, r float64) (float64, float64) {
	rad := angle * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}

// WrapText breaks s into lines of at most width runes. Lines break on spaces; a
// word longer than width is cut into width-sized pieces.
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		for utf8.RuneCountInString(word) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			rs := []rune(word)
			lines = append(lines, string(rs[:width]))
			word = string(rs[width:])
		}

		switch {
		case word == "":
		case line == "":
			line = word
		case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// HSV converts hue (degrees, any sign), saturation and value in [0,1] to an RGBA
// with alpha a.
func HSV(hue, s, v float64, a uint8) color.RGBA {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}

	sector := int(hue / 60)
	frac := hue/60 - float64(sector)
	lo := v * (1 - s)
	down := v * (1 - s*frac)
	up := v * (1 - s*(1-frac))

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = v, up, lo
	case 1:
		r, g, b = down, v, lo
	case 2:
		r, g, b = lo, v, up
	case 3:
		r, g, b = lo, down, v
	case 4:
		r, g, b = up, lo, v
	default:
		r, g, b = v, lo, down
	}
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: a}
}

func channel(x float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
}
