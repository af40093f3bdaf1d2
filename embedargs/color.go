package embedargs

import (
	"strconv"
	"strings"
)

// ParseColor reads value as either "r,g,b" with decimal components or
// "#rrggbb" and returns the packed 24 bit color.
func ParseColor(value string) (int, error) {
	switch {
	case strings.Contains(value, ","):
		return parseRGB(value)
	case strings.Contains(value, "#"):
		return parseHex(value)
	default:
		return 0, ErrInvalidColor
	}
}

// parseRGB reads every component before judging any of them: a
// component that is not an integer wins over one that is out of range,
// and both win over a wrong component count.
func parseRGB(value string) (int, error) {
	parts := strings.Split(value, ",")

	rgb := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, ErrMalformedColor
		}
		rgb[i] = n
	}
	for _, n := range rgb {
		if n < 0 || n > 255 {
			return 0, ErrInvalidRGB
		}
	}
	if len(rgb) != 3 {
		return 0, ErrMalformedColor
	}
	return packRGB(rgb[0], rgb[1], rgb[2]), nil
}

func parseHex(value string) (int, error) {
	h := strings.TrimLeft(value, "#")
	if len(h) != 6 {
		return 0, ErrMalformedColor
	}

	var rgb [3]int
	for i := range rgb {
		n, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return 0, ErrMalformedColor
		}
		rgb[i] = int(n)
	}
	return packRGB(rgb[0], rgb[1], rgb[2]), nil
}

func packRGB(r, g, b int) int {
	return r<<16 | g<<8 | b
}
