package geometry

import "strconv"

// RGB is a color as three components in [0,1], the layout vertex color
// buffers use.
type RGB [3]float32

// Face colors keyed by polygon side count, so every triangle, square,
// pentagon and so on reads the same across the whole catalogue. Side counts
// outside the table fall back to neutral gray, which is also what hull
// triangulations get because they no longer know their polygon of origin.
const (
	hexTriangle = "#E74C3C" // red
	hexQuad     = "#4A90D9" // blue
	hexPentagon = "#2ECC71" // green
	hexHexagon  = "#E67E22" // orange
	hexOctagon  = "#9B59B6" // purple
	hexDecagon  = "#1ABC9C" // teal
	hexFallback = "#95A5A6" // gray
)

var sideColorHex = map[int]string{
	3:  hexTriangle,
	4:  hexQuad,
	5:  hexPentagon,
	6:  hexHexagon,
	8:  hexOctagon,
	10: hexDecagon,
}

// FaceColorHex returns the display color for a polygon with the given side
// count as a #RRGGBB string.
func FaceColorHex(sides int) string {
	if hex, ok := sideColorHex[sides]; ok {
		return hex
	}
	return hexFallback
}

// FaceColor returns the vertex-buffer color for a polygon with the given
// side count.
func FaceColor(sides int) RGB {
	return parseHex(FaceColorHex(sides))
}

// FallbackColor returns the neutral color used when face identity is lost.
func FallbackColor() RGB {
	return parseHex(hexFallback)
}

// parseHex converts a #RRGGBB string to component floats. Inputs come from
// the constant table above; anything malformed collapses to gray rather
// than propagating garbage into a vertex buffer.
func parseHex(s string) RGB {
	if len(s) != 7 || s[0] != '#' {
		return RGB{0.5, 0.5, 0.5}
	}
	var out RGB
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGB{0.5, 0.5, 0.5}
		}
		out[i] = float32(n) / 255
	}
	return out
}
