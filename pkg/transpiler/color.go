package transpiler

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hellenic-development/figma-render/pkg/figma"
)

// transparentColor is returned for nil colors. The fetch layer normalizes
// absent nested colors before the tree reaches the transpiler, so hitting
// this value means an upstream contract violation rather than user input.
const transparentColor = "rgba(0, 0, 0, 0)"

// EncodeColor converts a normalized Figma color (channels in 0-1) into a CSS
// rgba() value. The alpha channel resolves in order: explicit opacity override,
// the color's own alpha, fully opaque. A nil color yields a transparent value
// instead of panicking.
func EncodeColor(c *figma.Color, opacity *float64) string {
	if c == nil {
		return transparentColor
	}

	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))

	a := c.Alpha()
	if opacity != nil {
		a = *opacity
	}

	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNumber(a))
}

// formatNumber renders a float without trailing zeros and without exponent
// notation, so stylesheet values read like hand-written CSS.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// px renders a float as a CSS pixel length.
func px(f float64) string {
	return formatNumber(f) + "px"
}
