package transpiler

import (
	"fmt"
	"math"
	"strings"

	"github.com/hellenic-development/figma-render/pkg/figma"
)

// imagePlaceholder stands in for IMAGE fills. Image references are opaque
// handles into Figma's asset storage and cannot be turned into URLs offline,
// so a neutral block keeps the layout intact without fabricating content.
const imagePlaceholder = "#cccccc"

// Figma measures gradient angles with 0 pointing right; CSS linear-gradient
// measures with 0 pointing up, clockwise.
const gradientAngleOffset = 90

// lastVisiblePaint returns the topmost visible paint. Figma paint arrays stack
// bottom-to-top, so the last visible entry is the one the viewer sees.
func lastVisiblePaint(paints []figma.Paint) *figma.Paint {
	for i := len(paints) - 1; i >= 0; i-- {
		if paints[i].IsVisible() {
			return &paints[i]
		}
	}
	return nil
}

// ResolveBackground converts a node's fill list into a single background
// declaration. It reports false when no visible fill exists or the topmost
// visible fill has an unsupported type.
func ResolveBackground(fills []figma.Paint) (string, bool) {
	p := lastVisiblePaint(fills)
	if p == nil {
		return "", false
	}

	switch p.Type {
	case "SOLID":
		return "background-color: " + EncodeColor(p.Color, p.Opacity), true
	case "GRADIENT_LINEAR":
		return "background: " + linearGradient(p), true
	case "GRADIENT_RADIAL":
		return fmt.Sprintf("background: radial-gradient(circle, %s)", gradientStops(p.GradientStops)), true
	case "IMAGE":
		return "background-color: " + imagePlaceholder, true
	default:
		// Unknown paint types degrade to no declaration rather than failing.
		return "", false
	}
}

// ResolveBorder converts a node's stroke list into a border declaration using
// the topmost visible solid stroke. Gradient and image strokes produce nothing.
// A zero stroke weight falls back to 1px so the border stays visible.
func ResolveBorder(strokes []figma.Paint, weight float64) (string, bool) {
	p := lastVisiblePaint(strokes)
	if p == nil || p.Type != "SOLID" {
		return "", false
	}

	if weight <= 0 {
		weight = 1
	}
	return fmt.Sprintf("border: %s solid %s", px(weight), EncodeColor(p.Color, p.Opacity)), true
}

// linearGradient renders a CSS linear-gradient from a GRADIENT_LINEAR paint.
// The angle derives from the first two gradient handles: atan2 over the handle
// delta, converted from Figma's angle convention to the CSS one.
func linearGradient(p *figma.Paint) string {
	angle := float64(gradientAngleOffset)
	if len(p.GradientHandlePositions) >= 2 {
		start := p.GradientHandlePositions[0]
		end := p.GradientHandlePositions[1]
		angle = math.Atan2(end.Y-start.Y, end.X-start.X)*180/math.Pi + gradientAngleOffset
	}
	return fmt.Sprintf("linear-gradient(%sdeg, %s)", formatNumber(angle), gradientStops(p.GradientStops))
}

// gradientStops renders an ordered stop list as "color position%" pairs with
// positions rounded to the nearest integer percentage.
func gradientStops(stops []figma.ColorStop) string {
	parts := make([]string, 0, len(stops))
	for _, s := range stops {
		pct := int(math.Round(s.Position * 100))
		parts = append(parts, fmt.Sprintf("%s %d%%", EncodeColor(s.Color, nil), pct))
	}
	return strings.Join(parts, ", ")
}
