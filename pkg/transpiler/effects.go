package transpiler

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-render/pkg/figma"
)

// ResolveShadows converts a node's effect list into a box-shadow declaration.
// Only visible DROP_SHADOW and INNER_SHADOW effects participate; blur effects
// are intentionally skipped. Multiple shadows are comma-joined in source order.
func ResolveShadows(effects []figma.Effect) (string, bool) {
	var parts []string
	for _, e := range effects {
		if !e.Visible {
			continue
		}
		if e.Type != "DROP_SHADOW" && e.Type != "INNER_SHADOW" {
			continue
		}

		var x, y float64
		if e.Offset != nil {
			x, y = e.Offset.X, e.Offset.Y
		}

		shadow := fmt.Sprintf("%s %s %s %s %s", px(x), px(y), px(e.Radius), px(e.Spread), EncodeColor(e.Color, nil))
		if e.Type == "INNER_SHADOW" {
			shadow = "inset " + shadow
		}
		parts = append(parts, shadow)
	}

	if len(parts) == 0 {
		return "", false
	}
	return "box-shadow: " + strings.Join(parts, ", "), true
}
