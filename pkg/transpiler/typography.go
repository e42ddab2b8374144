package transpiler

import (
	"fmt"

	"github.com/hellenic-development/figma-render/pkg/figma"
)

// ResolveTypography converts a text node's type style and fills into text
// styling declarations. The text color comes from the node's first visible
// solid fill; text nodes never receive a background from the paint resolver.
func ResolveTypography(node *figma.Node) []string {
	style := node.Style
	if style == nil {
		return nil
	}

	var decls []string

	if style.FontFamily != "" {
		decls = append(decls, fmt.Sprintf("font-family: '%s', sans-serif", style.FontFamily))
	}
	if style.FontSize > 0 {
		decls = append(decls, "font-size: "+px(style.FontSize))
	}
	if style.FontWeight > 0 {
		decls = append(decls, "font-weight: "+formatNumber(style.FontWeight))
	}

	// Absolute line height wins over the percentage form when both are set.
	if style.LineHeightPx > 0 {
		decls = append(decls, "line-height: "+px(style.LineHeightPx))
	} else if style.LineHeightPercent > 0 {
		decls = append(decls, fmt.Sprintf("line-height: %s%%", formatNumber(style.LineHeightPercent)))
	}

	if style.LetterSpacing != 0 {
		decls = append(decls, "letter-spacing: "+px(style.LetterSpacing))
	}

	if align, ok := textAlign(style.TextAlignHorizontal); ok {
		decls = append(decls, "text-align: "+align)
	}

	if color, ok := textColor(node.Fills); ok {
		decls = append(decls, "color: "+color)
	}

	return decls
}

// textAlign maps Figma horizontal text alignment keywords to CSS text-align values.
func textAlign(v string) (string, bool) {
	switch v {
	case "LEFT":
		return "left", true
	case "RIGHT":
		return "right", true
	case "CENTER":
		return "center", true
	case "JUSTIFIED":
		return "justify", true
	default:
		return "", false
	}
}

// textColor picks the first visible solid fill as the text color.
func textColor(fills []figma.Paint) (string, bool) {
	for i := range fills {
		f := &fills[i]
		if f.IsVisible() && f.Type == "SOLID" && f.Color != nil {
			return EncodeColor(f.Color, f.Opacity), true
		}
	}
	return "", false
}
