package transpiler

import (
	"github.com/hellenic-development/figma-render/pkg/figma"
)

// rootBackground is the opaque default painted on every root container so
// absolutely positioned descendants sit on a defined surface. A visible fill
// on the root overrides it because paint declarations are emitted later in
// the same rule.
const rootBackground = "#ffffff"

// mapAlignment translates Figma axis alignment keywords into CSS flex
// alignment keywords. Unknown or absent values fall back to start alignment.
func mapAlignment(v string) string {
	switch v {
	case "MIN":
		return "start"
	case "MAX":
		return "end"
	case "CENTER":
		return "center"
	case "BASELINE":
		return "baseline"
	case "STRETCH":
		return "stretch"
	case "SPACE_BETWEEN":
		return "space-between"
	default:
		return "start"
	}
}

// isFlexContainer reports whether the node uses Figma auto-layout.
func isFlexContainer(n *figma.Node) bool {
	return n.LayoutMode == "HORIZONTAL" || n.LayoutMode == "VERTICAL"
}

// hasForcedAbsoluteChild reports whether any direct child opts out of the
// parent's auto-layout flow.
func hasForcedAbsoluteChild(n *figma.Node) bool {
	for i := range n.Children {
		if n.Children[i].LayoutPositioning == "ABSOLUTE" {
			return true
		}
	}
	return false
}

// needsContainment reports whether the node must become a containing block
// because one of its children will be absolutely positioned: either a child
// explicitly opted out of auto-layout, or the node is not a flex container so
// its children default to absolute positioning.
func needsContainment(n *figma.Node) bool {
	if len(n.Children) == 0 {
		return false
	}
	if !isFlexContainer(n) {
		return true
	}
	return hasForcedAbsoluteChild(n)
}

// resolvePosition chooses the positioning mode for a node. Precedence, first
// match wins:
//
//  1. Root container: relative, clips overflow, opaque default background —
//     it is the coordinate origin for all absolutely positioned descendants.
//  2. Forced absolute (layoutPositioning ABSOLUTE): absolute, offset against
//     the parent's bounding box when both boxes exist. Lets a node escape an
//     ancestor's flex flow.
//  3. Parent is a flex container: static (the flex algorithm places it),
//     promoted to relative when this node must contain an absolutely
//     positioned descendant.
//  4. Default: absolute with the same offset arithmetic as case 2.
func resolvePosition(node, parent *figma.Node, isRoot bool) []string {
	switch {
	case isRoot:
		return []string{
			"position: relative",
			"overflow: hidden",
			"background-color: " + rootBackground,
		}

	case node.LayoutPositioning == "ABSOLUTE":
		return append([]string{"position: absolute"}, offsetDecls(node, parent)...)

	case parent != nil && isFlexContainer(parent):
		if needsContainment(node) {
			return []string{"position: relative"}
		}
		return nil // static: the flex algorithm positions it

	default:
		return append([]string{"position: absolute"}, offsetDecls(node, parent)...)
	}
}

// offsetDecls computes left/top offsets relative to the parent's bounding box.
// Omitted entirely when either bounding box is absent.
func offsetDecls(node, parent *figma.Node) []string {
	if node.AbsoluteBoundingBox == nil || parent == nil || parent.AbsoluteBoundingBox == nil {
		return nil
	}
	return []string{
		"left: " + px(node.AbsoluteBoundingBox.X-parent.AbsoluteBoundingBox.X),
		"top: " + px(node.AbsoluteBoundingBox.Y-parent.AbsoluteBoundingBox.Y),
	}
}

// flexDecls emits the flex container declarations for an auto-layout node:
// direction, gap from item spacing, edge padding, and both axis alignments.
func flexDecls(n *figma.Node) []string {
	direction := "row"
	if n.LayoutMode == "VERTICAL" {
		direction = "column"
	}

	return []string{
		"display: flex",
		"flex-direction: " + direction,
		"gap: " + px(n.ItemSpacing),
		"padding: " + px(n.PaddingTop) + " " + px(n.PaddingRight) + " " + px(n.PaddingBottom) + " " + px(n.PaddingLeft),
		"align-items: " + mapAlignment(n.CounterAxisAlignItems),
		"justify-content: " + mapAlignment(n.PrimaryAxisAlignItems),
	}
}

// inferTextAlignment promotes a non-auto-layout container to a flex container
// when its sole child is a text node carrying explicit alignment, mirroring
// that alignment onto the container (vertical -> cross axis, horizontal ->
// main axis, missing axis -> center). Figma does not expose container-level
// alignment on plain frames that merely wrap a label, so this is a best-effort
// inference; it is skipped when any child opts into absolute positioning.
func inferTextAlignment(n *figma.Node) []string {
	if isFlexContainer(n) || hasForcedAbsoluteChild(n) {
		return nil
	}
	if len(n.Children) != 1 {
		return nil
	}

	child := &n.Children[0]
	if child.Type != "TEXT" || child.Style == nil {
		return nil
	}
	if child.Style.TextAlignHorizontal == "" && child.Style.TextAlignVertical == "" {
		return nil
	}

	alignItems := "center"
	switch child.Style.TextAlignVertical {
	case "TOP":
		alignItems = "start"
	case "BOTTOM":
		alignItems = "end"
	case "CENTER":
		alignItems = "center"
	}

	justify := "center"
	switch child.Style.TextAlignHorizontal {
	case "LEFT":
		justify = "start"
	case "RIGHT":
		justify = "end"
	case "CENTER":
		justify = "center"
	}

	return []string{
		"display: flex",
		"align-items: " + alignItems,
		"justify-content: " + justify,
	}
}
