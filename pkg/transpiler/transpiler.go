// Package transpiler converts a Figma document tree into a markup fragment
// and an accompanying stylesheet that reproduce the design in a browser.
//
// The conversion is a single deterministic forward pass over the node tree:
// top-level artboards are located, each is walked recursively, and every
// visited node contributes one style rule keyed by its sanitized node ID plus
// one markup element nested to mirror the source hierarchy. All state lives
// in a per-call accumulator, so concurrent Convert calls need no locking as
// long as callers do not mutate the input tree mid-call.
package transpiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-render/pkg/figma"
)

// ErrNilDocument is returned when Convert is handed a nil document root.
// Conversion never starts on invalid input; all other anomalies degrade to a
// visually incomplete but non-crashing result.
var ErrNilDocument = errors.New("transpiler: document root is nil")

// artboardsContainerClass wraps the emitted fragments when a document holds
// more than one top-level artboard. A single artboard is emitted unwrapped.
const artboardsContainerClass = "artboards-container"

// artboardGap is the fixed spacing between stacked artboards in the wrapper.
const artboardGap = 24

const stylesheetPreamble = `* {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

body {
  display: flex;
  justify-content: center;
  align-items: center;
  min-height: 100vh;
}

`

// Output holds the two textual artifacts produced by a conversion: a markup
// tree of generic container elements and the stylesheet with one rule per
// emitted node, in emission order.
type Output struct {
	Markup     string
	Stylesheet string
}

// rule is a single emitted style rule: a sanitized selector plus its ordered
// declarations.
type rule struct {
	selector     string
	declarations []string
}

// emissionContext accumulates style rules during one Convert call. It is
// created fresh per call and threaded by pointer through the recursion; it is
// never shared between calls, which keeps the transpiler reentrant.
type emissionContext struct {
	rules []rule
}

func (c *emissionContext) append(selector string, declarations []string) {
	c.rules = append(c.rules, rule{selector: selector, declarations: declarations})
}

// stylesheet renders the accumulated rules behind the fixed preamble. The
// artboards-container rule appears only when multiple artboards were emitted.
func (c *emissionContext) stylesheet(multiRoot bool) string {
	var sb strings.Builder
	sb.WriteString(stylesheetPreamble)

	if multiRoot {
		fmt.Fprintf(&sb, ".%s {\n  display: flex;\n  flex-direction: column;\n  gap: %dpx;\n  align-items: center;\n}\n\n",
			artboardsContainerClass, artboardGap)
	}

	for _, r := range c.rules {
		sb.WriteString("." + r.selector + " {\n")
		for _, d := range r.declarations {
			sb.WriteString("  " + d + ";\n")
		}
		sb.WriteString("}\n\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// Convert walks the document tree rooted at doc and produces the markup and
// stylesheet pair. Each top-level artboard is converted as an independent root
// context; when the document has several, their fragments are stacked inside a
// single wrapping flex container.
func Convert(doc *figma.Node) (*Output, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	artboards := FindArtboards(doc)
	if len(artboards) == 0 {
		// No canvas-level frames anywhere: render the root itself.
		artboards = []*figma.Node{doc}
	}

	ctx := &emissionContext{}
	fragments := make([]string, 0, len(artboards))
	for _, artboard := range artboards {
		if frag := emit(artboard, nil, ctx, true); frag != "" {
			fragments = append(fragments, frag)
		}
	}

	multiRoot := len(fragments) > 1
	markup := strings.Join(fragments, "\n")
	if multiRoot {
		markup = fmt.Sprintf("<div class=\"%s\">\n%s\n</div>", artboardsContainerClass, markup)
	}

	return &Output{
		Markup:     markup,
		Stylesheet: ctx.stylesheet(multiRoot),
	}, nil
}

// FindArtboards returns the top-level renderable containers of a document:
// the frame, section, and component children of each canvas. Non-canvas nodes
// are searched depth-first for a canvas. An empty result means the caller
// should fall back to the root node itself.
func FindArtboards(node *figma.Node) []*figma.Node {
	switch node.Type {
	case "CANVAS":
		var artboards []*figma.Node
		for i := range node.Children {
			switch node.Children[i].Type {
			case "FRAME", "SECTION", "COMPONENT":
				artboards = append(artboards, &node.Children[i])
			}
		}
		return artboards

	case "DOCUMENT":
		var artboards []*figma.Node
		for i := range node.Children {
			if node.Children[i].Type == "CANVAS" {
				artboards = append(artboards, FindArtboards(&node.Children[i])...)
			}
		}
		return artboards

	default:
		for i := range node.Children {
			if found := FindArtboards(&node.Children[i]); len(found) > 0 {
				return found
			}
		}
		return nil
	}
}

// emit produces the markup fragment for one node and appends its style rule to
// the context. Invisible nodes are skipped entirely, children included. Text
// nodes wrap their escaped characters; containers wrap their children's
// fragments in source order.
func emit(node, parent *figma.Node, ctx *emissionContext, isRoot bool) string {
	if !node.IsVisible() {
		return ""
	}

	id := SanitizeIdentifier(node.ID)
	ctx.append(id, nodeDeclarations(node, parent, isRoot))

	var content string
	if node.Type == "TEXT" {
		content = EscapeText(node.Characters)
	} else {
		var sb strings.Builder
		for i := range node.Children {
			sb.WriteString(emit(&node.Children[i], node, ctx, false))
		}
		content = sb.String()
	}

	return fmt.Sprintf("<div class=\"%s\">%s</div>", id, content)
}

// nodeDeclarations assembles the full style rule for a node. Declaration order
// matters within a rule: the root's default background and any canvas
// background come before the paint resolver's output so the topmost visible
// fill wins.
func nodeDeclarations(node, parent *figma.Node, isRoot bool) []string {
	decls := resolvePosition(node, parent, isRoot)

	if box := node.AbsoluteBoundingBox; box != nil {
		decls = append(decls, "width: "+px(box.Width), "height: "+px(box.Height))
	}

	if isFlexContainer(node) {
		decls = append(decls, flexDecls(node)...)
	} else if inferred := inferTextAlignment(node); inferred != nil {
		decls = append(decls, inferred...)
	}

	if node.Type == "TEXT" {
		decls = append(decls, ResolveTypography(node)...)
	} else {
		if node.BackgroundColor != nil {
			decls = append(decls, "background-color: "+EncodeColor(node.BackgroundColor, nil))
		}
		if d, ok := ResolveBackground(node.Fills); ok {
			decls = append(decls, d)
		}
	}

	if d, ok := ResolveBorder(node.Strokes, node.StrokeWeight); ok {
		decls = append(decls, d)
	}
	if d, ok := cornerRadius(node); ok {
		decls = append(decls, d)
	}
	if d, ok := ResolveShadows(node.Effects); ok {
		decls = append(decls, d)
	}
	if node.Opacity != nil && *node.Opacity < 1 {
		decls = append(decls, "opacity: "+formatNumber(*node.Opacity))
	}

	return decls
}

// cornerRadius renders the border radius: the four-value per-corner form when
// present, otherwise the uniform radius when non-zero.
func cornerRadius(node *figma.Node) (string, bool) {
	if radii := node.RectangleCornerRadii; len(radii) == 4 {
		return fmt.Sprintf("border-radius: %s %s %s %s", px(radii[0]), px(radii[1]), px(radii[2]), px(radii[3])), true
	}
	if node.CornerRadius > 0 {
		return "border-radius: " + px(node.CornerRadius), true
	}
	return "", false
}
