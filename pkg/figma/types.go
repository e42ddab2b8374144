package figma

// FileResponse represents the complete response from the Figma file API endpoint.
// It contains the file metadata, the document tree, published styles, and schema version information.
type FileResponse struct {
	Name          string           `json:"name"`
	LastModified  string           `json:"lastModified"`
	ThumbnailURL  string           `json:"thumbnailUrl"`
	Version       string           `json:"version"`
	Document      Node             `json:"document"`
	Styles        map[string]Style `json:"styles"`
	SchemaVersion int              `json:"schemaVersion"`
}

// NodesResponse represents the response from the Figma nodes API endpoint when fetching specific nodes.
// It contains file metadata and a map of node IDs to their corresponding NodeData.
type NodesResponse struct {
	Name         string              `json:"name"`
	LastModified string              `json:"lastModified"`
	Version      string              `json:"version"`
	Nodes        map[string]NodeData `json:"nodes"`
}

// NodeData wraps a node with its document structure and optional component/style information.
// This is the structure returned for each requested node in a NodesResponse.
type NodeData struct {
	Document   Node                 `json:"document"`
	Components map[string]Component `json:"components,omitempty"`
	Styles     map[string]Style     `json:"styles,omitempty"`
}

// Component represents a Figma component definition with its metadata.
// Components are reusable design elements that can be instantiated throughout the file.
type Component struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Style represents a published Figma style with its basic properties.
// Styles can be colors (FILL), text styles (TEXT), effects (EFFECT), or layout grids (GRID).
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"style_type"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Nodes can be frames, groups, text, shapes, or other Figma elements, each with their own
// properties such as fills, strokes, effects, layout settings, and children nodes.
//
// Optional nested objects are pointers so that "absent" and "zero" stay distinguishable;
// defaulting of absent values (visible -> true, alpha -> 1) happens at the point of use.
type Node struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Type                  string     `json:"type"`
	Visible               *bool      `json:"visible,omitempty"` // absent means visible
	Opacity               *float64   `json:"opacity,omitempty"`
	Children              []Node     `json:"children,omitempty"`
	BackgroundColor       *Color     `json:"backgroundColor,omitempty"`
	Fills                 []Paint    `json:"fills,omitempty"`
	Strokes               []Paint    `json:"strokes,omitempty"`
	StrokeWeight          float64    `json:"strokeWeight,omitempty"`
	StrokeAlign           string     `json:"strokeAlign,omitempty"`
	CornerRadius          float64    `json:"cornerRadius,omitempty"`
	RectangleCornerRadii  []float64  `json:"rectangleCornerRadii,omitempty"`
	Effects               []Effect   `json:"effects,omitempty"`
	Characters            string     `json:"characters,omitempty"`
	Style                 *TypeStyle `json:"style,omitempty"`
	AbsoluteBoundingBox   *Rectangle `json:"absoluteBoundingBox,omitempty"`
	LayoutMode            string     `json:"layoutMode,omitempty"`        // "HORIZONTAL", "VERTICAL" or empty
	LayoutPositioning     string     `json:"layoutPositioning,omitempty"` // "ABSOLUTE" opts out of auto-layout flow
	PrimaryAxisSizingMode string     `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode string     `json:"counterAxisSizingMode,omitempty"`
	PrimaryAxisAlignItems string     `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems string     `json:"counterAxisAlignItems,omitempty"`
	PaddingLeft           float64    `json:"paddingLeft,omitempty"`
	PaddingRight          float64    `json:"paddingRight,omitempty"`
	PaddingTop            float64    `json:"paddingTop,omitempty"`
	PaddingBottom         float64    `json:"paddingBottom,omitempty"`
	ItemSpacing           float64    `json:"itemSpacing,omitempty"`
}

// IsVisible reports whether the node should be rendered. Figma omits the
// visible flag for visible nodes, so an absent value counts as true.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// Color represents an RGBA color with float channels ranging from 0 to 1.
// The alpha channel is a pointer because Figma omits it for fully opaque
// colors in some payloads; use Alpha to read it with the documented default.
type Color struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a,omitempty"`
}

// Alpha returns the alpha channel, defaulting to 1 (fully opaque) when absent.
func (c *Color) Alpha() float64 {
	if c == nil || c.A == nil {
		return 1
	}
	return *c.A
}

// Paint represents a fill or stroke applied to a Figma node.
// The Type tag selects the variant: SOLID carries Color, GRADIENT_LINEAR and
// GRADIENT_RADIAL carry handle positions and stops, IMAGE carries an opaque
// image reference. Visibility and opacity apply uniformly across variants.
type Paint struct {
	Type                    string      `json:"type"`
	Visible                 *bool       `json:"visible,omitempty"` // absent means visible
	Opacity                 *float64    `json:"opacity,omitempty"`
	Color                   *Color      `json:"color,omitempty"`
	GradientHandlePositions []Vector    `json:"gradientHandlePositions,omitempty"`
	GradientStops           []ColorStop `json:"gradientStops,omitempty"`
	ImageRef                string      `json:"imageRef,omitempty"`
	ScaleMode               string      `json:"scaleMode,omitempty"`
}

// IsVisible reports whether the paint participates in rendering.
// An absent visible flag counts as true, matching the Figma wire format.
func (p *Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// ColorStop is a single stop of a gradient paint: a position along the
// gradient axis in [0, 1] and the color at that position.
type ColorStop struct {
	Position float64 `json:"position"`
	Color    *Color  `json:"color,omitempty"`
}

// Effect represents a visual effect applied to a Figma node such as drop shadows,
// inner shadows, or blur effects. Shadow variants carry offset, spread, and color;
// blur variants carry only a radius.
type Effect struct {
	Type      string  `json:"type"`
	Visible   bool    `json:"visible"`
	Radius    float64 `json:"radius,omitempty"`
	Color     *Color  `json:"color,omitempty"`
	Offset    *Vector `json:"offset,omitempty"`
	Spread    float64 `json:"spread,omitempty"`
	BlendMode string  `json:"blendMode,omitempty"`
}

// Vector represents a 2D coordinate or offset with X and Y values.
// Used for shadow offsets and gradient handle positions.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle represents text styling properties from Figma: font family, weight,
// size, line height (both absolute and percentage form), letter spacing, and
// text alignment on both axes.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily"`
	FontPostScriptName  string  `json:"fontPostScriptName"`
	FontWeight          float64 `json:"fontWeight"`
	FontSize            float64 `json:"fontSize"`
	LineHeightPx        float64 `json:"lineHeightPx"`
	LineHeightPercent   float64 `json:"lineHeightPercent"`
	LetterSpacing       float64 `json:"letterSpacing"`
	TextAlignHorizontal string  `json:"textAlignHorizontal"`
	TextAlignVertical   string  `json:"textAlignVertical"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions
// (Width, Height) in absolute canvas coordinates.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
