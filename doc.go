// Package figmarender converts Figma documents into browser-renderable
// HTML and CSS via the Figma API. The node tree is walked once, each node's
// visual intent (position, paint, typography, effects, layout) is resolved
// into a style rule, and a matching markup element is emitted.
//
// The CLI lives in cmd/figma-render; this root package exposes the same
// pipeline as a Go API so that callers can embed conversion in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmarender:
//
//	import "github.com/hellenic-development/figma-render" // package figmarender
//
// # Quick start
//
//	result, err := figmarender.Run(figmarender.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/My-Design",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("design.html", []byte(result.Page), 0644)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Node-scoped conversion
//
// To convert specific frames or components rather than the entire file,
// populate [Options.NodeIDs] or include node-id query parameters in the
// Figma URL. Each requested node renders as an independent artboard.
//
// # HTTP surface
//
// internal/server exposes the same pipeline over POST /api/convert for
// deployments that prefer a service to a binary.
package figmarender
