package figmarender

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-render/pkg/figma"
	"github.com/hellenic-development/figma-render/pkg/formatter"
	"github.com/hellenic-development/figma-render/pkg/transpiler"
)

// Options configures a conversion run.
type Options struct {
	AccessToken string
	FileURL     string   // Figma file URL
	NodeIDs     []string // empty = entire file
	PageTitle   string   // empty = Figma file name
	Logger      Logger   // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the conversion output.
type Result struct {
	FileName   string // Figma file name
	Markup     string // markup tree mirroring the document
	Stylesheet string // accompanying stylesheet
	Page       string // standalone HTML page embedding both
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the fetch-and-convert pipeline: it pulls the document (or the
// requested nodes) from the Figma API, transpiles the tree into markup plus a
// stylesheet, and packages both into a standalone HTML page.
func Run(opts Options) (*Result, error) {
	opts.logInfo("Extracting file key from URL...")
	fileKey, err := figma.ExtractFileKey(opts.FileURL)
	if err != nil {
		return nil, fmt.Errorf("extract file key: %w", err)
	}
	opts.logInfo("File key: %s", fileKey)

	// Explicit node IDs win over IDs embedded in the URL.
	targetNodeIDs := opts.NodeIDs
	if len(targetNodeIDs) == 0 {
		urlNodeIDs, err := figma.ExtractNodeIDs(opts.FileURL)
		if err != nil {
			return nil, fmt.Errorf("extract node IDs from URL: %w", err)
		}
		if len(urlNodeIDs) > 0 {
			targetNodeIDs = urlNodeIDs
			opts.logInfo("Found %d node(s) in URL", len(targetNodeIDs))
		}
	}

	opts.logInfo("Authenticating with Figma API...")
	client := figma.NewClient(opts.AccessToken)

	var root *figma.Node
	var fileName string

	if len(targetNodeIDs) > 0 {
		opts.logInfo("Fetching %d node(s) from Figma...", len(targetNodeIDs))
		nodesResp, err := client.GetFileNodes(fileKey, targetNodeIDs)
		if err != nil {
			return nil, fmt.Errorf("fetch nodes: %w", err)
		}
		fileName = nodesResp.Name

		// Wrap the requested node documents in a synthetic canvas so each one
		// renders as an independent artboard, in request order.
		canvas := &figma.Node{ID: "0:0", Name: "Selection", Type: "CANVAS"}
		for _, id := range targetNodeIDs {
			nd, ok := nodesResp.Nodes[id]
			if !ok {
				opts.logWarn("Node %s not found in file, skipping", id)
				continue
			}
			canvas.Children = append(canvas.Children, nd.Document)
		}
		if len(canvas.Children) == 0 {
			return nil, fmt.Errorf("none of the requested nodes exist in file %s", fileKey)
		}
		root = canvas
	} else {
		opts.logInfo("Fetching file data from Figma...")
		fileResp, err := client.GetFile(fileKey)
		if err != nil {
			return nil, fmt.Errorf("fetch file: %w", err)
		}
		opts.logInfo("File: %s", fileResp.Name)
		fileName = fileResp.Name
		root = &fileResp.Document
	}

	opts.logInfo("Converting document tree...")
	out, err := transpiler.Convert(root)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	title := opts.PageTitle
	if title == "" {
		title = fileName
	}

	return &Result{
		FileName:   fileName,
		Markup:     out.Markup,
		Stylesheet: out.Stylesheet,
		Page:       formatter.Page(out, title),
	}, nil
}

// ParseNodeIDs parses a comma-separated string of node IDs and returns a slice.
func ParseNodeIDs(nodeIDsStr string) []string {
	parts := strings.Split(nodeIDsStr, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
