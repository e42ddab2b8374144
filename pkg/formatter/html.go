package formatter

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-render/pkg/transpiler"
)

// Page assembles transpiler output into a standalone HTML document with the
// stylesheet embedded in a <style> block, ready to open in a browser.
func Page(out *transpiler.Output, title string) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString("  <meta charset=\"UTF-8\">\n")
	sb.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&sb, "  <title>%s</title>\n", transpiler.EscapeText(title))
	sb.WriteString("  <style>\n")
	sb.WriteString(out.Stylesheet)
	sb.WriteString("\n  </style>\n")
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(out.Markup)
	sb.WriteString("\n</body>\n</html>\n")

	return sb.String()
}

// Linked assembles an HTML document that references an external stylesheet
// instead of embedding it, for callers that write markup and styles to
// separate files.
func Linked(out *transpiler.Output, title, stylesheetHref string) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString("  <meta charset=\"UTF-8\">\n")
	sb.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&sb, "  <title>%s</title>\n", transpiler.EscapeText(title))
	fmt.Fprintf(&sb, "  <link rel=\"stylesheet\" href=\"%s\">\n", stylesheetHref)
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(out.Markup)
	sb.WriteString("\n</body>\n</html>\n")

	return sb.String()
}
