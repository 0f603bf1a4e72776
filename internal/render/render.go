// Package render produces index documents.
package render

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// DefaultTitle is the heading used when none is configured.
const DefaultTitle = "Index of HTML Files"

const header = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%TITLE%</title>
</head>
<body>
    <h1>%TITLE%</h1>
    <ul>
`

const footer = `    </ul>
</body>
</html>
`

// Document renders the index document listing names in the given order.
func Document(title string, names []string) []byte {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	b.WriteString(strings.ReplaceAll(header, "%TITLE%", html.EscapeString(title)))
	for _, name := range names {
		b.WriteString(Entry(name))
	}
	b.WriteString(footer)

	return []byte(b.String())
}

// Entry renders one list item linking to name.
func Entry(name string) string {
	return `        <li><a href="` + Href(name) + `">` + html.EscapeString(name) + "</a></li>\n"
}

// Href returns the link target for a sibling file.
// The name is percent-encoded as a single path segment, so names containing
// '?', '#' or spaces still resolve to the file itself. A segment containing
// ':' is prefixed with "./" so it is not read as a URL scheme.
func Href(name string) string {
	ref := url.PathEscape(name)
	if strings.Contains(ref, ":") {
		ref = "./" + ref
	}
	return html.EscapeString(ref)
}
