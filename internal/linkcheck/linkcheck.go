// Package linkcheck reads the links back out of an existing index document.
package linkcheck

import (
	"fmt"
	"io"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Links returns the target of every <a href> inside a <li>, in document order.
// Targets are percent-decoded back to bare file names.
func Links(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var links []string
	var walk func(n *html.Node, inItem bool)
	walk = func(n *html.Node, inItem bool) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "li":
				inItem = true
			case "a":
				if href, ok := attr(n, "href"); ok && inItem {
					links = append(links, decode(href))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inItem)
		}
	}
	walk(doc, false)

	return links, nil
}

// Diff compares listed links with the expected names. Missing holds expected
// names absent from listed; stale holds listed names no longer expected.
// Both are returned sorted.
func Diff(listed, expected []string) (missing, stale []string) {
	for _, name := range expected {
		if !slices.Contains(listed, name) {
			missing = append(missing, name)
		}
	}
	for _, name := range listed {
		if !slices.Contains(expected, name) && !slices.Contains(stale, name) {
			stale = append(stale, name)
		}
	}
	slices.Sort(missing)
	slices.Sort(stale)
	return missing, stale
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func decode(href string) string {
	href = strings.TrimPrefix(href, "./")
	name, err := url.PathUnescape(href)
	if err != nil {
		return href
	}
	return name
}
