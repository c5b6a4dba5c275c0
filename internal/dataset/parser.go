package dataset

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseDirectoryIndex extracts the directory-index entries from an HTML
// directory listing: every anchor element's href, with the trailing slash
// stripped, in document order. Document order matters because prefix lookup
// is first-match-wins.
//
// Design decision: We parse with golang.org/x/net/html rather than regex
// because mirror-generated listings are real-world HTML (nested markup,
// unquoted attributes) and the DOM walk handles all of it uniformly.
func ParseDirectoryIndex(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse directory listing: %w", err)
	}

	var entries []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := getAttr(n, "href"); href != "" {
				entries = append(entries, strings.TrimSuffix(href, "/"))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return entries, nil
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
