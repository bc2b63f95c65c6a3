// Package linkverify checks that the links in generated pages resolve to
// files that were actually written.
package linkverify

import (
	"bytes"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/frontmatter"
)

// Link is one href or src found in a page.
type Link struct {
	URL       string
	Text      string
	Tag       string
	Attribute string
}

// Document is the link-relevant content of one parsed page.
type Document struct {
	Links []Link
	// IDs holds every id attribute value, for fragment checks.
	IDs map[string]struct{}
}

// ParsePage strips front matter from content and extracts its links and ids.
func ParsePage(content []byte) (*Document, error) {
	_, body, _, err := frontmatter.Split(content)
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryValidation, "failed to split front matter")
	}
	return Parse(bytes.NewReader(body))
}

// Parse extracts links and ids from an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryValidation, "failed to parse HTML")
	}

	doc := &Document{IDs: make(map[string]struct{})}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := getAttr(n, "id"); id != "" {
				doc.IDs[id] = struct{}{}
			}
			if l, ok := elementLink(n); ok {
				doc.Links = append(doc.Links, l)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return doc, nil
}

func elementLink(n *html.Node) (Link, bool) {
	var attr string
	switch n.Data {
	case "a", "link":
		attr = "href"
	case "img", "script", "source", "video", "audio":
		attr = "src"
	default:
		return Link{}, false
	}
	v := getAttr(n, attr)
	if v == "" {
		return Link{}, false
	}
	return Link{URL: v, Text: extractText(n), Tag: n.Data, Attribute: attr}, true
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(extractText(c))
	}
	return strings.TrimSpace(b.String())
}

// IsInternal reports whether link points inside the generated site.
func IsInternal(link string) bool {
	for _, p := range []string{"mailto:", "tel:", "javascript:", "data:"} {
		if strings.HasPrefix(link, p) {
			return false
		}
	}
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}
