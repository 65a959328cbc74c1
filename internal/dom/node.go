package dom

import (
	"iter"
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// Attr returns the value of the named attribute and whether it exists.
// Attribute names are matched case-insensitively.
func Attr(n *html.Node, name string) (string, bool) {
	name = strings.ToLower(name)
	if n == nil || n.Type != html.ElementNode || !dom.HasAttribute(n, name) {
		return "", false
	}
	return dom.GetAttribute(n, name), true
}

// AttrValue returns the trimmed value of the named attribute, or "".
func AttrValue(n *html.Node, name string) string {
	v, _ := Attr(n, name)
	return strings.TrimSpace(v)
}

// HasAttr reports whether n carries the named attribute, even empty.
func HasAttr(n *html.Node, name string) bool {
	_, ok := Attr(n, name)
	return ok
}

// Fields splits a whitespace separated attribute into its tokens.
func Fields(n *html.Node, name string) []string {
	v, ok := Attr(n, name)
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

// TrimmedText returns the text content of n with outer whitespace removed.
func TrimmedText(n *html.Node) string {
	return strings.TrimSpace(dom.TextContent(n))
}

// Walk yields every element below root, root excluded, in document order.
func Walk(root *html.Node) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		var walk func(*html.Node) bool
		walk = func(n *html.Node) bool {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && !yield(c) {
					return false
				}
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(root)
	}
}

// IndexIDs maps every id attribute below root to its first element.
func IndexIDs(root *html.Node) map[string]*html.Node {
	ids := map[string]*html.Node{}
	for n := range Walk(root) {
		if id := AttrValue(n, "id"); id != "" {
			if _, ok := ids[id]; !ok {
				ids[id] = n
			}
		}
	}
	return ids
}
