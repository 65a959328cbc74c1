// Package microdata interprets HTML Microdata (itemscope, itemtype,
// itemprop, itemid and itemref).
package microdata

import (
	"log/slog"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yfedoseev/meta-oxide/internal/dom"
	"github.com/yfedoseev/meta-oxide/internal/urls"
	"github.com/yfedoseev/meta-oxide/types"
)

type parser struct {
	root            *html.Node
	resolver        *urls.Resolver
	logger          *slog.Logger
	identifiedNodes map[string]*html.Node
	// referenced holds the itemref targets currently being read, so an
	// item referenced from inside its own target does not loop.
	referenced map[*html.Node]bool
}

// Parse extracts the top-level items below root in document order.
// A top-level item is an itemscope element that is not the itemprop
// value of an enclosing itemscope.
func Parse(root *html.Node, baseURL string, logger *slog.Logger) []*types.Item {
	if root == nil {
		return nil
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &parser{
		root:       root,
		resolver:   urls.NewResolver(baseURL),
		logger:     logger,
		referenced: map[*html.Node]bool{},
	}
	return p.parse()
}

func (p *parser) parse() []*types.Item {
	topLevelNodes := []*html.Node{}
	for n := range dom.Walk(p.root) {
		if dom.HasAttr(n, "itemscope") && (!dom.HasAttr(n, "itemprop") || !inScope(n)) {
			topLevelNodes = append(topLevelNodes, n)
		}
	}
	p.identifiedNodes = dom.IndexIDs(p.root)

	items := make([]*types.Item, 0, len(topLevelNodes))
	for _, n := range topLevelNodes {
		items = append(items, p.readItem(n))
	}
	p.logger.Debug("microdata parsed", slog.Int("items", len(items)))
	return items
}

// readItem builds the item rooted at the itemscope element n: its own
// descendants first, then the itemref targets in list order.
func (p *parser) readItem(n *html.Node) *types.Item {
	it := types.NewItem(dom.Fields(n, "itemtype")...)

	if s, ok := dom.Attr(n, "itemid"); ok {
		s = strings.TrimSpace(s)
		if frag, isFrag := strings.CutPrefix(s, "#"); isFrag {
			it.ID = frag
		} else if s != "" {
			it.ID = p.resolver.Resolve(s)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.readNode(it, c)
	}

	seen := map[*html.Node]bool{}
	for ref := range strings.FieldsSeq(dom.AttrValue(n, "itemref")) {
		target, ok := p.identifiedNodes[ref]
		switch {
		case !ok:
			p.logger.Debug("microdata itemref not found", slog.String("id", ref))
			continue
		case seen[target] || p.referenced[target] || contains(n, target) || contains(target, n):
			continue
		}
		seen[target] = true

		p.referenced[target] = true
		p.readNode(it, target)
		delete(p.referenced, target)
	}
	return it
}

func (p *parser) readNode(it *types.Item, n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}
	props := dom.Fields(n, "itemprop")
	hasScope := dom.HasAttr(n, "itemscope")

	switch {
	case hasScope && len(props) > 0:
		sub := p.readItem(n)
		for _, name := range props {
			it.Properties.Add(name, types.Nested(sub))
		}
		return
	case hasScope:
		// A separate top-level item.
		return
	case len(props) > 0:
		if v, ok := p.value(n); ok {
			for _, name := range props {
				it.Properties.Add(name, v)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.readNode(it, c)
	}
}

// value reads the property value of n. It reports false when the
// attribute its tag takes the value from is missing.
func (p *parser) value(n *html.Node) (types.PropertyValue, bool) {
	switch n.DataAtom {
	case atom.Meta:
		return p.text(n, "content")
	case atom.Audio, atom.Embed, atom.Iframe, atom.Img, atom.Source, atom.Track, atom.Video:
		return p.url(n, "src")
	case atom.A, atom.Area, atom.Link:
		return p.url(n, "href")
	case atom.Object:
		return p.url(n, "data")
	case atom.Data, atom.Meter:
		return p.text(n, "value")
	case atom.Time:
		if v, ok := dom.Attr(n, "datetime"); ok {
			return types.DateTime(strings.TrimSpace(v)), true
		}
		if s := dom.TrimmedText(n); s != "" {
			return types.DateTime(s), true
		}
		return types.PropertyValue{}, false
	}

	// The content attribute is honoured on any element.
	if v, ok := dom.Attr(n, "content"); ok {
		return types.Text(strings.TrimSpace(v)), true
	}
	return types.Text(dom.TrimmedText(n)), true
}

func (p *parser) text(n *html.Node, name string) (types.PropertyValue, bool) {
	v, ok := dom.Attr(n, name)
	if !ok {
		return types.PropertyValue{}, false
	}
	return types.Text(strings.TrimSpace(v)), true
}

func (p *parser) url(n *html.Node, name string) (types.PropertyValue, bool) {
	v, ok := dom.Attr(n, name)
	if !ok {
		return types.PropertyValue{}, false
	}
	return types.URL(p.resolver.Resolve(strings.TrimSpace(v))), true
}

// inScope reports whether an ancestor of n carries itemscope.
func inScope(n *html.Node) bool {
	for c := n.Parent; c != nil; c = c.Parent {
		if dom.HasAttr(c, "itemscope") {
			return true
		}
	}
	return false
}

// contains reports whether n is an ancestor of (or is) target.
func contains(n, target *html.Node) bool {
	for c := target; c != nil; c = c.Parent {
		if c == n {
			return true
		}
	}
	return false
}
