// Package rdfa interprets RDFa Lite attributes (vocab, prefix, typeof,
// property, about, resource, content, datatype).
//
// Every element with typeof starts an item. Its subject is the about
// attribute, else the resource attribute, else a blank node. Elements
// with property add a value to the nearest enclosing item.
package rdfa

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/yfedoseev/meta-oxide/internal/dom"
	"github.com/yfedoseev/meta-oxide/internal/urls"
	"github.com/yfedoseev/meta-oxide/types"
)

type parser struct {
	resolver *urls.Resolver
	logger   *slog.Logger
	blanks   int
	items    []*types.Item
}

// Parse extracts the RDFa items below root in document order. Blank node
// subjects are numbered from _:b0 for every call, so the same document
// always yields the same subjects.
func Parse(root *html.Node, baseURL string, logger *slog.Logger) []*types.Item {
	if root == nil {
		return nil
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &parser{resolver: urls.NewResolver(baseURL), logger: logger}
	p.visitChildren(root, rootContext(), nil)

	p.logger.Debug("rdfa parsed", slog.Int("items", len(p.items)), slog.Int("blank_nodes", p.blanks))
	return p.items
}

func (p *parser) visitChildren(n *html.Node, ctx context, current *types.Item) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			p.visit(c, ctx, current)
		}
	}
}

func (p *parser) visit(n *html.Node, ctx context, current *types.Item) {
	ctx = ctx.enter(n)
	props := ctx.expandAll(dom.AttrValue(n, "property"))

	if typeOf := ctx.expandAll(dom.AttrValue(n, "typeof")); len(typeOf) > 0 {
		it := types.NewItem(typeOf...)
		it.Subject = p.subject(n, ctx)

		switch {
		case current == nil || len(props) == 0:
			p.items = append(p.items, it)
		case hasExplicitValue(n):
			// content and reference attributes win over nesting; the typed
			// item is then read as a top-level item.
			v := p.value(n, ctx)
			for _, prop := range props {
				current.Properties.Add(prop, v)
			}
			p.items = append(p.items, it)
		default:
			for _, prop := range props {
				current.Properties.Add(prop, types.Nested(it))
			}
		}
		p.visitChildren(n, ctx, it)
		return
	}

	if current != nil && len(props) > 0 {
		v := p.value(n, ctx)
		for _, prop := range props {
			current.Properties.Add(prop, v)
		}
	} else if len(props) > 0 {
		p.logger.Debug("rdfa property outside of an item", slog.Any("property", props))
	}
	p.visitChildren(n, ctx, current)
}

// hasExplicitValue reports whether n carries an attribute that value
// reads before falling back to text.
func hasExplicitValue(n *html.Node) bool {
	for _, name := range []string{"content", "resource", "href", "src"} {
		if dom.HasAttr(n, name) {
			return true
		}
	}
	return false
}

func (p *parser) subject(n *html.Node, ctx context) string {
	if about, ok := dom.Attr(n, "about"); ok {
		return p.reference(about, ctx)
	}
	if res, ok := dom.Attr(n, "resource"); ok {
		return p.reference(res, ctx)
	}
	s := fmt.Sprintf("_:b%d", p.blanks)
	p.blanks++
	return s
}

// reference reads an about or resource value: a CURIE through a known
// prefix, otherwise a URL resolved against the base.
func (p *parser) reference(v string, ctx context) string {
	v = strings.TrimSpace(v)
	if expanded := ctx.expandCURIE(v); expanded != v {
		return expanded
	}
	return p.resolver.Resolve(v)
}

// value reads a property value. A content attribute always wins, then
// a reference attribute, then the element text.
func (p *parser) value(n *html.Node, ctx context) types.PropertyValue {
	datatype := ""
	if dt := dom.AttrValue(n, "datatype"); dt != "" {
		datatype = ctx.expand(dt)
	}

	if content, ok := dom.Attr(n, "content"); ok {
		return types.TypedText(content, datatype)
	}
	if res, ok := dom.Attr(n, "resource"); ok {
		return types.URL(p.reference(res, ctx))
	}
	for _, name := range []string{"href", "src"} {
		if ref, ok := dom.Attr(n, name); ok {
			return types.URL(p.resolver.Resolve(strings.TrimSpace(ref)))
		}
	}
	return types.TypedText(dom.TrimmedText(n), datatype)
}
