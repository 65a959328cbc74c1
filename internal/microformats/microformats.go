// Package microformats interprets Microformats2 class-name markup.
//
// Items start on elements with an h-* root class. Properties come from
// p-*, u-*, dt-* and e-* classes on descendants, and a nested root found
// while scanning becomes a nested item value.
package microformats

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/yfedoseev/meta-oxide/internal/urls"
	"github.com/yfedoseev/meta-oxide/types"
)

// ChildrenProperty holds nested roots that carry no property class.
const ChildrenProperty = "children"

var (
	rxRoot     = regexp.MustCompile(`^h(-[a-z0-9]+)?(-[a-z]+)+$`)
	rxProperty = regexp.MustCompile(`^(p|u|dt|e)((?:-[a-z0-9]+)?(?:-[a-z]+)+)$`)
)

type prefix int

const (
	prefixText prefix = iota
	prefixURL
	prefixDateTime
	prefixEmbedded
)

var prefixes = map[string]prefix{
	"p":  prefixText,
	"u":  prefixURL,
	"dt": prefixDateTime,
	"e":  prefixEmbedded,
}

type property struct {
	kind prefix
	name string
}

// Legacy class names and their modern equivalent. They are only read on
// elements that carry no modern root or property class.
var aliases = map[string]property{
	"fn":             {prefixText, "name"},
	"nickname":       {prefixText, "nickname"},
	"org":            {prefixText, "org"},
	"note":           {prefixText, "note"},
	"tel":            {prefixText, "tel"},
	"photo":          {prefixURL, "photo"},
	"url":            {prefixURL, "url"},
	"email":          {prefixURL, "email"},
	"entry-title":    {prefixText, "name"},
	"entry-summary":  {prefixText, "summary"},
	"entry-content":  {prefixEmbedded, "content"},
	"published":      {prefixDateTime, "published"},
	"updated":        {prefixDateTime, "updated"},
	"dtstart":        {prefixDateTime, "start"},
	"dtend":          {prefixDateTime, "end"},
	"street-address": {prefixText, "street-address"},
	"locality":       {prefixText, "locality"},
	"region":         {prefixText, "region"},
	"postal-code":    {prefixText, "postal-code"},
	"country-name":   {prefixText, "country-name"},
	"latitude":       {prefixText, "latitude"},
	"longitude":      {prefixText, "longitude"},
	"rating":         {prefixText, "rating"},
}

type parser struct {
	resolver *urls.Resolver
	logger   *slog.Logger
}

// Parse extracts every top-level item below root and groups them by root
// type. An item with several root types appears under each of them.
// Lists keep document order.
func Parse(root *html.Node, baseURL string, logger *slog.Logger) map[string][]*types.Item {
	res := map[string][]*types.Item{}
	for _, it := range Items(root, baseURL, logger) {
		for _, t := range it.Types {
			res[t] = append(res[t], it)
		}
	}
	return res
}

// Items extracts every top-level item below root in document order.
func Items(root *html.Node, baseURL string, logger *slog.Logger) []*types.Item {
	if root == nil {
		return nil
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &parser{resolver: urls.NewResolver(baseURL), logger: logger}

	var items []*types.Item
	p.findRoots(goquery.NewDocumentFromNode(root).Selection, &items)
	p.logger.Debug("microformats parsed", slog.Int("items", len(items)))
	return items
}

func (p *parser) findRoots(s *goquery.Selection, items *[]*types.Item) {
	s.Children().Each(func(_ int, c *goquery.Selection) {
		if rt := rootTypes(c); len(rt) > 0 {
			*items = append(*items, p.parseItem(c, rt))
			return
		}
		p.findRoots(c, items)
	})
}

func (p *parser) parseItem(s *goquery.Selection, rt []string) *types.Item {
	it := types.NewItem(rt...)
	p.scan(s, it)
	explicit := it.Properties.Len()
	p.imply(s, it, explicit)
	p.logger.Debug("microformats item", slog.Any("types", rt), slog.Int("properties", it.Properties.Len()))
	return it
}

// scan adds the properties found below s to it. Nested roots are parsed
// as their own items and never scanned twice.
func (p *parser) scan(s *goquery.Selection, it *types.Item) {
	s.Children().Each(func(_ int, c *goquery.Selection) {
		props := properties(c)

		if rt := rootTypes(c); len(rt) > 0 {
			nested := p.parseItem(c, rt)
			if len(props) == 0 {
				it.Properties.Add(ChildrenProperty, types.Nested(nested))
				return
			}
			for _, prop := range props {
				it.Properties.Add(prop.name, types.Nested(nested))
			}
			return
		}

		for _, prop := range props {
			it.Properties.Add(prop.name, p.value(c, prop.kind))
		}
		p.scan(c, it)
	})
}

func (p *parser) value(s *goquery.Selection, kind prefix) types.PropertyValue {
	switch kind {
	case prefixURL:
		return types.URL(p.resolver.Resolve(urlValue(s)))
	case prefixDateTime:
		return types.DateTime(dateValue(s))
	case prefixEmbedded:
		h, err := s.Html()
		if err != nil {
			p.logger.Debug("microformats embedded markup", slog.Any("err", err))
		}
		return types.Text(h)
	default:
		return types.Text(textValue(s))
	}
}

// imply fills name, photo and url from the root element itself when the
// item has no explicit value for them.
func (p *parser) imply(s *goquery.Selection, it *types.Item, explicit int) {
	tag := goquery.NodeName(s)

	if !it.Properties.Has("name") {
		name := ""
		switch {
		case tag == "img" || tag == "area":
			name = attr(s, "alt")
		case tag == "abbr":
			name = attr(s, "title")
		}
		if name == "" && explicit == 0 {
			name = strings.TrimSpace(s.Text())
		}
		if name != "" {
			it.Properties.Add("name", types.Text(name))
		}
	}

	if !it.Properties.Has("photo") {
		src := ""
		switch tag {
		case "img":
			src = attr(s, "src")
		case "object":
			src = attr(s, "data")
		}
		if src != "" {
			it.Properties.Add("photo", types.URL(p.resolver.Resolve(src)))
		}
	}

	if !it.Properties.Has("url") && (tag == "a" || tag == "area") {
		if href := attr(s, "href"); href != "" {
			it.Properties.Add("url", types.URL(p.resolver.Resolve(href)))
		}
	}
}

func textValue(s *goquery.Selection) string {
	switch goquery.NodeName(s) {
	case "abbr", "link":
		if v, ok := s.Attr("title"); ok {
			return strings.TrimSpace(v)
		}
	case "data", "input":
		if v, ok := s.Attr("value"); ok {
			return strings.TrimSpace(v)
		}
	case "img", "area":
		if v, ok := s.Attr("alt"); ok {
			return strings.TrimSpace(v)
		}
	}
	return strings.TrimSpace(s.Text())
}

func urlValue(s *goquery.Selection) string {
	switch goquery.NodeName(s) {
	case "a", "area", "link":
		if v, ok := s.Attr("href"); ok {
			return strings.TrimSpace(v)
		}
	case "img", "audio", "source", "iframe", "embed":
		if v, ok := s.Attr("src"); ok {
			return strings.TrimSpace(v)
		}
	case "video":
		if v, ok := s.Attr("src"); ok {
			return strings.TrimSpace(v)
		}
		if v, ok := s.Attr("poster"); ok {
			return strings.TrimSpace(v)
		}
	case "object":
		if v, ok := s.Attr("data"); ok {
			return strings.TrimSpace(v)
		}
	}
	if v, ok := s.Attr("value"); ok {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(s.Text())
}

func dateValue(s *goquery.Selection) string {
	if v, ok := s.Attr("datetime"); ok {
		return strings.TrimSpace(v)
	}
	switch goquery.NodeName(s) {
	case "abbr":
		if v, ok := s.Attr("title"); ok {
			return strings.TrimSpace(v)
		}
	case "data", "input":
		if v, ok := s.Attr("value"); ok {
			return strings.TrimSpace(v)
		}
	}
	return strings.TrimSpace(s.Text())
}

func attr(s *goquery.Selection, name string) string {
	return strings.TrimSpace(s.AttrOr(name, ""))
}

func classes(s *goquery.Selection) []string {
	return strings.Fields(s.AttrOr("class", ""))
}

// rootTypes returns the distinct h-* classes of s in class order.
func rootTypes(s *goquery.Selection) []string {
	var res []string
	for _, c := range classes(s) {
		if rxRoot.MatchString(c) && !slices.Contains(res, c) {
			res = append(res, c)
		}
	}
	return res
}

// properties returns the property classes of s. Legacy aliases are only
// considered when no modern class is present.
func properties(s *goquery.Selection) []property {
	cls := classes(s)

	var (
		res    []property
		modern bool
	)
	for _, c := range cls {
		if rxRoot.MatchString(c) {
			modern = true
			continue
		}
		m := rxProperty.FindStringSubmatch(c)
		if m == nil {
			continue
		}
		modern = true
		prop := property{kind: prefixes[m[1]], name: m[2][1:]}
		if !slices.Contains(res, prop) {
			res = append(res, prop)
		}
	}
	if modern {
		return res
	}

	for _, c := range cls {
		if prop, ok := aliases[c]; ok && !slices.Contains(res, prop) {
			res = append(res, prop)
		}
	}
	return res
}
