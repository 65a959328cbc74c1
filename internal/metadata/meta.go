// Package metadata scans the flat, non-nested metadata of a document:
// HTML meta tags, Open Graph, Twitter Cards, JSON-LD, Dublin Core, rel
// links, oEmbed and web app manifest discovery.
//
// None of these recurse into item trees. Each scanner is a linear pass
// over the parsed document.
package metadata

import (
	"mime"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"

	mdom "github.com/yfedoseev/meta-oxide/internal/dom"
	"github.com/yfedoseev/meta-oxide/internal/urls"
	"github.com/yfedoseev/meta-oxide/types"
)

type metaSpec struct {
	selector string
	fn       func(m *types.MetaTags, n *html.Node, r *urls.Resolver)
}

var metaSpecList = []metaSpec{
	{"//title", func(m *types.MetaTags, n *html.Node, _ *urls.Resolver) {
		if m.Title == "" {
			m.Title = mdom.NormalizeText(dom.TextContent(n))
		}
	}},
	{"/html[@lang]", func(m *types.MetaTags, n *html.Node, _ *urls.Resolver) {
		m.Language = strings.TrimSpace(dom.GetAttribute(n, "lang"))
	}},
	{"//meta[@charset]", func(m *types.MetaTags, n *html.Node, _ *urls.Resolver) {
		if m.Charset == "" {
			m.Charset = strings.ToLower(strings.TrimSpace(dom.GetAttribute(n, "charset")))
		}
	}},
	{"//meta[@http-equiv][@content]", func(m *types.MetaTags, n *html.Node, _ *urls.Resolver) {
		if m.Charset != "" || !strings.EqualFold(dom.GetAttribute(n, "http-equiv"), "content-type") {
			return
		}
		if _, params, err := mime.ParseMediaType(dom.GetAttribute(n, "content")); err == nil {
			m.Charset = strings.ToLower(params["charset"])
		}
	}},
	{"//meta[@name][@content]", func(m *types.MetaTags, n *html.Node, _ *urls.Resolver) {
		setMetaName(m, dom.GetAttribute(n, "name"), strings.TrimSpace(dom.GetAttribute(n, "content")))
	}},
	{"//meta[@property][@content]", func(m *types.MetaTags, n *html.Node, _ *urls.Resolver) {
		setMetaName(m, dom.GetAttribute(n, "property"), strings.TrimSpace(dom.GetAttribute(n, "content")))
	}},
	{"//link[@rel][@href]", setLink},
}

// ParseMeta extracts standard head metadata. Link targets are resolved
// against baseURL.
func ParseMeta(doc *html.Node, baseURL string) *types.MetaTags {
	m := &types.MetaTags{}
	if doc == nil {
		return m
	}
	r := urls.NewResolver(baseURL)

	for _, x := range metaSpecList {
		nodes, err := htmlquery.QueryAll(doc, x.selector)
		if err != nil {
			continue
		}
		for _, n := range nodes {
			x.fn(m, n, r)
		}
	}
	return m
}

func setMetaName(m *types.MetaTags, name, content string) {
	if content == "" {
		return
	}
	first := func(dst *string) {
		if *dst == "" {
			*dst = content
		}
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "description":
		first(&m.Description)
	case "keywords":
		if m.Keywords == nil {
			m.Keywords = splitList(content, ",")
		}
	case "author":
		first(&m.Author)
	case "generator":
		first(&m.Generator)
	case "viewport":
		first(&m.Viewport)
	case "theme-color":
		first(&m.ThemeColor)
	case "application-name":
		first(&m.ApplicationName)
	case "referrer":
		first(&m.Referrer)
	case "robots":
		if m.Robots == nil {
			m.Robots = ParseRobots(content)
		}
	case "googlebot":
		if m.Googlebot == nil {
			m.Googlebot = ParseRobots(content)
		}
	case "google-site-verification":
		first(&m.GoogleSiteVerification)
	case "msvalidate.01":
		first(&m.MSValidate)
	case "yandex-verification":
		first(&m.YandexVerification)
	case "p:domain_verify":
		first(&m.PinterestVerification)
	case "facebook-domain-verification":
		first(&m.FacebookDomainVerification)
	case "fb:app_id":
		first(&m.FacebookAppID)
	case "fb:pages":
		first(&m.FacebookPages)
	}
}

func setLink(m *types.MetaTags, n *html.Node, r *urls.Resolver) {
	href := strings.TrimSpace(dom.GetAttribute(n, "href"))
	if href == "" {
		return
	}
	href = r.Resolve(href)
	linkType := strings.ToLower(strings.TrimSpace(dom.GetAttribute(n, "type")))
	first := func(dst *string) {
		if *dst == "" {
			*dst = href
		}
	}

	for _, rel := range strings.Fields(strings.ToLower(dom.GetAttribute(n, "rel"))) {
		switch rel {
		case "canonical":
			first(&m.Canonical)
		case "shortlink":
			first(&m.Shortlink)
		case "icon":
			first(&m.Icon)
		case "apple-touch-icon", "apple-touch-icon-precomposed":
			first(&m.AppleTouchIcon)
		case "manifest":
			first(&m.Manifest)
		case "prev", "previous":
			first(&m.Prev)
		case "next":
			first(&m.Next)
		case "alternate":
			switch {
			case isFeedType(linkType):
				m.Feeds = append(m.Feeds, types.FeedLink{
					Href:  href,
					Title: strings.TrimSpace(dom.GetAttribute(n, "title")),
					Type:  linkType,
				})
			case strings.Contains(linkType, "oembed"):
				// Reported by DiscoverOEmbed.
			default:
				m.Alternate = append(m.Alternate, types.AlternateLink{
					Href:     href,
					Hreflang: strings.TrimSpace(dom.GetAttribute(n, "hreflang")),
					Media:    strings.TrimSpace(dom.GetAttribute(n, "media")),
					Type:     linkType,
				})
			}
		}
	}
}

func isFeedType(t string) bool {
	switch t {
	case "application/rss+xml", "application/atom+xml", "application/feed+json":
		return true
	}
	return false
}

// ParseRobots parses a robots meta value such as "noindex, follow".
// Unknown directives are kept in Raw only.
func ParseRobots(content string) *types.RobotsDirective {
	d := &types.RobotsDirective{Raw: content}
	set := func(dst **bool, v bool) {
		*dst = &v
	}

	for _, tok := range splitList(strings.ToLower(content), ",") {
		switch tok {
		case "all":
			set(&d.Index, true)
			set(&d.Follow, true)
		case "none":
			set(&d.Index, false)
			set(&d.Follow, false)
		case "index", "noindex":
			set(&d.Index, tok == "index")
		case "follow", "nofollow":
			set(&d.Follow, tok == "follow")
		case "archive", "noarchive":
			set(&d.Archive, tok == "archive")
		case "snippet", "nosnippet":
			set(&d.Snippet, tok == "snippet")
		case "translate", "notranslate":
			set(&d.Translate, tok == "translate")
		case "imageindex", "noimageindex":
			set(&d.ImageIndex, tok == "imageindex")
		}
	}
	return d
}

// splitList splits s on any of the separator characters, trimming items
// and dropping empty ones.
func splitList(s, seps string) []string {
	var res []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	}) {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}
