package metadata

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/yfedoseev/meta-oxide/internal/urls"
	"github.com/yfedoseev/meta-oxide/types"
)

// ParseRelLinks maps every rel token found on link and a elements to the
// resolved targets carrying it, in document order and without repeats.
func ParseRelLinks(doc *html.Node, baseURL string) map[string][]string {
	res := map[string][]string{}
	if doc == nil {
		return res
	}
	r := urls.NewResolver(baseURL)

	goquery.NewDocumentFromNode(doc).Find("link[rel][href], a[rel][href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return
		}
		href = r.Resolve(href)
		for _, rel := range strings.Fields(strings.ToLower(s.AttrOr("rel", ""))) {
			if !slices.Contains(res[rel], href) {
				res[rel] = append(res[rel], href)
			}
		}
	})
	return res
}

// DiscoverOEmbed lists the oEmbed endpoints advertised with
// <link rel="alternate" type="application/json+oembed">, or the text/xml
// variant. A type that names neither json nor xml is taken as JSON.
func DiscoverOEmbed(doc *html.Node, baseURL string) *types.OEmbedDiscovery {
	d := &types.OEmbedDiscovery{
		JSONEndpoints: []types.OEmbedEndpoint{},
		XMLEndpoints:  []types.OEmbedEndpoint{},
	}
	if doc == nil {
		return d
	}
	r := urls.NewResolver(baseURL)

	goquery.NewDocumentFromNode(doc).Find("link[type][href]").Each(func(_ int, s *goquery.Selection) {
		rels := strings.Fields(strings.ToLower(s.AttrOr("rel", "")))
		linkType := strings.ToLower(s.AttrOr("type", ""))
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if !slices.Contains(rels, "alternate") || !strings.Contains(linkType, "oembed") || href == "" {
			return
		}

		ep := types.OEmbedEndpoint{
			Href:  r.Resolve(href),
			Title: strings.TrimSpace(s.AttrOr("title", "")),
		}
		if strings.Contains(linkType, "xml") && !strings.Contains(linkType, "json") {
			ep.Format = types.OEmbedXML
			d.XMLEndpoints = append(d.XMLEndpoints, ep)
			return
		}
		ep.Format = types.OEmbedJSON
		d.JSONEndpoints = append(d.JSONEndpoints, ep)
	})
	return d
}

// DiscoverManifest returns the first <link rel="manifest"> target, or nil.
func DiscoverManifest(doc *html.Node, baseURL string) *types.ManifestDiscovery {
	if doc == nil {
		return nil
	}
	var res *types.ManifestDiscovery
	goquery.NewDocumentFromNode(doc).Find("link[rel][href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || !slices.Contains(strings.Fields(strings.ToLower(s.AttrOr("rel", ""))), "manifest") {
			return true
		}
		res = &types.ManifestDiscovery{Href: urls.Resolve(href, baseURL)}
		return false
	})
	return res
}
