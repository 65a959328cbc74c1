package extractor

import (
	"log/slog"

	"golang.org/x/net/html"

	"github.com/yfedoseev/meta-oxide/internal/metadata"
	"github.com/yfedoseev/meta-oxide/internal/microdata"
	"github.com/yfedoseev/meta-oxide/internal/microformats"
	"github.com/yfedoseev/meta-oxide/internal/rdfa"
	"github.com/yfedoseev/meta-oxide/types"
)

// Parts holds the raw output of every extractor for one document.
type Parts struct {
	Meta         *types.MetaTags
	OpenGraph    *types.OpenGraph
	Twitter      *types.TwitterCard
	JSONLD       []map[string]any
	Microdata    []*types.Item
	Microformats map[string][]*types.Item
	OEmbed       *types.OEmbedDiscovery
	DublinCore   *types.DublinCore
	RelLinks     map[string][]string
	RDFa         []*types.Item
	Manifest     *types.ManifestDiscovery
}

// Collect runs every extractor over the same parsed document. The
// extractors share no state; each walks the tree on its own.
func Collect(root *html.Node, baseURL string, logger *slog.Logger) Parts {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Parts{
		Meta:         metadata.ParseMeta(root, baseURL),
		OpenGraph:    metadata.ParseOpenGraph(root, baseURL),
		Twitter:      metadata.ParseTwitter(root, baseURL),
		JSONLD:       metadata.ParseJSONLD(root, logger),
		Microdata:    microdata.Parse(root, baseURL, logger),
		Microformats: microformats.Parse(root, baseURL, logger),
		OEmbed:       metadata.DiscoverOEmbed(root, baseURL),
		DublinCore:   metadata.ParseDublinCore(root),
		RelLinks:     metadata.ParseRelLinks(root, baseURL),
		RDFa:         rdfa.Parse(root, baseURL, logger),
		Manifest:     metadata.DiscoverManifest(root, baseURL),
	}
}

// Unify merges the per-format outputs into the aggregate result.
//
// Meta, OpenGraph and Twitter are always set; the Twitter card falls back
// to Open Graph for its title, description and image. Every other format
// is left nil when the document had none of it, so it is omitted from
// the JSON form. Items are passed through unchanged.
func Unify(p Parts) *types.Result {
	res := &types.Result{
		Meta:      p.Meta,
		OpenGraph: p.OpenGraph,
	}
	if res.Meta == nil {
		res.Meta = &types.MetaTags{}
	}
	if res.OpenGraph == nil {
		res.OpenGraph = &types.OpenGraph{}
	}
	res.Twitter = metadata.TwitterWithFallback(p.Twitter, res.OpenGraph)

	if len(p.JSONLD) > 0 {
		res.JSONLD = p.JSONLD
	}
	if len(p.Microdata) > 0 {
		res.Microdata = p.Microdata
	}
	if len(p.Microformats) > 0 {
		res.Microformats = p.Microformats
	}
	if p.OEmbed.HasEndpoints() {
		res.OEmbed = p.OEmbed
	}
	if !p.DublinCore.IsEmpty() {
		res.DublinCore = p.DublinCore
	}
	if len(p.RelLinks) > 0 {
		res.RelLinks = p.RelLinks
	}
	if len(p.RDFa) > 0 {
		res.RDFa = p.RDFa
	}
	res.Manifest = p.Manifest
	return res
}
