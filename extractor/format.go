package extractor

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/yfedoseev/meta-oxide/internal/errs"
	"github.com/yfedoseev/meta-oxide/internal/metadata"
	"github.com/yfedoseev/meta-oxide/internal/microdata"
	"github.com/yfedoseev/meta-oxide/internal/microformats"
	"github.com/yfedoseev/meta-oxide/internal/rdfa"
)

// Format names one extraction output.
type Format string

// Supported formats. FormatAll is the aggregate of every other one.
const (
	FormatAll          Format = "all"
	FormatMicroformats Format = "microformats"
	FormatRDFa         Format = "rdfa"
	FormatMicrodata    Format = "microdata"
	FormatMeta         Format = "meta"
	FormatOpenGraph    Format = "opengraph"
	FormatTwitter      Format = "twitter"
	FormatJSONLD       Format = "jsonld"
	FormatDublinCore   Format = "dublincore"
	FormatRelLinks     Format = "rel"
	FormatOEmbed       Format = "oembed"
	FormatManifest     Format = "manifest"
)

// Formats returns every supported format, FormatAll first.
func Formats() []Format {
	return []Format{
		FormatAll, FormatMicroformats, FormatRDFa, FormatMicrodata,
		FormatMeta, FormatOpenGraph, FormatTwitter, FormatJSONLD,
		FormatDublinCore, FormatRelLinks, FormatOEmbed, FormatManifest,
	}
}

// ParseFormat reads a format name, case-insensitively. A few common
// spellings are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "", "everything":
		return FormatAll, nil
	case "mf2", "microformats2":
		return FormatMicroformats, nil
	case "og":
		return FormatOpenGraph, nil
	case "json-ld":
		return FormatJSONLD, nil
	case "dc", "dublin_core":
		return FormatDublinCore, nil
	case "rel-links", "rel_links":
		return FormatRelLinks, nil
	}
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", errs.WrapInputError(errs.ErrUnknownFormat, "ParseFormat", fmt.Sprintf("%q", s))
}

// Extract runs the extraction for one format over a parsed document.
func Extract(format Format, root *html.Node, baseURL string, logger *slog.Logger) (any, error) {
	switch format {
	case FormatAll:
		return Unify(Collect(root, baseURL, logger)), nil
	case FormatMicroformats:
		return microformats.Parse(root, baseURL, logger), nil
	case FormatRDFa:
		return rdfa.Parse(root, baseURL, logger), nil
	case FormatMicrodata:
		return microdata.Parse(root, baseURL, logger), nil
	case FormatMeta:
		return metadata.ParseMeta(root, baseURL), nil
	case FormatOpenGraph:
		return metadata.ParseOpenGraph(root, baseURL), nil
	case FormatTwitter:
		return metadata.ParseTwitter(root, baseURL), nil
	case FormatJSONLD:
		return metadata.ParseJSONLD(root, logger), nil
	case FormatDublinCore:
		return metadata.ParseDublinCore(root), nil
	case FormatRelLinks:
		return metadata.ParseRelLinks(root, baseURL), nil
	case FormatOEmbed:
		return metadata.DiscoverOEmbed(root, baseURL), nil
	case FormatManifest:
		return metadata.DiscoverManifest(root, baseURL), nil
	}
	return nil, errs.WrapInputError(errs.ErrUnknownFormat, "Extract", string(format))
}
