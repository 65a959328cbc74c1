package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/yfedoseev/meta-oxide/internal/errs"
	"github.com/yfedoseev/meta-oxide/types"
)

// ParseOEmbed parses an oEmbed provider response supplied by the caller.
// Numeric members are accepted as JSON numbers or strings, since
// providers send both. A response without a type is invalid.
func ParseOEmbed(body []byte, format types.OEmbedFormat) (*types.OEmbedResponse, error) {
	var (
		fields map[string]string
		err    error
	)
	switch format {
	case types.OEmbedXML:
		fields, err = oembedXMLFields(body)
	default:
		fields, err = oembedJSONFields(body)
	}
	if err != nil {
		return nil, errs.WrapValidationError(fmt.Errorf("%w: %w", errs.ErrInvalidOEmbed, err), "ParseOEmbed", string(format))
	}
	if fields["type"] == "" {
		return nil, errs.WrapValidationError(errs.ErrInvalidOEmbed, "ParseOEmbed", "missing type")
	}

	num := func(k string) int {
		f, err := strconv.ParseFloat(fields[k], 64)
		if err != nil {
			return 0
		}
		return int(f)
	}
	return &types.OEmbedResponse{
		Type:            fields["type"],
		Version:         fields["version"],
		Title:           fields["title"],
		AuthorName:      fields["author_name"],
		AuthorURL:       fields["author_url"],
		ProviderName:    fields["provider_name"],
		ProviderURL:     fields["provider_url"],
		CacheAge:        num("cache_age"),
		ThumbnailURL:    fields["thumbnail_url"],
		ThumbnailWidth:  num("thumbnail_width"),
		ThumbnailHeight: num("thumbnail_height"),
		URL:             fields["url"],
		HTML:            fields["html"],
		Width:           num("width"),
		Height:          num("height"),
	}, nil
}

func oembedJSONFields(body []byte) (map[string]string, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	res := make(map[string]string, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			res[k] = strings.TrimSpace(t)
		case float64:
			res[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			res[k] = strconv.FormatBool(t)
		}
	}
	return res, nil
}

func oembedXMLFields(body []byte) (map[string]string, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	root := xmlquery.FindOne(doc, "/oembed")
	if root == nil {
		return nil, fmt.Errorf("missing oembed root element")
	}

	res := map[string]string{}
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			res[n.Data] = strings.TrimSpace(n.InnerText())
		}
	}
	return res, nil
}
