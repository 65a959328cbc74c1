package metadata

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"

	"github.com/yfedoseev/meta-oxide/types"
)

// Element names that may carry Dublin Core metadata.
var dcPrefixes = []string{"dc.", "dcterms.", "dc:", "dcterms:"}

// ParseDublinCore extracts DC.*, dc.* and dcterms.* meta elements. Names
// are matched case-insensitively and the first value of an element wins,
// except subject and contributor which collect every value.
func ParseDublinCore(doc *html.Node) *types.DublinCore {
	dc := &types.DublinCore{}
	if doc == nil {
		return dc
	}
	nodes, err := htmlquery.QueryAll(doc, "//meta[@name][@content]")
	if err != nil {
		return dc
	}

	for _, n := range nodes {
		name := strings.ToLower(strings.TrimSpace(dom.GetAttribute(n, "name")))
		content := strings.TrimSpace(dom.GetAttribute(n, "content"))
		if content == "" {
			continue
		}
		for _, p := range dcPrefixes {
			if element, ok := strings.CutPrefix(name, p); ok {
				setDublinCore(dc, element, content)
				break
			}
		}
	}
	return dc
}

func setDublinCore(dc *types.DublinCore, element, v string) {
	switch element {
	case "subject":
		dc.Subject = append(dc.Subject, splitList(v, ",;")...)
		return
	case "contributor":
		dc.Contributor = append(dc.Contributor, splitList(v, ",;")...)
		return
	case "created", "issued", "modified", "available":
		element = "date"
	}

	fields := map[string]*string{
		"title":       &dc.Title,
		"creator":     &dc.Creator,
		"description": &dc.Description,
		"publisher":   &dc.Publisher,
		"date":        &dc.Date,
		"type":        &dc.Type,
		"format":      &dc.Format,
		"identifier":  &dc.Identifier,
		"source":      &dc.Source,
		"language":    &dc.Language,
		"relation":    &dc.Relation,
		"coverage":    &dc.Coverage,
		"rights":      &dc.Rights,
	}
	if dst, ok := fields[element]; ok {
		setFirst(dst, v)
	}
}
