package metadata

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/itchyny/gojq"
	"golang.org/x/net/html"
)

// ParseJSONLD decodes every application/ld+json script block. Top-level
// arrays and @graph containers are flattened into their member objects.
// Blocks that fail to decode are logged and skipped.
func ParseJSONLD(doc *html.Node, logger *slog.Logger) []map[string]any {
	if doc == nil {
		return nil
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var res []map[string]any
	goquery.NewDocumentFromNode(doc).Find("script[type]").Each(func(i int, s *goquery.Selection) {
		t, _, _ := strings.Cut(s.AttrOr("type", ""), ";")
		if !strings.EqualFold(strings.TrimSpace(t), "application/ld+json") {
			return
		}

		src := strings.TrimSpace(s.Text())
		if src == "" {
			return
		}
		var v any
		if err := json.Unmarshal([]byte(src), &v); err != nil {
			logger.Debug("invalid JSON-LD block", slog.Int("index", i), slog.Any("err", err))
			return
		}
		res = appendObjects(res, unescapeValues(v))
	})
	return res
}

func appendObjects(res []map[string]any, v any) []map[string]any {
	switch t := v.(type) {
	case []any:
		for _, x := range t {
			res = appendObjects(res, x)
		}
	case map[string]any:
		if graph, ok := t["@graph"].([]any); ok {
			for _, x := range graph {
				if m, ok := x.(map[string]any); ok {
					if _, has := m["@context"]; !has && t["@context"] != nil {
						m["@context"] = t["@context"]
					}
					res = append(res, m)
				}
			}
			return res
		}
		res = append(res, t)
	}
	return res
}

// unescapeValues decodes HTML entities left in JSON-LD string values.
func unescapeValues(val any) any {
	switch t := val.(type) {
	case map[string]any:
		for k, v := range t {
			t[k] = unescapeValues(v)
		}
	case []any:
		for i, x := range t {
			t[i] = unescapeValues(x)
		}
	case string:
		return html.UnescapeString(t)
	}
	return val
}

var typeFilter = mustCompile(
	`.[] | select((.["@type"] | if type == "array" then . else [.] end) | any(.[]; . == $type))`,
	"$type",
)

func mustCompile(src string, vars ...string) *gojq.Code {
	q, err := gojq.Parse(src)
	if err != nil {
		panic(err)
	}
	code, err := gojq.Compile(q, gojq.WithVariables(vars))
	if err != nil {
		panic(err)
	}
	return code
}

// FilterByType returns the JSON-LD objects whose @type, a string or an
// array of strings, contains t.
func FilterByType(objects []map[string]any, t string) ([]map[string]any, error) {
	input := make([]any, len(objects))
	for i, o := range objects {
		input[i] = o
	}

	var res []map[string]any
	iter := typeFilter.Run(input, t)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("jsonld: filter by type: %w", err)
		}
		if m, isMap := v.(map[string]any); isMap {
			res = append(res, m)
		}
	}
	return res, nil
}
