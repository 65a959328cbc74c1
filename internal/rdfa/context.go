package rdfa

import (
	"maps"
	"strings"

	"golang.org/x/net/html"

	"github.com/yfedoseev/meta-oxide/internal/dom"
)

// defaultPrefixes are bound in every document. A prefix attribute may
// rebind any of them for its subtree. The map is never written: enter
// clones it before applying bindings.
var defaultPrefixes = map[string]string{
	"schema": "https://schema.org/",
	"foaf":   "http://xmlns.com/foaf/0.1/",
	"dc":     "http://purl.org/dc/terms/",
	"og":     "http://ogp.me/ns#",
	"xsd":    "http://www.w3.org/2001/XMLSchema#",
}

// context is the evaluation context an element inherits from its parent.
// prefixes is shared between contexts and copied before any change.
type context struct {
	vocab    string
	prefixes map[string]string
}

func rootContext() context {
	return context{prefixes: defaultPrefixes}
}

// enter returns the context for n: its own vocab and prefix bindings
// applied on top of the inherited ones.
func (c context) enter(n *html.Node) context {
	if v, ok := dom.Attr(n, "vocab"); ok {
		c.vocab = strings.TrimSpace(v)
	}

	var bindings map[string]string
	for _, a := range n.Attr {
		if name, ok := strings.CutPrefix(strings.ToLower(a.Key), "xmlns:"); ok && name != "" {
			if bindings == nil {
				bindings = map[string]string{}
			}
			bindings[name] = strings.TrimSpace(a.Val)
		}
	}
	if v, ok := dom.Attr(n, "prefix"); ok {
		for name, ns := range parsePrefixes(v) {
			if bindings == nil {
				bindings = map[string]string{}
			}
			bindings[name] = ns
		}
	}

	if len(bindings) > 0 {
		prefixes := maps.Clone(c.prefixes)
		maps.Copy(prefixes, bindings)
		c.prefixes = prefixes
	}
	return c
}

// parsePrefixes reads a prefix attribute: "name: uri name: uri ...".
// Malformed pairs are skipped.
func parsePrefixes(s string) map[string]string {
	res := map[string]string{}
	tokens := strings.Fields(s)
	for i := 0; i < len(tokens); i++ {
		name, ok := strings.CutSuffix(tokens[i], ":")
		if !ok || name == "" || i+1 >= len(tokens) {
			continue
		}
		if strings.HasSuffix(tokens[i+1], ":") && !strings.Contains(tokens[i+1], "/") {
			continue
		}
		res[strings.ToLower(name)] = tokens[i+1]
		i++
	}
	return res
}

// expand resolves a term or CURIE. A token with a colon is expanded only
// through a known prefix and stays literal otherwise. A bare term is
// appended to the vocabulary in scope, if any.
func (c context) expand(token string) string {
	if name, rest, ok := strings.Cut(token, ":"); ok {
		if ns, found := c.prefixes[strings.ToLower(name)]; found {
			return ns + rest
		}
		return token
	}
	if c.vocab != "" {
		return c.vocab + token
	}
	return token
}

// expandAll expands every whitespace separated token of s.
func (c context) expandAll(s string) []string {
	var res []string
	for tok := range strings.FieldsSeq(s) {
		res = append(res, c.expand(tok))
	}
	return res
}

// expandCURIE expands v only when it is prefix:reference with a known
// prefix. Safe CURIEs in brackets are accepted.
func (c context) expandCURIE(v string) string {
	inner := v
	if len(v) > 2 && v[0] == '[' && v[len(v)-1] == ']' {
		inner = v[1 : len(v)-1]
	}
	if name, rest, ok := strings.Cut(inner, ":"); ok && !strings.HasPrefix(rest, "//") {
		if ns, found := c.prefixes[strings.ToLower(name)]; found {
			return ns + rest
		}
	}
	return v
}
