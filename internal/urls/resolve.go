// Package urls resolves references found in documents against the
// document base URL.
package urls

import (
	"net/url"
	"strings"
)

// Resolve returns candidate resolved against base following RFC 3986.
//
// The candidate is returned unchanged when base is empty or unusable,
// when candidate is already absolute, or when candidate cannot be parsed.
// Resolve never fails.
func Resolve(candidate, base string) string {
	if base == "" {
		return candidate
	}
	if IsAbsolute(candidate) {
		return candidate
	}
	ref, err := url.Parse(strings.TrimSpace(candidate))
	if err != nil {
		return candidate
	}
	b, err := url.Parse(base)
	if err != nil || b.Scheme == "" {
		return candidate
	}
	return b.ResolveReference(ref).String()
}

// IsAbsolute reports whether s carries a URL scheme.
func IsAbsolute(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return u.Scheme != ""
}

// Resolver resolves candidates against a fixed base. A nil Resolver
// returns candidates unchanged.
type Resolver struct {
	base string
	u    *url.URL
}

// NewResolver returns a Resolver for base. An empty or unusable base
// produces a resolver that only returns candidates unchanged.
func NewResolver(base string) *Resolver {
	r := &Resolver{base: base}
	if u, err := url.Parse(base); err == nil && u.Scheme != "" {
		r.u = u
	}
	return r
}

// Base returns the base URL the resolver was built with.
func (r *Resolver) Base() string {
	if r == nil {
		return ""
	}
	return r.base
}

// Resolve resolves candidate against the resolver base.
func (r *Resolver) Resolve(candidate string) string {
	if r == nil || r.u == nil || IsAbsolute(candidate) {
		return candidate
	}
	ref, err := url.Parse(strings.TrimSpace(candidate))
	if err != nil {
		return candidate
	}
	return r.u.ResolveReference(ref).String()
}
