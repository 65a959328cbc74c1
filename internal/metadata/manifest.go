package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yfedoseev/meta-oxide/internal/errs"
	"github.com/yfedoseev/meta-oxide/internal/urls"
	"github.com/yfedoseev/meta-oxide/types"
)

// ParseManifest parses a web app manifest supplied by the caller. Every
// URL member is resolved against baseURL, normally the manifest's own
// URL. Nothing is fetched.
func ParseManifest(data []byte, baseURL string) (*types.WebAppManifest, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errs.WrapValidationError(errs.ErrInvalidManifest, "ParseManifest", "empty document")
	}

	m := &types.WebAppManifest{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, errs.WrapValidationError(fmt.Errorf("%w: %w", errs.ErrInvalidManifest, err), "ParseManifest", "")
	}

	r := urls.NewResolver(baseURL)
	resolve := func(s *string) {
		if *s != "" {
			*s = r.Resolve(*s)
		}
	}
	resolveIcons := func(icons []types.ManifestIcon) {
		for i := range icons {
			resolve(&icons[i].Src)
		}
	}

	resolve(&m.StartURL)
	resolve(&m.Scope)
	resolveIcons(m.Icons)
	for i := range m.Screenshots {
		resolve(&m.Screenshots[i].Src)
	}
	for i := range m.Shortcuts {
		resolve(&m.Shortcuts[i].URL)
		resolveIcons(m.Shortcuts[i].Icons)
	}
	for i := range m.RelatedApplications {
		resolve(&m.RelatedApplications[i].URL)
	}
	return m, nil
}
