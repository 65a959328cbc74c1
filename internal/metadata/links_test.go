package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yfedoseev/meta-oxide/types"
)

func TestParseRelLinks(t *testing.T) {
	src := `<head>
		<link rel="stylesheet" href="/a.css">
		<link rel="Me authn" href="https://github.com/jane">
		<link rel="webmention" href="/webmention">
	</head>
	<body>
		<a rel="me" href="https://mastodon.example/@jane">m</a>
		<a rel="me" href="https://github.com/jane">dup</a>
		<a rel="nofollow" href="">empty</a>
		<a href="/plain">plain</a>
	</body>`
	links := ParseRelLinks(mustParse(t, src), "https://ex.com/")

	assert.Equal(t, map[string][]string{
		"stylesheet": {"https://ex.com/a.css"},
		"me":         {"https://github.com/jane", "https://mastodon.example/@jane"},
		"authn":      {"https://github.com/jane"},
		"webmention": {"https://ex.com/webmention"},
	}, links)
}

func TestDiscoverOEmbed(t *testing.T) {
	src := `<head>
		<link rel="alternate" type="application/json+oembed" href="/oembed?format=json" title="JSON">
		<link rel="alternate" type="text/xml+oembed" href="/oembed?format=xml">
		<link rel="alternate" type="application/oembed" href="/oembed">
		<link rel="alternate" type="application/rss+xml" href="/feed">
		<link rel="stylesheet" type="text/css+oembed" href="/nope">
	</head>`
	d := DiscoverOEmbed(mustParse(t, src), "https://ex.com/")

	assert.True(t, d.HasEndpoints())
	assert.Equal(t, []types.OEmbedEndpoint{
		{Href: "https://ex.com/oembed?format=json", Format: types.OEmbedJSON, Title: "JSON"},
		{Href: "https://ex.com/oembed", Format: types.OEmbedJSON},
	}, d.JSONEndpoints)
	assert.Equal(t, []types.OEmbedEndpoint{
		{Href: "https://ex.com/oembed?format=xml", Format: types.OEmbedXML},
	}, d.XMLEndpoints)

	none := DiscoverOEmbed(mustParse(t, `<p>x</p>`), "")
	assert.False(t, none.HasEndpoints())
}

func TestDiscoverManifest(t *testing.T) {
	d := DiscoverManifest(mustParse(t, `<link rel="icon" href="/i.png"><link rel="manifest" href="/app.webmanifest"><link rel="manifest" href="/second">`), "https://ex.com/app/")
	require.NotNil(t, d)
	assert.Equal(t, "https://ex.com/app.webmanifest", d.Href)
	assert.Nil(t, d.Manifest)

	assert.Nil(t, DiscoverManifest(mustParse(t, `<p>x</p>`), ""))
}
