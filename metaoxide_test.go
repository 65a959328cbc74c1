package metaoxide_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yfedoseev/meta-oxide"
)

func TestExtractAllRoundTrip(t *testing.T) {
	html := `<div class="h-entry">
		<span class="p-name">Post</span>
		<span class="p-category">go</span>
		<span class="p-category">html</span>
		<div class="p-author h-card"><span class="p-name">Jane</span></div>
	</div>
	<div itemscope itemtype="https://schema.org/Book https://schema.org/Product"><span itemprop="name">B</span></div>`

	res, err := metaoxide.ExtractAll(html, "")
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var back metaoxide.Result
	require.NoError(t, json.Unmarshal(data, &back))

	entry := back.Microformats["h-entry"][0]
	assert.Equal(t, []string{"h-entry"}, entry.Types)
	assert.Equal(t, []string{"name", "category", "author"}, entry.Properties.Keys())
	assert.Equal(t, []string{"go", "html"}, entry.Texts("category"))
	require.NotNil(t, entry.Child("author"))
	assert.Equal(t, "Jane", entry.Child("author").Text("name"))

	book := back.Microdata[0]
	assert.Equal(t, []string{"https://schema.org/Book", "https://schema.org/Product"}, book.Types)
}

func TestIndependentInterpreters(t *testing.T) {
	html := `<div class="h-card" itemscope itemtype="https://schema.org/Person" vocab="https://schema.org/" typeof="Person">
		<span class="p-name" itemprop="name" property="name">Jane</span>
	</div>`

	res, err := metaoxide.ExtractAll(html, "")
	require.NoError(t, err)

	assert.Len(t, res.Microformats["h-card"], 1)
	assert.Len(t, res.Microdata, 1)
	assert.Len(t, res.RDFa, 1)
}

func TestErrors(t *testing.T) {
	_, err := metaoxide.ExtractAll("", "")
	assert.True(t, errors.Is(err, metaoxide.ErrNoDocument))

	_, err = metaoxide.ExtractRDFa("<p>\xc3\x28</p>", "")
	assert.True(t, errors.Is(err, metaoxide.ErrInvalidUTF8))

	_, err = metaoxide.New(metaoxide.WithMaxBufferSize(4)).ExtractMicrodata("<p>long</p>", "")
	assert.True(t, errors.Is(err, metaoxide.ErrDocumentLarge))

	_, err = metaoxide.ParseFormat("csv")
	assert.True(t, errors.Is(err, metaoxide.ErrUnknownFormat))

	_, err = metaoxide.ParseManifest([]byte("not json"), "")
	assert.True(t, errors.Is(err, metaoxide.ErrInvalidManifest))

	_, err = metaoxide.ParseOEmbed([]byte(`{"version":"1.0"}`), metaoxide.OEmbedJSON)
	assert.True(t, errors.Is(err, metaoxide.ErrInvalidOEmbed))
}

func TestFindItems(t *testing.T) {
	html := `<div class="h-feed">
		<div class="h-entry"><span class="p-name">One</span></div>
		<div class="h-entry"><span class="p-name">Two</span></div>
	</div>`

	mf, err := metaoxide.ExtractMicroformats(html, "")
	require.NoError(t, err)

	entries := metaoxide.FindItems(mf["h-feed"], "h-entry")
	require.Len(t, entries, 2)
	assert.Equal(t, "One", entries[0].Text("name"))
	assert.Equal(t, "Two", entries[1].Text("name"))

	feed := metaoxide.NewHFeed(mf["h-feed"][0])
	assert.Len(t, feed.Entries, 2)
}

func TestFilterJSONLD(t *testing.T) {
	html := `<script type="application/ld+json">[
		{"@type": "Article", "headline": "A"},
		{"@type": ["Thing", "Product"], "name": "P"}
	]</script>`

	res, err := metaoxide.ExtractAll(html, "")
	require.NoError(t, err)
	require.Len(t, res.JSONLD, 2)

	products, err := metaoxide.FilterJSONLD(res.JSONLD, "Product")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "P", products[0]["name"])
}
