package microdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yfedoseev/meta-oxide/internal/dom"
	"github.com/yfedoseev/meta-oxide/types"
)

func parse(t *testing.T, src, base string) []*types.Item {
	t.Helper()
	doc, err := dom.Parse(src)
	require.NoError(t, err)
	return Parse(doc, base, nil)
}

func TestParseProduct(t *testing.T) {
	items := parse(t, `<div itemscope itemtype="https://schema.org/Product"><span itemprop="name">Widget</span></div>`, "")

	require.Len(t, items, 1)
	assert.Equal(t, []string{"https://schema.org/Product"}, items[0].Types)
	assert.Equal(t, []string{"name"}, items[0].Properties.Keys())
	assert.Equal(t, []types.PropertyValue{types.Text("Widget")}, items[0].Properties.Get("name"))
	assert.Empty(t, items[0].Subject)
}

func TestParseMovie(t *testing.T) {
	src := `
	<div itemscope itemtype="https://schema.org/Movie">
		<h1 itemprop="name">Pirates of the Caribbean: On Stranger Tides (2011)</h1>
		<span itemprop="description">Jack Sparrow and Barbossa embark on a quest to
		find the elusive fountain of youth.</span>
		Director:
		<div itemprop="director" itemscope itemtype="https://schema.org/Person">
			<span itemprop="name">Rob Marshall</span>
		</div>
		Writers:
		<div itemprop="author" itemscope itemtype="https://schema.org/Person">
			<span itemprop="name">Ted Elliott</span>
		</div>
		<div itemprop="author" itemscope itemtype="https://schema.org/Person">
			<span itemprop="name">Terry Rossio</span>
		</div>
	</div>`
	items := parse(t, src, "")

	require.Len(t, items, 1)
	movie := items[0]
	assert.Equal(t, []string{"name", "description", "director", "author"}, movie.Properties.Keys())
	assert.Equal(t, "Jack Sparrow and Barbossa embark on a quest to\n\t\tfind the elusive fountain of youth.", movie.Text("description"))
	assert.Equal(t, "Rob Marshall", movie.Child("director").Text("name"))

	authors := movie.Properties.Get("author")
	require.Len(t, authors, 2)
	assert.Equal(t, "Ted Elliott", authors[0].Item.Text("name"))
	assert.Equal(t, "Terry Rossio", authors[1].Item.Text("name"))
	assert.Equal(t, []string{"https://schema.org/Person"}, authors[1].Item.Types)
}

func TestParseValues(t *testing.T) {
	src := `<div itemscope itemtype="https://schema.org/Event">
		<meta itemprop="eventStatus" content=" EventScheduled ">
		<img itemprop="image" src="/img/e.png">
		<a itemprop="url" href="event.html">more</a>
		<link itemprop="sameAs" href="https://other.example/e">
		<object itemprop="subjectOf" data="doc.pdf"></object>
		<data itemprop="capacity" value="300">three hundred</data>
		<meter itemprop="rating" value="0.8">80%</meter>
		<time itemprop="startDate" datetime="2025-05-01T19:00">May 1st</time>
		<time itemprop="endDate">2025-05-02</time>
		<span itemprop="offers" content="free">Free entry</span>
		<a itemprop="missing">no href</a>
	</div>`
	it := parse(t, src, "https://ex.com/events/")[0]

	assert.Equal(t, types.Text("EventScheduled"), it.Properties.Get("eventStatus")[0])
	assert.Equal(t, types.URL("https://ex.com/img/e.png"), it.Properties.Get("image")[0])
	assert.Equal(t, types.URL("https://ex.com/events/event.html"), it.Properties.Get("url")[0])
	assert.Equal(t, types.URL("https://other.example/e"), it.Properties.Get("sameAs")[0])
	assert.Equal(t, types.URL("https://ex.com/events/doc.pdf"), it.Properties.Get("subjectOf")[0])
	assert.Equal(t, types.Text("300"), it.Properties.Get("capacity")[0])
	assert.Equal(t, types.Text("0.8"), it.Properties.Get("rating")[0])
	assert.Equal(t, types.DateTime("2025-05-01T19:00"), it.Properties.Get("startDate")[0])
	assert.Equal(t, types.DateTime("2025-05-02"), it.Properties.Get("endDate")[0])
	assert.Equal(t, types.Text("free"), it.Properties.Get("offers")[0])
	assert.False(t, it.Properties.Has("missing"))
}

func TestParseItemID(t *testing.T) {
	src := `<div itemscope itemtype="https://schema.org/Book" itemid="urn:isbn:0-330-34032-8"></div>
	<div itemscope itemid="#local"></div>
	<div itemscope itemid="/books/1"></div>`
	items := parse(t, src, "https://ex.com/")

	require.Len(t, items, 3)
	assert.Equal(t, "urn:isbn:0-330-34032-8", items[0].ID)
	assert.Equal(t, "local", items[1].ID)
	assert.Equal(t, "https://ex.com/books/1", items[2].ID)
	assert.NotNil(t, items[1].Types)
	assert.Empty(t, items[1].Types)
}

func TestParseItemRef(t *testing.T) {
	src := `<div itemscope itemtype="https://schema.org/Person" itemref="second missing first first">
		<span itemprop="name">Amanda</span>
	</div>
	<p id="first"><span itemprop="band">Jazz Band</span></p>
	<p id="second"><span itemprop="nationality">British</span><span itemprop="band">Quartet</span></p>`
	items := parse(t, src, "")

	require.Len(t, items, 1)
	it := items[0]
	assert.Equal(t, []string{"name", "nationality", "band"}, it.Properties.Keys())
	assert.Equal(t, []string{"Quartet", "Jazz Band"}, it.Texts("band"), "referenced properties follow the itemref order, once each")
}

func TestParseItemRefItself(t *testing.T) {
	src := `<div id="self" itemscope itemref="self inner"><span id="inner" itemprop="name">Once</span></div>`
	items := parse(t, src, "")

	require.Len(t, items, 1)
	assert.Equal(t, []string{"Once"}, items[0].Texts("name"))
}

func TestParseItemRefCycle(t *testing.T) {
	src := `<div itemscope itemref="a"><span itemprop="name">Top</span></div>
	<div id="a"><div itemprop="part" itemscope itemref="a"><span itemprop="name">Part</span></div></div>`
	items := parse(t, src, "")

	// The part has no enclosing itemscope, so it is also read on its own.
	require.Len(t, items, 2)
	part := items[0].Child("part")
	require.NotNil(t, part)
	assert.Equal(t, "Part", part.Text("name"))
	assert.Nil(t, part.Child("part"))
	assert.Equal(t, []string{"name"}, items[1].Properties.Keys())
}

func TestParsePropertyDescendants(t *testing.T) {
	src := `<div itemscope><div itemprop="address"><span itemprop="street">1 Main St</span></div></div>`
	it := parse(t, src, "")[0]

	assert.Equal(t, []string{"address", "street"}, it.Properties.Keys())
	assert.Equal(t, "1 Main St", it.Text("street"))
}

func TestParseSeparateTopLevelItems(t *testing.T) {
	src := `<div itemscope itemtype="https://schema.org/Blog">
		<span itemprop="name">Blog</span>
		<div itemscope itemtype="https://schema.org/Comment"><span itemprop="text">Hi</span></div>
	</div>`
	items := parse(t, src, "")

	require.Len(t, items, 2)
	assert.Equal(t, []string{"name"}, items[0].Properties.Keys())
	assert.Equal(t, "Hi", items[1].Text("text"))
}

func TestParseMultipleProperties(t *testing.T) {
	it := parse(t, `<div itemscope><span itemprop="name alternateName">Jo</span></div>`, "")[0]
	assert.Equal(t, "Jo", it.Text("name"))
	assert.Equal(t, "Jo", it.Text("alternateName"))
}

func TestParseNone(t *testing.T) {
	assert.Empty(t, parse(t, `<p itemprop="orphan">x</p>`, ""))
	assert.Nil(t, Parse(nil, "", nil))
}

func TestParseItemPropWithoutEnclosingScope(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		types [][]string
	}{
		{
			name:  "itemprop on a top-level itemscope",
			html:  `<div itemprop="mainEntity" itemscope itemtype="https://schema.org/Article"><span itemprop="headline">Hi</span></div>`,
			types: [][]string{{"https://schema.org/Article"}},
		},
		{
			name: "itemprop inside an itemscope stays nested",
			html: `<div itemscope itemtype="https://schema.org/WebPage">
				<div itemprop="mainEntity" itemscope itemtype="https://schema.org/Article"><span itemprop="headline">Hi</span></div>
			</div>`,
			types: [][]string{{"https://schema.org/WebPage"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := parse(t, tt.html, "")
			require.Len(t, items, len(tt.types))
			for i, want := range tt.types {
				assert.Equal(t, want, items[i].Types)
			}
		})
	}

	items := parse(t, `<main itemprop="mainEntity" itemscope><span itemprop="headline">Hi</span></main>`, "")
	require.Len(t, items, 1)
	assert.Equal(t, "Hi", items[0].Text("headline"))
}

func TestParseTrimmedText(t *testing.T) {
	it := parse(t, "<div itemscope><p itemprop=\"text\">\n  a\n    b  \n</p></div>", "")[0]
	assert.Equal(t, "a\n    b", it.Text("text"))
}

func TestParseMissingValueAttribute(t *testing.T) {
	src := `<div itemscope>
		<a itemprop="url">no href</a>
		<img itemprop="image">
		<meta itemprop="status">
		<data itemprop="count">ten</data>
		<time itemprop="date"> </time>
		<span itemprop="empty"></span>
	</div>`
	it := parse(t, src, "")[0]

	assert.Equal(t, []string{"empty"}, it.Properties.Keys())
	assert.Equal(t, []types.PropertyValue{types.Text("")}, it.Properties.Get("empty"))
}
