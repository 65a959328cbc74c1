package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yfedoseev/meta-oxide/types"
)

func TestParseOpenGraph(t *testing.T) {
	src := `<head>
		<meta property="og:title" content="Article title">
		<meta property="og:title" content="ignored">
		<meta property="og:type" content="article">
		<meta property="og:url" content="/post">
		<meta property="og:description" content="Summary">
		<meta property="og:site_name" content="Site">
		<meta property="og:locale" content="en_US">
		<meta property="og:locale:alternate" content="fr_FR">
		<meta property="og:locale:alternate" content="de_DE">
		<meta property="og:image" content="/a.jpg">
		<meta property="og:image:width" content="800">
		<meta property="og:image:height" content="600">
		<meta property="og:image:alt" content="First">
		<meta property="og:image" content="https://cdn.example/b.jpg">
		<meta property="og:image:secure_url" content="https://cdn.example/b-secure.jpg">
		<meta property="og:image:type" content="image/jpeg">
		<meta property="og:video" content="/v.mp4">
		<meta property="og:video:width" content="bad">
		<meta property="og:audio" content="/a.mp3">
		<meta property="og:audio:type" content="audio/mpeg">
		<meta property="article:published_time" content="2024-03-01T10:00:00Z">
		<meta property="article:author" content="Jane">
		<meta property="article:author" content="John">
		<meta property="article:tag" content="go">
		<meta property="article:section" content="Tech">
		<meta property="book:isbn" content="978-3-16-148410-0">
		<meta property="profile:username" content="jdoe">
		<meta property="fb:app_id" content="42">
		<meta name="og:determiner" content="the">
	</head>`
	og := ParseOpenGraph(mustParse(t, src), "https://ex.com/")

	assert.Equal(t, "Article title", og.Title)
	assert.Equal(t, "article", og.Type)
	assert.Equal(t, "https://ex.com/post", og.URL)
	assert.Equal(t, "Summary", og.Description)
	assert.Equal(t, "Site", og.SiteName)
	assert.Equal(t, "en_US", og.Locale)
	assert.Equal(t, []string{"fr_FR", "de_DE"}, og.LocaleAlternate)
	assert.Equal(t, "https://ex.com/a.jpg", og.Image)
	assert.Equal(t, []types.OgImage{
		{URL: "https://ex.com/a.jpg", Width: 800, Height: 600, Alt: "First"},
		{URL: "https://cdn.example/b.jpg", SecureURL: "https://cdn.example/b-secure.jpg", Type: "image/jpeg"},
	}, og.Images)
	assert.Equal(t, []types.OgVideo{{URL: "https://ex.com/v.mp4"}}, og.Videos)
	assert.Equal(t, []types.OgAudio{{URL: "https://ex.com/a.mp3", Type: "audio/mpeg"}}, og.Audios)

	require.NotNil(t, og.Article)
	assert.Equal(t, "2024-03-01T10:00:00Z", og.Article.PublishedTime)
	assert.Equal(t, []string{"Jane", "John"}, og.Article.Author)
	assert.Equal(t, []string{"go"}, og.Article.Tag)
	assert.Equal(t, "Tech", og.Article.Section)
	require.NotNil(t, og.Book)
	assert.Equal(t, "978-3-16-148410-0", og.Book.ISBN)
	require.NotNil(t, og.Profile)
	assert.Equal(t, "jdoe", og.Profile.Username)
	assert.Equal(t, "42", og.FacebookAppID)
}

func TestParseOpenGraphOrphanStructuredProperty(t *testing.T) {
	og := ParseOpenGraph(mustParse(t, `<meta property="og:image:width" content="10">`), "")
	assert.Empty(t, og.Images)
	assert.Empty(t, og.Image)
}

func TestParseTwitter(t *testing.T) {
	src := `<head>
		<meta name="twitter:card" content="summary_large_image">
		<meta name="twitter:site" content="@site">
		<meta name="twitter:site:id" content="111">
		<meta name="twitter:creator" content="@jane">
		<meta name="twitter:creator:id" content="222">
		<meta name="twitter:title" content="Card title">
		<meta name="twitter:image:src" content="/card.png">
		<meta name="twitter:image:alt" content="Alt text">
		<meta name="twitter:player" content="/player">
		<meta name="twitter:player:width" content="480">
		<meta name="twitter:player:height" content="270">
		<meta name="twitter:app:name:iphone" content="App">
		<meta name="twitter:app:id:googleplay" content="com.example.app">
		<meta name="twitter:app:country" content="US">
	</head>`
	tw := ParseTwitter(mustParse(t, src), "https://ex.com/")

	assert.Equal(t, "summary_large_image", tw.Card)
	assert.Equal(t, "@site", tw.Site)
	assert.Equal(t, "111", tw.SiteID)
	assert.Equal(t, "@jane", tw.Creator)
	assert.Equal(t, "222", tw.CreatorID)
	assert.Equal(t, "Card title", tw.Title)
	assert.Equal(t, "https://ex.com/card.png", tw.Image)
	assert.Equal(t, "Alt text", tw.ImageAlt)
	assert.Equal(t, &types.TwitterPlayer{URL: "https://ex.com/player", Width: 480, Height: 270}, tw.Player)
	assert.Equal(t, &types.TwitterApp{NameIPhone: "App", IDGooglePlay: "com.example.app", Country: "US"}, tw.App)
}

func TestTwitterWithFallback(t *testing.T) {
	og := &types.OpenGraph{Title: "OG title", Description: "OG description", Image: "https://ex.com/og.png"}

	tw := TwitterWithFallback(&types.TwitterCard{Title: "Own title"}, og)
	assert.Equal(t, "Own title", tw.Title)
	assert.Equal(t, "OG description", tw.Description)
	assert.Equal(t, "https://ex.com/og.png", tw.Image)

	orig := &types.TwitterCard{}
	_ = TwitterWithFallback(orig, og)
	assert.Empty(t, orig.Title, "the input card is not modified")

	assert.Equal(t, &types.TwitterCard{}, TwitterWithFallback(nil, nil))
}
