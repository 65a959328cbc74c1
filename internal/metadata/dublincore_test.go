package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yfedoseev/meta-oxide/types"
)

func TestParseDublinCore(t *testing.T) {
	src := `<head>
		<meta name="DC.title" content="Report">
		<meta name="dc.title" content="ignored">
		<meta name="DC.creator" content="Jane Doe">
		<meta name="dc.subject" content="go; html, metadata">
		<meta name="DC.subject" content="rdf">
		<meta name="dcterms.created" content="2024-01-15">
		<meta name="DC.contributor" content="John, Ann">
		<meta name="DC.language" content="en">
		<meta name="DCTERMS.rights" content="CC-BY">
		<meta name="DC.identifier" content="">
		<meta name="description" content="not dublin core">
	</head>`
	dc := ParseDublinCore(mustParse(t, src))

	assert.Equal(t, &types.DublinCore{
		Title:       "Report",
		Creator:     "Jane Doe",
		Subject:     []string{"go", "html", "metadata", "rdf"},
		Contributor: []string{"John", "Ann"},
		Date:        "2024-01-15",
		Language:    "en",
		Rights:      "CC-BY",
	}, dc)
	assert.False(t, dc.IsEmpty())
}

func TestParseDublinCoreEmpty(t *testing.T) {
	assert.True(t, ParseDublinCore(mustParse(t, `<meta name="author" content="x">`)).IsEmpty())
	assert.True(t, ParseDublinCore(nil).IsEmpty())
}
