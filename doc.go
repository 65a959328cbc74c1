/*
Package metaoxide extracts structured data from HTML documents.

It reads the three embedded item formats (Microformats2, RDFa and
Microdata) into one generic Item model, and alongside them the flat
metadata a page declares in its head: standard meta tags, Open Graph,
Twitter Cards, JSON-LD, Dublin Core, rel links, oEmbed discovery and the
web app manifest link.

Basic Usage:

	import "github.com/yfedoseev/meta-oxide"

	// Everything at once
	res, err := metaoxide.ExtractAll(htmlString, "https://example.com/post")
	if err != nil {
	    // Handle error
	}

	fmt.Println(res.Meta.Title)
	for _, card := range res.Microformats["h-card"] {
	    fmt.Println(card.Text("name"))
	}

	// A single format
	items, err := metaoxide.ExtractMicrodata(htmlString, "")

Advanced Usage with Options:

	ext := metaoxide.New(
	    metaoxide.WithBaseURL("https://example.com/"),
	    metaoxide.WithTimeout(5*time.Second),
	    metaoxide.WithMaxBufferSize(2<<20),
	    metaoxide.WithLogger(slog.Default()),
	)
	res, err := ext.ExtractAll(htmlString, "")

Items:

Every embedded format yields *Item values. An Item has its types, an
ordered multimap of properties and, depending on the format, an RDFa
subject or a Microdata itemid. A property value is text, a resolved URL,
a verbatim date/time literal or a nested item:

	for name, values := range item.Properties.All() {
	    for _, v := range values {
	        if v.IsItem() {
	            // v.Item is a nested item
	        }
	    }
	}

Typed views such as NewHCard and NewHEntry project Microformats2 items
onto plain structs.

URLs:

Relative URLs are resolved against the base URL passed to a call, or the
one configured with WithBaseURL. With no base URL they are kept as
written. Resolution never fails: a value that cannot be resolved is kept
unchanged.

Errors:

Only caller input is rejected: an empty document, invalid UTF-8 (unless
WithStrictUTF8(false) is set) or a document larger than the configured
buffer size. A call that runs past its timeout returns ErrTimeout.
Malformed markup inside the document is recovered from silently.

Command Line Usage:

	metaoxide extract -f all page.html
	metaoxide extract --url https://example.com/ --format opengraph
	metaoxide serve --addr :8080
*/
package metaoxide
