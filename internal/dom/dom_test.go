package dom

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yfedoseev/meta-oxide/internal/errs"
)

func mustParse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := Parse(s)
	require.NoError(t, err)
	return doc
}

// first returns the first element named tag below n.
func first(t *testing.T, n *html.Node, tag string) *html.Node {
	t.Helper()
	for c := range Walk(n) {
		if c.Data == tag {
			return c
		}
	}
	t.Fatalf("no <%s> element", tag)
	return nil
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		max     int
		strict  bool
		want    string
		wantErr error
	}{
		{"valid", "<p>hi</p>", 100, true, "<p>hi</p>", nil},
		{"empty", "", 100, true, "", errs.ErrNoDocument},
		{"blank", "  \n\t", 100, true, "", errs.ErrNoDocument},
		{"too large", "<p>hello</p>", 4, true, "", errs.ErrDocumentLarge},
		{"no limit", "<p>hello</p>", 0, true, "<p>hello</p>", nil},
		{"invalid utf8 strict", "<p>\xff</p>", 100, true, "", errs.ErrInvalidUTF8},
		{"invalid utf8 lenient", "<p>\xff</p>", 100, false, "<p>�</p>", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.input, tt.max, tt.strict)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.True(t, errs.IsInputError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	doc := mustParse(t, `<div class="h-card"><span class="p-name">Unclosed`)
	span := first(t, doc, "span")
	assert.Equal(t, []string{"p-name"}, Fields(span, "class"))
	assert.Equal(t, "Unclosed", TrimmedText(span))
}

func TestAttr(t *testing.T) {
	doc := mustParse(t, `<a HREF="/x" Class=" a  b " data-empty="">link</a>`)
	a := first(t, doc, "a")

	v, ok := Attr(a, "href")
	assert.True(t, ok)
	assert.Equal(t, "/x", v)

	v, ok = Attr(a, "HREF")
	assert.True(t, ok)
	assert.Equal(t, "/x", v)

	assert.True(t, HasAttr(a, "data-empty"))
	assert.False(t, HasAttr(a, "title"))
	assert.Equal(t, []string{"a", "b"}, Fields(a, "class"))
	assert.Nil(t, Fields(a, "rel"))
	assert.False(t, HasAttr(a.FirstChild, "href"), "text nodes have no attributes")
}

func TestTextAccessors(t *testing.T) {
	doc := mustParse(t, "<div>  Hello\n   <b>big</b>\tworld  </div>")
	div := first(t, doc, "div")

	assert.Equal(t, "Hello\n   big\tworld", TrimmedText(div))
	assert.Equal(t, "Hello big world", NormalizeText(TrimmedText(div)))
}

func TestWalk(t *testing.T) {
	doc := mustParse(t, `<div id="a"><p id="b"><span id="c"></span></p></div><p id="d"></p>`)
	body := first(t, doc, "body")

	var ids []string
	for n := range Walk(body) {
		ids = append(ids, AttrValue(n, "id"))
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)

	ids = ids[:0]
	for n := range Walk(body) {
		ids = append(ids, AttrValue(n, "id"))
		if len(ids) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestIndexIDs(t *testing.T) {
	doc := mustParse(t, `<p id="x">first</p><p id="x">second</p><span id="y"></span>`)
	ids := IndexIDs(doc)
	require.Len(t, ids, 2)
	assert.Equal(t, "first", TrimmedText(ids["x"]))
	assert.Equal(t, "span", ids["y"].Data)
}

func TestDecodeReader(t *testing.T) {
	latin1 := "<html><head><meta charset=\"iso-8859-1\"></head><body>caf\xe9</body></html>"
	got, err := DecodeReader(strings.NewReader(latin1), "")
	require.NoError(t, err)
	assert.Contains(t, got, "café")

	got, err = DecodeReader(strings.NewReader("caf\xe9"), "text/html; charset=windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "café", got)

	got, err = DecodeReader(strings.NewReader("<p>déjà</p>"), "text/html; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "<p>déjà</p>", got)
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"composes accents", "e\u0301te\u0301", "\u00e9t\u00e9"},
		{"collapses whitespace", " a \t\n b ", "a b"},
		{"strips controls", "a\x00b\x07c", "abc"},
		{"keeps ligatures", "\ufb01le", "\ufb01le"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}
