package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yfedoseev/meta-oxide/types"
)

func TestRender(t *testing.T) {
	it := types.NewItem("h-card")
	it.Properties.Add("url", types.URL("https://ex.com/x"))
	it.Properties.Add("name", types.Text("Jane"))

	tests := []struct {
		name  string
		opts  renderOptions
		query string
		want  string
	}{
		{
			name: "compact keeps key order",
			opts: renderOptions{compact: true},
			want: `{"types":["h-card"],"properties":{"url":[{"type":"url","value":"https://ex.com/x"}],"name":[{"type":"text","value":"Jane"}]}}` + "\n",
		},
		{
			name: "yaml",
			opts: renderOptions{yaml: true},
			want: `types:
  - h-card
properties:
  url:
    - type: url
      value: https://ex.com/x
  name:
    - type: text
      value: Jane
`,
		},
		{
			name:  "query with one result",
			opts:  renderOptions{compact: true},
			query: ".properties.name[0].value",
			want:  "\"Jane\"\n",
		},
		{
			name:  "query with several results",
			opts:  renderOptions{compact: true},
			query: ".properties[][].type",
			want:  "[\"text\",\"url\"]\n",
		},
		{
			name:  "query with no result",
			opts:  renderOptions{compact: true},
			query: "empty",
			want:  "[]\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, err := compileQuery(test.query)
			require.NoError(t, err)
			test.opts.query = code

			out, err := render(it, test.opts)
			require.NoError(t, err)
			assert.Equal(t, test.want, string(out))
		})
	}
}

func TestRenderIndent(t *testing.T) {
	out, err := render(map[string]string{"a": "<b>"}, renderOptions{})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": \"<b>\"\n}\n", string(out))
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "page.json", outputName(source{name: "dir/page.html"}, 0, false))
	assert.Equal(t, "stdin.yaml", outputName(source{name: "-"}, 0, true))
	assert.Equal(t, "ex.com_blog_post.json", outputName(source{name: "https://ex.com/blog/post", isURL: true}, 0, false))
	assert.Equal(t, "input-3.json", outputName(source{name: "https://", isURL: true}, 2, false))
}

func TestCheckText(t *testing.T) {
	assert.NoError(t, checkText([]byte("<!DOCTYPE html><p>hi</p>")))
	assert.NoError(t, checkText([]byte("plain words")))
	assert.ErrorIs(t, checkText([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")), errNotText)
}
