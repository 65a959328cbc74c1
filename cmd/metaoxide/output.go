package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"
)

// renderOptions controls how a result is written.
type renderOptions struct {
	compact bool
	yaml    bool
	query   *gojq.Code
}

func compileQuery(src string) (*gojq.Code, error) {
	if src == "" {
		return nil, nil
	}
	q, err := gojq.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	return gojq.Compile(q)
}

// render encodes v as JSON, or YAML, after applying the query if any.
// The JSON key order of v is kept unless a query rewrites the value.
func render(v any, o renderOptions) ([]byte, error) {
	data, err := marshalJSON(v)
	if err != nil {
		return nil, err
	}

	if o.query != nil {
		data, err = runQuery(o.query, data)
		if err != nil {
			return nil, err
		}
	}

	if o.yaml {
		return jsonToYAML(data)
	}
	if o.compact {
		return append(data, '\n'), nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// runQuery applies code to the JSON document data. A query yielding a
// single value returns it; several values are returned as an array.
func runQuery(code *gojq.Code, data []byte) ([]byte, error) {
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, err
	}

	var results []any
	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("query: %w", err)
		}
		results = append(results, v)
	}

	if len(results) == 1 {
		return marshalJSON(results[0])
	}
	if results == nil {
		results = []any{}
	}
	return marshalJSON(results)
}

// jsonToYAML converts a JSON document to block style YAML, keeping the
// key order.
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	blockStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
