// Package types provides the core data structures for the meta-oxide library.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/araddon/dateparse"
)

// Kind is the variant of a PropertyValue.
type Kind int

// Property value kinds.
const (
	KindText Kind = iota
	KindURL
	KindDateTime
	KindItem
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindDateTime:
		return "datetime"
	case KindItem:
		return "item"
	default:
		return "text"
	}
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "text":
		return KindText, nil
	case "url":
		return KindURL, nil
	case "datetime":
		return KindDateTime, nil
	case "item":
		return KindItem, nil
	}
	return KindText, fmt.Errorf("unknown property value type %q", s)
}

// PropertyValue is one value of an item property. Its Kind decides which
// of Value or Item is meaningful.
//
// Datatype is advisory: it records a declared literal type (for example
// an XSD type from RDFa) without changing the Kind.
type PropertyValue struct {
	Kind     Kind
	Value    string
	Item     *Item
	Datatype string
}

// Text returns a plain text value.
func Text(s string) PropertyValue {
	return PropertyValue{Kind: KindText, Value: s}
}

// TypedText returns a text value tagged with a datatype.
func TypedText(s, datatype string) PropertyValue {
	return PropertyValue{Kind: KindText, Value: s, Datatype: datatype}
}

// URL returns a reference value. The caller is expected to have resolved it.
func URL(s string) PropertyValue {
	return PropertyValue{Kind: KindURL, Value: s}
}

// DateTime returns a date/time literal, kept verbatim.
func DateTime(s string) PropertyValue {
	return PropertyValue{Kind: KindDateTime, Value: s}
}

// Nested returns a value wrapping a nested item.
func Nested(it *Item) PropertyValue {
	return PropertyValue{Kind: KindItem, Item: it}
}

// IsItem reports whether the value holds a nested item.
func (v PropertyValue) IsItem() bool {
	return v.Kind == KindItem && v.Item != nil
}

// String returns the scalar value. For nested items it returns the
// first "name" value of the item, if any.
func (v PropertyValue) String() string {
	if v.Kind == KindItem {
		if v.Item == nil {
			return ""
		}
		return v.Item.Text("name")
	}
	return v.Value
}

// Time parses the value as a date. The item model never does this on
// its own; it is a convenience for callers wanting typed dates.
func (v PropertyValue) Time() (time.Time, error) {
	if v.Kind == KindItem {
		return time.Time{}, fmt.Errorf("nested item has no time value")
	}
	return dateparse.ParseAny(v.Value)
}

type wireValue struct {
	Type     string          `json:"type"`
	Value    json.RawMessage `json:"value"`
	Datatype string          `json:"datatype,omitempty"`
}

// MarshalJSON encodes the value as {"type": ..., "value": ...}.
func (v PropertyValue) MarshalJSON() ([]byte, error) {
	var (
		raw []byte
		err error
	)
	if v.Kind == KindItem {
		raw, err = json.Marshal(v.Item)
	} else {
		raw, err = json.Marshal(v.Value)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireValue{Type: v.Kind.String(), Value: raw, Datatype: v.Datatype})
}

// UnmarshalJSON decodes the {"type": ..., "value": ...} form.
func (v *PropertyValue) UnmarshalJSON(data []byte) error {
	var w wireValue
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	k, err := parseKind(w.Type)
	if err != nil {
		return err
	}

	*v = PropertyValue{Kind: k, Datatype: w.Datatype}
	if k == KindItem {
		v.Item = &Item{}
		return json.Unmarshal(w.Value, v.Item)
	}
	return json.Unmarshal(w.Value, &v.Value)
}

// Properties is an insertion-ordered multimap of property name to values.
// Adding under an existing name appends; it never overwrites.
// The zero value is ready to use.
type Properties struct {
	keys   []string
	values map[string][]PropertyValue
}

// Add appends a value under name.
func (p *Properties) Add(name string, v PropertyValue) {
	if p.values == nil {
		p.values = map[string][]PropertyValue{}
	}
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.values[name] = append(p.values[name], v)
}

// Get returns the values stored under name, in document order.
func (p Properties) Get(name string) []PropertyValue {
	return p.values[name]
}

// First returns the first value stored under name.
func (p Properties) First(name string) (PropertyValue, bool) {
	if vals := p.values[name]; len(vals) > 0 {
		return vals[0], true
	}
	return PropertyValue{}, false
}

// Has reports whether at least one value exists under name.
func (p Properties) Has(name string) bool {
	return len(p.values[name]) > 0
}

// Keys returns the property names in insertion order.
func (p Properties) Keys() []string {
	return slices.Clone(p.keys)
}

// Len returns the number of distinct property names.
func (p Properties) Len() int {
	return len(p.keys)
}

// All iterates over names and their values in insertion order.
func (p Properties) All() iter.Seq2[string, []PropertyValue] {
	return func(yield func(string, []PropertyValue) bool) {
		for _, k := range p.keys {
			if !yield(k, p.values[k]) {
				return
			}
		}
	}
}

// MarshalJSON writes the properties as a JSON object keeping key order.
func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		vals, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vals)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping key order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	*p = Properties{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("properties: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("properties: expected key, got %v", tok)
		}

		var vals []PropertyValue
		if err := dec.Decode(&vals); err != nil {
			return fmt.Errorf("properties: %s: %w", name, err)
		}
		if p.values == nil {
			p.values = map[string][]PropertyValue{}
		}
		if _, seen := p.values[name]; !seen {
			p.keys = append(p.keys, name)
		}
		p.values[name] = append(p.values[name], vals...)
	}

	_, err = dec.Token()
	return err
}

// Item is one extracted structured record.
//
// Nested items are not a separate field: they are Nested values inside
// Properties. Subject is only set by the RDFa interpreter and ID only
// by the Microdata interpreter (itemid).
type Item struct {
	Types      []string   `json:"types"`
	Properties Properties `json:"properties"`
	Subject    string     `json:"subject,omitempty"`
	ID         string     `json:"id,omitempty"`
}

// NewItem returns an item with the given types.
func NewItem(types ...string) *Item {
	t := make([]string, 0, len(types))
	t = append(t, types...)
	return &Item{Types: t}
}

// MarshalJSON always writes "types" as an array, even when empty.
func (it *Item) MarshalJSON() ([]byte, error) {
	type plain Item
	out := plain(*it)
	if out.Types == nil {
		out.Types = []string{}
	}
	return json.Marshal(out)
}

// HasType reports whether the item declares t.
func (it *Item) HasType(t string) bool {
	return slices.Contains(it.Types, t)
}

// Text returns the string form of the first value under name.
func (it *Item) Text(name string) string {
	if v, ok := it.Properties.First(name); ok {
		return v.String()
	}
	return ""
}

// Texts returns the string form of every value under name.
func (it *Item) Texts(name string) []string {
	vals := it.Properties.Get(name)
	if len(vals) == 0 {
		return nil
	}
	res := make([]string, 0, len(vals))
	for _, v := range vals {
		res = append(res, v.String())
	}
	return res
}

// Child returns the first nested item stored under name.
func (it *Item) Child(name string) *Item {
	for _, v := range it.Properties.Get(name) {
		if v.IsItem() {
			return v.Item
		}
	}
	return nil
}

// Find walks items depth-first, nested values included, and returns
// every item declaring type t.
func Find(items []*Item, t string) []*Item {
	var res []*Item
	var walk func(*Item)
	walk = func(it *Item) {
		if it.HasType(t) {
			res = append(res, it)
		}
		for _, vals := range it.Properties.All() {
			for _, v := range vals {
				if v.IsItem() {
					walk(v.Item)
				}
			}
		}
	}
	for _, it := range items {
		walk(it)
	}
	return res
}
