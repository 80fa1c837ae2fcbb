package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Recipe represents a cocktail recipe as produced by the completion API
type Recipe struct {
	Name         Text     `json:"name"`
	Ingredients  TextList `json:"ingredients"`
	Instructions TextList `json:"instructions"`
	Garnish      Text     `json:"garnish"`
	GlassType    Text     `json:"glassType"`

	// source is the JSON the recipe was decoded from, unknown keys included
	source json.RawMessage
}

// UnmarshalJSON decodes the recipe and remembers the original document
func (r *Recipe) UnmarshalJSON(data []byte) error {
	type plain Recipe
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Recipe(p)
	r.source = append(json.RawMessage(nil), data...)
	return nil
}

// Source returns the JSON the recipe was decoded from, or its encoding when
// it was built in code.
func (r *Recipe) Source() (json.RawMessage, error) {
	if len(r.source) > 0 {
		return r.source, nil
	}
	return json.Marshal(r)
}

// Text is a display string decoded from any JSON value. Arrays are joined
// with ", ", objects render as "key: value" pairs.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return err
		}
		items, err := elementTexts(elems)
		if err != nil {
			return err
		}
		*t = Text(strings.Join(items, ", "))
		return nil
	case len(data) > 0 && data[0] == '{':
		items, err := objectEntries(data)
		if err != nil {
			return err
		}
		*t = Text(strings.Join(items, ", "))
		return nil
	}

	s, err := valueText(data)
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

// TextList can handle a JSON array, a single string or an object.
// The completion API returns any of these for ingredients and instructions;
// objects such as {"rum": "2 oz"} become a list of "rum: 2 oz" items.
type TextList struct {
	Items  []string
	Text   string
	isList bool
}

// NewTextList builds a list-shaped value
func NewTextList(items ...string) TextList {
	return TextList{Items: items, isList: true}
}

// NewText builds a string-shaped value
func NewText(text string) TextList {
	return TextList{Text: text}
}

// IsList reports whether the value arrived as an array or object
func (t TextList) IsList() bool {
	return t.isList
}

func (t *TextList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = TextList{}
		return nil
	}

	// Try to unmarshal as string first
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*t = NewText(str)
		return nil
	}

	if len(data) > 0 && data[0] == '{' {
		items, err := objectEntries(data)
		if err != nil {
			return err
		}
		*t = NewTextList(items...)
		return nil
	}

	if len(data) == 0 || data[0] != '[' {
		text, err := valueText(data)
		if err != nil {
			return err
		}
		*t = NewText(text)
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("invalid list %s: %w", data, err)
	}

	items, err := elementTexts(elems)
	if err != nil {
		return err
	}
	*t = NewTextList(items...)
	return nil
}

func (t TextList) MarshalJSON() ([]byte, error) {
	if t.isList {
		if t.Items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(t.Items)
	}
	return json.Marshal(t.Text)
}

func elementTexts(elems []json.RawMessage) ([]string, error) {
	items := make([]string, 0, len(elems))
	for _, elem := range elems {
		s, err := valueText(elem)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, nil
}

// objectEntries renders an object as "key: value" items in document order
func objectEntries(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var items []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		text, err := valueText(value)
		if err != nil {
			return nil, err
		}
		items = append(items, key+": "+text)
	}
	return items, nil
}

// valueText returns strings as-is and anything else as compact JSON
func valueText(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}
