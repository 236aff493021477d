package contentful

import (
	"encoding/json"
	"strings"
	"time"
)

// Sys is the metadata block every Contentful object carries.
type Sys struct {
	ID        string    `json:"id" validate:"required"`
	Type      string    `json:"type"`
	LinkType  string    `json:"linkType"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type link struct {
	Sys Sys `json:"sys"`
}

// Asset is a resolved media file.
type Asset struct {
	Sys    Sys `json:"sys"`
	Fields struct {
		Title string `json:"title"`
		File  struct {
			URL         string `json:"url"`
			ContentType string `json:"contentType"`
		} `json:"file"`
	} `json:"fields"`
}

// Entry is a single content entry. Fields stay raw until a typed reader asks
// for them.
type Entry struct {
	Sys    Sys                        `json:"sys"`
	Fields map[string]json.RawMessage `json:"fields"`

	assets map[string]Asset
}

// ID returns the entry id.
func (e Entry) ID() string { return e.Sys.ID }

// Decode unmarshals field name into v. A missing field leaves v untouched.
func (e Entry) Decode(name string, v interface{}) error {
	raw, ok := e.Fields[name]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// String returns a text field, or "" when missing or not a string.
func (e Entry) String(name string) string {
	var s string
	if err := e.Decode(name, &s); err != nil {
		return ""
	}
	return s
}

func (e Entry) Int(name string) int {
	var f float64
	if err := e.Decode(name, &f); err != nil {
		return 0
	}
	return int(f)
}

func (e Entry) Float(name string) *float64 {
	raw, ok := e.Fields[name]
	if !ok {
		return nil
	}
	var f *float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return f
}

func (e Entry) Bool(name string) bool {
	var b bool
	if err := e.Decode(name, &b); err != nil {
		return false
	}
	return b
}

func (e Entry) Strings(name string) []string {
	out := []string{}
	if err := e.Decode(name, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func (e Entry) Time(name string) *time.Time {
	s := e.String(name)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// Rich returns a rich text (or any JSON) field as generic data.
func (e Entry) Rich(name string) interface{} {
	var v interface{}
	if err := e.Decode(name, &v); err != nil {
		return nil
	}
	return v
}

// Object decodes a nested JSON object field into v.
func (e Entry) Object(name string, v interface{}) bool {
	return e.Decode(name, v) == nil
}

// AssetURL resolves a linked asset field to an absolute URL. Unresolved or
// missing links yield "".
func (e Entry) AssetURL(name string) string {
	var l link
	if err := e.Decode(name, &l); err != nil || l.Sys.ID == "" {
		return ""
	}
	a, ok := e.assets[l.Sys.ID]
	if !ok {
		return ""
	}
	return absoluteURL(a.Fields.File.URL)
}

func absoluteURL(u string) string {
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}
