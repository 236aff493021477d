package contentful

import (
	"encoding/json"
	"testing"
	"time"
)

func entryFromJSON(t *testing.T, fields string) Entry {
	t.Helper()
	var e Entry
	if err := json.Unmarshal([]byte(`{"sys":{"id":"e1"},"fields":`+fields+`}`), &e); err != nil {
		t.Fatalf("unmarshal entry: %v", err)
	}
	return e
}

func TestEntryFieldReaders(t *testing.T) {
	e := entryFromJSON(t, `{
	  "rating": 5, "featured": true, "tags": ["brewing","origin"],
	  "threshold": 50.5, "nothing": null, "publishDate": "2024-03-05",
	  "body": {"nodeType":"document","content":[]}
	}`)

	if got := e.Int("rating"); got != 5 {
		t.Fatalf("Int = %d", got)
	}
	if !e.Bool("featured") {
		t.Fatalf("Bool featured = false")
	}
	if got := e.Strings("tags"); len(got) != 2 || got[1] != "origin" {
		t.Fatalf("Strings = %v", got)
	}
	if got := e.Strings("missing"); got == nil || len(got) != 0 {
		t.Fatalf("Strings missing = %#v", got)
	}
	if f := e.Float("threshold"); f == nil || *f != 50.5 {
		t.Fatalf("Float = %v", f)
	}
	if f := e.Float("nothing"); f != nil {
		t.Fatalf("Float null = %v", *f)
	}
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if d := e.Time("publishDate"); d == nil || !d.Equal(want) {
		t.Fatalf("Time = %v", d)
	}
	doc, ok := e.Rich("body").(map[string]interface{})
	if !ok || doc["nodeType"] != "document" {
		t.Fatalf("Rich = %#v", e.Rich("body"))
	}
	if got := e.String("rating"); got != "" {
		t.Fatalf("String on number = %q", got)
	}
}

func TestOptimizedImageURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts ImageOptions
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "protocol relative", in: "//images.ctfassets.net/a.jpg", want: "https://images.ctfassets.net/a.jpg?fit=fill"},
		{
			name: "all options",
			in:   "https://images.ctfassets.net/a.jpg",
			opts: ImageOptions{Width: 800, Height: 600, Quality: 80, Format: "webp"},
			want: "https://images.ctfassets.net/a.jpg?fit=fill&fm=webp&h=600&q=80&w=800",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OptimizedImageURL(tt.in, tt.opts); got != tt.want {
				t.Fatalf("OptimizedImageURL = %q, want %q", got, tt.want)
			}
		})
	}
}
