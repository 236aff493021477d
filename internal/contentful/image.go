package contentful

import (
	"net/url"
	"strconv"
)

// ImageOptions are Images API transformation parameters. Zero values are
// left out.
type ImageOptions struct {
	Width   int
	Height  int
	Quality int
	Format  string
}

// OptimizedImageURL makes rawURL absolute and appends w, h, q, fm and
// fit=fill. An empty rawURL stays empty.
func OptimizedImageURL(rawURL string, opts ImageOptions) string {
	if rawURL == "" {
		return ""
	}
	base := absoluteURL(rawURL)

	params := url.Values{}
	if opts.Width > 0 {
		params.Set("w", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		params.Set("h", strconv.Itoa(opts.Height))
	}
	if opts.Quality > 0 {
		params.Set("q", strconv.Itoa(opts.Quality))
	}
	if opts.Format != "" {
		params.Set("fm", opts.Format)
	}
	params.Set("fit", "fill")
	return base + "?" + params.Encode()
}
