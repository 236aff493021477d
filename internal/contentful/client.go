package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const maxResponseSize = 10 * 1024 * 1024

// Query selects entries of one content type.
type Query struct {
	ContentType string
	// Fields are equality filters keyed by field name without the
	// "fields." prefix.
	Fields  map[string]string
	Order   string
	Limit   int
	Preview bool
}

func (q Query) values() url.Values {
	v := url.Values{}
	v.Set("content_type", q.ContentType)
	for name, value := range q.Fields {
		v.Set("fields."+name, value)
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// EntryCollection is one page of entries with their linked assets resolved.
type EntryCollection struct {
	Total int     `json:"total"`
	Items []Entry `json:"items" validate:"dive"`
}

type entriesResponse struct {
	EntryCollection
	Includes struct {
		Asset []Asset `json:"Asset"`
	} `json:"includes"`
}

// Client reads published (or, with a preview token, draft) content.
type Client struct {
	cfg        Config
	httpClient *http.Client
	validate   *validator.Validate
}

func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

// PreviewEnabled reports whether draft reads are possible.
func (c *Client) PreviewEnabled() bool {
	return c.cfg.PreviewToken != ""
}

// Entries runs q and returns the matching entries in API order.
func (c *Client) Entries(ctx context.Context, q Query) (*EntryCollection, error) {
	if q.Preview && !c.PreviewEnabled() {
		return nil, ErrPreviewDisabled
	}
	base, token := c.cfg.host(q.Preview)
	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		base, url.PathEscape(c.cfg.SpaceID), url.PathEscape(c.cfg.environment()), q.values().Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("contentful: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(raw, apiErr)
		return nil, apiErr
	}

	var out entriesResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode entries: %v", ErrMalformedResponse, err)
	}
	if err := c.validate.Struct(&out); err != nil {
		return nil, fmt.Errorf("%w: invalid entries: %v", ErrMalformedResponse, err)
	}

	assets := make(map[string]Asset, len(out.Includes.Asset))
	for _, a := range out.Includes.Asset {
		assets[a.Sys.ID] = a
	}
	for i := range out.Items {
		out.Items[i].assets = assets
	}
	if out.Items == nil {
		out.Items = []Entry{}
	}
	return &out.EntryCollection, nil
}

// First returns the first entry matching q, or nil when there is none.
func (c *Client) First(ctx context.Context, q Query) (*Entry, error) {
	q.Limit = 1
	res, err := c.Entries(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(res.Items) == 0 {
		return nil, nil
	}
	return &res.Items[0], nil
}
