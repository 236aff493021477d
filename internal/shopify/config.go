package shopify

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultAPIVersion is the Storefront API version the queries are written against.
	DefaultAPIVersion = "2024-10"
	defaultTimeout    = 15 * time.Second
)

var (
	ErrConfigMissingStoreDomain = errors.New("shopify: store domain is required")
	ErrConfigMissingAccessToken = errors.New("shopify: storefront access token is required")
)

// Config holds Storefront API connection settings.
type Config struct {
	StoreDomain string
	AccessToken string
	APIVersion  string
	Timeout     time.Duration
	// Endpoint overrides the URL derived from StoreDomain. Used by tests.
	Endpoint string
}

// Validate reports the first missing required setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.StoreDomain) == "" && c.Endpoint == "" {
		return ErrConfigMissingStoreDomain
	}
	if strings.TrimSpace(c.AccessToken) == "" {
		return ErrConfigMissingAccessToken
	}
	return nil
}

func (c Config) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	version := c.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}
	domain := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(c.StoreDomain, "https://"), "http://"), "/")
	return fmt.Sprintf("https://%s/api/%s/graphql.json", domain, version)
}
