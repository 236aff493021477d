package contentful

import (
	"errors"
	"strings"
	"time"
)

const (
	deliveryBaseURL    = "https://cdn.contentful.com"
	previewBaseURL     = "https://preview.contentful.com"
	defaultEnvironment = "master"
	defaultTimeout     = 10 * time.Second
)

var (
	ErrConfigMissingSpaceID     = errors.New("contentful: space id is required")
	ErrConfigMissingAccessToken = errors.New("contentful: delivery access token is required")
)

// Config holds Content Delivery and Preview API settings.
type Config struct {
	SpaceID      string
	AccessToken  string
	PreviewToken string
	Environment  string
	Timeout      time.Duration
	// DeliveryURL and PreviewURL override the public hosts. Used by tests.
	DeliveryURL string
	PreviewURL  string
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.SpaceID) == "" {
		return ErrConfigMissingSpaceID
	}
	if strings.TrimSpace(c.AccessToken) == "" {
		return ErrConfigMissingAccessToken
	}
	return nil
}

func (c Config) environment() string {
	if c.Environment == "" {
		return defaultEnvironment
	}
	return c.Environment
}

// host returns the base URL and bearer token for delivery or preview reads.
func (c Config) host(preview bool) (string, string) {
	if preview {
		base := c.PreviewURL
		if base == "" {
			base = previewBaseURL
		}
		return base, c.PreviewToken
	}
	base := c.DeliveryURL
	if base == "" {
		base = deliveryBaseURL
	}
	return base, c.AccessToken
}
