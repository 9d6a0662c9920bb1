package storefront

import (
	"context"
	"fmt"
	"os"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const (
	EnvURL    = "STOREFRONT_URL"
	EnvTokens = "STOREFRONT_TOKENS"
)

// LoadOptions loads client options from a YAML file at URL; environment variables take precedence.
func LoadOptions(ctx context.Context, URL string) (*ClientOptions, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load options %v: %w", URL, err)
	}
	ret := &ClientOptions{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode options %v: %w", URL, err)
	}
	ret.ApplyEnv()
	ret.Init()
	return ret, nil
}

// ApplyEnv overrides options with STOREFRONT_URL and STOREFRONT_TOKENS
func (c *ClientOptions) ApplyEnv() {
	if value := os.Getenv(EnvURL); value != "" {
		c.URL = value
	}
	if value := os.Getenv(EnvTokens); value != "" {
		c.Tokens = value
	}
}
