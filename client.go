package storefront

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/viant/storefront/client"
	"github.com/viant/storefront/client/auth/store"
	"github.com/viant/storefront/client/auth/transport"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	// MemoryTokens keeps tokens for the lifetime of the process
	MemoryTokens = "memory"
	redisScheme  = "redis://"
	redissScheme = "rediss://"
)

// ClientOptions
//
// defines options for configuring a storefront client.
type ClientOptions struct {
	URL         string `yaml:"url" json:"url" short:"u" long:"url" description:"storefront backend url" env:"STOREFRONT_URL"`
	Tokens      string `yaml:"tokens,omitempty" json:"tokens,omitempty" short:"t" long:"tokens" description:"token store: memory, redis://host:port/db or any afs URL" env:"STOREFRONT_TOKENS"`
	TokenPrefix string `yaml:"tokenPrefix,omitempty" json:"tokenPrefix,omitempty" long:"token-prefix" description:"redis token key prefix"`
	TokenTTLSec int    `yaml:"tokenTTLSec,omitempty" json:"tokenTTLSec,omitempty" long:"token-ttl" description:"redis token ttl in seconds"`
	TimeoutMs   int    `yaml:"timeoutMs,omitempty" json:"timeoutMs,omitempty" long:"timeout-ms" description:"request timeout in milliseconds, 0 means none"`
	Tracing     bool   `yaml:"tracing,omitempty" json:"tracing,omitempty" long:"tracing" description:"instrument requests with OpenTelemetry"`
	Verbose     bool   `yaml:"verbose,omitempty" json:"verbose,omitempty" short:"v" long:"verbose" description:"development logging"`

	// Logger overrides the logger built from Verbose
	Logger *zap.Logger `yaml:"-" json:"-" no-flag:"true"`
	// Store allows injecting a token store shared across client instances
	Store store.Store `yaml:"-" json:"-" no-flag:"true"`
	// Listener receives session events, e.g. to switch the UI to a login view
	Listener transport.Listener `yaml:"-" json:"-" no-flag:"true"`
}

// Init sets defaults
func (c *ClientOptions) Init() {
	if c.Tokens == "" {
		c.Tokens = MemoryTokens
	}
	c.URL = strings.TrimRight(c.URL, "/")
}

// Timeout returns request timeout
func (c *ClientOptions) Timeout() time.Duration {
	if c.TimeoutMs <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// NewLogger returns the configured logger, or builds one from Verbose.
func (c *ClientOptions) NewLogger() (*zap.Logger, error) {
	if c.Logger != nil {
		return c.Logger, nil
	}
	if c.Verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// TokenStore returns the injected store or creates one from Tokens
func (c *ClientOptions) TokenStore(ctx context.Context) (store.Store, error) {
	if c.Store != nil {
		return c.Store, nil
	}
	switch {
	case c.Tokens == "" || c.Tokens == MemoryTokens:
		return store.NewMemoryStore(), nil
	case strings.HasPrefix(c.Tokens, redisScheme) || strings.HasPrefix(c.Tokens, redissScheme):
		redisOptions, err := redis.ParseURL(c.Tokens)
		if err != nil {
			return nil, fmt.Errorf("invalid redis token store URL: %w", err)
		}
		var options []store.RedisOption
		if c.TokenPrefix != "" {
			options = append(options, store.WithKeyPrefix(c.TokenPrefix))
		}
		if c.TokenTTLSec > 0 {
			options = append(options, store.WithTTL(time.Duration(c.TokenTTLSec)*time.Second))
		}
		return store.NewRedisStore(redis.NewClient(redisOptions), options...), nil
	default:
		fileStore, err := store.NewFileStore(ctx, c.Tokens)
		if err != nil {
			return nil, err
		}
		return fileStore, nil
	}
}

// NewClient creates a storefront client with token store, transport and logging configured via ClientOptions.
func NewClient(ctx context.Context, options *ClientOptions) (*client.Client, error) {
	if options == nil {
		return nil, fmt.Errorf("client options were nil")
	}
	options.Init()
	if options.URL == "" {
		return nil, fmt.Errorf("storefront URL is required")
	}
	tokens, err := options.TokenStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create token store: %w", err)
	}
	logger, err := options.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	var base http.RoundTripper = http.DefaultTransport
	if options.Tracing {
		base = otelhttp.NewTransport(base)
	}
	clientOptions := []client.Option{
		client.WithStore(tokens),
		client.WithBaseTransport(base),
		client.WithLogger(logger),
		client.WithTimeout(options.Timeout()),
	}
	if options.Listener != nil {
		clientOptions = append(clientOptions, client.WithListener(options.Listener))
	}
	return client.New(options.URL, clientOptions...)
}
