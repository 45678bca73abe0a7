package api

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/diogo/mindmate/internal/models"
)

// ChatClient sends one user message and returns the decoded reply
type ChatClient interface {
	Chat(ctx context.Context, message string) (*models.ReplyResult, error)
}

// HTTPDoer is the part of tls_client.HttpClient the client needs
type HTTPDoer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}

// Client talks to the reply service over a single POST route
type Client struct {
	httpClient HTTPDoer
	endpoint   string
	timeout    time.Duration
	logger     *slog.Logger
	mu         sync.RWMutex
	closed     bool
}

// Ensure Client implements ChatClient
var _ ChatClient = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithEndpoint sets the reply service base URL
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTimeout sets the transport timeout for a single request
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the TLS client, mostly for tests
func WithHTTPClient(doer HTTPDoer) ClientOption {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new reply service client
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{
		endpoint: models.DefaultEndpoint,
		timeout:  300 * time.Second,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(client)
	}

	if strings.TrimSpace(client.endpoint) == "" {
		return nil, fmt.Errorf("endpoint cannot be empty")
	}

	if client.httpClient == nil {
		timeoutSeconds := int(client.timeout / time.Second)
		if timeoutSeconds < 1 {
			timeoutSeconds = 1
		}
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(timeoutSeconds),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Endpoint returns the configured base URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ChatURL returns the full URL of the reply route
func (c *Client) ChatURL() string {
	return strings.TrimRight(c.endpoint, "/") + models.ChatPath
}

// Timeout returns the per-request timeout
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Close releases idle connections. The client cannot be used afterwards.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	if idle, ok := c.httpClient.(interface{ CloseIdleConnections() }); ok {
		idle.CloseIdleConnections()
	}
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}
