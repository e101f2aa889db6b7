package deezer

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	http_transport "github.com/dzkit/deezer-go/internal/transport/http"
	"github.com/dzkit/deezer-go/internal/utils"
)

// Client talks to both Deezer API surfaces. It is safe for concurrent use:
// the session token is a single lock-guarded cell shared by all calls made
// through the same instance. Each Client owns an independent session.
type Client struct {
	// httpClient is the HTTP client for making requests.
	// It carries the cookie jar the gateway session depends on.
	httpClient *http.Client
	// apiBaseURL is the resolved base URL of the public API.
	apiBaseURL *url.URL
	// gatewayURL is the single endpoint of the private gw-light API.
	gatewayURL string

	// mu guards token. Two callers may both observe the sentinel and both
	// trigger a refresh; that is tolerated, last write wins.
	mu sync.Mutex
	// token is the current session token, or sentinelToken before the
	// first successful refresh.
	token string
}

// options holds the construction-time settings of a Client.
type options struct {
	httpClient *http.Client
	userAgent  string
	apiBaseURL string
	gatewayURL string
}

// Option customizes a Client during construction.
type Option func(*options)

// WithHTTPClient replaces the default HTTP client entirely. The caller is
// then responsible for cookie persistence, timeouts and identity headers.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithUserAgent overrides the browser identity sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithAPIBaseURL overrides the public API origin.
// The live service requires the default value; tests point this at a local server.
func WithAPIBaseURL(baseURL string) Option {
	return func(o *options) {
		o.apiBaseURL = baseURL
	}
}

// WithGatewayURL overrides the private API endpoint.
// The live service requires the default value; tests point this at a local server.
func WithGatewayURL(gatewayURL string) Option {
	return func(o *options) {
		o.gatewayURL = gatewayURL
	}
}

// NewClient creates a Client with a fresh, untokened session.
func NewClient(opts ...Option) (*Client, error) {
	settings := &options{
		userAgent:  http_transport.DefaultUserAgent,
		apiBaseURL: DefaultAPIBaseURL,
		gatewayURL: DefaultGatewayURL,
	}
	for _, opt := range opts {
		opt(settings)
	}

	apiBaseURL, err := url.Parse(settings.apiBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	httpClient := settings.httpClient
	if httpClient == nil {
		// The gateway session is partly cookie-based, so cookies must
		// persist across requests.
		cookies, jarErr := cookiejar.New(nil)
		if jarErr != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", jarErr)
		}

		httpClient = &http.Client{
			Transport: http_transport.NewHeaderInjector(
				http_transport.NewLogTransport(http.DefaultTransport, 0),
				utils.NewSimpleUserAgentProvider(settings.userAgent)),
			Jar:     cookies,
			Timeout: http_transport.DefaultTimeout,
		}
	}

	return &Client{
		httpClient: httpClient,
		apiBaseURL: apiBaseURL,
		gatewayURL: settings.gatewayURL,
		token:      sentinelToken,
	}, nil
}

// Token returns the currently stored session token.
// Before the first successful refresh this is the sentinel value "null".
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.token
}
