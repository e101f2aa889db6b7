package http

import (
	"net/http"

	"github.com/dzkit/deezer-go/internal/utils"
)

// HeaderInjector is an http.RoundTripper that stamps the fixed identity
// headers onto every outgoing request: a browser User-Agent and the
// Accept-Language preference. Headers already set by the caller win.
type HeaderInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// userAgentProvider supplies the User-Agent string to inject.
	userAgentProvider utils.UserAgentProvider
}

const (
	userAgentHeader      = "User-Agent"
	acceptLanguageHeader = "Accept-Language"
)

// NewHeaderInjector creates a HeaderInjector wrapping next, taking its
// User-Agent from the given provider.
func NewHeaderInjector(next http.RoundTripper, userAgentProvider utils.UserAgentProvider) http.RoundTripper {
	return &HeaderInjector{
		next:              next,
		userAgentProvider: userAgentProvider,
	}
}

// RoundTrip executes a single HTTP transaction, filling in the identity
// headers when they are missing. It implements http.RoundTripper.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(userAgentHeader) == "" {
		req.Header.Set(userAgentHeader, t.userAgentProvider.GetUserAgent())
	}

	if req.Header.Get(acceptLanguageHeader) == "" {
		req.Header.Set(acceptLanguageHeader, DefaultLanguage)
	}

	return t.next.RoundTrip(req)
}
