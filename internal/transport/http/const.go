package http

import "time"

const (
	// DefaultTimeout is the timeout applied to every request, including the
	// side-channel token refresh a request may trigger.
	DefaultTimeout = 15 * time.Second

	// DefaultUserAgent is the browser identity sent with every request.
	// The gateway serves a degraded payload to clients that do not look like a browser.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.5790.111 Safari/537.36" //nolint: lll

	// DefaultLanguage is the Accept-Language preference sent with every
	// request, pinning localized payloads to English.
	DefaultLanguage = "en"

	// DefaultMaxLogLength caps request/response dumps in debug logs.
	DefaultMaxLogLength = 4096
)
