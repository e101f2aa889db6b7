package deezer

import (
	"context"
	"io"

	"github.com/tidwall/gjson"

	"github.com/dzkit/deezer-go/internal/logger"
)

// RefreshToken unconditionally asks the gateway for a new session token via
// deezer.getUserData (the one method that needs no token) and stores it.
//
// On any failure — transport error, unparsable body, missing or non-string
// checkForm field — it returns the sentinel and leaves the stored token
// untouched, so a possibly still valid token is never clobbered. Callers are
// never blocked by a failed refresh; the next request simply proceeds
// unauthenticated.
func (c *Client) RefreshToken(ctx context.Context) string {
	response, err := c.gwRequest(ctx, gwMethodGetUserData, gwEmptyPayload())
	if err != nil {
		logger.Debugf(ctx, "Token refresh request failed: %v", err)

		return sentinelToken
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		logger.Debugf(ctx, "Token refresh body read failed: %v", err)

		return sentinelToken
	}

	if !gjson.ValidBytes(body) {
		logger.Debugf(ctx, "Token refresh returned invalid JSON")

		return sentinelToken
	}

	checkForm := gjson.GetBytes(body, "results.checkForm")
	if checkForm.Type != gjson.String {
		logger.Debugf(ctx, "Token refresh response has no checkForm field")

		return sentinelToken
	}

	token := checkForm.Str

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	return token
}

// sessionToken returns the api_token value for a gateway call.
// deezer.getUserData always sends the sentinel. Every other method triggers
// exactly one lazy refresh when no token has been acquired yet, then proceeds
// with whatever is stored — which may still be the sentinel if the refresh
// failed. That is a deliberate best effort, not a hard precondition.
func (c *Client) sessionToken(ctx context.Context, method string) string {
	if method == gwMethodGetUserData {
		return sentinelToken
	}

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	if token != sentinelToken {
		return token
	}

	c.RefreshToken(ctx)

	c.mu.Lock()
	token = c.token
	c.mu.Unlock()

	return token
}
