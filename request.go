package deezer

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// gwPayloadKind selects how a gateway call carries its parameters.
type gwPayloadKind int

const (
	// gwPayloadNone sends only the bookkeeping fields as the form body.
	gwPayloadNone gwPayloadKind = iota
	// gwPayloadForm merges caller parameters into the form body.
	gwPayloadForm
	// gwPayloadJSON moves the bookkeeping fields into the query string and
	// sends the caller value as a JSON request body.
	gwPayloadJSON
)

// gwPayload describes the payload of a single gateway call. The three
// historical call shapes of the protocol collapse into this one variant,
// so the token and bookkeeping logic exists exactly once.
type gwPayload struct {
	kind gwPayloadKind
	form url.Values
	body any
}

func gwEmptyPayload() gwPayload {
	return gwPayload{kind: gwPayloadNone}
}

func gwFormPayload(form url.Values) gwPayload {
	return gwPayload{kind: gwPayloadForm, form: form}
}

func gwJSONPayload(body any) gwPayload {
	return gwPayload{kind: gwPayloadJSON, body: body}
}

// gwRequest shapes and dispatches one POST to the gw-light endpoint.
// It resolves the session token first, which may trigger a lazy refresh.
func (c *Client) gwRequest(ctx context.Context, method string, payload gwPayload) (*http.Response, error) {
	token := c.sessionToken(ctx, method)

	bookkeeping := url.Values{}
	bookkeeping.Set(fieldAPIToken, token)
	bookkeeping.Set(fieldAPIVersion, apiVersion)
	bookkeeping.Set(fieldMethod, method)

	var request *http.Request

	switch payload.kind {
	case gwPayloadJSON:
		// The "input" value mirrors the field count at the time it is
		// computed; the gateway cares about its presence, not its number.
		bookkeeping.Set(fieldInput, strconv.Itoa(len(bookkeeping)))

		body, err := json.Marshal(payload.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}

		route := c.gatewayURL + "?" + bookkeeping.Encode()

		request, err = http.NewRequestWithContext(ctx, http.MethodPost, route, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}

		request.Header.Set("Content-Type", "application/json")
	default:
		form := bookkeeping
		for key, values := range payload.form {
			for _, value := range values {
				form.Add(key, value)
			}
		}

		form.Set(fieldInput, strconv.Itoa(len(form)))

		var err error

		request, err = http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}

		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return c.httpClient.Do(request)
}

// buildAPIURL resolves a relative public API path against the base URL and
// injects the default page limit unless the caller already set one.
func (c *Client) buildAPIURL(path string) (string, error) {
	route, err := c.apiBaseURL.Parse(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve API path %q: %w", path, err)
	}

	query := route.Query()
	if !query.Has(queryParamLimit) {
		query.Set(queryParamLimit, defaultPageLimit)
	}

	route.RawQuery = query.Encode()

	return route.String(), nil
}

// apiRequest issues one unauthenticated GET against the public API.
// Pagination "next" values arrive as absolute URLs and resolve unchanged.
func (c *Client) apiRequest(ctx context.Context, path string) (*http.Response, error) {
	route, err := c.buildAPIURL(path)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	return c.httpClient.Do(request)
}
