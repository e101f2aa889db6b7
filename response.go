package deezer

import (
	"context"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// parseEnvelope reads a response body and validates the shared envelope
// shape of both API surfaces. An "error" field of object type is a
// remote-reported failure carrying the object's JSON rendering; any other
// shape of "error" (absent, null, scalar, array) counts as success.
func parseEnvelope(response *http.Response) ([]byte, error) {
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}

	if errorField := gjson.GetBytes(body, "error"); errorField.IsObject() {
		return nil, fmt.Errorf("%w: %s", ErrAPIError, errorField.Raw)
	}

	return body, nil
}

// callAPI fetches one public API path and decodes the whole envelope into T.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func callAPI[T any](c *Client, ctx context.Context, path string) (*T, error) {
	response, err := c.apiRequest(ctx, path)
	if err != nil {
		return nil, err
	}

	body, err := parseEnvelope(response)
	if err != nil {
		return nil, err
	}

	var result T
	if err = json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// callAPIList fetches a public list endpoint, following the envelope's
// "next" cursor until it is missing or not a string. Pages accumulate in
// server-supplied order; a failure mid-walk discards everything gathered so
// far. The walk trusts the server to terminate — there is no cycle guard,
// matching the protocol's own behavior.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func callAPIList[T any](c *Client, ctx context.Context, path string) ([]T, error) {
	var items []T

	for {
		response, err := c.apiRequest(ctx, path)
		if err != nil {
			return nil, err
		}

		body, err := parseEnvelope(response)
		if err != nil {
			return nil, err
		}

		data := gjson.GetBytes(body, "data")
		if !data.Exists() {
			return nil, fmt.Errorf("%w: list envelope has no data field", ErrInvalidJSON)
		}

		var page []T
		if err = json.Unmarshal([]byte(data.Raw), &page); err != nil {
			return nil, fmt.Errorf("failed to decode page: %w", err)
		}

		items = append(items, page...)

		next := gjson.GetBytes(body, "next")
		if next.Type != gjson.String {
			break
		}

		path = next.Str
	}

	return items, nil
}

// callGW dispatches one gateway call and decodes the envelope's "results"
// sub-document into T.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func callGW[T any](c *Client, ctx context.Context, method string, payload gwPayload) (*T, error) {
	response, err := c.gwRequest(ctx, method, payload)
	if err != nil {
		return nil, err
	}

	body, err := parseEnvelope(response)
	if err != nil {
		return nil, err
	}

	results := gjson.GetBytes(body, "results")
	if !results.Exists() {
		return nil, fmt.Errorf("%w: gateway envelope has no results field", ErrInvalidJSON)
	}

	var result T
	if err = json.Unmarshal([]byte(results.Raw), &result); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}

	return &result, nil
}
