package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HttpClient is implemented by each concrete client; SendRequest takes the
// base URL, timeout and transport from it.
type HttpClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	Path string
	// TemplatePath is the path with variable segments unexpanded, used for
	// metrics labels so cardinality stays bounded.
	TemplatePath string
	Headers      map[string]string
}

// RequestError means the request could not be dispatched or the remote
// answered outside the 2xx range.
type RequestError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("request to %s failed with status %d", e.Path, e.StatusCode)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeError means the remote answered but the response body could not be
// decoded into the expected shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("undecodable response from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SendRequest performs one round trip with a JSON request and response
// body. A nil input sends no body.
func SendRequest[I any, R any](
	ctx context.Context,
	client HttpClient,
	method string,
	opts *HttpClientOptions,
	input *I,
) (*R, error) {
	url := client.GetBaseURL() + opts.Path

	var body io.Reader
	if input != nil {
		encoded, err := json.Marshal(input)
		if err != nil {
			return nil, &RequestError{Path: opts.Path, Err: fmt.Errorf("failed to encode request body: %w", err)}
		}
		body = bytes.NewReader(encoded)
	}

	reqCtx, cancel := context.WithTimeout(ctx, client.GetDefaultRequestTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, url, body)
	if err != nil {
		return nil, &RequestError{Path: opts.Path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.GetHttpClient().Do(req)
	if err != nil {
		return nil, &RequestError{Path: opts.Path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &RequestError{Path: opts.Path, StatusCode: resp.StatusCode}
	}

	var result R
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &DecodeError{Path: opts.Path, Err: err}
	}
	return &result, nil
}
