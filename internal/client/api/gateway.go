package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-network/fincli/internal/client/session"
	"github.com/finanzas-network/fincli/internal/common"
	"github.com/finanzas-network/fincli/internal/logging"
)

// Gateway is the single chokepoint through which every backend request is
// dispatched. It reads the session store before each request and attaches
// the token as a bearer header when one is present; with no token the
// request goes out unauthenticated.
//
// The gateway never retries, never caches, never mutates the store, and
// never interprets response status codes; that is the caller's job.
type Gateway struct {
	baseURL string
	store   session.Store
	client  *http.Client
	log     logging.Logger
}

func New(baseURL string, timeout time.Duration, store session.Store, log logging.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Dispatch issues one HTTP request and returns the raw response. Transport
// failures (refused connection, DNS, timeout) are reported as
// common.ErrEndpointUnavailable; any response from the backend, whatever its
// status, is returned as-is. The caller owns resp.Body.
func (g *Gateway) Dispatch(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	token, err := g.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading credential store: %w", err)
	}
	if token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	g.log.Debug(ctx, "dispatching request", "method", method, "path", path, "authenticated", token != "")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEndpointUnavailable, err)
	}
	return resp, nil
}

// GetJSON dispatches a GET and decodes a 2xx JSON body into out. A non-2xx
// response becomes a *StatusError.
func (g *Gateway) GetJSON(ctx context.Context, path string, out any) error {
	resp, err := g.Dispatch(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

// PostJSON dispatches a POST with a JSON body and decodes a 2xx JSON
// response into out (out may be nil).
func (g *Gateway) PostJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	resp, err := g.Dispatch(ctx, http.MethodPost, path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

// PostForm dispatches a POST with a form-encoded body and decodes a 2xx
// JSON response into out (out may be nil).
func (g *Gateway) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	resp, err := g.Dispatch(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
