// Package services contains the application services of the Finanzas client:
// authentication and session bootstrap, market quotes, backtests, and broker
// settings. Each service talks to the backend exclusively through the
// request gateway.
package services

import (
	"context"
	"net/url"
)

// Gateway is the request surface the services need. *api.Gateway satisfies
// it; tests provide lightweight fakes.
type Gateway interface {
	GetJSON(ctx context.Context, path string, out any) error
	PostJSON(ctx context.Context, path string, in, out any) error
	PostForm(ctx context.Context, path string, form url.Values, out any) error
}
