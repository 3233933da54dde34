// Package session owns the client-side access credential and the derived
// session state for the authenticated area.
package session

import "context"

// Store is the single holder of the access token.
//
// Contract:
//   - Get: return the stored token, or "" when none is stored. Absence is a
//     normal outcome, not an error.
//   - Set: persist the token, replacing any previous value.
//   - Clear: remove the token. Clearing an empty store is a no-op.
//
// There is exactly one logical writer at a time (login, logout, or the
// bootstrapper on eviction), so implementations need no locking.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
