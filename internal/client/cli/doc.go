// Package cli is the interactive shell of the Finanzas client.
//
// The shell has two surfaces. The unauthenticated prompt offers login and
// register. A successful login (or a token surviving from a previous run)
// moves into the authenticated area: entry is gated by a synchronous
// presence check over the credential store, then the stored token is
// validated against the identity endpoint before any authenticated command
// runs. A failed validation evicts the token and drops back to the login
// prompt; the authenticated commands (dashboard, backtest, keys, account)
// are plain consumers of the session and the request gateway.
package cli
