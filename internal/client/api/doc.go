// Package api implements the request gateway: the one path every component
// uses to reach the backend. Credential injection happens only here.
//
// The gateway itself stays policy-free: it does not retry, cache, touch the
// credential store, or decide what a 401 means.
package api
