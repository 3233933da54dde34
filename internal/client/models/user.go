// Package models defines the data shapes the Finanzas client exchanges with
// the backend.
package models

// User is the authenticated user's profile as returned by GET /users/me.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
