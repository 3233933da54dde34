package session

import "github.com/finanzas-network/fincli/internal/client/models"

// Status describes where the current entry into the authenticated area
// stands. It is derived state: recomputed on every entry, never persisted.
type Status int

const (
	// StatusUnauthenticated: no credential, or the area was left.
	StatusUnauthenticated Status = iota
	// StatusBootstrapping: a credential exists and is being validated.
	StatusBootstrapping
	// StatusAuthenticated: the backend confirmed the credential.
	StatusAuthenticated
	// StatusInvalid: validation failed; terminal for this entry.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusBootstrapping:
		return "bootstrapping"
	case StatusAuthenticated:
		return "authenticated"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Session pairs a Status with the validated user profile. User is non-nil
// only when Status is StatusAuthenticated; the constructors below are the
// only way session state is produced, which is what enforces that.
type Session struct {
	Status Status
	User   *models.User
}

func Unauthenticated() Session { return Session{Status: StatusUnauthenticated} }

func Bootstrapping() Session { return Session{Status: StatusBootstrapping} }

func Authenticated(u *models.User) Session {
	return Session{Status: StatusAuthenticated, User: u}
}

func Invalid() Session { return Session{Status: StatusInvalid} }
