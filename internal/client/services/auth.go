package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/finanzas-network/fincli/internal/client/api"
	"github.com/finanzas-network/fincli/internal/client/models"
	"github.com/finanzas-network/fincli/internal/client/session"
	"github.com/finanzas-network/fincli/internal/common"
	"github.com/finanzas-network/fincli/internal/logging"
)

// AuthService defines the session lifecycle operations.
//
// Contract:
//   - Login: authenticate and persist the returned token. The token is
//     durable in the store before Login returns, so a subsequent navigation
//     into the authenticated area observes it.
//   - Register: create a new account; no token is written.
//   - Bootstrap: validate the stored token against the identity endpoint and
//     return the profile. Any failure means the session is invalid.
//   - Logout: clear the stored token. Idempotent.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, email string, password []byte) error
	Bootstrap(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	gw    Gateway
	store session.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given gateway and
// credential store.
func NewAuthService(gw Gateway, store session.Store, log logging.Logger) AuthService {
	return &authService{gw: gw, store: store, log: log}
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login submits the credentials form-encoded to the login endpoint. A 401
// maps to common.ErrInvalidCredentials; a 404 means the client is pointed at
// the wrong base URL and, like transport failures, maps to
// common.ErrEndpointUnavailable. Nothing is written on failure.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", string(password))

	var resp loginResponse
	if err := a.gw.PostForm(ctx, "/auth/login", form, &resp); err != nil {
		var st *api.StatusError
		if errors.As(err, &st) {
			switch st.Code {
			case http.StatusUnauthorized:
				return common.ErrInvalidCredentials
			case http.StatusNotFound:
				a.log.Error(ctx, "login endpoint not found, check the base URL", "status", st.Code)
				return fmt.Errorf("%w: login endpoint not found", common.ErrEndpointUnavailable)
			default:
				return fmt.Errorf("login failed: %w", err)
			}
		}
		return err
	}

	if resp.AccessToken == "" {
		return fmt.Errorf("%w: login response carried no access token", common.ErrEndpointUnavailable)
	}

	a.log.Info(ctx, "login succeeded", "username", username)
	return a.store.Set(ctx, resp.AccessToken)
}

// Register creates a new account. A backend rejection surfaces as
// *api.StatusError so the caller can show its detail message verbatim.
func (a *authService) Register(ctx context.Context, email string, password []byte) error {
	payload := map[string]string{
		"email":    email,
		"password": string(password),
	}
	return a.gw.PostJSON(ctx, "/register", payload, nil)
}

// Bootstrap validates the stored token by fetching the user profile. Every
// failure (rejection, transport error, malformed payload) collapses to
// common.ErrSessionInvalid; transient network errors are deliberately not
// distinguished from a revoked token here.
func (a *authService) Bootstrap(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := a.gw.GetJSON(ctx, "/users/me", &u); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrSessionInvalid, err)
	}
	if u.ID == 0 || u.Email == "" {
		return nil, fmt.Errorf("%w: malformed profile payload", common.ErrSessionInvalid)
	}
	return &u, nil
}

// Logout clears the stored token. The store mutation completes before
// Logout returns, so no later request can carry the evicted token.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}
