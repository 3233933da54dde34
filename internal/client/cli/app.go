package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/finanzas-network/fincli/internal/client/api"
	"github.com/finanzas-network/fincli/internal/client/config"
	"github.com/finanzas-network/fincli/internal/client/services"
	"github.com/finanzas-network/fincli/internal/client/session"
	"github.com/finanzas-network/fincli/internal/logging"
)

// App wires the Finanzas client together: the credential store, the request
// gateway, the services on top of it, and the interactive shell.
type App struct {
	config   *config.Config
	store    session.Store
	auth     services.AuthService
	market   services.MarketService
	backtest services.BacktestService
	settings services.SettingsService

	// session is recomputed on every entry into the authenticated area and
	// is never shared across entries.
	session    session.Session
	generation int

	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	dir, err := session.DefaultDir()
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}
	store := session.NewFileStore(dir)
	gw := api.New(cfg.BaseURL, cfg.RequestTimeout, store, log)

	return &App{
		config:   cfg,
		store:    store,
		auth:     services.NewAuthService(gw, store, log),
		market:   services.NewMarketService(gw),
		backtest: services.NewBacktestService(gw),
		settings: services.NewSettingsService(gw),
		session:  session.Unauthenticated(),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		log:      log,
	}, nil
}

// isAllowed is the route guard: a synchronous presence check over the
// credential store. Deliberately coarse: it proves a credential exists, not
// that it is valid; validity is the bootstrapper's call.
func (a *App) isAllowed(ctx context.Context) bool {
	token, err := a.store.Get(ctx)
	if err != nil {
		a.log.Error(ctx, "credential store read failed", "error", err)
		return false
	}
	return token != ""
}

// enterApp is the authenticated area root. Entry without a credential is
// redirected to the login prompt; with one, the shell mounts in its loading
// state while the bootstrapper validates. Returns true when the user asked
// to quit the program from inside.
func (a *App) enterApp(ctx context.Context) bool {
	if !a.isAllowed(ctx) {
		fmt.Fprintln(a.out, "Please log in first.")
		return false
	}
	if !a.bootstrap(ctx) {
		return false
	}
	quit := a.protectedLoop(ctx)
	a.session = session.Unauthenticated()
	return quit
}

// bootstrap validates the stored credential, once per entry. On any failure
// the eviction side effect runs exactly once: clear the store, mark the
// session invalid, fall back to the login prompt.
func (a *App) bootstrap(ctx context.Context) bool {
	a.generation++
	gen := a.generation
	a.session = session.Bootstrapping()
	fmt.Fprintln(a.out, "Validating session...")

	u, err := a.auth.Bootstrap(ctx)

	if gen != a.generation {
		// A newer entry superseded this one; the late result is discarded.
		return false
	}
	if err != nil {
		a.log.Warn(ctx, "session bootstrap failed", "error", err)
		if clearErr := a.auth.Logout(ctx); clearErr != nil {
			a.log.Error(ctx, "evicting credential failed", "error", clearErr)
		}
		a.session = session.Invalid()
		fmt.Fprintln(a.out, "Your session is no longer valid. Please log in again.")
		return false
	}

	a.session = session.Authenticated(u)
	return true
}
