package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/scentid/scentid-cli/internal/client/api"
	"github.com/scentid/scentid-cli/internal/client/config"
	"github.com/scentid/scentid-cli/internal/client/services"
	"github.com/scentid/scentid-cli/internal/client/session"
	"github.com/scentid/scentid-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the controllers together behind the REPL.
type App struct {
	config *config.Config
	log    logging.Logger

	db        *sql.DB
	apiClient api.Client
	auth      *services.AuthService
	scans     *services.ScanService
	favorites *services.FavoriteService
	search    *services.SearchService

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local database: %w", err)
	}

	a := &App{
		config: cfg,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	store := session.NewStore(session.NewSQLiteRepository(db))
	apiClient := api.NewHTTPClient(cfg.BaseURL, store, a.sessionExpired, log)

	a.apiClient = apiClient
	a.auth = services.NewAuthService(apiClient, store, log)
	a.scans = services.NewScanService(apiClient, log)
	a.favorites = services.NewFavoriteService(apiClient, log)
	a.search = services.NewSearchService(apiClient, log, cfg.SearchDebounce, cfg.PopularLimit)

	return a, nil
}

// sessionExpired is the gateway's navigate-to-login hook: the token is
// already gone, so drop the in-memory session and tell the user.
func (a *App) sessionExpired() {
	a.auth.Invalidate()
	fmt.Fprintln(a.out, "Session expired, please log in again.")
}

func (a *App) isLoggedIn() bool {
	return a.auth.State() == services.StateAuthenticated
}

func (a *App) status() string {
	if user := a.auth.User(); user != nil {
		return fmt.Sprintf("(%s)", user.Email)
	}
	return ""
}

// Run restores the persisted session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.auth.User().Email)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() {
	a.search.Stop()
	if a.db != nil {
		_ = a.db.Close()
	}
}
