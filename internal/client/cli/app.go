package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/Annomy111/foerder-finder/internal/client/api"
	"github.com/Annomy111/foerder-finder/internal/client/config"
	"github.com/Annomy111/foerder-finder/internal/client/controllers"
	"github.com/Annomy111/foerder-finder/internal/client/repositories/fundingcache"
	"github.com/Annomy111/foerder-finder/internal/client/repositories/metadata"
	"github.com/Annomy111/foerder-finder/internal/client/session"
	"github.com/Annomy111/foerder-finder/internal/client/storage"
	"github.com/Annomy111/foerder-finder/internal/logging"
)

// App wires the local database, the session, the API client, and the page
// controllers into one interactive client.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Store
	api     *api.Client

	fundingList *controllers.FundingListController
	search      *controllers.SearchController
	dashboard   *controllers.DashboardController

	// application is the controller for the currently opened
	// application, nil when none is open.
	application *controllers.ApplicationController

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}

	store := session.NewStore(metadata.NewSQLiteRepository(db), log)
	if err := store.Restore(ctx); err != nil {
		log.Warn(ctx, "session restore failed, starting anonymous", "error", err)
	}

	apiClient, err := api.New(api.Config{
		BaseURL:         cfg.BaseURL,
		RequestTimeout:  cfg.RequestTimeout,
		GenerateTimeout: cfg.GenerateTimeout,
	}, store, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	cache := fundingcache.NewSQLiteRepository(db)

	searchCtl := controllers.NewSearch(apiClient.Search, log)
	searchCtl.SetDebounce(cfg.SearchDebounce)

	app := &App{
		config:      cfg,
		log:         log,
		db:          db,
		session:     store,
		api:         apiClient,
		fundingList: controllers.NewFundingList(apiClient.Funding, cache, log),
		search:      searchCtl,
		dashboard:   controllers.NewDashboard(apiClient.Applications, apiClient.Funding, log),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}
	store.SetOnLogout(func() {
		fmt.Fprintln(app.out, "Session expired, please log in again.")
	})
	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
