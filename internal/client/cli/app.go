package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/nadocloud/nadoquest/internal/client/api"
	"github.com/nadocloud/nadoquest/internal/client/config"
	"github.com/nadocloud/nadoquest/internal/client/guard"
	"github.com/nadocloud/nadoquest/internal/client/repositories/records"
	"github.com/nadocloud/nadoquest/internal/client/services"
	"github.com/nadocloud/nadoquest/internal/client/state"
	"github.com/nadocloud/nadoquest/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	client   *api.Client
	auth     *services.AuthFlow
	provider *services.FamilyProvider
	sessions *state.SessionStore
	families *state.FamilyStore
	log      logging.Logger
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := records.InitDatabase(ctx, c.StateDBPath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	a := &App{
		config: c,
		db:     db,
		log:    logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
		reader: bufio.NewReader(os.Stdin),
	}

	if err := a.wire(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return a, nil
}

// wire (re)builds the store and service graph on top of the open database.
// It runs once at startup and again after a local state reset.
func (a *App) wire(ctx context.Context) error {
	repo := records.NewSQLiteRepository(a.db)

	sessions, err := state.NewSessionStore(ctx, repo)
	if err != nil {
		return err
	}
	families, err := state.NewFamilyStore(ctx, repo)
	if err != nil {
		return err
	}
	a.sessions = sessions
	a.families = families

	// The token provider reads through the App so a rebuilt session store
	// is picked up without reconstructing the client.
	client := api.New(a.config.APIBaseURL,
		api.WithHTTPClient(&http.Client{Timeout: a.config.RequestTimeout}),
		api.WithTokenProvider(api.TokenFunc(func() string { return a.sessions.Token() })),
		api.WithMediaBaseURL(a.config.MediaBaseURL),
	)
	a.client = client

	a.auth = services.NewAuthFlow(client.Auth, sessions)
	a.provider = services.NewFamilyProvider(client.Families, sessions, families, a.log)
	return nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

// requireAuth gates a command mapped to a private route. When the session
// is not authenticated it prints the login redirect and reports false.
func (a *App) requireAuth(path string) bool {
	d := guard.Private(a.sessions.IsAuthenticated(), path)
	if !d.Allow {
		printlnFn("Please log in first (" + d.RedirectTo + ")")
	}
	return d.Allow
}

// reset wipes all persisted client state in one transaction and rebuilds
// the in-memory stores from the now-empty database.
func (a *App) reset(ctx context.Context) error {
	if err := records.Reset(ctx, a.db, state.SessionNamespace, state.FamilyNamespace); err != nil {
		return err
	}
	return a.wire(ctx)
}
