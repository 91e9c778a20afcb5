package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadocloud/nadoquest/internal/client/config"
	"github.com/nadocloud/nadoquest/internal/client/models"
	"github.com/nadocloud/nadoquest/internal/client/repositories/records"
	"github.com/nadocloud/nadoquest/internal/common"
	"github.com/nadocloud/nadoquest/internal/logging"
)

// newTestApp builds an App over an in-memory database and the given
// backend URL, mirroring what NewApp does without touching the terminal.
func newTestApp(t *testing.T, baseURL string) *App {
	t.Helper()
	ctx := context.Background()

	db, err := records.InitDatabase(ctx, "file:cli_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	a := &App{
		config: &config.Config{APIBaseURL: baseURL, MediaBaseURL: "https://media.test"},
		db:     db,
		log:    logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		reader: bufio.NewReader(strings.NewReader("")),
	}
	require.NoError(t, a.wire(ctx))
	return a
}

// questBackend is a minimal auth+family backend for CLI tests.
func newAuthBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"message":"invalid credentials"}`)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-1",
			"user":         models.User{ID: "u-1", Email: req.Email, Name: "Alice"},
		})
	})

	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "account created"})
	})

	mux.HandleFunc("GET /v1/users/me/families", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []models.UserFamily{
				{
					Family: models.Family{ID: "fam-1", Name: "Smiths"},
					Member: models.FamilyMember{FamilyID: "fam-1", UserID: "u-1", Role: models.RoleParent},
				},
			},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestIsLoggedIn_FollowsSessionStore(t *testing.T) {
	srv := newAuthBackend(t)
	a := newTestApp(t, srv.URL)

	assert.False(t, a.isLoggedIn())

	err := a.auth.SetAuth(context.Background(), "tok", models.User{ID: "u-1", Email: "a@b.c"})
	require.NoError(t, err)

	assert.True(t, a.isLoggedIn())
}

func TestGetStatus(t *testing.T) {
	srv := newAuthBackend(t)
	a := newTestApp(t, srv.URL)
	ctx := context.Background()

	assert.Equal(t, "", a.getStatus())

	require.NoError(t, a.auth.SetAuth(ctx, "tok", models.User{ID: "u-1", Email: "alice@example.org"}))
	assert.Equal(t, "(alice@example.org)", a.getStatus())

	require.NoError(t, a.families.SetFamilies(ctx, []models.FamilyInfo{{ID: "fam-1", Name: "Smiths"}}))
	assert.Equal(t, "(alice@example.org / Smiths)", a.getStatus())
}

func TestRequireAuth_PrintsRedirect(t *testing.T) {
	srv := newAuthBackend(t)
	a := newTestApp(t, srv.URL)

	var printed []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		printed = append(printed, fmt.Sprint(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	assert.False(t, a.requireAuth("/quests"))
	require.Len(t, printed, 1)
	assert.Contains(t, printed[0], "/login?redirect=%2Fquests")

	require.NoError(t, a.auth.SetAuth(context.Background(), "tok", models.User{ID: "u-1"}))
	printed = nil
	assert.True(t, a.requireAuth("/quests"))
	assert.Empty(t, printed)
}

func TestQuests_NoFamilySelected(t *testing.T) {
	silencePrintln(t)
	srv := newAuthBackend(t)
	a := newTestApp(t, srv.URL)

	require.NoError(t, a.auth.SetAuth(context.Background(), "tok", models.User{ID: "u-1"}))

	err := a.Quests(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrNoFamilySelected)
}

func TestReset_WipesSessionAndFamilies(t *testing.T) {
	srv := newAuthBackend(t)
	a := newTestApp(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, a.auth.SetAuth(ctx, "tok", models.User{ID: "u-1", Email: "a@b.c"}))
	require.NoError(t, a.families.SetFamilies(ctx, []models.FamilyInfo{{ID: "fam-1", Name: "Smiths"}}))

	require.NoError(t, a.reset(ctx))

	assert.False(t, a.sessions.IsAuthenticated())
	assert.Empty(t, a.families.Families())
	assert.Equal(t, "", a.families.CurrentFamilyID())
}
