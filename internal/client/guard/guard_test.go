package guard

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrivate(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		path          string
		wantAllow     bool
		wantRedirect  string
	}{
		{
			name:          "authenticated renders route",
			authenticated: true,
			path:          "/proofs/pending",
			wantAllow:     true,
		},
		{
			name:         "unauthenticated preserves requested path",
			path:         "/proofs/pending",
			wantRedirect: "/login?redirect=%2Fproofs%2Fpending",
		},
		{
			name:         "root path",
			path:         "/",
			wantRedirect: "/login?redirect=%2F",
		},
		{
			name:         "nested path with id",
			path:         "/quests/q-42",
			wantRedirect: "/login?redirect=%2Fquests%2Fq-42",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			d := Private(tt.authenticated, tt.path)
			assert.Equal(t, tt.wantAllow, d.Allow)
			assert.Equal(t, tt.wantRedirect, d.RedirectTo)
		})
	}
}

func TestPublic(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		query         string
		wantAllow     bool
		wantRedirect  string
	}{
		{
			name:      "unauthenticated renders login",
			query:     "",
			wantAllow: true,
		},
		{
			name:          "authenticated follows redirect param",
			authenticated: true,
			query:         "redirect=%2Fproofs%2Fpending",
			wantRedirect:  "/proofs/pending",
		},
		{
			name:          "authenticated without redirect goes to root",
			authenticated: true,
			query:         "",
			wantRedirect:  "/",
		},
		{
			name:          "unauthenticated ignores redirect param",
			authenticated: false,
			query:         "redirect=%2Fquests",
			wantAllow:     true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			d := Public(tt.authenticated, query)
			assert.Equal(t, tt.wantAllow, d.Allow)
			assert.Equal(t, tt.wantRedirect, d.RedirectTo)
		})
	}
}

func TestPrivateThenPublicRoundTrip(t *testing.T) {
	// A denied private navigation, once the user logs in, lands back on
	// the originally requested path.
	denied := Private(false, "/proofs/pending")
	assert.False(t, denied.Allow)

	target, err := url.Parse(denied.RedirectTo)
	assert.NoError(t, err)

	after := Public(true, target.Query())
	assert.Equal(t, "/proofs/pending", after.RedirectTo)
}
