// Package guard decides whether navigation to a route proceeds or
// redirects, based solely on the already-hydrated session state. Both
// guards are pure and synchronous: no network calls, no store mutation.
package guard

import "net/url"

// LoginPath is where unauthenticated users are sent.
const LoginPath = "/login"

// RootPath is where authenticated users land by default.
const RootPath = "/"

// RedirectParam carries the originally requested path through the login
// flow.
const RedirectParam = "redirect"

// Decision is the outcome of a guard check.
type Decision struct {
	// Allow is true when the requested route may render.
	Allow bool
	// RedirectTo is the target path when Allow is false.
	RedirectTo string
}

// Private guards routes requiring a session. Unauthenticated requests
// are redirected to the login path with the requested path preserved in
// the redirect query parameter, percent-encoded.
func Private(authenticated bool, path string) Decision {
	if authenticated {
		return Decision{Allow: true}
	}
	return Decision{
		RedirectTo: LoginPath + "?" + RedirectParam + "=" + url.QueryEscape(path),
	}
}

// Public guards login/register routes. Authenticated users are sent to
// the redirect query parameter's value when present, else to the root.
func Public(authenticated bool, query url.Values) Decision {
	if !authenticated {
		return Decision{Allow: true}
	}

	target := query.Get(RedirectParam)
	if target == "" {
		target = RootPath
	}
	return Decision{RedirectTo: target}
}
