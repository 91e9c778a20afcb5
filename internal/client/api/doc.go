// Package api contains the client-side building blocks for talking to the
// Nado Quest backend.
//
// # Overview
//
// The package provides:
//  1. A Client that is the single choke point for backend I/O: it builds
//     requests against a configurable base URL, serializes JSON bodies,
//     and attaches "Authorization: Bearer <token>" when the injected
//     TokenProvider yields a token.
//  2. Typed resource groups hanging off the Client: Auth, Families,
//     Quests, Points, Invitations, and Media (multipart upload).
//  3. A typed *Error carrying the HTTP status code and a best-effort
//     message extracted from the response body.
//
// # Error Handling
//
// Non-2xx responses are normalized into *Error; match with errors.As,
// or with errors.Is against the common package sentinels (unauthorized,
// not found, internal) which *Error unwraps to.
// Transport-level failures (unreachable host, DNS) propagate from the
// underlying http.Client unmodified. The client never retries and never
// recovers errors locally.
//
// Concurrency & Contexts
//
// The Client is safe for concurrent use. All operations accept a
// context.Context and honor cancellation. No request timeout is imposed
// beyond what the injected http.Client applies.
package api
