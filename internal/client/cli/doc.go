// Package cli provides the interactive Nado Quest command-line client.
//
// It wires configuration, the local state database, the REST API client,
// and an interactive REPL. Typical flow: rehydrate the persisted session,
// refresh family memberships, and execute user commands.
//
// Key features:
//   - Register / Login / Logout with a persisted session
//   - Family membership listing and active-family selection
//   - Quest listing, creation, proof submission, approval and rejection
//   - Point balances and family invitations
//   - Media uploads proxied through the backend
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
