// Package records persists namespaced client-state snapshots (session,
// family membership) in the local database. Each namespace holds one
// opaque JSON blob, written on every store mutation and read once at
// startup.
package records

import "context"

type Repository interface {
	// Get returns the stored value for the namespace, or nil when absent.
	Get(ctx context.Context, namespace string) ([]byte, error)
	// Set stores the value, replacing any previous snapshot.
	Set(ctx context.Context, namespace string, value []byte) error
	// Delete removes one namespace.
	Delete(ctx context.Context, namespace string) error
}
