// Package models defines the wire and state types exchanged with the
// Nado Quest backend.
package models

// User is the authenticated account as returned by the auth endpoints.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
