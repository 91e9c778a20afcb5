// Package common defines shared constants and sentinel errors used across
// the Nado Quest client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// State/persistence errors.
	ErrNotFound = errors.New("not found")

	// Auth/session errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrEmptyToken   = errors.New("empty token in auth response")

	// Local validation errors surfaced at the command boundary.
	ErrNoFamilySelected = errors.New("no family selected")

	// Service-level errors.
	ErrInternal = errors.New("internal error")
)
