// Package state holds the client's persisted state containers: the
// session (token + user) and the family membership list with the current
// selection. Each store owns its slice exclusively, mutates it atomically
// under a mutex, saves a snapshot through the injected records repository
// on every mutation, and rehydrates from it at construction.
//
// Stores are explicit handles, not ambient singletons: collaborators
// receive a *SessionStore or *FamilyStore and never reach into module
// state. The API client reads the token through the TokenProvider
// capability the session store implements.
package state
