// Package session owns the in-memory session and decides, from the
// credential store, whether the user is authenticated.
//
// Manager is the single state container: auth actions move it between
// states, and the navigator subscribes to it instead of polling a flag.
// Resolver reads the store once at boot (Resolve) and again whenever a store
// write failed and the cached state can no longer be trusted (Reconcile).
// Both treat an unreadable store as "not authenticated".
package session
