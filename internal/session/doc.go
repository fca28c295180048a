// Package session authenticates users against the persisted registry and
// tracks the single active session of the process.
//
// A Store value is the session context: presentation code holds one and
// passes the current identity to the destination repository. Nothing here is
// global, so tests can run any number of independent sessions over one
// key-value store.
//
// Errors
//
//   - common.ErrInvalidCredentials: unknown email or wrong password (not distinguished)
//   - common.ErrDuplicateEmail: registration with an existing email
//   - common.ErrInvalidInput: registration with an empty email or password
//
// Remember-me
//
// With WithRemember(true) the active identity is also written under the
// "session" key, so Restore can pick it up in the next process. It is off by
// default and the session then lives only as long as the Store.
package session
