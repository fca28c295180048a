// Package destinations provides the destination repository: create, read,
// update and delete over the persisted destination collection, plus
// owner-scoped list and search views.
//
// # Persistence
//
// Every read loads the full collection from the key-value store; every
// mutation loads, changes and saves it inside one kvstore.Store.Update call,
// so a successful return means the change is durable and a failed one left
// the stored collection untouched.
//
// # Ownership
//
// Create trusts the owner it is given: callers pass the identity of the
// active session. Get, Update and Delete address records by id alone and do
// not check ownership; only ListFor and Search are owner-scoped. Presentation
// code that exposes Update or Delete must restrict ids to the current user's
// view.
package destinations
