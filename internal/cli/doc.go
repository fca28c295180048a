// Package cli provides the interactive travelbook command-line client.
//
// It wires configuration, local storage, the session store and the
// destination repository behind an interactive REPL. Typical flow: show the
// splash banner, restore a remembered session if enabled, then execute user
// commands until exit.
//
// Key features:
//   - Register / Login / Logout / WhoAmI
//   - Add, list, search, show, edit and delete destinations
//   - Cobra entry points: the REPL (default), "register" and "version"
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, NewRootCommand and runREPL for details.
package cli
