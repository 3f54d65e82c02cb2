// Package cli provides the interactive DevPair command-line client.
//
// It wires configuration, the local credential store, the API client, the
// session store and an interactive REPL. Each command maps to one screen
// of the product and is guarded the way its route is: some need a logged
// in user, login and register need the opposite, the project browser is
// open to everyone.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and the commands table for details.
package cli
