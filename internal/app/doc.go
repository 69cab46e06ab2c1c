// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, builds the zap logger, and
// constructs the identity service and the store and transport
// collaborators, exposing them via the Wire struct for commands to use.
package app
