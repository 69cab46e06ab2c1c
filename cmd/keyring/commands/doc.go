// Package commands defines the keyring CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen   Generate Ed25519 identities
//   - pubkey   Derive the public key and node id of a secret key
//   - sign     Sign a message or file
//   - verify   Check a signature
//   - digest   BLAKE3-256 of files, stdin, or a string
//   - nodeid   Node id of a public key
//   - blob     Store blobs through the configured store backend
//
// # Implementation
//
// The root command loads app.Config from the environment, applies flag
// overrides, and builds the dependency graph before any subcommand runs.
// Results go to stdout as hex (node ids as base58); logs go to stderr and
// never include secret key material.
package commands
