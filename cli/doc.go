// Package cli implements the storefront command line client.
//
// Tokens obtained by login are kept in a file (by default ~/.storefront/tokens.json)
// so that subsequent commands reuse and transparently refresh the session.
package cli
