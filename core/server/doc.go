// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application itself; this package only
// defines the listen address, the API key and the rule that a server bound
// to a public interface must be protected by a key.
package server
