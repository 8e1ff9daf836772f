// Package server holds the HTTP server configuration.
//
// The serve command builds the fiber app itself; this package only defines the
// listen address and the API key checked by the auth middleware. The server
// binds to 127.0.0.1 by default, and Validate refuses any other host while
// server.api_key is empty.
package server
