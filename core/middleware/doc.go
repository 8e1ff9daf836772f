// Package middleware contains HTTP middleware for the Fiber application started
// by the serve command.
//
// # Components
//
//   - Auth: Implements API key validation to protect endpoints.
//   - RequestID: Assigns a unique id to every incoming request, storing it in the
//     context locals and the X-Request-ID response header for tracing.
//
// These middleware components are registered globally in the serve command.
package middleware
