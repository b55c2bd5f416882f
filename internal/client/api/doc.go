// Package api contains the client-side gateway to the ScentID backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     authentication, scans, fragrance search, favorites, feedback and
//     sensor acquisition.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches
//     the bearer token from the session store, tags every request, maps
//     response statuses to sentinel errors, and reacts to authorization
//     failures by clearing the session and notifying the application.
//  3. Request/response payload types mirroring the backend's JSON schemas.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors matched with errors.Is:
// ErrUnavailable (transport failure), ErrUnauthorized (the session is
// terminated as a side effect), ErrNotFound. Other non-2xx responses become
// *Error carrying the server-supplied detail message.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation; no retries or client-side
// timeouts are imposed.
package api
