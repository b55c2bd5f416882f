// Package cli implements the interactive ScentID terminal client: a REPL
// over the session, scan, search and favorites controllers. Command handlers
// print their own errors; the loop itself only does I/O and dispatch.
package cli
