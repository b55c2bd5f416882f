// Package session owns the credential token for the ScentID client.
//
// # Overview
//
// The package provides:
//  1. Store — the single holder of the current bearer token. It keeps the
//     token in memory behind a mutex and falls back to a durable Repository
//     on first access, so a token written before a process restart is
//     restored transparently.
//  2. Repository — the durable key-value contract, with a SQLite
//     implementation (SQLiteRepository) and an in-memory one
//     (MemoryRepository) for tests and ephemeral runs.
//  3. InitDatabase / RunMigrations — SQLite bootstrap for the CLI, applying
//     embedded goose migrations.
//
// # Semantics
//
// Exactly one token is held at a time; writes are last-writer-wins. Setting
// the empty string clears both memory and durable storage. The Store is safe
// for use from any number of concurrently in-flight requests.
package session
