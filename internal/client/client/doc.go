// Package client is the record store client used by the terminal app.
//
// # Overview
//
// The store is reached over gRPC (see GRPCClient). Each table is exposed as a
// Table with four operations:
//
//   - FetchAll: every row, in the store's order (categories by name
//     ascending, vocabulary and notes newest first). Notes carry their
//     joined category when it still exists.
//   - Insert: creates a row from a draft and returns it with the id and
//     created_at assigned by the store.
//   - UpdateByID: applies a patch to the row with that id.
//   - DeleteByID: removes the row with that id.
//
// Updating or deleting a missing id is not an error.
//
// # Error Handling
//
// gRPC status codes are mapped back to the sentinel errors of
// internal/common (ErrorValidation, ErrorUnauthorized, ErrorUnavailable,
// ErrorNotFound) and wrapped with the failing operation, so callers match
// them with errors.Is.
//
// Every call carries the public API key in the "apikey" metadata entry.
package client
