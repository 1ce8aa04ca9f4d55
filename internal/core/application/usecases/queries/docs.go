// Package queries contains read operations that bypass the domain model.
// Implements the Query pattern for data retrieval in the CQRS architecture.
// Queries execute raw SQL against the database and return plain response
// structs, never aggregates.
//
// Read paths degrade rather than fail: a storage error is logged and the
// caller gets an empty result, because a failed listing is not worth breaking
// a screen over. Writes never behave this way.
package queries
