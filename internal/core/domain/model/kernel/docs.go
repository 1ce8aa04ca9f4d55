// Package kernel contains shared value objects used across all domain models:
// store-assigned entity identifiers and validated contact values. These types
// carry their own validation so aggregates can compose them without repeating
// format rules.
package kernel
