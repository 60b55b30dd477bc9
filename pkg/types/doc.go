// Package types defines the Store interface, entity types, the property
// value type system, and standard error types for the Corkboard board
// system.
package types
