// Package board implements the Corkboard core: the schema and card
// stores, the column projection engine, the reorder operations, and
// board import/export.
//
// A Board owns the in-memory schema, cards, and view state exclusively;
// all mutation goes through its methods, and every mutating operation is
// immediately followed by a full write-through of the affected slots to
// the injected persistence store. Projection is a pure function over the
// in-memory state and never mutates its inputs.
package board
