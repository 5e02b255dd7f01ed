// Package engine derives what a page shows from an in-memory snapshot of
// vocabulary entries and notes: text search, equality filters, ordering,
// and grouping by letter, language and moment of memory.
//
// Every function is pure. Inputs are never modified and the same input
// always yields the same ordered output.
package engine
