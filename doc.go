// Package berrytally implements the ledger engine of a single-user inventory
// and sales tracker for a small berry-harvesting operation.
//
// The source of truth is an append-only event log made of four collections:
// harvests, bulk actions, package creations and package actions. Everything
// else (stock levels, valuations, packaged inventory, sales and harvest
// analytics) is a projection recomputed on demand by folding the log. No
// mutable stock counter exists anywhere: a derived view can never drift from
// the log because it has no state of its own.
package berrytally
