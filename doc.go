// Package fundlens turns heterogeneous tabular exports of mutual-fund
// holdings (broker and registrar statements) into a normalized analytical
// model of the portfolio.
//
// The package is built around two pure components:
//   - The ingestion normalizer ([Normalize]) locates the header row inside a
//     raw decoded grid, maps arbitrary columns to canonical fields, coerces
//     value types leniently, and filters invalid rows into a canonical
//     [Holding] list.
//   - The analytics engine ([Analyze]) consumes canonical holdings and
//     produces all derived analytics: aggregate totals, category and AMC
//     allocation, loss and clutter detection, benchmark-relative performance,
//     a consolidation plan for overlapping funds, and a composite health
//     score.
//
// Both components are total functions: no input shape makes them fail.
// Malformed numeric cells coerce to zero, rows without a scheme name are
// dropped, and a grid without a usable header yields an empty holding list.
// There is no persisted state; every analysis is recomputed wholesale from
// the last decoded dataset.
//
// This package serves as the foundational logic for the `mfl` command-line
// tool.
package fundlens
