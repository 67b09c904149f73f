// Package carteira holds the domain model of the "Minha Carteira" terminal
// client: the allocation tree with its drill-down view stack, the net-worth
// evolution series shaper, the label vocabulary shared between reports, and
// the value types (Money, Percent, Quantity) used to format what the backend
// computes.
//
// All portfolio figures (profitability, allocation percentages, evolution
// series) come pre-aggregated from the backend; this package reshapes them for
// display and never recomputes them.
//
// This package serves as the foundational logic for the `mc` command-line
// tool and its interactive dashboard.
package carteira
