// SPDX-License-Identifier: MIT

// Package report renders pipeline results: an aligned terminal table,
// JSON Lines for downstream tooling, and Graphviz DOT for the support of a
// (small) matrix.
package report
