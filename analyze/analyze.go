// Package analyze implements the gap detection heuristics.
// Every function is a pure computation over extracted page data: the
// package has no I/O and no state, which keeps the rules directly
// testable against hand-built summaries.
package analyze
