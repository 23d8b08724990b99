// Package model holds the data records shared by the scanner and the
// report writers.
package model

// Violation is one detected policy infraction. Records are immutable once
// emitted and are collected in discovery order (directory traversal order,
// then line order within a file). Duplicates are possible and are kept.
type Violation struct {
	Path    string // relative to the scan root
	Line    int    // 1-based
	RuleID  string // stable rule identifier, used by JSON/SARIF output only
	Message string // human-readable, printed by the text reporter
}
